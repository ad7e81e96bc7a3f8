package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/SscSPs/personal_os/internal/utils/schedule"
)

type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepositoryFacade
	uow           portsrepo.UnitOfWork
}

// NewRecurringService creates a new recurring rule service with the provided options
func NewRecurringService(repo portsrepo.RecurringRepositoryFacade, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.RecurringSvcFacade {
	return &recurringService{
		BaseService:   newBaseService(opts...),
		recurringRepo: repo,
		uow:           uow,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) ListRecurringRules(ctx context.Context) ([]domain.RecurringRule, error) {
	rules, err := s.recurringRepo.ListRecurringRules(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring rules")
		return nil, err
	}
	return rules, nil
}

func (s *recurringService) CreateRecurringRule(ctx context.Context, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error) {
	rule := domain.RecurringRule{
		Name:        strings.TrimSpace(req.Name),
		TxnType:     req.TxnType,
		Amount:      req.Amount,
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		Schedule:    req.Schedule,
		DayOfMonth:  req.DayOfMonth,
		DayOfWeek:   req.DayOfWeek,
		NextDueDate: domain.DateOnly(req.NextDueDate.Time),
		AutoCreate:  req.AutoCreate,
		IsActive:    true,
		AssetID:     req.AssetID,
		LiabilityID: req.LiabilityID,
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	// A monthly rule keeps the starting day even after a short month clamps it.
	if rule.Schedule == domain.ScheduleMonthly && rule.DayOfMonth == nil && !rule.NextDueDate.IsZero() {
		day := rule.NextDueDate.Day()
		rule.DayOfMonth = &day
	}
	if err := validateRecurringRule(rule); err != nil {
		return nil, err
	}

	now := s.Now()
	rule.CreatedAt = now

	var created *domain.RecurringRule
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := checkRuleAccounts(ctx, repos, rule); err != nil {
			return err
		}

		saved, err := repos.RecurringRepo.SaveRecurringRule(ctx, rule)
		if err != nil {
			return err
		}
		if _, err := repos.RecurringRepo.SaveOccurrence(ctx, domain.RecurringOccurrence{
			RecurringID: saved.ID,
			DueDate:     saved.NextDueDate,
			Status:      domain.OccurrencePending,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		created = saved
		return recordAudit(ctx, repos, domain.EntityRecurringRule, saved.ID, domain.AuditCreated,
			nil, mapping.ToRecurringRuleSnapshot(*saved), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create recurring rule", slog.String("name", rule.Name))
		}
		return nil, err
	}
	return created, nil
}

func (s *recurringService) ListOccurrences(ctx context.Context, status domain.OccurrenceStatus) ([]domain.OccurrenceDetail, error) {
	switch status {
	case "", domain.OccurrencePending, domain.OccurrencePosted, domain.OccurrenceSkipped:
	default:
		return nil, apperrors.Validationf("invalid status %q", status)
	}
	return s.recurringRepo.ListOccurrences(ctx, status)
}

// PostOccurrence turns a pending occurrence into a transaction dated on its
// due date, then advances the rule.
func (s *recurringService) PostOccurrence(ctx context.Context, occurrenceID int64) (*domain.RecurringOccurrence, *domain.Transaction, error) {
	now := s.Now()
	var (
		posted *domain.RecurringOccurrence
		txn    *domain.Transaction
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		occ, rule, err := loadPendingOccurrence(ctx, repos, occurrenceID)
		if err != nil {
			return err
		}

		draft, err := transactionFromRule(*rule, occ.DueDate)
		if err != nil {
			return err
		}
		if txn, err = postTransaction(ctx, repos, draft, now, s.DefaultCurrency()); err != nil {
			return err
		}

		occ.Status = domain.OccurrencePosted
		occ.TransactionID = &txn.ID
		if err := repos.RecurringRepo.UpdateOccurrence(ctx, *occ); err != nil {
			return err
		}
		posted = occ
		return advanceRule(ctx, repos, *rule, occ.DueDate, now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to post occurrence", slog.Int64("occurrence_id", occurrenceID))
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Occurrence posted",
		slog.Int64("occurrence_id", occurrenceID),
		slog.Int64("transaction_id", txn.ID))
	return posted, txn, nil
}

func (s *recurringService) SkipOccurrence(ctx context.Context, occurrenceID int64) (*domain.RecurringOccurrence, error) {
	now := s.Now()
	var skipped *domain.RecurringOccurrence
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		occ, rule, err := loadPendingOccurrence(ctx, repos, occurrenceID)
		if err != nil {
			return err
		}
		occ.Status = domain.OccurrenceSkipped
		if err := repos.RecurringRepo.UpdateOccurrence(ctx, *occ); err != nil {
			return err
		}
		skipped = occ
		return advanceRule(ctx, repos, *rule, occ.DueDate, now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to skip occurrence", slog.Int64("occurrence_id", occurrenceID))
		}
		return nil, err
	}
	return skipped, nil
}

func validateRecurringRule(rule domain.RecurringRule) error {
	switch {
	case rule.Name == "":
		return apperrors.Validationf("name is required")
	case rule.Category == "":
		return apperrors.Validationf("category is required")
	case !rule.TxnType.IsValid():
		return apperrors.Validationf("invalid txn_type %q", rule.TxnType)
	case !rule.Schedule.IsValid():
		return apperrors.Validationf("invalid schedule %q", rule.Schedule)
	case !rule.Amount.IsPositive():
		return apperrors.Validationf("amount must be greater than zero")
	case !domain.HasMoneyScale(rule.Amount):
		return apperrors.Validationf("amount must have at most %d decimal places", domain.MoneyScale)
	case rule.DayOfMonth != nil && (*rule.DayOfMonth < 1 || *rule.DayOfMonth > 31):
		return apperrors.Validationf("day_of_month must be between 1 and 31")
	case rule.DayOfWeek != nil && (*rule.DayOfWeek < 0 || *rule.DayOfWeek > 6):
		return apperrors.Validationf("day_of_week must be between 0 and 6")
	case rule.NextDueDate.IsZero():
		return apperrors.Validationf("next_due_date is required")
	}
	return nil
}

func checkRuleAccounts(ctx context.Context, repos portsrepo.RepositoryProvider, rule domain.RecurringRule) error {
	if rule.AssetID != nil {
		if _, err := repos.AssetRepo.FindAssetByID(ctx, *rule.AssetID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Validationf("asset not found")
			}
			return err
		}
	}
	if rule.LiabilityID != nil {
		if _, err := repos.LiabilityRepo.FindLiabilityByID(ctx, *rule.LiabilityID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Validationf("liability not found")
			}
			return err
		}
	}
	return nil
}

func loadPendingOccurrence(ctx context.Context, repos portsrepo.RepositoryProvider, occurrenceID int64) (*domain.RecurringOccurrence, *domain.RecurringRule, error) {
	occ, err := repos.RecurringRepo.FindOccurrenceByID(ctx, occurrenceID)
	if err != nil {
		return nil, nil, err
	}
	if occ.Status != domain.OccurrencePending {
		return nil, nil, apperrors.Validationf("occurrence is already %s", occ.Status)
	}
	rule, err := repos.RecurringRepo.FindRecurringRuleByID(ctx, occ.RecurringID)
	if err != nil {
		return nil, nil, err
	}
	return occ, rule, nil
}

// transactionFromRule maps a rule's single account onto the references its
// transaction type needs. Transfers need two assets and cannot be posted
// from a rule.
func transactionFromRule(rule domain.RecurringRule, dueDate time.Time) (domain.Transaction, error) {
	txn := domain.Transaction{
		TxnType:      rule.TxnType,
		Amount:       rule.Amount,
		Category:     rule.Category,
		Description:  rule.Description,
		TransactedAt: dueDate,
		RecurringID:  &rule.ID,
	}
	switch rule.TxnType {
	case domain.TxnIncome:
		txn.ToAssetID = rule.AssetID
	case domain.TxnExpense:
		txn.FromAssetID = rule.AssetID
	case domain.TxnLiabilityPayment:
		txn.FromAssetID = rule.AssetID
		txn.LiabilityID = rule.LiabilityID
	default:
		return domain.Transaction{}, apperrors.Validationf("%s rules cannot be posted", rule.TxnType)
	}
	return txn, nil
}

// advanceRule moves the rule past a settled occurrence. Only the newest
// occurrence advances it; an active rule gets its next pending occurrence.
func advanceRule(ctx context.Context, repos portsrepo.RepositoryProvider, rule domain.RecurringRule, settled, now time.Time) error {
	if domain.DateOnly(settled).Before(domain.DateOnly(rule.NextDueDate)) {
		return nil
	}

	next, err := schedule.NextDueDate(rule.Schedule, rule.DayOfMonth, rule.DayOfWeek, settled)
	if err != nil {
		return apperrors.Validationf("%v", err)
	}

	before := mapping.ToRecurringRuleSnapshot(rule)
	rule.NextDueDate = next
	rule.Touch(now)
	if err := repos.RecurringRepo.UpdateRecurringRule(ctx, rule); err != nil {
		return err
	}

	if rule.IsActive {
		if _, err := repos.RecurringRepo.SaveOccurrence(ctx, domain.RecurringOccurrence{
			RecurringID: rule.ID,
			DueDate:     next,
			Status:      domain.OccurrencePending,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
	}

	return recordAudit(ctx, repos, domain.EntityRecurringRule, rule.ID, domain.AuditUpdated,
		before, mapping.ToRecurringRuleSnapshot(rule), now)
}

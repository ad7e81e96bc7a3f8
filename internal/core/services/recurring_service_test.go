package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/stretchr/testify/suite"
)

type RecurringServiceTestSuite struct {
	ledgerSuite
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}

func (s *RecurringServiceTestSuite) rentRule(assetID int64) *domain.RecurringRule {
	rule, err := s.svc.Recurring.CreateRecurringRule(s.ctx, dto.CreateRecurringRuleRequest{
		Name:        "Rent",
		TxnType:     domain.TxnExpense,
		Amount:      dec("1200"),
		Category:    "Housing",
		Schedule:    domain.ScheduleMonthly,
		DayOfMonth:  ptr(5),
		NextDueDate: dto.NewDate(time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)),
		AssetID:     &assetID,
	})
	s.Require().NoError(err)
	return rule
}

func (s *RecurringServiceTestSuite) pending() []domain.OccurrenceDetail {
	occs, err := s.svc.Recurring.ListOccurrences(s.ctx, domain.OccurrencePending)
	s.Require().NoError(err)
	return occs
}

func (s *RecurringServiceTestSuite) TestCreateRule_AddsPendingOccurrence() {
	wallet := s.createAsset("Wallet", "5000", true)
	rule := s.rentRule(wallet.ID)
	s.True(rule.IsActive)

	occs := s.pending()
	s.Require().Len(occs, 1)
	s.Equal(rule.ID, occs[0].RecurringID)
	s.Equal("Rent", occs[0].Name)
	s.True(occs[0].Amount.Equal(dec("1200")))
	s.Equal(rule.NextDueDate, occs[0].DueDate)

	entries := s.history(domain.EntityRecurringRule)
	s.Require().Len(entries, 1)
	s.Equal(domain.AuditCreated, entries[0].Action)
}

func (s *RecurringServiceTestSuite) TestCreateRule_Validation() {
	base := dto.CreateRecurringRuleRequest{
		Name:        "Gym",
		TxnType:     domain.TxnExpense,
		Amount:      dec("30"),
		Category:    "Health",
		Schedule:    domain.ScheduleWeekly,
		NextDueDate: dto.NewDate(fixedNow),
	}

	badDay := base
	badDay.DayOfWeek = ptr(7)
	_, err := s.svc.Recurring.CreateRecurringRule(s.ctx, badDay)
	s.ErrorIs(err, apperrors.ErrValidation)

	badSchedule := base
	badSchedule.Schedule = "yearly"
	_, err = s.svc.Recurring.CreateRecurringRule(s.ctx, badSchedule)
	s.ErrorIs(err, apperrors.ErrValidation)

	missingAsset := base
	missingAsset.AssetID = ptr(int64(77))
	_, err = s.svc.Recurring.CreateRecurringRule(s.ctx, missingAsset)
	s.ErrorIs(err, apperrors.ErrValidation)

	rules, err := s.svc.Recurring.ListRecurringRules(s.ctx)
	s.Require().NoError(err)
	s.Empty(rules)
}

func (s *RecurringServiceTestSuite) TestPostOccurrence() {
	wallet := s.createAsset("Wallet", "5000", true)
	rule := s.rentRule(wallet.ID)
	occ := s.pending()[0]

	posted, txn, err := s.svc.Recurring.PostOccurrence(s.ctx, occ.ID)
	s.Require().NoError(err)
	s.Equal(domain.OccurrencePosted, posted.Status)
	s.Require().NotNil(posted.TransactionID)
	s.Equal(txn.ID, *posted.TransactionID)

	s.Equal(domain.TxnExpense, txn.TxnType)
	s.Equal(wallet.ID, *txn.FromAssetID)
	s.Equal(rule.ID, *txn.RecurringID)
	s.Equal(occ.DueDate, txn.TransactedAt)
	s.assertAssetBalance(wallet.ID, "3800")

	stored, err := s.repos.RecurringRepo.FindRecurringRuleByID(s.ctx, rule.ID)
	s.Require().NoError(err)
	s.Equal(time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC), stored.NextDueDate)

	next := s.pending()
	s.Require().Len(next, 1)
	s.Equal(stored.NextDueDate, next[0].DueDate)

	_, _, err = s.svc.Recurring.PostOccurrence(s.ctx, occ.ID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.assertAssetBalance(wallet.ID, "3800")
}

func (s *RecurringServiceTestSuite) TestSkipOccurrence() {
	wallet := s.createAsset("Wallet", "100", true)
	s.rentRule(wallet.ID)
	occ := s.pending()[0]

	skipped, err := s.svc.Recurring.SkipOccurrence(s.ctx, occ.ID)
	s.Require().NoError(err)
	s.Equal(domain.OccurrenceSkipped, skipped.Status)
	s.Nil(skipped.TransactionID)
	s.assertAssetBalance(wallet.ID, "100")

	_, err = s.svc.Recurring.SkipOccurrence(s.ctx, occ.ID)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Recurring.SkipOccurrence(s.ctx, 9999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RecurringServiceTestSuite) TestTransferRuleCannotBePosted() {
	wallet := s.createAsset("Wallet", "100", true)
	_, err := s.svc.Recurring.CreateRecurringRule(s.ctx, dto.CreateRecurringRuleRequest{
		Name:        "Sweep",
		TxnType:     domain.TxnTransfer,
		Amount:      dec("10"),
		Category:    "Savings",
		Schedule:    domain.ScheduleDaily,
		NextDueDate: dto.NewDate(fixedNow),
		AssetID:     &wallet.ID,
	})
	s.Require().NoError(err)
	occ := s.pending()[0]

	_, _, err = s.svc.Recurring.PostOccurrence(s.ctx, occ.ID)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Len(s.pending(), 1)
	s.assertAssetBalance(wallet.ID, "100")
}

func (s *RecurringServiceTestSuite) TestMonthlyRuleKeepsStartingDayAfterShortMonth() {
	wallet := s.createAsset("Wallet", "1000", true)
	rule, err := s.svc.Recurring.CreateRecurringRule(s.ctx, dto.CreateRecurringRuleRequest{
		Name:        "Phone",
		TxnType:     domain.TxnExpense,
		Amount:      dec("20"),
		Category:    "Bills",
		Schedule:    domain.ScheduleMonthly,
		NextDueDate: dto.NewDate(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.Require().NotNil(rule.DayOfMonth)
	s.Equal(31, *rule.DayOfMonth)

	want := []time.Time{
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	}
	for _, due := range want {
		_, _, err := s.svc.Recurring.PostOccurrence(s.ctx, s.pending()[0].ID)
		s.Require().NoError(err)
		stored, err := s.repos.RecurringRepo.FindRecurringRuleByID(s.ctx, rule.ID)
		s.Require().NoError(err)
		s.Equal(due, stored.NextDueDate)
	}
	s.assertAssetBalance(wallet.ID, "940")
}

func (s *RecurringServiceTestSuite) TestCreateRule_RejectsSubCentAmount() {
	_, err := s.svc.Recurring.CreateRecurringRule(s.ctx, dto.CreateRecurringRuleRequest{
		Name:        "Interest",
		TxnType:     domain.TxnIncome,
		Amount:      dec("0.005"),
		Category:    "Bank",
		Schedule:    domain.ScheduleMonthly,
		NextDueDate: dto.NewDate(fixedNow),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

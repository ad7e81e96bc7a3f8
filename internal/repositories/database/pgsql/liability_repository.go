package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/models"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const liabilityColumns = `id, name, liability_type, balance, credit_limit, due_day, minimum_payment, emi_amount,
	interest_rate, tenure_months_left, notes, created_at, updated_at`

type PgxLiabilityRepository struct {
	BaseRepository
}

func newPgxLiabilityRepository(base BaseRepository) portsrepo.LiabilityRepositoryFacade {
	return &PgxLiabilityRepository{BaseRepository: base}
}

var _ portsrepo.LiabilityRepositoryFacade = (*PgxLiabilityRepository)(nil)

func (r *PgxLiabilityRepository) FindLiabilityByID(ctx context.Context, liabilityID int64) (*domain.Liability, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+liabilityColumns+` FROM finance_liabilities WHERE id = $1`, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liability %d: %w", liabilityID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Liability])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("liability %d", liabilityID)
		}
		return nil, fmt.Errorf("failed to scan liability %d: %w", liabilityID, err)
	}
	l := mapping.ToDomainLiability(m)
	return &l, nil
}

func (r *PgxLiabilityRepository) ListLiabilities(ctx context.Context) ([]domain.Liability, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+liabilityColumns+` FROM finance_liabilities ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query liabilities: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Liability])
	if err != nil {
		return nil, fmt.Errorf("failed to scan liabilities: %w", err)
	}
	return mapping.ToDomainLiabilitySlice(items), nil
}

func (r *PgxLiabilityRepository) SaveLiability(ctx context.Context, liability domain.Liability) (*domain.Liability, error) {
	m := mapping.ToModelLiability(liability)
	query := `
		INSERT INTO finance_liabilities (name, liability_type, balance, credit_limit, due_day, minimum_payment,
			emi_amount, interest_rate, tenure_months_left, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.DB.QueryRow(ctx, query,
		m.Name, m.LiabilityType, m.Balance, m.CreditLimit, m.DueDay, m.MinimumPayment,
		m.EMIAmount, m.InterestRate, m.TenureMonthsLeft, m.Notes, m.CreatedAt,
	).Scan(&liability.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save liability %q: %w", liability.Name, err)
	}
	return &liability, nil
}

func (r *PgxLiabilityRepository) UpdateLiability(ctx context.Context, liability domain.Liability) error {
	m := mapping.ToModelLiability(liability)
	query := `
		UPDATE finance_liabilities
		SET name = $2, liability_type = $3, balance = $4, credit_limit = $5, due_day = $6, minimum_payment = $7,
			emi_amount = $8, interest_rate = $9, tenure_months_left = $10, notes = $11, updated_at = $12
		WHERE id = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ID, m.Name, m.LiabilityType, m.Balance, m.CreditLimit, m.DueDay, m.MinimumPayment,
		m.EMIAmount, m.InterestRate, m.TenureMonthsLeft, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update liability %d: %w", liability.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("liability %d", liability.ID)
	}
	return nil
}

func (r *PgxLiabilityRepository) FindLiabilitiesByIDsForUpdate(ctx context.Context, liabilityIDs []int64) (map[int64]domain.Liability, error) {
	query := `SELECT ` + liabilityColumns + ` FROM finance_liabilities WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	return findForUpdate(ctx, r.DB, query, "liability", liabilityIDs, mapping.ToDomainLiability, func(l domain.Liability) int64 { return l.ID })
}

func (r *PgxLiabilityRepository) AdjustLiabilityBalances(ctx context.Context, changes map[int64]decimal.Decimal, now time.Time) error {
	query := `UPDATE finance_liabilities SET balance = balance + $2, updated_at = $3 WHERE id = $1`
	return adjustBalances(ctx, r.DB, query, "liability", changes, now)
}

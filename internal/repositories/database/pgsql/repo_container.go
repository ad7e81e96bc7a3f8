package pgsql

import (
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository against the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return newProvider(dbPool, nil, false)
}

func newProvider(pool *pgxpool.Pool, tx pgx.Tx, inUnit bool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: pool, DB: pool}
	var uow portsrepo.UnitOfWork = &unitOfWork{BaseRepository: base}
	if inUnit {
		base.DB = tx
		uow = joinedUnit{pool: pool, tx: tx}
	}

	return portsrepo.RepositoryProvider{
		AssetRepo:       newPgxAssetRepository(base),
		LiabilityRepo:   newPgxLiabilityRepository(base),
		TransactionRepo: newPgxTransactionRepository(base),
		AuditRepo:       newPgxAuditRepository(base),
		RecurringRepo:   newPgxRecurringRepository(base),
		BudgetRepo:      newPgxBudgetRepository(base),
		GoalRepo:        newPgxGoalRepository(base),
		ReportingRepo:   newReportingRepository(base),
		TaskRepo:        newPgxTaskRepository(base),
		HabitRepo:       newPgxHabitRepository(base),
		UnitOfWork:      uow,
	}
}

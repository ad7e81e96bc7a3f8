// Package memory provides an in-memory implementation of the repository ports,
// used for local development (STORAGE_DRIVER=memory) and service tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
)

// state is everything the store holds. Values are stored by copy so callers
// can never mutate stored rows through returned structs.
type state struct {
	seq             int64
	assets          map[int64]domain.Asset
	liabilities     map[int64]domain.Liability
	transactions    map[int64]domain.Transaction
	audit           []domain.AuditLogEntry
	rules           map[int64]domain.RecurringRule
	occurrences     map[int64]domain.RecurringOccurrence
	monthlyBudgets  map[int64]domain.MonthlyBudget
	categoryBudgets map[int64]domain.CategoryBudget
	goals           map[int64]domain.Goal
	allocations     map[int64]domain.GoalAllocation
	tasks           map[int64]domain.Task
	taskHistory     []domain.TaskHistory
	habits          map[int64]domain.Habit
}

func newState() *state {
	return &state{
		assets:          make(map[int64]domain.Asset),
		liabilities:     make(map[int64]domain.Liability),
		transactions:    make(map[int64]domain.Transaction),
		rules:           make(map[int64]domain.RecurringRule),
		occurrences:     make(map[int64]domain.RecurringOccurrence),
		monthlyBudgets:  make(map[int64]domain.MonthlyBudget),
		categoryBudgets: make(map[int64]domain.CategoryBudget),
		goals:           make(map[int64]domain.Goal),
		allocations:     make(map[int64]domain.GoalAllocation),
		tasks:           make(map[int64]domain.Task),
		habits:          make(map[int64]domain.Habit),
	}
}

func (s *state) clone() *state {
	return &state{
		seq:             s.seq,
		assets:          maps.Clone(s.assets),
		liabilities:     maps.Clone(s.liabilities),
		transactions:    maps.Clone(s.transactions),
		audit:           slices.Clone(s.audit),
		rules:           maps.Clone(s.rules),
		occurrences:     maps.Clone(s.occurrences),
		monthlyBudgets:  maps.Clone(s.monthlyBudgets),
		categoryBudgets: maps.Clone(s.categoryBudgets),
		goals:           maps.Clone(s.goals),
		allocations:     maps.Clone(s.allocations),
		tasks:           maps.Clone(s.tasks),
		taskHistory:     slices.Clone(s.taskHistory),
		habits:          maps.Clone(s.habits),
	}
}

// nextID hands out ids from a single store-wide sequence, so ids are unique and increasing.
func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store is guarded by an RWMutex. A unit of work holds the write lock for its
// whole duration, which serializes it against every other reader and writer.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{st: newState()}
}

// session binds repository calls to the store. Inside a unit of work the
// caller already holds the write lock, so the session must not lock again.
type session struct {
	store  *Store
	inUnit bool
}

func (x session) read(fn func(st *state)) {
	if !x.inUnit {
		x.store.mu.RLock()
		defer x.store.mu.RUnlock()
	}
	fn(x.store.st)
}

func (x session) write(fn func(st *state) error) error {
	if !x.inUnit {
		x.store.mu.Lock()
		defer x.store.mu.Unlock()
	}
	return fn(x.store.st)
}

// NewRepositoryProvider exposes the store through the repository ports.
func (s *Store) NewRepositoryProvider() portsrepo.RepositoryProvider {
	return s.provider(session{store: s})
}

func (s *Store) provider(x session) portsrepo.RepositoryProvider {
	var uow portsrepo.UnitOfWork = s
	if x.inUnit {
		uow = joinedUnit{x: x}
	}
	return portsrepo.RepositoryProvider{
		AssetRepo:       &assetRepository{x},
		LiabilityRepo:   &liabilityRepository{x},
		TransactionRepo: &transactionRepository{x},
		AuditRepo:       &auditRepository{x},
		RecurringRepo:   &recurringRepository{x},
		BudgetRepo:      &budgetRepository{x},
		GoalRepo:        &goalRepository{x},
		ReportingRepo:   &reportingRepository{x},
		TaskRepo:        &taskRepository{x},
		HabitRepo:       &habitRepository{x},
		UnitOfWork:      uow,
	}
}

// WithinTx runs fn while holding the store's write lock and restores the
// previous state if fn fails or panics.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
		if err != nil {
			s.st = snapshot
		}
	}()

	return fn(ctx, s.provider(session{store: s, inUnit: true}))
}

// joinedUnit runs nested units of work inside the enclosing one.
type joinedUnit struct {
	x session
}

func (j joinedUnit) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	return fn(ctx, j.x.store.provider(j.x))
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

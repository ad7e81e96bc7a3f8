package services

import (
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extra ...ServiceOption) *portssvc.ServiceContainer {
	opts := []ServiceOption{WithDefaultCurrency(cfg.DefaultCurrency)}
	opts = append(opts, extra...)

	return &portssvc.ServiceContainer{
		Asset:       NewAssetService(repos.AssetRepo, repos.UnitOfWork, opts...),
		Liability:   NewLiabilityService(repos.LiabilityRepo, repos.UnitOfWork, opts...),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.UnitOfWork, opts...),
		Recurring:   NewRecurringService(repos.RecurringRepo, repos.UnitOfWork, opts...),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.UnitOfWork, opts...),
		Goal:        NewGoalService(repos.GoalRepo, repos.UnitOfWork, opts...),
		Audit:       NewAuditService(repos.AuditRepo, opts...),
		Reporting:   NewReportingService(repos.ReportingRepo, opts...),
		Task:        NewTaskService(repos.TaskRepo, repos.UnitOfWork, opts...),
		Habit:       NewHabitService(repos.HabitRepo, opts...),
	}
}

package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AssetRepo       AssetRepositoryFacade
	LiabilityRepo   LiabilityRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	AuditRepo       AuditRepositoryFacade
	RecurringRepo   RecurringRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	GoalRepo        GoalRepositoryFacade
	ReportingRepo   ReportingRepository
	TaskRepo        TaskRepositoryFacade
	HabitRepo       HabitRepositoryFacade
	UnitOfWork      UnitOfWork
}

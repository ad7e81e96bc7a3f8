package repositories

import (
	"context"
)

// UnitOfWork runs a group of repository calls as one atomic, isolated unit.
type UnitOfWork interface {
	// WithinTx runs fn with a RepositoryProvider bound to a single transaction.
	// A non-nil error from fn rolls back every write made through that provider.
	// Calling WithinTx on a provider that is already bound joins the outer unit.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos RepositoryProvider) error) error
}

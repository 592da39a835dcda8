package ports

import "context"

// UnitOfWork scopes a function to one database transaction. The transaction
// handle travels through the derived context, so a routine called with an
// already-transactional context joins the caller's transaction instead of
// opening its own.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

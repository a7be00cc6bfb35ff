package uow

import (
	"context"

	"warehouse-backend/internal/domain/inventory"
	"warehouse-backend/internal/domain/journal"
)

type Repos struct {
	Items   inventory.Repository
	Entries journal.Repository
}

// UnitOfWork runs fn with both repositories bound to one store
// transaction; fn returning an error rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the log entry first, then pass it in
	WithinEntryTx(ctx context.Context, entryID uint64, fn func(r Repos, e *journal.Entry) error) error
}

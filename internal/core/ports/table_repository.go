package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/dining"
)

// TableRepository resolves the human-readable table numbers presented by
// ordering clients to internal table entities.
type TableRepository interface {
	// GetActiveByNumber returns the active table carrying the given
	// number, or a not-found error when no active table matches.
	GetActiveByNumber(ctx context.Context, number string) (*dining.Table, error)

	// Add persists a new table. Used by venue administration.
	Add(ctx context.Context, table *dining.Table) error
}

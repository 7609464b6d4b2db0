package store

import "context"

// Collections used by the agent.
const (
	CollectionFoodLogs  = "food_logs"
	CollectionGoals     = "goals"
	CollectionReminders = "reminders"
)

// FieldID is the identifier every stored record carries.
const FieldID = "id"

// Record is a flat document.
type Record map[string]any

// Filters are conjunctive equality conditions on top-level fields.
type Filters map[string]any

// Store is a document store over named collections. Every failure is a *StoreError.
type Store interface {
	// Insert stores rec, assigning an id when it has none, and returns the stored record.
	Insert(ctx context.Context, collection string, rec Record) (Record, error)

	// Query returns the records matching opt.Filters.
	Query(ctx context.Context, collection string, opt QueryOptions) ([]Record, error)

	// Update merges fields into every record matching filters and returns the
	// first updated record. No match is a conflict.
	Update(ctx context.Context, collection string, fields Record, filters Filters) (Record, error)

	// Delete removes the records matching filters and reports whether any existed.
	Delete(ctx context.Context, collection string, filters Filters) (bool, error)

	Close() error
}

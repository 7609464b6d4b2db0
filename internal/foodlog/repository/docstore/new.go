package docstore

import (
	"fmt"

	"fitness-agent/internal/foodlog/repository"
	"fitness-agent/internal/store"
	"fitness-agent/pkg/log"
)

type implRepository struct {
	db store.Store
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a food log repository over the record store.
func New(db store.Store, l log.Logger) repository.Repository {
	if db == nil {
		panic("foodlog/docstore: store is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("foodlog/docstore.%s", method)
}

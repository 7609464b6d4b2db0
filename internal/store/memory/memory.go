package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"fitness-agent/internal/store"
)

type implStore struct {
	mu          sync.RWMutex
	collections map[string][]store.Record
}

// New creates an in-process Store. Records are deep-copied on the way in and out.
func New() store.Store {
	return &implStore{collections: make(map[string][]store.Record)}
}

func (s *implStore) Insert(ctx context.Context, collection string, rec store.Record) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.Unavailable("insert", collection, err)
	}
	cp, err := store.Clone(rec)
	if err != nil {
		return nil, store.Unavailable("insert", collection, err)
	}
	if cp == nil {
		cp = store.Record{}
	}
	if id, _ := cp[store.FieldID].(string); id == "" {
		cp[store.FieldID] = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.collections[collection] {
		if existing[store.FieldID] == cp[store.FieldID] {
			return nil, store.Conflict("insert", collection, store.ErrDuplicateID)
		}
	}
	s.collections[collection] = append(s.collections[collection], cp)

	out, _ := store.Clone(cp)
	return out, nil
}

func (s *implStore) Query(ctx context.Context, collection string, opt store.QueryOptions) ([]store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.Unavailable("query", collection, err)
	}
	if err := checkFields(opt.Filters, opt.OrderBy); err != nil {
		return nil, store.Unavailable("query", collection, err)
	}

	s.mu.RLock()
	var out []store.Record
	for _, rec := range s.collections[collection] {
		if store.Matches(rec, opt.Filters) {
			cp, _ := store.Clone(rec)
			out = append(out, cp)
		}
	}
	s.mu.RUnlock()

	if opt.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i][opt.OrderBy], out[j][opt.OrderBy]
			if opt.Descending {
				return less(b, a)
			}
			return less(a, b)
		})
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (s *implStore) Update(ctx context.Context, collection string, fields store.Record, filters store.Filters) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.Unavailable("update", collection, err)
	}
	if len(filters) == 0 {
		return nil, store.Unavailable("update", collection, store.ErrEmptyFilters)
	}
	if err := checkFields(filters, ""); err != nil {
		return nil, store.Unavailable("update", collection, err)
	}
	patch, err := store.Clone(fields)
	if err != nil {
		return nil, store.Unavailable("update", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var first store.Record
	for i, rec := range s.collections[collection] {
		if !store.Matches(rec, filters) {
			continue
		}
		merged := store.Merge(rec, patch)
		s.collections[collection][i] = merged
		if first == nil {
			first = merged
		}
	}
	if first == nil {
		return nil, store.Conflict("update", collection, store.ErrNoMatch)
	}

	out, _ := store.Clone(first)
	return out, nil
}

func (s *implStore) Delete(ctx context.Context, collection string, filters store.Filters) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, store.Unavailable("delete", collection, err)
	}
	if len(filters) == 0 {
		return false, store.Unavailable("delete", collection, store.ErrEmptyFilters)
	}
	if err := checkFields(filters, ""); err != nil {
		return false, store.Unavailable("delete", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.collections[collection]
	kept := recs[:0]
	for _, rec := range recs {
		if !store.Matches(rec, filters) {
			kept = append(kept, rec)
		}
	}
	deleted := len(kept) != len(recs)
	s.collections[collection] = kept
	return deleted, nil
}

func (s *implStore) Close() error {
	return nil
}

func checkFields(filters store.Filters, orderBy string) error {
	for k := range filters {
		if !store.ValidField(k) {
			return fmt.Errorf("%w: %q", store.ErrInvalidField, k)
		}
	}
	if orderBy != "" && !store.ValidField(orderBy) {
		return fmt.Errorf("%w: %q", store.ErrInvalidField, orderBy)
	}
	return nil
}

// less orders missing values first, then numbers, then strings.
func less(a, b any) bool {
	af, aNum := a.(float64)
	bf, bNum := b.(float64)
	if aNum && bNum {
		return af < bf
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as < bs
	}
	return rank(a) < rank(b)
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case float64:
		return 1
	case string:
		return 2
	}
	return 3
}

package sqlite

import (
	"fmt"
	"sort"
	"strings"

	"fitness-agent/internal/store"
)

// buildWhere builds the WHERE clause + args for a collection and its filters.
// Keys are sorted so the generated SQL is stable.
func buildWhere(collection string, filters store.Filters) (string, []any, error) {
	conditions := []string{"collection = ?"}
	args := []any{collection}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		if !store.ValidField(k) {
			return "", nil, fmt.Errorf("%w: %q", store.ErrInvalidField, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := filters[k]
		if b, ok := v.(bool); ok {
			// json_extract yields 0/1 for booleans.
			if b {
				v = 1
			} else {
				v = 0
			}
		}
		if v == nil {
			conditions = append(conditions, fmt.Sprintf("json_type(data, '$.%s') = 'null'", k))
			continue
		}
		conditions = append(conditions, fmt.Sprintf("json_extract(data, '$.%s') = ?", k))
		args = append(args, v)
	}
	return strings.Join(conditions, " AND "), args, nil
}

// buildQuery builds the full WHERE + ORDER + LIMIT clause for Query.
func buildQuery(collection string, opt store.QueryOptions) (string, []any, error) {
	where, args, err := buildWhere(collection, opt.Filters)
	if err != nil {
		return "", nil, err
	}
	parts := []string{"WHERE " + where}

	if opt.OrderBy != "" {
		if !store.ValidField(opt.OrderBy) {
			return "", nil, fmt.Errorf("%w: %q", store.ErrInvalidField, opt.OrderBy)
		}
		dir := "ASC"
		if opt.Descending {
			dir = "DESC"
		}
		parts = append(parts, fmt.Sprintf("ORDER BY json_extract(data, '$.%s') %s, rowid", opt.OrderBy, dir))
	} else {
		parts = append(parts, "ORDER BY rowid")
	}

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	return strings.Join(parts, " "), args, nil
}

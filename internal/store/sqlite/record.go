package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitness-agent/internal/store"
)

func (s *implStore) Insert(ctx context.Context, collection string, rec store.Record) (store.Record, error) {
	cp, err := store.Clone(rec)
	if err != nil {
		return nil, store.Unavailable("insert", collection, err)
	}
	if cp == nil {
		cp = store.Record{}
	}
	id, _ := cp[store.FieldID].(string)
	if id == "" {
		id = uuid.NewString()
		cp[store.FieldID] = id
	}

	data, err := json.Marshal(cp)
	if err != nil {
		return nil, store.Unavailable("insert", collection, err)
	}

	const query = `INSERT INTO records (id, collection, data, created_at) VALUES (?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, id, collection, string(data), time.Now().UTC().Format(createdAtLayout))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, store.Conflict("insert", collection, store.ErrDuplicateID)
		}
		s.l.Errorf(ctx, "%s: %v", s.dsn("Insert"), err)
		return nil, store.Unavailable("insert", collection, err)
	}
	return cp, nil
}

func (s *implStore) Query(ctx context.Context, collection string, opt store.QueryOptions) ([]store.Record, error) {
	mods, args, err := buildQuery(collection, opt)
	if err != nil {
		return nil, store.Unavailable("query", collection, err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT data FROM records "+mods, args...)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Query"), err)
		return nil, store.Unavailable("query", collection, err)
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, store.Unavailable("query", collection, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Unavailable("query", collection, err)
	}
	return out, nil
}

func (s *implStore) Update(ctx context.Context, collection string, fields store.Record, filters store.Filters) (store.Record, error) {
	if len(filters) == 0 {
		return nil, store.Unavailable("update", collection, store.ErrEmptyFilters)
	}
	where, args, err := buildWhere(collection, filters)
	if err != nil {
		return nil, store.Unavailable("update", collection, err)
	}
	patch, err := store.Clone(fields)
	if err != nil {
		return nil, store.Unavailable("update", collection, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, store.Unavailable("update", collection, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT data FROM records WHERE "+where+" ORDER BY rowid", args...)
	if err != nil {
		s.l.Errorf(ctx, "%s select: %v", s.dsn("Update"), err)
		return nil, store.Unavailable("update", collection, err)
	}
	var matched []store.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			rows.Close()
			return nil, store.Unavailable("update", collection, err)
		}
		matched = append(matched, rec)
	}
	rows.Close()
	if len(matched) == 0 {
		return nil, store.Conflict("update", collection, store.ErrNoMatch)
	}

	const query = `UPDATE records SET data = ? WHERE collection = ? AND id = ?`
	var first store.Record
	for _, rec := range matched {
		merged := store.Merge(rec, patch)
		data, err := json.Marshal(merged)
		if err != nil {
			return nil, store.Unavailable("update", collection, err)
		}
		if _, err := tx.ExecContext(ctx, query, string(data), collection, merged[store.FieldID]); err != nil {
			s.l.Errorf(ctx, "%s: %v", s.dsn("Update"), err)
			return nil, store.Unavailable("update", collection, err)
		}
		if first == nil {
			first = merged
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, store.Unavailable("update", collection, err)
	}
	return first, nil
}

func (s *implStore) Delete(ctx context.Context, collection string, filters store.Filters) (bool, error) {
	if len(filters) == 0 {
		return false, store.Unavailable("delete", collection, store.ErrEmptyFilters)
	}
	where, args, err := buildWhere(collection, filters)
	if err != nil {
		return false, store.Unavailable("delete", collection, err)
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE "+where, args...)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Delete"), err)
		return false, store.Unavailable("delete", collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, store.Unavailable("delete", collection, err)
	}
	return n > 0, nil
}

func scanRecord(rows *sql.Rows) (store.Record, error) {
	var data string
	if err := rows.Scan(&data); err != nil {
		return nil, err
	}
	var rec store.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

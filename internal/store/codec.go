package store

import (
	"encoding/json"
	"fmt"
)

// ToRecord converts a tagged struct into a Record.
func ToRecord(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("store.ToRecord: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("store.ToRecord: %w", err)
	}
	return rec, nil
}

// Decode fills the tagged struct out from rec.
func Decode(rec Record, out any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store.Decode: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("store.Decode: %w", err)
	}
	return nil
}

// Clone deep-copies rec through its JSON form.
func Clone(rec Record) (Record, error) {
	return ToRecord(rec)
}

// Merge returns a copy of base with fields applied on top. The id of base is kept.
func Merge(base, fields Record) Record {
	out := make(Record, len(base)+len(fields))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range fields {
		if k == FieldID {
			continue
		}
		out[k] = v
	}
	return out
}

// Matches reports whether rec satisfies every equality filter.
func Matches(rec Record, filters Filters) bool {
	for k, want := range filters {
		got, ok := rec[k]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

// equal compares a decoded JSON value against a filter value, treating all
// numeric types alike.
func equal(got, want any) bool {
	gf, gok := toFloat(got)
	wf, wok := toFloat(want)
	if gok && wok {
		return gf == wf
	}
	return fmt.Sprint(got) == fmt.Sprint(want) && sameKind(got, want)
}

func sameKind(a, b any) bool {
	switch a.(type) {
	case string:
		_, ok := b.(string)
		return ok
	case bool:
		_, ok := b.(bool)
		return ok
	case nil:
		return b == nil
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

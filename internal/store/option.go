package store

// QueryOptions holds filter, ordering and limit parameters for Query.
type QueryOptions struct {
	Filters    Filters
	OrderBy    string // top-level field; empty keeps insertion order
	Descending bool
	Limit      int // 0 means no limit
}

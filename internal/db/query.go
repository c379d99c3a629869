package db

import "time"

// Query is a provider-agnostic structured search request: a conjunction of
// exact-match and time-range clauses plus pagination and an optional sort.
// The store driver owns the wire serialization.
type Query struct {
	Clauses []Clause
	Offset  int
	Limit   int
	Sort    *Sort
}

// MatchAll reports whether the query has no clauses and matches every document.
func (q *Query) MatchAll() bool { return len(q.Clauses) == 0 }

// Clause is a single predicate targeting one index field. Exactly one of
// Term or Range is set.
type Clause struct {
	Field string
	Term  string
	Range *TimeRange
}

// IsTerm reports whether this is an exact-match clause.
func (c Clause) IsTerm() bool { return c.Range == nil }

// IsRange reports whether this is a time-range clause.
func (c Clause) IsRange() bool { return c.Range != nil }

// TimeRange is a half-open instant window [GTE, LT).
type TimeRange struct {
	GTE time.Time
	LT  time.Time
}

// Sort is a single-field sort directive.
type Sort struct {
	Field string
	Desc  bool
}

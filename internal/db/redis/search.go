package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/ordex/internal/db"
)

// Search runs a structured query via FT.SEARCH with offset/limit pagination
// and an optional single-field sort.
func (s *Store) Search(ctx context.Context, index string, q *db.Query) (*db.SearchResult, error) {
	if index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q == nil {
		return nil, fmt.Errorf("query is required")
	}
	if q.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	args := []string{index, buildQueryString(q)}

	if q.Sort != nil {
		dir := "ASC"
		if q.Sort.Desc {
			dir = "DESC"
		}
		args = append(args, "SORTBY", q.Sort.Field, dir)
	}

	args = append(args,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(q.Limit),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseSearchResult(raw)
}

// Count returns the index-wide document count via FT.SEARCH with LIMIT 0 0.
func (s *Store) Count(ctx context.Context, index string) (int, error) {
	cmd := s.b().Arbitrary("FT.SEARCH").Args(index, "*", "LIMIT", "0", "0").Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return 0, &db.Error{Op: db.OpSearch, Err: err}
	}
	if len(raw) == 0 {
		return 0, nil
	}
	total, err := raw[0].AsInt64()
	if err != nil {
		return 0, fmt.Errorf("parse count: %w", err)
	}
	return int(total), nil
}

// --- Result parsing ---

func parseSearchResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{Total: 0}, nil
	}

	entries := make([]db.SearchEntry, 0, (len(raw)-1)/2)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Query serialization ---

// buildQueryString translates a db.Query clause list into an FT.SEARCH query.
// Clauses are ANDed; an empty clause list matches all documents.
func buildQueryString(q *db.Query) string {
	if q.MatchAll() {
		return "*"
	}

	parts := make([]string, 0, len(q.Clauses))
	for _, c := range q.Clauses {
		if c.IsRange() {
			parts = append(parts, buildRangeFilter(c.Field, c.Range))
			continue
		}
		parts = append(parts, buildTagFilter(c.Field, c.Term))
	}
	return strings.Join(parts, " ")
}

func buildTagFilter(field, value string) string {
	escaped := tagEscaper.Replace(value)
	return fmt.Sprintf("@%s:{%s}", field, escaped)
}

// buildRangeFilter serializes a half-open [GTE, LT) window against a numeric
// epoch-milliseconds field.
func buildRangeFilter(field string, r *db.TimeRange) string {
	return fmt.Sprintf("@%s:[%d (%d]", field, r.GTE.UnixMilli(), r.LT.UnixMilli())
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

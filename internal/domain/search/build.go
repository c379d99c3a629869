package search

import (
	"strings"
	"time"

	"github.com/kailas-cloud/ordex/internal/db"
	"github.com/kailas-cloud/ordex/internal/schema"
)

// DroppedFilter reports a filter that could not be applied and was left out
// of the query. The request proceeds with a looser match; the caller decides
// how loudly to complain.
type DroppedFilter struct {
	Name   string
	Value  string
	Reason string
}

// Build turns the filter set into a structured query. Each present equality
// filter contributes one term clause against its exact-match index attribute;
// the order-date filter contributes a half-open [day, day+1) range on the
// creation timestamp. An unparseable date is dropped, not fatal.
func (f Filters) Build() (db.Query, []DroppedFilter) {
	q := db.Query{
		Offset: (f.page - 1) * f.size,
		Limit:  f.size,
	}

	terms := []struct {
		attr  string
		value string
	}{
		{schema.AttrOrderID, f.orderID},
		{schema.AttrStatus, f.orderStatus},
		{schema.AttrNationalID, f.nationalID},
		{schema.AttrMobile, f.mobile},
		{schema.AttrEmail, f.email},
	}
	for _, t := range terms {
		if t.value == "" {
			continue
		}
		q.Clauses = append(q.Clauses, db.Clause{Field: t.attr, Term: t.value})
	}

	var dropped []DroppedFilter
	if f.orderDate != "" {
		day, err := parseOrderDate(f.orderDate)
		if err != nil {
			dropped = append(dropped, DroppedFilter{
				Name:   "orderDate",
				Value:  f.orderDate,
				Reason: err.Error(),
			})
		} else {
			q.Clauses = append(q.Clauses, db.Clause{
				Field: schema.AttrCreatedAt,
				Range: &db.TimeRange{GTE: day, LT: day.AddDate(0, 0, 1)},
			})
		}
	}

	if f.sortBy != "" {
		attr, _ := schema.SortAttr(f.sortBy)
		q.Sort = &db.Sort{Field: attr, Desc: f.sortDesc}
	}

	return q, dropped
}

// parseOrderDate parses a calendar day, tolerating a full timestamp by
// taking its date part. The day starts at midnight UTC, matching the stored
// timestamp convention.
func parseOrderDate(s string) (time.Time, error) {
	datePart, _, _ := strings.Cut(s, "T")
	return time.ParseInLocation("2006-01-02", datePart, time.UTC)
}

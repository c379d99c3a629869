// Package schema is the single source of truth for the order index contract:
// document key layout, physical index and alias naming, and the field table
// mapping index attributes to JSON paths. Query construction and index
// provisioning both consume this table; per-field knowledge lives nowhere
// else.
package schema

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/ordex/internal/db"
)

// Document and index naming. Physical indices are month-partitioned behind a
// stable read alias, so rollover never touches query clients.
const (
	// KeyPrefix prefixes every order document key.
	KeyPrefix = "orders:"
	// DocumentRoot is the top-level key wrapping the order payload.
	DocumentRoot = "order"
	// SearchAlias is the read alias query clients use.
	SearchAlias = "orders-search"
	// IndexPrefix prefixes month-partitioned physical index names.
	IndexPrefix = "orders-v1"
)

// Index attribute names. TAG and NUMERIC attributes are the unanalyzed,
// exact-match variants; TEXT attributes are analyzed and never used for
// filtering.
const (
	AttrOrderID    = "orderId"
	AttrStatus     = "status"
	AttrNationalID = "nationalId"
	AttrMobile     = "mobile"
	AttrEmail      = "email"
	AttrCreatedAt  = "createdAt"
	AttrUpdatedAt  = "updatedAt"
	AttrFullName   = "fullName"
)

// DocKey returns the document key for an order id.
func DocKey(orderID string) string {
	return KeyPrefix + orderID
}

// IndexName returns the physical index name for the month containing t,
// e.g. orders-v1-2025-08.
func IndexName(t time.Time) string {
	return fmt.Sprintf("%s-%s", IndexPrefix, t.UTC().Format("2006-01"))
}

// OrderIndex builds the FT index definition for a physical order index.
// Timestamps are NUMERIC epoch milliseconds so they range-filter and sort.
func OrderIndex(name string) *db.IndexDefinition {
	return db.NewIndex(name).
		OnJSON().
		Prefix(KeyPrefix).
		TagSortable("$.order.orderId", AttrOrderID).
		TagSortable("$.order.status", AttrStatus).
		TagSortable("$.order.party.nationalId", AttrNationalID).
		TagSortable("$.order.party.contactPoints.mobile", AttrMobile).
		TagSortable("$.order.party.contactPoints.email", AttrEmail).
		NumericSortable("$.order.createdAt", AttrCreatedAt).
		NumericSortable("$.order.updatedAt", AttrUpdatedAt).
		Text("$.order.party.fullName", AttrFullName).
		MustBuild()
}

// SortAttr maps an API sort field to its sortable index attribute.
// Returns false for unknown fields.
func SortAttr(field string) (string, bool) {
	switch field {
	case "createdAt", "orderDate":
		return AttrCreatedAt, true
	case "updatedAt":
		return AttrUpdatedAt, true
	case "orderId":
		return AttrOrderID, true
	case "orderStatus":
		return AttrStatus, true
	case "nationalId":
		return AttrNationalID, true
	case "mobile":
		return AttrMobile, true
	case "email":
		return AttrEmail, true
	}
	return "", false
}

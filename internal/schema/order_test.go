package schema

import (
	"testing"
	"time"

	"github.com/kailas-cloud/ordex/internal/db"
)

func TestDocKey(t *testing.T) {
	if got := DocKey("ORD-1"); got != "orders:ORD-1" {
		t.Errorf("unexpected key: %q", got)
	}
}

func TestIndexName_MonthPartition(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC), "orders-v1-2025-08"},
		{time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), "orders-v1-2025-12"},
		// Local time close to a month boundary resolves in UTC
		{time.Date(2025, 9, 1, 0, 30, 0, 0, time.FixedZone("east", 2*3600)), "orders-v1-2025-08"},
	}
	for _, tc := range tests {
		if got := IndexName(tc.t); got != tc.want {
			t.Errorf("IndexName(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestOrderIndex_Definition(t *testing.T) {
	def := OrderIndex("orders-v1-2025-08")

	if def.Name != "orders-v1-2025-08" {
		t.Errorf("unexpected name: %q", def.Name)
	}
	if def.StorageType != db.StorageJSON {
		t.Errorf("expected JSON storage, got %q", def.StorageType)
	}
	if len(def.Prefixes) != 1 || def.Prefixes[0] != KeyPrefix {
		t.Errorf("unexpected prefixes: %v", def.Prefixes)
	}

	byAlias := make(map[string]db.IndexField, len(def.Fields))
	for _, f := range def.Fields {
		byAlias[f.Alias] = f
	}

	for _, alias := range []string{AttrOrderID, AttrStatus, AttrNationalID, AttrMobile, AttrEmail} {
		f, ok := byAlias[alias]
		if !ok {
			t.Errorf("missing attribute %q", alias)
			continue
		}
		if f.Type != db.IndexFieldTag || !f.Sortable {
			t.Errorf("expected sortable TAG for %q, got %+v", alias, f)
		}
	}

	for _, alias := range []string{AttrCreatedAt, AttrUpdatedAt} {
		f, ok := byAlias[alias]
		if !ok {
			t.Errorf("missing attribute %q", alias)
			continue
		}
		if f.Type != db.IndexFieldNumeric || !f.Sortable {
			t.Errorf("expected sortable NUMERIC for %q, got %+v", alias, f)
		}
	}

	if f, ok := byAlias[AttrFullName]; !ok || f.Type != db.IndexFieldText {
		t.Errorf("expected TEXT fullName attribute, got %+v", f)
	}
}

func TestSortAttr(t *testing.T) {
	tests := []struct {
		field string
		want  string
		ok    bool
	}{
		{"createdAt", AttrCreatedAt, true},
		{"orderDate", AttrCreatedAt, true},
		{"updatedAt", AttrUpdatedAt, true},
		{"orderId", AttrOrderID, true},
		{"orderStatus", AttrStatus, true},
		{"nationalId", AttrNationalID, true},
		{"mobile", AttrMobile, true},
		{"email", AttrEmail, true},
		{"priceSummary", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := SortAttr(tc.field)
		if got != tc.want || ok != tc.ok {
			t.Errorf("SortAttr(%q) = (%q, %v), want (%q, %v)", tc.field, got, ok, tc.want, tc.ok)
		}
	}
}

package db

import (
	"strings"
	"testing"
	"time"
)

func TestIndexBuilder_Build(t *testing.T) {
	def, err := NewIndex("orders-v1-2025-08").
		OnJSON().
		Prefix("orders:").
		TagSortable("$.order.orderId", "orderId").
		NumericSortable("$.order.createdAt", "createdAt").
		Text("$.order.party.fullName", "fullName").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if def.Name != "orders-v1-2025-08" {
		t.Errorf("unexpected name: %q", def.Name)
	}
	if def.StorageType != StorageJSON {
		t.Errorf("expected JSON storage, got %q", def.StorageType)
	}
	if len(def.Prefixes) != 1 || def.Prefixes[0] != "orders:" {
		t.Errorf("unexpected prefixes: %v", def.Prefixes)
	}
	if len(def.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(def.Fields))
	}

	first := def.Fields[0]
	if first.Type != IndexFieldTag || !first.Sortable || first.Alias != "orderId" {
		t.Errorf("unexpected first field: %+v", first)
	}
	second := def.Fields[1]
	if second.Type != IndexFieldNumeric || !second.Sortable {
		t.Errorf("unexpected second field: %+v", second)
	}
	third := def.Fields[2]
	if third.Type != IndexFieldText || third.Sortable {
		t.Errorf("unexpected third field: %+v", third)
	}
}

func TestIndexBuilder_DefaultsToHash(t *testing.T) {
	def, err := NewIndex("idx").Tag("f", "f").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.StorageType != StorageHash {
		t.Errorf("expected HASH storage, got %q", def.StorageType)
	}
}

func TestIndexBuilder_BuildErrors(t *testing.T) {
	if _, err := NewIndex("").Tag("f", "f").Build(); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewIndex("idx").Build(); err == nil {
		t.Error("expected error for no fields")
	}
	if _, err := NewIndex("bad name").Tag("f", "f").Build(); err == nil {
		t.Error("expected error for invalid name")
	}
	if _, err := NewIndex("idx").Tag("a", "f").Tag("b", "f").Build(); err == nil {
		t.Error("expected error for duplicate alias")
	}
}

func TestMustBuild_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewIndex("").MustBuild()
}

func TestIndexDefinition_String(t *testing.T) {
	def := NewIndex("idx").
		OnJSON().
		Prefix("orders:").
		TagSortable("$.order.status", "status").
		MustBuild()

	s := def.String()
	for _, want := range []string{"FT.CREATE", "idx", "ON JSON", "PREFIX orders:", "AS status", "TAG SORTABLE"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in %q", want, s)
		}
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"orders-v1-2025-08", true},
		{"orders:idx_1", true},
		{"", false},
		{"has space", false},
		{"has/slash", false},
	}
	for _, tc := range tests {
		if got := IsValidIdentifier(tc.in); got != tc.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestQuery_MatchAll(t *testing.T) {
	q := &Query{}
	if !q.MatchAll() {
		t.Error("empty query should match all")
	}
	q.Clauses = append(q.Clauses, Clause{Field: "status", Term: "SHIPPED"})
	if q.MatchAll() {
		t.Error("non-empty query should not match all")
	}
}

func TestClause_Kind(t *testing.T) {
	term := Clause{Field: "status", Term: "SHIPPED"}
	if !term.IsTerm() || term.IsRange() {
		t.Error("expected term clause")
	}

	rng := Clause{Field: "createdAt", Range: &TimeRange{GTE: time.Now(), LT: time.Now()}}
	if rng.IsTerm() || !rng.IsRange() {
		t.Error("expected range clause")
	}
}

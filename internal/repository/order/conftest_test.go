package order

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kailas-cloud/ordex/internal/db"
	domorder "github.com/kailas-cloud/ordex/internal/domain/order"
)

// fakeStore is a hand-rolled store double for repository tests.
type fakeStore struct {
	jsonGetFn func(ctx context.Context, key string, paths ...string) ([]byte, error)
	searchFn  func(ctx context.Context, index string, q *db.Query) (*db.SearchResult, error)
	countFn   func(ctx context.Context, index string) (int, error)
}

func (f *fakeStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	return f.jsonGetFn(ctx, key, paths...)
}

func (f *fakeStore) Search(ctx context.Context, index string, q *db.Query) (*db.SearchResult, error) {
	return f.searchFn(ctx, index, q)
}

func (f *fakeStore) Count(ctx context.Context, index string) (int, error) {
	return f.countFn(ctx, index)
}

func validOrder(id string) domorder.Order {
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return domorder.Order{
		OrderID:   id,
		Status:    domorder.StatusShipped,
		CreatedAt: domorder.NewMillis(now),
		UpdatedAt: domorder.NewMillis(now.Add(time.Hour)),
		CustomerAccount: domorder.CustomerAccount{
			AccountID: "ACC-" + id,
			Type:      domorder.CustomerIndividual,
		},
		Party: domorder.Party{
			NationalID: "1234567890",
			FullName:   "Jordan Blake",
		},
	}
}

// docJSON renders the envelope document as stored, optionally array-wrapped
// the way a "$"-path JSON.GET reply is.
func docJSON(t *testing.T, o domorder.Order, wrapped bool) []byte {
	t.Helper()
	env := map[string]domorder.Order{"order": o}
	var v any = env
	if wrapped {
		v = []any{env}
	}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal test doc: %v", err)
	}
	return data
}

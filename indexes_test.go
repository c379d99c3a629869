package ordex

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ordex/internal/db"
	"github.com/kailas-cloud/ordex/internal/schema"
)

func testIndexService(store db.Store) *IndexService {
	return &IndexService{store: store, alias: schema.SearchAlias, logger: zap.NewNop()}
}

func TestIndexEnsure_CreatesAliasWhenMissing(t *testing.T) {
	current := schema.IndexName(time.Now())
	var addedAlias, addedIndex string

	store := &fakeStore{
		existsIxFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
		createFn: func(_ context.Context, def *db.IndexDefinition) error {
			if def.Name != current {
				t.Errorf("unexpected index: %q", def.Name)
			}
			return nil
		},
		aliasTgtFn: func(_ context.Context, _ string) (string, error) {
			return "", db.ErrAliasNotFound
		},
		aliasAddFn: func(_ context.Context, alias, index string) error {
			addedAlias, addedIndex = alias, index
			return nil
		},
	}

	if err := testIndexService(store).Ensure(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addedAlias != schema.SearchAlias || addedIndex != current {
		t.Errorf("alias add = (%q, %q)", addedAlias, addedIndex)
	}
}

func TestIndexEnsure_NeverMovesExistingAlias(t *testing.T) {
	store := &fakeStore{
		existsIxFn: func(_ context.Context, _ string) (bool, error) { return true, nil },
		aliasTgtFn: func(_ context.Context, _ string) (string, error) {
			return "orders-v1-2025-07", nil
		},
		aliasAddFn: func(_ context.Context, _, _ string) error {
			t.Fatal("ensure must not touch an existing alias")
			return nil
		},
	}

	if err := testIndexService(store).Ensure(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIndexRollover_MovesAlias(t *testing.T) {
	current := schema.IndexName(time.Now())
	var movedTo string

	store := &fakeStore{
		existsIxFn: func(_ context.Context, _ string) (bool, error) { return true, nil },
		aliasUpdFn: func(_ context.Context, _, index string) error {
			movedTo = index
			return nil
		},
	}

	if err := testIndexService(store).Rollover(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movedTo != current {
		t.Errorf("alias moved to %q, want %q", movedTo, current)
	}
}

func TestIndexStatus_FiltersForeignIndexes(t *testing.T) {
	store := &fakeStore{
		aliasTgtFn: func(_ context.Context, _ string) (string, error) {
			return "orders-v1-2025-08", nil
		},
		listFn: func(_ context.Context) ([]string, error) {
			return []string{"orders-v1-2025-07", "orders-v1-2025-08", "sessions-idx"}, nil
		},
		countFn: func(_ context.Context, index string) (int, error) {
			if index == "orders-v1-2025-08" {
				return 120, nil
			}
			return 40, nil
		},
	}

	target, statuses, err := testIndexService(store).Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != "orders-v1-2025-08" {
		t.Errorf("unexpected target: %q", target)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 order indexes, got %d", len(statuses))
	}
	if !statuses[1].AliasTarget || statuses[1].Docs != 120 {
		t.Errorf("unexpected status entry: %+v", statuses[1])
	}
	if statuses[0].AliasTarget {
		t.Errorf("old partition must not be marked as target: %+v", statuses[0])
	}
}

func TestIndexStatus_NoAlias(t *testing.T) {
	store := &fakeStore{
		aliasTgtFn: func(_ context.Context, _ string) (string, error) {
			return "", db.ErrAliasNotFound
		},
		listFn: func(_ context.Context) ([]string, error) { return nil, nil },
	}

	target, statuses, err := testIndexService(store).Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != "" || len(statuses) != 0 {
		t.Errorf("expected empty status, got (%q, %+v)", target, statuses)
	}
}

func TestIndexDrop_ProtectsAliasTarget(t *testing.T) {
	store := &fakeStore{
		aliasTgtFn: func(_ context.Context, _ string) (string, error) {
			return "orders-v1-2025-08", nil
		},
		dropFn: func(_ context.Context, _ string) error {
			t.Fatal("alias target must not be dropped without force")
			return nil
		},
	}

	err := testIndexService(store).Drop(context.Background(), "orders-v1-2025-08", false)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestIndexDrop_ForcedAndPlain(t *testing.T) {
	var dropped []string
	store := &fakeStore{
		aliasTgtFn: func(_ context.Context, _ string) (string, error) {
			return "orders-v1-2025-08", nil
		},
		dropFn: func(_ context.Context, name string) error {
			dropped = append(dropped, name)
			return nil
		},
	}
	svc := testIndexService(store)

	if err := svc.Drop(context.Background(), "orders-v1-2025-07", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Drop(context.Background(), "orders-v1-2025-08", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dropped) != 2 {
		t.Errorf("expected 2 drops, got %v", dropped)
	}

	if err := svc.Drop(context.Background(), "", false); err == nil {
		t.Error("expected error for empty index name")
	}
}

func TestIndexDrop_AliasLookupFailure(t *testing.T) {
	store := &fakeStore{
		aliasTgtFn: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("connection reset")
		},
	}

	err := testIndexService(store).Drop(context.Background(), "orders-v1-2025-07", false)
	if err == nil {
		t.Fatal("expected error")
	}
}

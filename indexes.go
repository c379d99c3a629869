package ordex

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ordex/internal/db"
	"github.com/kailas-cloud/ordex/internal/schema"
)

// IndexService manages the month-partitioned physical indexes and the read
// alias that fronts them.
type IndexService struct {
	store  db.Store
	alias  string
	logger *zap.Logger
}

// IndexStatus describes one physical order index.
type IndexStatus struct {
	Name        string
	Docs        int
	AliasTarget bool
}

// Ensure creates the current month index if missing and points the alias at
// it only when no alias exists yet. Safe to run repeatedly.
func (s *IndexService) Ensure(ctx context.Context) error {
	name := schema.IndexName(time.Now())

	if err := s.createIfMissing(ctx, name); err != nil {
		return err
	}

	_, err := s.store.AliasTarget(ctx, s.alias)
	switch {
	case err == nil:
		// Alias exists; ensure never moves it
		return nil
	case errors.Is(err, db.ErrAliasNotFound):
		if err := s.store.AliasAdd(ctx, s.alias, name); err != nil {
			return fmt.Errorf("add alias %s -> %s: %w", s.alias, name, err)
		}
		s.logger.Info("alias created", zap.String("alias", s.alias), zap.String("index", name))
		return nil
	default:
		return fmt.Errorf("resolve alias %s: %w", s.alias, err)
	}
}

// Rollover creates the current month index if missing and moves the alias to
// it. Existing indexes stay searchable under their physical names.
func (s *IndexService) Rollover(ctx context.Context) error {
	name := schema.IndexName(time.Now())

	if err := s.createIfMissing(ctx, name); err != nil {
		return err
	}

	if err := s.store.AliasUpdate(ctx, s.alias, name); err != nil {
		return fmt.Errorf("update alias %s -> %s: %w", s.alias, name, err)
	}
	s.logger.Info("alias moved", zap.String("alias", s.alias), zap.String("index", name))
	return nil
}

func (s *IndexService) createIfMissing(ctx context.Context, name string) error {
	exists, err := s.store.IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check index %s: %w", name, err)
	}
	if exists {
		return nil
	}

	if err := s.store.CreateIndex(ctx, schema.OrderIndex(name)); err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	s.logger.Info("index created", zap.String("index", name))
	return nil
}

// Status returns the alias target ("" when the alias is not set) and every
// order index with its document count.
func (s *IndexService) Status(ctx context.Context) (string, []IndexStatus, error) {
	target, err := s.store.AliasTarget(ctx, s.alias)
	if err != nil && !errors.Is(err, db.ErrAliasNotFound) {
		return "", nil, fmt.Errorf("resolve alias %s: %w", s.alias, err)
	}

	names, err := s.store.ListIndexes(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("list indexes: %w", err)
	}

	var statuses []IndexStatus
	for _, name := range names {
		if !isOrderIndex(name) {
			continue
		}
		n, err := s.store.Count(ctx, name)
		if err != nil {
			return "", nil, fmt.Errorf("count %s: %w", name, err)
		}
		statuses = append(statuses, IndexStatus{
			Name:        name,
			Docs:        n,
			AliasTarget: name == target,
		})
	}
	return target, statuses, nil
}

// Drop removes a physical index. The alias target is protected unless forced.
// Documents are never touched.
func (s *IndexService) Drop(ctx context.Context, name string, force bool) error {
	if name == "" {
		return errors.New("drop: index name is required")
	}

	target, err := s.store.AliasTarget(ctx, s.alias)
	if err != nil && !errors.Is(err, db.ErrAliasNotFound) {
		return fmt.Errorf("resolve alias %s: %w", s.alias, err)
	}
	if name == target && !force {
		return fmt.Errorf("index %s is the alias target; pass force to drop it anyway", name)
	}

	if err := s.store.DropIndex(ctx, name); err != nil {
		return fmt.Errorf("drop index %s: %w", name, err)
	}
	s.logger.Info("index dropped", zap.String("index", name))
	return nil
}

func isOrderIndex(name string) bool {
	return strings.HasPrefix(name, schema.IndexPrefix)
}

// Package order adapts the document store into the order read model: fetch
// by id, structured search with per-hit validation, and index-wide counts.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ordex/internal/db"
	"github.com/kailas-cloud/ordex/internal/domain"
	domorder "github.com/kailas-cloud/ordex/internal/domain/order"
	"github.com/kailas-cloud/ordex/internal/metrics"
	"github.com/kailas-cloud/ordex/internal/schema"
)

// store is the consumer interface for order reads (ISP).
type store interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Search(ctx context.Context, index string, q *db.Query) (*db.SearchResult, error)
	Count(ctx context.Context, index string) (int, error)
}

// Repo implements usecase/order.Repository against an FT index alias.
type Repo struct {
	store  store
	index  string
	logger *zap.Logger
}

// New creates an order repository reading through the given index or alias.
func New(s store, index string, logger *zap.Logger) *Repo {
	return &Repo{store: s, index: index, logger: logger}
}

// GetByID fetches a single order document by its identifier. A missing key
// or an empty order payload yields domain.ErrOrderNotFound.
func (r *Repo) GetByID(ctx context.Context, orderID string) (o domorder.Order, err error) {
	defer trackStore("get")(&err)
	key := schema.DocKey(orderID)

	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			r.logger.Info("order not found", zap.String("order_id", orderID))
			return domorder.Order{}, domain.ErrOrderNotFound
		}
		return domorder.Order{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("decode %s: %w", key, err)
	}
	if doc == nil {
		r.logger.Warn("order payload is empty", zap.String("order_id", orderID))
		return domorder.Order{}, domain.ErrOrderNotFound
	}

	if err := doc.Validate(); err != nil {
		return domorder.Order{}, fmt.Errorf("validate %s: %w", key, err)
	}
	return *doc, nil
}

// Search executes a structured query and maps hits into validated orders.
// Hits that fail validation are dropped from the page and logged with their
// document key; the page shrinks, the request still succeeds.
func (r *Repo) Search(ctx context.Context, q *db.Query) (_ []domorder.Order, _ int, err error) {
	defer trackStore("search")(&err)

	res, err := r.store.Search(ctx, r.index, q)
	if err != nil {
		return nil, 0, fmt.Errorf("search %s: %w", r.index, err)
	}

	orders := make([]domorder.Order, 0, len(res.Entries))
	for _, entry := range res.Entries {
		o, err := decodeHit(entry.Fields)
		if err != nil {
			r.logger.Error("dropping unmappable order hit",
				zap.String("doc_key", entry.Key),
				zap.Error(err),
			)
			metrics.SearchHitsDroppedTotal.Inc()
			continue
		}
		orders = append(orders, o)
	}

	return orders, res.Total, nil
}

// Count returns the index-wide document count.
func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	defer trackStore("count")(&err)

	n, err := r.store.Count(ctx, r.index)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.index, err)
	}
	return n, nil
}

// trackStore times a store operation and counts its outcome.
func trackStore(op string) func(err *error) {
	start := time.Now()
	return func(err *error) {
		metrics.StoreRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		status := "ok"
		if *err != nil {
			status = "error"
		}
		metrics.StoreRequestsTotal.WithLabelValues(op, status).Inc()
	}
}

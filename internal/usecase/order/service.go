// Package order orchestrates order reads: build the query, hit the store,
// shape the page, apply the redaction policy.
package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domorder "github.com/kailas-cloud/ordex/internal/domain/order"
	"github.com/kailas-cloud/ordex/internal/domain/search"
)

// Page is one page of search results. TotalPages is ceil(Total/Size); Total
// comes from the filtered query's own hit count.
type Page struct {
	Total      int
	Page       int
	Size       int
	TotalPages int
	Orders     []domorder.Order
}

// Service is the order access service. Stateless; one store round trip per
// call, no retries, no caching.
type Service struct {
	repo   Repository
	codec  domorder.Codec
	logger *zap.Logger
}

// New creates an order service.
func New(repo Repository, codec domorder.Codec, logger *zap.Logger) *Service {
	return &Service{repo: repo, codec: codec, logger: logger}
}

// GetByID fetches a single order. Absence surfaces as domain.ErrOrderNotFound,
// never as a generic failure. The result is always redacted: a direct fetch
// has no encrypted toggle.
func (s *Service) GetByID(ctx context.Context, orderID string) (domorder.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return domorder.Order{}, err
	}
	return domorder.Redact(o, s.codec), nil
}

// Search runs a filtered, paginated order search. Unusable filters are
// dropped with a warning and the request proceeds with a looser query.
func (s *Service) Search(ctx context.Context, f search.Filters) (Page, error) {
	q, dropped := f.Build()
	for _, d := range dropped {
		s.logger.Warn("dropping unusable search filter",
			zap.String("filter", d.Name),
			zap.String("value", d.Value),
			zap.String("reason", d.Reason),
		)
	}

	orders, total, err := s.repo.Search(ctx, &q)
	if err != nil {
		return Page{}, fmt.Errorf("search orders: %w", err)
	}

	if f.Encrypted() {
		for i := range orders {
			orders[i] = domorder.Redact(orders[i], s.codec)
		}
	}

	size := f.Size()
	return Page{
		Total:      total,
		Page:       f.Page(),
		Size:       size,
		TotalPages: (total + size - 1) / size,
		Orders:     orders,
	}, nil
}

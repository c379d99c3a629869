// Package search models the order search filter set and turns it into the
// provider-agnostic structured query executed by the document store.
package search

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/ordex/internal/domain"
	"github.com/kailas-cloud/ordex/internal/domain/order"
	"github.com/kailas-cloud/ordex/internal/schema"
)

// Pagination limits.
const (
	DefaultPage   = 1
	DefaultSize   = 10
	MaxSize       = 100
	DefaultSortBy = "createdAt"
)

// SortOrder is the requested sort direction.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Params are the raw, unvalidated filter inputs as parsed from a request.
// Empty strings mean "filter absent"; zero Page/Size take defaults.
type Params struct {
	OrderID     string
	OrderStatus string
	NationalID  string
	Mobile      string
	Email       string
	OrderDate   string
	Page        int
	Size        int
	SortBy      string
	SortOrder   string
	Encrypted   *bool
}

// Filters is a validated filter set for one search request.
type Filters struct {
	orderID     string
	orderStatus string
	nationalID  string
	mobile      string
	email       string
	orderDate   string
	page        int
	size        int
	sortBy      string
	sortDesc    bool
	encrypted   bool
}

// Limits are pagination bounds, usually taken from configuration.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// NewFilters validates and normalizes raw filter parameters using the
// built-in pagination limits.
// Defaults: page=1, size=10, sortBy=createdAt, sortOrder=desc, encrypted=true.
func NewFilters(p Params) (Filters, error) {
	return NewFiltersWithLimits(p, Limits{DefaultSize: DefaultSize, MaxSize: MaxSize})
}

// NewFiltersWithLimits validates and normalizes raw filter parameters with
// explicit pagination limits.
func NewFiltersWithLimits(p Params, l Limits) (Filters, error) {
	if l.DefaultSize <= 0 {
		l.DefaultSize = DefaultSize
	}
	if l.MaxSize <= 0 {
		l.MaxSize = MaxSize
	}

	page := p.Page
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return Filters{}, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidFilter, page)
	}

	size := p.Size
	if size == 0 {
		size = l.DefaultSize
	}
	if size < 1 || size > l.MaxSize {
		return Filters{}, fmt.Errorf("%w: size must be between 1 and %d, got %d", domain.ErrInvalidFilter, l.MaxSize, size)
	}

	if p.OrderStatus != "" && !order.Status(p.OrderStatus).IsValid() {
		return Filters{}, fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidFilter, p.OrderStatus)
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if _, ok := schema.SortAttr(sortBy); !ok {
		return Filters{}, fmt.Errorf("%w: unsupported sort field %q", domain.ErrInvalidFilter, sortBy)
	}

	sortDesc := true
	switch SortOrder(strings.ToLower(p.SortOrder)) {
	case SortAsc:
		sortDesc = false
	case SortDesc, "":
	default:
		return Filters{}, fmt.Errorf("%w: sort order must be asc or desc, got %q", domain.ErrInvalidFilter, p.SortOrder)
	}

	encrypted := true
	if p.Encrypted != nil {
		encrypted = *p.Encrypted
	}

	return Filters{
		orderID:     p.OrderID,
		orderStatus: p.OrderStatus,
		nationalID:  p.NationalID,
		mobile:      p.Mobile,
		email:       p.Email,
		orderDate:   p.OrderDate,
		page:        page,
		size:        size,
		sortBy:      sortBy,
		sortDesc:    sortDesc,
		encrypted:   encrypted,
	}, nil
}

// Page returns the requested 1-based page number.
func (f Filters) Page() int { return f.page }

// Size returns the requested page size.
func (f Filters) Size() int { return f.size }

// Encrypted reports whether sensitive fields must be redacted in responses.
func (f Filters) Encrypted() bool { return f.encrypted }

// SortBy returns the requested sort field.
func (f Filters) SortBy() string { return f.sortBy }

// SortDesc reports whether the sort is descending.
func (f Filters) SortDesc() bool { return f.sortDesc }

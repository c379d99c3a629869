package order

import (
	"context"

	"github.com/kailas-cloud/ordex/internal/db"
	domorder "github.com/kailas-cloud/ordex/internal/domain/order"
)

// Repository defines the storage contract for order reads.
type Repository interface {
	GetByID(ctx context.Context, orderID string) (domorder.Order, error)
	Search(ctx context.Context, q *db.Query) ([]domorder.Order, int, error)
}

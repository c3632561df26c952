package repositories

import (
	"context"

	"github.com/tablewise/posterm/internal/models"
)

// The mirror tables hold the latest exported snapshot; Replace swaps the
// whole table contents in one transaction so a reader never sees a half
// written snapshot.

type OrderRepository interface {
	Replace(ctx context.Context, orders []*models.Order) error
	Count(ctx context.Context) (int, error)
}

type ItemRepository interface {
	Replace(ctx context.Context, items []*models.Item) error
	Count(ctx context.Context) (int, error)
}

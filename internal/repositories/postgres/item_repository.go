package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablewise/posterm/internal/models"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Replace(ctx context.Context, items []*models.Item) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pos_items`); err != nil {
		return err
	}

	stmt := `
        INSERT INTO pos_items (
            item_id, order_id, item_name, item_quantity, item_price,
            sides, side_price, modifiers, item_total
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, it := range items {
		_, err = tx.Exec(ctx, stmt,
			it.ItemID,
			it.OrderID,
			it.ItemName,
			it.ItemQuantity,
			it.ItemPrice,
			it.Sides,
			it.SidePrice,
			it.Modifiers,
			it.ItemTotal,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pos_items`).Scan(&count)
	return count, err
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablewise/posterm/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Replace(ctx context.Context, orders []*models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pos_orders`); err != nil {
		return err
	}

	stmt := `
        INSERT INTO pos_orders (
            order_id, table_number, server_name, order_timestamp,
            guest_count, subtotal, tax, total, notes
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, o := range orders {
		_, err = tx.Exec(ctx, stmt,
			o.OrderID,
			o.TableNumber,
			o.ServerName,
			o.OrderTimestamp,
			o.GuestCount,
			o.Subtotal,
			o.Tax,
			o.Total,
			o.Notes,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pos_orders`).Scan(&count)
	return count, err
}

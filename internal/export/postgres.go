package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablewise/posterm/internal/models"
	"github.com/tablewise/posterm/internal/repositories"
	"github.com/tablewise/posterm/internal/repositories/postgres"
)

// PostgresOutput mirrors the snapshot into the pos_orders and pos_items
// tables. Messages are buffered and the tables are replaced transactionally
// on Close, so the mirror always holds one complete snapshot.
type PostgresOutput struct {
	pool   *pgxpool.Pool
	orders repositories.OrderRepository
	items  repositories.ItemRepository

	bufOrders []*models.Order
	bufItems  []*models.Item
}

func NewPostgresOutput(cfg *models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresOutput{
		pool:   pool,
		orders: postgres.NewOrderRepository(pool),
		items:  postgres.NewItemRepository(pool),
	}, nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	switch topic {
	case TopicOrders:
		var o models.Order
		if err := json.Unmarshal(msg, &o); err != nil {
			return err
		}
		p.bufOrders = append(p.bufOrders, &o)
	case TopicItems:
		var it models.Item
		if err := json.Unmarshal(msg, &it); err != nil {
			return err
		}
		p.bufItems = append(p.bufItems, &it)
	default:
		return fmt.Errorf("no mirror table for topic %s", topic)
	}
	return nil
}

func (p *PostgresOutput) Close() error {
	defer p.pool.Close()

	ctx := context.Background()
	if err := p.orders.Replace(ctx, p.bufOrders); err != nil {
		return fmt.Errorf("failed to mirror orders: %w", err)
	}
	if err := p.items.Replace(ctx, p.bufItems); err != nil {
		return fmt.Errorf("failed to mirror items: %w", err)
	}
	return nil
}

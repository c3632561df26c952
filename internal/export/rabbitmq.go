package export

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tablewise/posterm/internal/models"
)

// RabbitMQOutput publishes each exported entity to a durable topic exchange
// under the routing key snapshot.<topic>.
type RabbitMQOutput struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	runID    string
}

func NewRabbitMQOutput(cfg models.RabbitMQConfig, runID string) (*RabbitMQOutput, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQOutput{conn: conn, ch: ch, exchange: cfg.Exchange, runID: runID}, nil
}

func (r *RabbitMQOutput) WriteMessage(topic string, msg []byte) error {
	err := r.ch.PublishWithContext(context.Background(),
		r.exchange, "snapshot."+topic, false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         msg,
			Headers:      amqp.Table{"run_id": r.runID},
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQOutput) Close() error {
	if err := r.ch.Close(); err != nil {
		r.conn.Close()
		return err
	}
	return r.conn.Close()
}

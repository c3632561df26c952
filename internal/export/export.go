// Package export streams a fetched snapshot to a configured destination:
// console, local or S3 files (json, csv, parquet), a Kafka topic, a RabbitMQ
// exchange, or a Postgres mirror.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/tablewise/posterm/internal/models"
)

const (
	TopicOrders = "orders"
	TopicItems  = "items"
)

// Destination receives one JSON message per exported entity.
type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// SnapshotFetcher is the slice of the API client the runner needs.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context) (*models.Snapshot, error)
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, msg)
	return err
}

func (c *ConsoleOutput) Close() error { return nil }

// FromConfig selects the destination the way the config asks for it.
func FromConfig(cfg *models.Config, runID string) (Destination, error) {
	switch cfg.OutputFormat {
	case "", "console":
		return &ConsoleOutput{}, nil
	case "json":
		opener, err := openerFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		return NewJSONOutput(opener), nil
	case "csv":
		opener, err := openerFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		return NewCSVOutput(opener), nil
	case "parquet":
		return NewParquetOutput(cfg)
	case "kafka":
		return NewKafkaOutput(cfg.KafkaBrokerList, runID)
	case "rabbitmq":
		return NewRabbitMQOutput(cfg.RabbitMQ, runID)
	case "postgres":
		return NewPostgresOutput(&cfg.Database)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

// Runner fetches one snapshot and streams every order and item to the
// destination. Each run carries a cuid id so a batch can be traced through
// downstream systems.
type Runner struct {
	client SnapshotFetcher
	dest   Destination
	log    *logrus.Logger
	runID  string
}

func NewRunner(client SnapshotFetcher, dest Destination, log *logrus.Logger, runID string) *Runner {
	if runID == "" {
		runID = cuid.New()
	}
	return &Runner{client: client, dest: dest, log: log, runID: runID}
}

func (r *Runner) RunID() string { return r.runID }

func (r *Runner) Run(ctx context.Context) error {
	r.log.WithField("run_id", r.runID).Info("Fetching snapshot")

	snap, err := r.client.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("fetching snapshot: %w", err)
	}

	bar := progressbar.Default(int64(len(snap.Orders)+len(snap.Items)), "exporting")
	for i := range snap.Orders {
		if err := r.write(TopicOrders, snap.Orders[i]); err != nil {
			return err
		}
		bar.Add(1)
	}
	for i := range snap.Items {
		if err := r.write(TopicItems, snap.Items[i]); err != nil {
			return err
		}
		bar.Add(1)
	}
	bar.Finish()

	r.log.WithFields(logrus.Fields{
		"run_id": r.runID,
		"orders": len(snap.Orders),
		"items":  len(snap.Items),
	}).Info("Snapshot exported")
	return nil
}

func (r *Runner) write(topic string, entity any) error {
	msg, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("encoding %s message: %w", topic, err)
	}
	if err := r.dest.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("writing %s message: %w", topic, err)
	}
	return nil
}

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/tablewise/posterm/internal/cloudwriter"
	"github.com/tablewise/posterm/internal/models"
)

// fileOpener creates the output file for one topic, either on local disk or
// in an object store.
type fileOpener func(topic, ext string) (io.WriteCloser, error)

func localOpener(basePath, folder string) fileOpener {
	return func(topic, ext string) (io.WriteCloser, error) {
		dir := filepath.Join(basePath, folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		return os.Create(filepath.Join(dir, topic+"."+ext))
	}
}

func cloudOpener(factory cloudwriter.CloudWriterFactory, bucket, folder string) fileOpener {
	return func(topic, ext string) (io.WriteCloser, error) {
		return factory.NewWriter(bucket, path.Join(folder, topic+"."+ext))
	}
}

func openerFromConfig(cfg *models.Config) (fileOpener, error) {
	if cfg.OutputDestination == "local" || cfg.OutputDestination == "" {
		return localOpener(cfg.OutputPath, cfg.OutputFolder), nil
	}
	factory, err := cloudFactoryFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return cloudOpener(factory, cfg.CloudStorage.BucketName, cfg.OutputFolder), nil
}

func cloudFactoryFromConfig(cfg *models.Config) (cloudwriter.CloudWriterFactory, error) {
	switch cfg.CloudStorage.Provider {
	case "s3":
		return cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
	}
}

// JSONOutput writes one newline-delimited JSON file per topic.
type JSONOutput struct {
	open  fileOpener
	files map[string]io.WriteCloser
}

func NewJSONOutput(open fileOpener) *JSONOutput {
	return &JSONOutput{
		open:  open,
		files: make(map[string]io.WriteCloser),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		var err error
		file, err = j.open(topic, "json")
		if err != nil {
			return err
		}
		j.files[topic] = file
	}
	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.Write([]byte("\n"))
	return err
}

func (j *JSONOutput) Close() error {
	var lastErr error
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// CSVOutput writes one CSV file per topic with a fixed column set matching
// the wire field names.
type CSVOutput struct {
	open    fileOpener
	files   map[string]io.WriteCloser
	writers map[string]*csv.Writer
}

var csvColumns = map[string][]string{
	TopicOrders: {"orderId", "tableNumber", "serverName", "orderTimestamp", "guestCount", "subtotal", "tax", "total", "notes"},
	TopicItems:  {"itemId", "orderId", "itemName", "itemQuantity", "itemPrice", "sides", "sidePrice", "modifiers", "itemTotal"},
}

func NewCSVOutput(open fileOpener) *CSVOutput {
	return &CSVOutput{
		open:    open,
		files:   make(map[string]io.WriteCloser),
		writers: make(map[string]*csv.Writer),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	columns, ok := csvColumns[topic]
	if !ok {
		return fmt.Errorf("no csv columns defined for topic %s", topic)
	}

	w, ok := c.writers[topic]
	if !ok {
		file, err := c.open(topic, "csv")
		if err != nil {
			return err
		}
		c.files[topic] = file
		w = csv.NewWriter(file)
		c.writers[topic] = w
		if err := w.Write(columns); err != nil {
			return err
		}
	}

	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for i, col := range columns {
		if value, ok := event[col]; ok && value != nil {
			row[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (c *CSVOutput) Close() error {
	var lastErr error
	for topic, w := range c.writers {
		w.Flush()
		if err := w.Error(); err != nil {
			lastErr = err
		}
		if err := c.files[topic].Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

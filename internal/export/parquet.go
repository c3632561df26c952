package export

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/tablewise/posterm/internal/cloudwriter"
	"github.com/tablewise/posterm/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetOutput writes one parquet file per topic, locally or to an object
// store via the cloudwriter factory.
type ParquetOutput struct {
	basePath           string
	folder             string
	writers            map[string]*writer.JSONWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

// fixed schemas matching the wire field names; optional fields are nullable
var parquetSchemas = map[string]string{
	TopicOrders: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=orderId, type=INT64, repetitiontype=REQUIRED"},
		{"Tag":"name=tableNumber, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=REQUIRED"},
		{"Tag":"name=serverName, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=REQUIRED"},
		{"Tag":"name=orderTimestamp, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=guestCount, type=INT64, repetitiontype=REQUIRED"},
		{"Tag":"name=subtotal, type=DOUBLE, repetitiontype=REQUIRED"},
		{"Tag":"name=tax, type=DOUBLE, repetitiontype=REQUIRED"},
		{"Tag":"name=total, type=DOUBLE, repetitiontype=REQUIRED"},
		{"Tag":"name=notes, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"}
	]}`,
	TopicItems: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=itemId, type=INT64, repetitiontype=REQUIRED"},
		{"Tag":"name=orderId, type=INT64, repetitiontype=REQUIRED"},
		{"Tag":"name=itemName, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=REQUIRED"},
		{"Tag":"name=itemQuantity, type=INT64, repetitiontype=REQUIRED"},
		{"Tag":"name=itemPrice, type=DOUBLE, repetitiontype=REQUIRED"},
		{"Tag":"name=sides, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=sidePrice, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=modifiers, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=itemTotal, type=DOUBLE, repetitiontype=REQUIRED"}
	]}`,
}

func NewParquetOutput(cfg *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
		writers:  make(map[string]*writer.JSONWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if cfg.OutputDestination != "local" && cfg.OutputDestination != "" {
		factory, err := cloudFactoryFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		p.cloudWriterFactory = factory
		p.cloudBucketName = cfg.CloudStorage.BucketName
	}

	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	pw, ok := p.writers[topic]
	if !ok {
		var err error
		pw, err = p.createWriter(topic)
		if err != nil {
			return fmt.Errorf("failed to create parquet writer: %w", err)
		}
	}
	if err := pw.Write(string(msg)); err != nil {
		return fmt.Errorf("failed to write %s record: %w", topic, err)
	}
	return nil
}

func (p *ParquetOutput) createWriter(topic string) (*writer.JSONWriter, error) {
	schema, ok := parquetSchemas[topic]
	if !ok {
		return nil, fmt.Errorf("no parquet schema defined for topic %s", topic)
	}

	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := path.Join(p.folder, topic+".parquet")
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = newCloudParquetFile(cw)
	} else {
		dir := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		fw, err = local.NewLocalFileWriter(filepath.Join(dir, topic+".parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewJSONWriter(schema, fw, 4)
	if err != nil {
		return nil, err
	}
	p.writers[topic] = pw
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	var lastErr error
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = err
		}
		if f, ok := p.files[topic]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}

// cloudParquetFile adapts a CloudWriter to the parquet source interface.
// Only sequential writing is supported; parquet reads never happen here.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(b []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(b []byte) (int, error) {
	n, err := c.cloudWriter.Write(b)
	c.offset += int64(n)
	return n, err
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

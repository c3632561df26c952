package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/tablewise/posterm/internal/models"
)

type memDestination struct {
	messages map[string][][]byte
	closed   bool
}

func newMemDestination() *memDestination {
	return &memDestination{messages: make(map[string][][]byte)}
}

func (m *memDestination) WriteMessage(topic string, msg []byte) error {
	cp := make([]byte, len(msg))
	copy(cp, msg)
	m.messages[topic] = append(m.messages[topic], cp)
	return nil
}

func (m *memDestination) Close() error {
	m.closed = true
	return nil
}

type stubFetcher struct {
	snap *models.Snapshot
	err  error
}

func (s *stubFetcher) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	return s.snap, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunnerStreamsEveryEntity(t *testing.T) {
	notes := "patio"
	fetcher := &stubFetcher{snap: &models.Snapshot{
		Orders: []models.Order{
			{OrderID: 1, TableNumber: "5", ServerName: "Amy", GuestCount: 2, Total: 23.5, Notes: &notes},
			{OrderID: 2, TableNumber: "9", ServerName: "Ben", GuestCount: 4, Total: 61},
		},
		Items: []models.Item{
			{ItemID: 1, OrderID: 1, ItemName: "Ramen", ItemQuantity: 1, ItemPrice: 11, ItemTotal: 11},
		},
	}}
	dest := newMemDestination()

	runner := NewRunner(fetcher, dest, quietLogger(), "run_test")
	assert.NoError(t, runner.Run(context.Background()))

	assert.Len(t, dest.messages[TopicOrders], 2)
	assert.Len(t, dest.messages[TopicItems], 1)

	var o models.Order
	assert.NoError(t, json.Unmarshal(dest.messages[TopicOrders][0], &o))
	assert.Equal(t, int64(1), o.OrderID)
	assert.Equal(t, "Amy", o.ServerName)
}

func TestRunnerPropagatesFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("backend down")}
	dest := newMemDestination()

	runner := NewRunner(fetcher, dest, quietLogger(), "run_test")
	err := runner.Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, dest.messages)
}

func TestRunnerGeneratesRunID(t *testing.T) {
	runner := NewRunner(&stubFetcher{snap: &models.Snapshot{}}, newMemDestination(), quietLogger(), "")
	assert.NotEmpty(t, runner.RunID())
}

// memFile lets the file outputs run against in-memory buffers.
type memFile struct {
	bytes.Buffer
	closed bool
}

func (m *memFile) Close() error {
	m.closed = true
	return nil
}

func memOpener(files map[string]*memFile) fileOpener {
	return func(topic, ext string) (io.WriteCloser, error) {
		f := &memFile{}
		files[topic+"."+ext] = f
		return f, nil
	}
}

func TestJSONOutputWritesNewlineDelimited(t *testing.T) {
	files := make(map[string]*memFile)
	out := NewJSONOutput(memOpener(files))

	assert.NoError(t, out.WriteMessage(TopicOrders, []byte(`{"orderId":1}`)))
	assert.NoError(t, out.WriteMessage(TopicOrders, []byte(`{"orderId":2}`)))
	assert.NoError(t, out.Close())

	content := files["orders.json"].String()
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, files["orders.json"].closed)
}

func TestCSVOutputWritesHeaderAndRows(t *testing.T) {
	files := make(map[string]*memFile)
	out := NewCSVOutput(memOpener(files))

	msg, _ := json.Marshal(models.Order{OrderID: 1, TableNumber: "5", ServerName: "Amy", GuestCount: 2, Total: 23.5})
	assert.NoError(t, out.WriteMessage(TopicOrders, msg))
	assert.NoError(t, out.Close())

	lines := strings.Split(strings.TrimRight(files["orders.csv"].String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "orderId,tableNumber,serverName,orderTimestamp,guestCount,subtotal,tax,total,notes", lines[0])
	assert.Contains(t, lines[1], "Amy")
	assert.Contains(t, lines[1], "23.5")
}

func TestCSVOutputRejectsUnknownTopic(t *testing.T) {
	files := make(map[string]*memFile)
	out := NewCSVOutput(memOpener(files))
	assert.Error(t, out.WriteMessage("nope", []byte(`{}`)))
}

func TestConsoleOutputCloseIsNil(t *testing.T) {
	out := &ConsoleOutput{}
	assert.NoError(t, out.Close())
}

func TestFromConfigUnsupportedFormat(t *testing.T) {
	_, err := FromConfig(&models.Config{OutputFormat: "xml"}, "run")
	assert.Error(t, err)
}

func TestFromConfigConsoleDefault(t *testing.T) {
	dest, err := FromConfig(&models.Config{}, "run")
	assert.NoError(t, err)
	assert.IsType(t, &ConsoleOutput{}, dest)
}

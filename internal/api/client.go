package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tablewise/posterm/internal/models"
	"golang.org/x/sync/errgroup"
)

// Client is a thin wrapper around the POS backend's REST endpoints. It does
// not retry: a single failure propagates straight to the caller.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, "list orders", http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, "list items", http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListItemsForOrder fetches every item and filters client-side; the backend
// has no filtered endpoint. O(total items) per call, fine for the small
// datasets a single restaurant produces.
func (c *Client) ListItemsForOrder(ctx context.Context, orderID int64) ([]models.Item, error) {
	all, err := c.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Item, 0, len(all))
	for _, it := range all {
		if it.OrderID == orderID {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

// FetchSnapshot issues the two list calls concurrently and joins them. The
// pair is returned only when both succeed, so a caller can replace its state
// wholesale without risking a half-applied refresh.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := c.ListOrders(ctx)
		if err != nil {
			return err
		}
		snap.Orders = orders
		return nil
	})
	g.Go(func() error {
		items, err := c.ListItems(ctx)
		if err != nil {
			return err
		}
		snap.Items = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, "create order", http.MethodPost, "/orders", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID int64, draft models.OrderDraft) (*models.Order, error) {
	var updated models.Order
	path := fmt.Sprintf("/orders/%d", orderID)
	if err := c.do(ctx, "update order", http.MethodPut, path, draft, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID int64) error {
	path := fmt.Sprintf("/orders/%d", orderID)
	return c.do(ctx, "delete order", http.MethodDelete, path, nil, nil)
}

func (c *Client) CreateItem(ctx context.Context, draft models.ItemDraft) (*models.Item, error) {
	var created models.Item
	if err := c.do(ctx, "create item", http.MethodPost, "/items", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateItem(ctx context.Context, itemID int64, draft models.ItemDraft) (*models.Item, error) {
	var updated models.Item
	path := fmt.Sprintf("/items/%d", itemID)
	if err := c.do(ctx, "update item", http.MethodPut, path, draft, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/items/%d", itemID)
	return c.do(ctx, "delete item", http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	// any non-2xx status is a failure regardless of body content
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &NetworkError{Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

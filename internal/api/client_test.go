package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tablewise/posterm/internal/models"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestListOrders(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Order{{OrderID: 1, ServerName: "Amy"}})
	}))
	defer srv.Close()

	orders, err := client.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "Amy", orders[0].ServerName)
}

func TestListOrdersNonSuccessStatus(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := client.ListOrders(context.Background())
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusInternalServerError, netErr.Status)
}

func TestListOrdersBadBody(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := client.ListOrders(context.Background())
	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestListItemsForOrderFiltersClientSide(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path) // no server-side filter endpoint
		json.NewEncoder(w).Encode([]models.Item{
			{ItemID: 1, OrderID: 1},
			{ItemID: 2, OrderID: 2},
			{ItemID: 3, OrderID: 1},
		})
	}))
	defer srv.Close()

	items, err := client.ListItemsForOrder(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, int64(1), it.OrderID)
	}
}

func TestFetchSnapshotJoinsBothLists(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			json.NewEncoder(w).Encode([]models.Order{{OrderID: 1}})
		case "/items":
			json.NewEncoder(w).Encode([]models.Item{{ItemID: 1}, {ItemID: 2}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	snap, err := client.FetchSnapshot(context.Background())
	assert.NoError(t, err)
	assert.Len(t, snap.Orders, 1)
	assert.Len(t, snap.Items, 2)
}

func TestFetchSnapshotFailsWhenOneFetchFails(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			json.NewEncoder(w).Encode([]models.Order{{OrderID: 1}})
		case "/items":
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	snap, err := client.FetchSnapshot(context.Background())
	assert.Error(t, err)
	assert.Nil(t, snap) // no partial pair ever escapes
}

func TestCreateOrderSendsDraftAndDecodesCreated(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft models.OrderDraft
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "5", draft.TableNumber)
		assert.Equal(t, 0.0, draft.Total)

		json.NewEncoder(w).Encode(models.Order{OrderID: 42, TableNumber: draft.TableNumber})
	}))
	defer srv.Close()

	created, err := client.CreateOrder(context.Background(), models.OrderDraft{TableNumber: "5", ServerName: "Amy", GuestCount: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.OrderID)
}

func TestUpdateItemHitsItemPath(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/items/7", r.URL.Path)
		json.NewEncoder(w).Encode(models.Item{ItemID: 7, ItemName: "Ramen"})
	}))
	defer srv.Close()

	updated, err := client.UpdateItem(context.Background(), 7, models.ItemDraft{ItemName: "Ramen", ItemQuantity: 1, ItemPrice: 11})
	assert.NoError(t, err)
	assert.Equal(t, "Ramen", updated.ItemName)
}

func TestDeleteOrder(t *testing.T) {
	var called bool
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/orders/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, client.DeleteOrder(context.Background(), 3))
	assert.True(t, called)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := client.ListOrders(context.Background())
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
	assert.Zero(t, netErr.Status)
}

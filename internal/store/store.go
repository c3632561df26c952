// Package store holds the in-memory snapshot of orders and items together
// with the active view. The local data is a disposable cache of the remote
// store: it is replaced wholesale on every successful snapshot fetch and
// never merged incrementally.
package store

import "github.com/tablewise/posterm/internal/models"

// Store is single-writer: only the controller mutates it, always from the
// one event-handling goroutine, so no locking is needed.
type Store struct {
	Orders []models.Order
	Items  []models.Item

	// OrderItems are the items fetched for the currently selected order.
	OrderItems []models.Item

	view            models.View
	selectedOrderID *int64
}

func New() *Store {
	return &Store{view: models.ViewLanding}
}

func (s *Store) View() models.View { return s.view }

// SelectedOrderID is set if and only if the current view is orderItems.
func (s *Store) SelectedOrderID() (int64, bool) {
	if s.selectedOrderID == nil {
		return 0, false
	}
	return *s.selectedOrderID, true
}

// ApplySnapshot replaces both collections as a pair. Partial application is
// never allowed; callers must only pass snapshots whose fetch fully succeeded.
func (s *Store) ApplySnapshot(snap *models.Snapshot) {
	s.Orders = snap.Orders
	s.Items = snap.Items
}

// SetView enters any view other than orderItems and clears the selection.
// Entering orderItems goes through SelectOrder so the selection invariant
// cannot be violated.
func (s *Store) SetView(v models.View) {
	if v == models.ViewOrderItems {
		return
	}
	s.view = v
	s.selectedOrderID = nil
	s.OrderItems = nil
}

// SelectOrder enters the orderItems view for the given order. Previously
// fetched items are discarded until the new fetch resolves.
func (s *Store) SelectOrder(orderID int64) {
	s.view = models.ViewOrderItems
	s.selectedOrderID = &orderID
	s.OrderItems = nil
}

func (s *Store) SetOrderItems(items []models.Item) {
	s.OrderItems = items
}

func (s *Store) OrderByID(orderID int64) (*models.Order, bool) {
	for i := range s.Orders {
		if s.Orders[i].OrderID == orderID {
			return &s.Orders[i], true
		}
	}
	return nil, false
}

func (s *Store) ItemByID(itemID int64) (*models.Item, bool) {
	for i := range s.Items {
		if s.Items[i].ItemID == itemID {
			return &s.Items[i], true
		}
	}
	return nil, false
}

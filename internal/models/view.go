package models

// View identifies which of the mutually exclusive console screens is active.
type View string

const (
	ViewLanding    View = "landing"
	ViewOrders     View = "orders"
	ViewOrderItems View = "orderItems"
	ViewAllItems   View = "allItems"
	ViewAddOrder   View = "addOrder"
	ViewAddItem    View = "addItem"
)

// Snapshot is the paired result of a full refresh. The two collections are
// always fetched and applied together.
type Snapshot struct {
	Orders []Order
	Items  []Item
}

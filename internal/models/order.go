package models

import "time"

// Order is a table's billing record as the POS backend stores it. The id is
// assigned server-side; a zero OrderID means the order has not been created yet.
type Order struct {
	OrderID        int64     `json:"orderId"`
	TableNumber    string    `json:"tableNumber"`
	ServerName     string    `json:"serverName"`
	OrderTimestamp time.Time `json:"orderTimestamp"`
	GuestCount     int       `json:"guestCount"`
	Subtotal       float64   `json:"subtotal"`
	Tax            float64   `json:"tax"`
	Total          float64   `json:"total"`
	Notes          *string   `json:"notes"`
}

// OrderDraft is the payload for creating or updating an order. New orders are
// submitted with zero money fields; the backend recalculates them as items
// are added.
type OrderDraft struct {
	TableNumber string  `json:"tableNumber"`
	ServerName  string  `json:"serverName"`
	GuestCount  int     `json:"guestCount"`
	Notes       *string `json:"notes"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// DraftFrom builds an update payload carrying over the money fields the
// client does not edit.
func DraftFrom(o Order) OrderDraft {
	return OrderDraft{
		TableNumber: o.TableNumber,
		ServerName:  o.ServerName,
		GuestCount:  o.GuestCount,
		Notes:       o.Notes,
		Subtotal:    o.Subtotal,
		Tax:         o.Tax,
		Total:       o.Total,
	}
}

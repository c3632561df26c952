package models

// Item is a single line entry belonging to exactly one order.
type Item struct {
	ItemID       int64    `json:"itemId"`
	OrderID      int64    `json:"orderId"`
	ItemName     string   `json:"itemName"`
	ItemQuantity int      `json:"itemQuantity"`
	ItemPrice    float64  `json:"itemPrice"`
	Sides        *string  `json:"sides"`
	SidePrice    *float64 `json:"sidePrice"`
	Modifiers    *string  `json:"modifiers"`
	ItemTotal    float64  `json:"itemTotal"`
}

// ItemDraft is the payload for creating or updating an item.
type ItemDraft struct {
	OrderID      int64    `json:"orderId"`
	ItemName     string   `json:"itemName"`
	ItemQuantity int      `json:"itemQuantity"`
	ItemPrice    float64  `json:"itemPrice"`
	Sides        *string  `json:"sides"`
	SidePrice    *float64 `json:"sidePrice"`
	Modifiers    *string  `json:"modifiers"`
	ItemTotal    float64  `json:"itemTotal"`
}

// RecalculateTotal derives the line total from price, quantity and the
// optional side price. Callers must invoke it before submitting the draft;
// a stale ItemTotal from earlier input is never trusted.
func (d *ItemDraft) RecalculateTotal() {
	side := 0.0
	if d.SidePrice != nil {
		side = *d.SidePrice
	}
	d.ItemTotal = d.ItemPrice*float64(d.ItemQuantity) + side
}

// ItemDraftFrom builds an update payload from an existing item.
func ItemDraftFrom(it Item) ItemDraft {
	return ItemDraft{
		OrderID:      it.OrderID,
		ItemName:     it.ItemName,
		ItemQuantity: it.ItemQuantity,
		ItemPrice:    it.ItemPrice,
		Sides:        it.Sides,
		SidePrice:    it.SidePrice,
		Modifiers:    it.Modifiers,
		ItemTotal:    it.ItemTotal,
	}
}

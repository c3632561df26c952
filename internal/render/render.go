// Package render turns a (view, store) pair into a plain screen description.
// Building a screen is pure and deterministic; how a screen reaches the user
// is left to a Renderer adapter, so the data logic stays testable without a
// terminal attached.
package render

import (
	"fmt"

	"github.com/tablewise/posterm/internal/format"
	"github.com/tablewise/posterm/internal/models"
	"github.com/tablewise/posterm/internal/store"
)

// Screen describes one rendered view. When Cards is empty, Empty carries the
// explicit empty-state message; a view never renders as nothing.
type Screen struct {
	View   models.View
	Title  string
	Detail *Card // selected order header in the orderItems view
	Cards  []Card
	Empty  string
}

type Card struct {
	Header string
	Lines  []string
}

// Renderer is the presentation adapter. Each UI technology implements only
// this surface; the controller never touches the terminal directly.
type Renderer interface {
	Render(s Screen)
	Notify(msg string)
	Error(msg string)
	// Loading shows an in-flight indicator and returns the stop function.
	Loading(label string) func()
}

// Build derives the screen for the store's current view.
func Build(st *store.Store, f *format.Formatter) Screen {
	switch st.View() {
	case models.ViewOrders:
		s := Screen{View: models.ViewOrders, Title: "Orders", Empty: "No orders found."}
		for _, o := range st.Orders {
			s.Cards = append(s.Cards, OrderCard(o, f))
		}
		return s

	case models.ViewOrderItems:
		s := Screen{View: models.ViewOrderItems, Empty: "No items found for this order."}
		if id, ok := st.SelectedOrderID(); ok {
			s.Title = fmt.Sprintf("Order #%d Items", id)
			if o, found := st.OrderByID(id); found {
				card := OrderCard(*o, f)
				s.Detail = &card
			} else {
				s.Detail = &Card{Header: "Order not found"}
			}
		}
		for _, it := range st.OrderItems {
			s.Cards = append(s.Cards, ItemCard(it, f))
		}
		return s

	case models.ViewAllItems:
		s := Screen{View: models.ViewAllItems, Title: "All Items", Empty: "No items found."}
		for _, it := range st.Items {
			s.Cards = append(s.Cards, ItemCard(it, f))
		}
		return s

	case models.ViewAddOrder:
		return Screen{View: models.ViewAddOrder, Title: "New Order"}

	case models.ViewAddItem:
		return Screen{View: models.ViewAddItem, Title: "New Item"}

	default:
		return Screen{View: models.ViewLanding, Title: "POS Console"}
	}
}

// OrderCard renders one order as a summary card.
func OrderCard(o models.Order, f *format.Formatter) Card {
	notes := "None"
	if o.Notes != nil && *o.Notes != "" {
		notes = *o.Notes
	}
	return Card{
		Header: fmt.Sprintf("Order #%d", o.OrderID),
		Lines: []string{
			"Table: " + o.TableNumber,
			"Server: " + o.ServerName,
			fmt.Sprintf("Guests: %d", o.GuestCount),
			"Total: " + f.Currency(o.Total),
			"Notes: " + notes,
		},
	}
}

// ItemCard renders one item as a summary card. Optional fields are omitted
// rather than rendered blank.
func ItemCard(it models.Item, f *format.Formatter) Card {
	lines := []string{
		fmt.Sprintf("Quantity: %d", it.ItemQuantity),
		"Item Price: " + f.Currency(it.ItemPrice),
	}
	if it.Sides != nil && *it.Sides != "" {
		lines = append(lines, "Sides: "+*it.Sides)
	}
	if it.SidePrice != nil {
		lines = append(lines, "Side Price: "+f.Currency(*it.SidePrice))
	}
	lines = append(lines, "Item Total: "+f.Currency(it.ItemTotal))
	if it.Modifiers != nil && *it.Modifiers != "" {
		lines = append(lines, "Modifiers: "+*it.Modifiers)
	}
	return Card{Header: it.ItemName, Lines: lines}
}

// Package controller orchestrates fetch, store update and render transitions
// in response to user actions. Every action runs to completion before the
// next one is accepted, so an in-flight fetch can never resolve against a
// store that has moved on underneath it.
package controller

import (
	"context"
	"fmt"

	"github.com/tablewise/posterm/internal/format"
	"github.com/tablewise/posterm/internal/models"
	"github.com/tablewise/posterm/internal/render"
	"github.com/tablewise/posterm/internal/store"
)

type Controller struct {
	api      API
	store    *store.Store
	renderer render.Renderer
	prompter Prompter
	fmt      *format.Formatter
}

func New(api API, st *store.Store, r render.Renderer, p Prompter, f *format.Formatter) *Controller {
	return &Controller{api: api, store: st, renderer: r, prompter: p, fmt: f}
}

func (c *Controller) render() {
	c.renderer.Render(render.Build(c.store, c.fmt))
}

// ShowLanding returns home unconditionally, discarding any selection.
func (c *Controller) ShowLanding() {
	c.store.SetView(models.ViewLanding)
	c.render()
}

// ShowOrders refreshes the snapshot and enters the orders view. On failure
// the current view is kept: the user is never left looking at a view backed
// by data that was not loaded.
func (c *Controller) ShowOrders(ctx context.Context) {
	if !c.refresh(ctx, "Failed to load orders. Please try again.") {
		return
	}
	c.store.SetView(models.ViewOrders)
	c.render()
}

// ShowAllItems refreshes the snapshot and enters the allItems view.
func (c *Controller) ShowAllItems(ctx context.Context) {
	if !c.refresh(ctx, "Failed to load items. Please try again.") {
		return
	}
	c.store.SetView(models.ViewAllItems)
	c.render()
}

// ShowOrderItems enters the item list of one order. The order header comes
// from the already-loaded store; only the items are fetched. A failed item
// fetch keeps the view with its header and shows an error instead.
func (c *Controller) ShowOrderItems(ctx context.Context, orderID int64) {
	if _, ok := c.store.OrderByID(orderID); !ok {
		c.renderer.Error("Order not found")
		return
	}
	c.store.SelectOrder(orderID)
	c.render()

	stop := c.renderer.Loading("Loading items")
	items, err := c.api.ListItemsForOrder(ctx, orderID)
	stop()
	if err != nil {
		c.renderer.Error("Failed to load items.")
		return
	}
	c.store.SetOrderItems(items)
	c.render()
}

// AddOrder captures a new order draft and submits it. Success lands back on
// the landing view, as the original flow did.
func (c *Controller) AddOrder(ctx context.Context) {
	c.store.SetView(models.ViewAddOrder)
	c.render()

	draft, ok := c.prompter.OrderDraft(nil)
	if !ok {
		c.ShowLanding()
		return
	}
	created, err := c.api.CreateOrder(ctx, draft)
	if err != nil {
		c.renderer.Error("Failed to create order. Please try again.")
		return
	}
	c.renderer.Notify(fmt.Sprintf("Order #%d created successfully!", created.OrderID))
	c.ShowLanding()
}

// AddItem captures a new item draft and submits it. The line total is
// recomputed here, never taken from the captured input.
func (c *Controller) AddItem(ctx context.Context) {
	c.store.SetView(models.ViewAddItem)
	c.render()

	draft, ok := c.prompter.ItemDraft(nil)
	if !ok {
		c.ShowLanding()
		return
	}
	draft.RecalculateTotal()
	created, err := c.api.CreateItem(ctx, draft)
	if err != nil {
		c.renderer.Error("Failed to create item. Please try again.")
		return
	}
	c.renderer.Notify(fmt.Sprintf("Item %q added successfully!", created.ItemName))
	c.ShowLanding()
}

// EditOrder collects new field values for an existing order and updates it.
// Success triggers a full refetch of the orders view; failure leaves the
// stale snapshot displayed and refetches nothing.
func (c *Controller) EditOrder(ctx context.Context, orderID int64) {
	order, ok := c.store.OrderByID(orderID)
	if !ok {
		c.renderer.Error("Order not found")
		return
	}
	draft, ok := c.prompter.OrderDraft(order)
	if !ok {
		return
	}
	if _, err := c.api.UpdateOrder(ctx, orderID, draft); err != nil {
		c.renderer.Error("Failed to update order.")
		return
	}
	c.renderer.Notify("Order updated successfully!")
	c.ShowOrders(ctx)
}

// DeleteOrder asks for confirmation before issuing the delete. Declining is
// a no-op: no request, no state change.
func (c *Controller) DeleteOrder(ctx context.Context, orderID int64) {
	if _, ok := c.store.OrderByID(orderID); !ok {
		c.renderer.Error("Order not found")
		return
	}
	if !c.prompter.Confirm(fmt.Sprintf("Are you sure you want to delete Order #%d?", orderID)) {
		return
	}
	if err := c.api.DeleteOrder(ctx, orderID); err != nil {
		c.renderer.Error("Failed to delete order.")
		return
	}
	c.renderer.Notify("Order deleted successfully!")
	c.ShowOrders(ctx)
}

// EditItem mirrors EditOrder for the allItems view, with the derived total
// recomputed from the captured fields.
func (c *Controller) EditItem(ctx context.Context, itemID int64) {
	item, ok := c.store.ItemByID(itemID)
	if !ok {
		c.renderer.Error("Item not found")
		return
	}
	draft, ok := c.prompter.ItemDraft(item)
	if !ok {
		return
	}
	draft.RecalculateTotal()
	if _, err := c.api.UpdateItem(ctx, itemID, draft); err != nil {
		c.renderer.Error("Failed to update item.")
		return
	}
	c.renderer.Notify("Item updated successfully!")
	c.ShowAllItems(ctx)
}

// DeleteItem mirrors DeleteOrder for the allItems view.
func (c *Controller) DeleteItem(ctx context.Context, itemID int64) {
	item, ok := c.store.ItemByID(itemID)
	if !ok {
		c.renderer.Error("Item not found")
		return
	}
	if !c.prompter.Confirm(fmt.Sprintf("Are you sure you want to delete %q?", item.ItemName)) {
		return
	}
	if err := c.api.DeleteItem(ctx, itemID); err != nil {
		c.renderer.Error("Failed to delete item.")
		return
	}
	c.renderer.Notify("Item deleted successfully!")
	c.ShowAllItems(ctx)
}

func (c *Controller) refresh(ctx context.Context, failureMsg string) bool {
	stop := c.renderer.Loading("Loading")
	snap, err := c.api.FetchSnapshot(ctx)
	stop()
	if err != nil {
		c.renderer.Error(failureMsg)
		return false
	}
	c.store.ApplySnapshot(snap)
	return true
}

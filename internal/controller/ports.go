package controller

import (
	"context"

	"github.com/tablewise/posterm/internal/models"
)

// API is the slice of the REST client the controller depends on.
type API interface {
	FetchSnapshot(ctx context.Context) (*models.Snapshot, error)
	ListItemsForOrder(ctx context.Context, orderID int64) ([]models.Item, error)
	CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, draft models.OrderDraft) (*models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	CreateItem(ctx context.Context, draft models.ItemDraft) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID int64, draft models.ItemDraft) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

// Prompter captures typed drafts from the user. Numeric fields are parsed
// and validated at capture time, so an invalid guest count or price never
// reaches the wire. A false second return means the user abandoned the form.
type Prompter interface {
	OrderDraft(existing *models.Order) (models.OrderDraft, bool)
	ItemDraft(existing *models.Item) (models.ItemDraft, bool)
	Confirm(question string) bool
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablewise/posterm/internal/models"
)

func TestNewStartsAtLanding(t *testing.T) {
	s := New()
	assert.Equal(t, models.ViewLanding, s.View())
	_, selected := s.SelectedOrderID()
	assert.False(t, selected)
}

func TestApplySnapshotReplacesWholesale(t *testing.T) {
	s := New()
	s.Orders = []models.Order{{OrderID: 99}}
	s.Items = []models.Item{{ItemID: 99}}

	s.ApplySnapshot(&models.Snapshot{
		Orders: []models.Order{{OrderID: 1}, {OrderID: 2}},
		Items:  []models.Item{{ItemID: 1}},
	})

	assert.Len(t, s.Orders, 2)
	assert.Len(t, s.Items, 1)
	assert.Equal(t, int64(1), s.Orders[0].OrderID)
}

func TestSelectionInvariant(t *testing.T) {
	s := New()

	// selection is set iff the view is orderItems
	s.SelectOrder(5)
	assert.Equal(t, models.ViewOrderItems, s.View())
	id, selected := s.SelectedOrderID()
	assert.True(t, selected)
	assert.Equal(t, int64(5), id)

	s.SetView(models.ViewOrders)
	assert.Equal(t, models.ViewOrders, s.View())
	_, selected = s.SelectedOrderID()
	assert.False(t, selected)
}

func TestSetViewCannotEnterOrderItems(t *testing.T) {
	s := New()
	s.SetView(models.ViewOrderItems)
	assert.Equal(t, models.ViewLanding, s.View())
}

func TestSelectOrderDiscardsPreviousItems(t *testing.T) {
	s := New()
	s.SelectOrder(1)
	s.SetOrderItems([]models.Item{{ItemID: 10, OrderID: 1}})
	assert.Len(t, s.OrderItems, 1)

	s.SelectOrder(2)
	assert.Nil(t, s.OrderItems)
}

func TestLookups(t *testing.T) {
	s := New()
	s.Orders = []models.Order{{OrderID: 1, ServerName: "Amy"}}
	s.Items = []models.Item{{ItemID: 3, ItemName: "Ramen"}}

	o, ok := s.OrderByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Amy", o.ServerName)

	_, ok = s.OrderByID(42)
	assert.False(t, ok)

	it, ok := s.ItemByID(3)
	assert.True(t, ok)
	assert.Equal(t, "Ramen", it.ItemName)

	_, ok = s.ItemByID(42)
	assert.False(t, ok)
}

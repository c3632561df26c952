package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablewise/posterm/internal/models"
)

func TestOrderDraftCapture(t *testing.T) {
	in := strings.NewReader("5\nAmy\n2\nbirthday\n")
	var out bytes.Buffer
	p := newStdinPrompter(in, &out)

	draft, ok := p.OrderDraft(nil)
	assert.True(t, ok)
	assert.Equal(t, "5", draft.TableNumber)
	assert.Equal(t, "Amy", draft.ServerName)
	assert.Equal(t, 2, draft.GuestCount)
	if assert.NotNil(t, draft.Notes) {
		assert.Equal(t, "birthday", *draft.Notes)
	}
	assert.Equal(t, 0.0, draft.Total)
}

func TestOrderDraftRejectsNonNumericGuestCount(t *testing.T) {
	// "two" is refused and re-asked; an invalid count never reaches the draft
	in := strings.NewReader("5\nAmy\ntwo\n3\n\n")
	var out bytes.Buffer
	p := newStdinPrompter(in, &out)

	draft, ok := p.OrderDraft(nil)
	assert.True(t, ok)
	assert.Equal(t, 3, draft.GuestCount)
	assert.Contains(t, out.String(), "Please enter a whole number.")
}

func TestOrderDraftEditKeepsCurrentOnEmptyInput(t *testing.T) {
	notes := "patio"
	existing := &models.Order{
		TableNumber: "7", ServerName: "Ben", GuestCount: 4,
		Subtotal: 10, Tax: 1, Total: 11, Notes: &notes,
	}
	in := strings.NewReader("\n\n\n\n")
	var out bytes.Buffer
	p := newStdinPrompter(in, &out)

	draft, ok := p.OrderDraft(existing)
	assert.True(t, ok)
	assert.Equal(t, "7", draft.TableNumber)
	assert.Equal(t, "Ben", draft.ServerName)
	assert.Equal(t, 4, draft.GuestCount)
	assert.Equal(t, 11.0, draft.Total) // money fields carried over untouched
	if assert.NotNil(t, draft.Notes) {
		assert.Equal(t, "patio", *draft.Notes)
	}
}

func TestOrderDraftCancelled(t *testing.T) {
	in := strings.NewReader("cancel\n")
	var out bytes.Buffer
	p := newStdinPrompter(in, &out)

	_, ok := p.OrderDraft(nil)
	assert.False(t, ok)
}

func TestItemDraftCapture(t *testing.T) {
	// order id, name, qty, price, sides, side price, modifiers
	in := strings.NewReader("1\nClassic Cheeseburger\n2\n9.5\nFries\n1.5\n\n")
	var out bytes.Buffer
	p := newStdinPrompter(in, &out)

	draft, ok := p.ItemDraft(nil)
	assert.True(t, ok)
	assert.Equal(t, int64(1), draft.OrderID)
	assert.Equal(t, "Classic Cheeseburger", draft.ItemName)
	assert.Equal(t, 2, draft.ItemQuantity)
	assert.Equal(t, 9.5, draft.ItemPrice)
	if assert.NotNil(t, draft.Sides) {
		assert.Equal(t, "Fries", *draft.Sides)
	}
	if assert.NotNil(t, draft.SidePrice) {
		assert.Equal(t, 1.5, *draft.SidePrice)
	}
	assert.Nil(t, draft.Modifiers)
}

func TestItemDraftWithoutSidesSkipsSidePrice(t *testing.T) {
	in := strings.NewReader("1\nRamen\n1\n11\n\n\n")
	var out bytes.Buffer
	p := newStdinPrompter(in, &out)

	draft, ok := p.ItemDraft(nil)
	assert.True(t, ok)
	assert.Nil(t, draft.Sides)
	assert.Nil(t, draft.SidePrice)
}

func TestConfirm(t *testing.T) {
	in := strings.NewReader("y\nn\nmaybe\nyes\n\n")
	var out bytes.Buffer
	p := newStdinPrompter(in, &out)

	assert.True(t, p.Confirm("Delete?"))
	assert.False(t, p.Confirm("Delete?"))
	assert.True(t, p.Confirm("Delete?"))  // "maybe" re-asks, "yes" accepts
	assert.False(t, p.Confirm("Delete?")) // empty defaults to no
}

func TestConfirmEOFIsDecline(t *testing.T) {
	p := newStdinPrompter(strings.NewReader(""), &bytes.Buffer{})
	assert.False(t, p.Confirm("Delete?"))
}

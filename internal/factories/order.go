package factories

import (
	"strconv"

	"github.com/jaswdr/faker"
	"github.com/tablewise/posterm/internal/models"
)

var fake = faker.New()

type OrderFactory struct{}

// CreateOrderDraft generates a plausible new-order submission. Money fields
// stay zero, matching what the client sends; the backend fills them in as
// items arrive.
func (of *OrderFactory) CreateOrderDraft() models.OrderDraft {
	draft := models.OrderDraft{
		TableNumber: strconv.Itoa(fake.IntBetween(1, 30)),
		ServerName:  fake.Person().FirstName(),
		GuestCount:  fake.IntBetween(1, 8),
	}
	if fake.Bool() {
		notes := fake.Lorem().Sentence(4)
		draft.Notes = &notes
	}
	return draft
}

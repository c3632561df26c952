package factories

import (
	"math/rand"

	"github.com/tablewise/posterm/internal/models"
)

type ItemFactory struct{}

// CreateItemDraft generates an item line for the given order, with the
// derived total already computed.
func (itf *ItemFactory) CreateItemDraft(orderID int64) models.ItemDraft {
	draft := models.ItemDraft{
		OrderID:      orderID,
		ItemName:     generateRandomDishName(),
		ItemQuantity: fake.IntBetween(1, 4),
		ItemPrice:    fake.Float64(2, 5, 30),
	}
	if fake.Bool() {
		side := generateRandomSide()
		price := fake.Float64(2, 1, 6)
		draft.Sides = &side
		draft.SidePrice = &price
	}
	if rand.Float64() < 0.3 {
		mod := generateRandomModifier()
		draft.Modifiers = &mod
	}
	draft.RecalculateTotal()
	return draft
}

func generateRandomDishName() string {
	dishes := []string{
		"Classic Cheeseburger", "Veggie Burger", "BBQ Bacon Burger", "Mushroom Swiss Burger",
		"Margherita Pizza", "Pepperoni Pizza", "Spaghetti Carbonara", "Lasagna",
		"Caesar Salad", "Greek Salad", "Cobb Salad",
		"Grilled Chicken", "BBQ Ribs", "Grilled Salmon", "Fish and Chips",
		"Chicken Tikka Masala", "Pad Thai", "Ramen", "Tacos", "Burrito",
	}
	return dishes[rand.Intn(len(dishes))]
}

func generateRandomSide() string {
	sides := []string{"Fries", "Onion Rings", "Side Salad", "Coleslaw", "Garlic Bread", "Mashed Potatoes"}
	return sides[rand.Intn(len(sides))]
}

func generateRandomModifier() string {
	modifiers := []string{"No onions", "Extra cheese", "Gluten free", "Sauce on the side", "Well done", "Spicy"}
	return modifiers[rand.Intn(len(modifiers))]
}

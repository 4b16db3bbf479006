package model

import "time"

const (
	EntityName     = "order"
	MenuEntityName = "menu item"
)

type MenuCategory string

const (
	MenuCategoryStarter  MenuCategory = "Starter"
	MenuCategoryMain     MenuCategory = "Main"
	MenuCategoryDessert  MenuCategory = "Dessert"
	MenuCategoryBeverage MenuCategory = "Beverage"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case MenuCategoryStarter, MenuCategoryMain, MenuCategoryDessert, MenuCategoryBeverage:
		return true
	}

	return false
}

type MenuItem struct {
	ID       int64
	Name     string
	Price    float64
	Category MenuCategory
}

// OrderLine is one cart line. A line never persists with a zero quantity;
// lines driven to zero are removed from the cart.
type OrderLine struct {
	MenuItem MenuItem
	Quantity int
}

// Order is the immutable record produced when the cart is placed. Items is a
// snapshot that does not alias the cart, so later cart edits cannot rewrite
// order history.
type Order struct {
	ID        int64
	GuestName string
	Items     []OrderLine
	Total     float64
	Timestamp time.Time
}

// CartTotal sums price times quantity over the given lines. Zero for an
// empty cart.
func CartTotal(lines []OrderLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.MenuItem.Price * float64(line.Quantity)
	}

	return total
}

package dto

import (
	"orchid/internal/domains/restaurant/model"
	"orchid/shared/constant"
	"orchid/shared/timezone"
)

type AddCartItemRequest struct {
	MenuItemID int64 `json:"menu_item_id" validate:"required"`
}

// UpdateCartItemRequest adjusts a cart line by Delta. The resulting quantity
// is floored at zero and zero-quantity lines are removed.
type UpdateCartItemRequest struct {
	Delta int `json:"delta" validate:"omitempty"`
}

type PlaceOrderRequest struct {
	GuestName string `json:"guest_name" validate:"required,max=100"`
}

type MenuItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func (m *MenuItemResponse) FromModel(model model.MenuItem) {
	m.ID = model.ID
	m.Name = model.Name
	m.Price = model.Price
	m.Category = string(model.Category)
}

type GetMenuResponse struct {
	Items     []MenuItemResponse `json:"items"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuResponse) FromModels(models []model.MenuItem) {
	r.TotalData = len(models)

	r.Items = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type CartLineResponse struct {
	MenuItem MenuItemResponse `json:"menu_item"`
	Quantity int              `json:"quantity"`
}

func (c *CartLineResponse) FromModel(model model.OrderLine) {
	c.MenuItem.FromModel(model.MenuItem)
	c.Quantity = model.Quantity
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total float64            `json:"total"`
}

func (r *CartResponse) FromModels(models []model.OrderLine) {
	r.Total = model.CartTotal(models)

	r.Lines = make([]CartLineResponse, len(models))
	for i, mod := range models {
		r.Lines[i].FromModel(mod)
	}
}

type OrderResponse struct {
	ID        int64              `json:"id"`
	GuestName string             `json:"guest_name"`
	Items     []CartLineResponse `json:"items"`
	Total     float64            `json:"total"`
	Timestamp string             `json:"timestamp"`
}

func (o *OrderResponse) FromModel(m model.Order) {
	o.ID = m.ID
	o.GuestName = m.GuestName
	o.Total = m.Total
	o.Timestamp = timezone.Format(m.Timestamp, constant.DateFormat)

	o.Items = make([]CartLineResponse, len(m.Items))
	for i, line := range m.Items {
		o.Items[i].FromModel(line)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order) {
	r.TotalData = len(models)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}

package restaurant

import (
	"net/http"
	"strconv"

	"orchid/infras/otel"
	"orchid/internal/domains/restaurant/model/dto"
	"orchid/internal/domains/restaurant/service"
	"orchid/shared/constant"
	"orchid/shared/failure"
	"orchid/shared/validator"
	"orchid/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Restaurant
	otel    otel.Otel
}

func New(service service.Restaurant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMenu)
	})

	router.Route("/cart", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCart)
		routerGroup.Post("/items", handler.AddItem)
		routerGroup.Patch("/items/{id}", handler.UpdateQuantity)
	})

	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.PlaceOrder)
		routerGroup.Get("/", handler.GetOrders)
	})
}

// GetMenu returns the restaurant menu.
// @Summary List menu items
// @Description Retrieve the menu, optionally filtered by category.
// @Tags Restaurant
// @Produce json
// @Param category query string false "Filter by category (Starter, Main, Dessert, Beverage)"
// @Success 200 {object} response.Data[dto.GetMenuResponse] "Menu items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu [get]
func (handler *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	category := r.URL.Query().Get(constant.RequestParamCategory)

	menu, err := handler.service.GetMenu(ctx, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, menu)
}

// GetCart returns the pending cart with its running total.
// @Summary Get the pending cart
// @Description Retrieve the in-progress cart lines and running total.
// @Tags Restaurant
// @Produce json
// @Success 200 {object} response.Data[dto.CartResponse] "Pending cart"
// @Failure 500 {object} response.Error
// @Router /v1/cart [get]
func (handler *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	cart, err := handler.service.GetCart(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cart")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cart)
}

// AddItem adds one unit of a menu item to the cart.
// @Summary Add a menu item to the cart
// @Description Add one unit of the menu item; an existing line is incremented instead of duplicated.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.AddCartItemRequest true "Add Cart Item Request"
// @Success 200 {object} response.Data[dto.CartResponse] "Updated cart"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items [post]
func (handler *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	req := dto.AddCartItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cart, err := handler.service.AddItem(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add cart item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cart)
}

// UpdateQuantity adjusts a cart line's quantity by a signed delta.
// @Summary Adjust a cart line quantity
// @Description Add the delta to the line's quantity, floored at zero; a line at zero is removed.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param request body dto.UpdateCartItemRequest true "Update Cart Item Request"
// @Success 200 {object} response.Data[dto.CartResponse] "Updated cart"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items/{id} [patch]
func (handler *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQuantity")
	defer scope.End()

	menuItemID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid menu item id")

		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateCartItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cart, err := handler.service.UpdateQuantity(ctx, menuItemID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cart quantity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cart)
}

// PlaceOrder finalizes the pending cart into an immutable order.
// @Summary Place the pending order
// @Description Snapshot the cart into an order, clear the cart, and append the order to the log.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.PlaceOrderRequest true "Place Order Request"
// @Success 201 {object} response.Data[dto.OrderResponse] "Order placed"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [post]
func (handler *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceOrder")
	defer scope.End()

	req := dto.PlaceOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.PlaceOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to place order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order placed for " + order.GuestName)

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders returns the order history.
// @Summary List all orders
// @Description Retrieve every placed order in insertion order.
// @Tags Restaurant
// @Produce json
// @Success 200 {object} response.Data[dto.GetOrdersResponse] "Order log"
// @Failure 500 {object} response.Error
// @Router /v1/orders [get]
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	orders, err := handler.service.GetOrders(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

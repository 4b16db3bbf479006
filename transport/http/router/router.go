package router

import (
	"orchid/internal/handlers/billing"
	"orchid/internal/handlers/inventory"
	"orchid/internal/handlers/reporting"
	"orchid/internal/handlers/restaurant"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Inventory  inventory.Handler
	Billing    billing.Handler
	Restaurant restaurant.Handler
	Reporting  reporting.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Restaurant.Router(routerGroup)
		r.DomainHandlers.Reporting.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

//go:build wireinject
// +build wireinject

package di

import (
	"orchid/config"
	"orchid/infras/otel"
	"orchid/internal/catalog"
	"orchid/transport/http"
	"orchid/transport/http/middleware"
	"orchid/transport/http/router"

	billingRepository "orchid/internal/domains/billing/repository"
	billingService "orchid/internal/domains/billing/service"
	guestRepository "orchid/internal/domains/guest/repository"
	inventoryRepository "orchid/internal/domains/inventory/repository"
	inventoryService "orchid/internal/domains/inventory/service"
	reportingService "orchid/internal/domains/reporting/service"
	restaurantRepository "orchid/internal/domains/restaurant/repository"
	restaurantService "orchid/internal/domains/restaurant/service"

	billingHandler "orchid/internal/handlers/billing"
	inventoryHandler "orchid/internal/handlers/inventory"
	reportingHandler "orchid/internal/handlers/reporting"
	restaurantHandler "orchid/internal/handlers/restaurant"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var seedData = wire.NewSet(
	catalog.Rooms,
	catalog.Guests,
	catalog.MenuItems,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantService.New,
)

var reportingDomain = wire.NewSet(
	reportingService.New,
)

var domains = wire.NewSet(
	inventoryDomain,
	guestDomain,
	billingDomain,
	restaurantDomain,
	reportingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	inventoryHandler.New,
	billingHandler.New,
	restaurantHandler.New,
	reportingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		seedData,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

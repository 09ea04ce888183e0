//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/hotelapi"
	"hotel/infras/otel"
	"hotel/infras/redis"
	"hotel/internal/domains/pricing"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	bookingRepository "hotel/internal/domains/booking/repository"
	formService "hotel/internal/domains/form/service"
	guestRepository "hotel/internal/domains/guest/repository"
	roomRepository "hotel/internal/domains/room/repository"

	bookingHandler "hotel/internal/handlers/booking"
	formHandler "hotel/internal/handlers/form"
	guestHandler "hotel/internal/handlers/guest"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	hotelapi.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var recordDomain = wire.NewSet(
	guestRepository.New,
	roomRepository.New,
	bookingRepository.New,
)

var formDomain = wire.NewSet(
	pricing.New,
	formService.New,
)

var domains = wire.NewSet(
	recordDomain,
	formDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	formHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

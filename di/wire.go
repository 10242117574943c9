//go:build wireinject
// +build wireinject

package di

import (
	"ehotel/config"
	"ehotel/infras/jwt"
	"ehotel/infras/kafka"
	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/infras/redis"
	"ehotel/infras/s3"
	"ehotel/permissions"
	"ehotel/shared/cache"
	"ehotel/transport/http"
	"ehotel/transport/http/middleware"
	"ehotel/transport/http/router"

	bookingRepository "ehotel/internal/domains/booking/repository"
	bookingService "ehotel/internal/domains/booking/service"
	chainRepository "ehotel/internal/domains/chain/repository"
	chainService "ehotel/internal/domains/chain/service"
	customerRepository "ehotel/internal/domains/customer/repository"
	customerService "ehotel/internal/domains/customer/service"
	employeeRepository "ehotel/internal/domains/employee/repository"
	employeeService "ehotel/internal/domains/employee/service"
	hotelRepository "ehotel/internal/domains/hotel/repository"
	hotelService "ehotel/internal/domains/hotel/service"
	roomRepository "ehotel/internal/domains/room/repository"
	roomService "ehotel/internal/domains/room/service"

	bookingHandler "ehotel/internal/handlers/booking"
	chainHandler "ehotel/internal/handlers/chain"
	customerHandler "ehotel/internal/handlers/customer"
	employeeHandler "ehotel/internal/handlers/employee"
	hotelHandler "ehotel/internal/handlers/hotel"
	roomHandler "ehotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var chainDomain = wire.NewSet(
	chainRepository.New,
	chainService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	chainDomain,
	hotelDomain,
	roomDomain,
	employeeDomain,
	customerDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	chainHandler.New,
	hotelHandler.New,
	roomHandler.New,
	employeeHandler.New,
	customerHandler.New,
	bookingHandler.New,
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

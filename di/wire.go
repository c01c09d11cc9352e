//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tourism/config"
	"tourism/infras/jwt"
	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/infras/redis"
	"tourism/infras/s3"
	agencyRepository "tourism/internal/domains/agency/repository"
	agencyService "tourism/internal/domains/agency/service"
	authService "tourism/internal/domains/auth/service"
	commentRepository "tourism/internal/domains/comment/repository"
	commentService "tourism/internal/domains/comment/service"
	hotelRepository "tourism/internal/domains/hotel/repository"
	hotelService "tourism/internal/domains/hotel/service"
	placeRepository "tourism/internal/domains/place/repository"
	placeService "tourism/internal/domains/place/service"
	"tourism/internal/domains/reservation/linker"
	reservationRepository "tourism/internal/domains/reservation/repository"
	reservationService "tourism/internal/domains/reservation/service"
	tourRepository "tourism/internal/domains/tour/repository"
	tourService "tourism/internal/domains/tour/service"
	userRepository "tourism/internal/domains/user/repository"
	userService "tourism/internal/domains/user/service"
	agencyHandler "tourism/internal/handlers/agency"
	authHandler "tourism/internal/handlers/auth"
	commentHandler "tourism/internal/handlers/comment"
	hotelHandler "tourism/internal/handlers/hotel"
	placeHandler "tourism/internal/handlers/place"
	reservationHandler "tourism/internal/handlers/reservation"
	tourHandler "tourism/internal/handlers/tour"
	userHandler "tourism/internal/handlers/user"
	"tourism/permissions"
	"tourism/shared/cache"
	"tourism/transport/http"
	"tourism/transport/http/middleware"
	"tourism/transport/http/router"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	linker.New,
	reservationService.New,
)

var bookingDomains = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
	tourRepository.New,
	tourService.New,
	agencyRepository.New,
	agencyService.New,
)

var commentDomain = wire.NewSet(
	commentRepository.New,
	commentService.New,
)

var placeDomain = wire.NewSet(
	placeRepository.New,
	placeRepository.NewLocations,
	placeService.New,
)

var domains = wire.NewSet(
	userDomain,
	reservationDomain,
	bookingDomains,
	commentDomain,
	placeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	commentHandler.New,
	reservationHandler.New,
	hotelHandler.New,
	tourHandler.New,
	agencyHandler.New,
	placeHandler.New,
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

//go:build wireinject
// +build wireinject

package di

import (
	"indivoyage/config"
	"indivoyage/infras/otel"
	"indivoyage/infras/redis"
	"indivoyage/navigation"
	"indivoyage/shared/cache"
	"indivoyage/shared/money"
	"indivoyage/transport/http"
	"indivoyage/transport/http/middleware"
	"indivoyage/transport/http/router"

	bookingRepository "indivoyage/internal/domains/booking/repository"
	bookingService "indivoyage/internal/domains/booking/service"
	destinationRepository "indivoyage/internal/domains/destination/repository"
	destinationService "indivoyage/internal/domains/destination/service"
	estimateService "indivoyage/internal/domains/estimate/service"
	homeRepository "indivoyage/internal/domains/home/repository"
	homeService "indivoyage/internal/domains/home/service"
	itineraryRepository "indivoyage/internal/domains/itinerary/repository"
	itineraryService "indivoyage/internal/domains/itinerary/service"
	offerRepository "indivoyage/internal/domains/offer/repository"
	offerService "indivoyage/internal/domains/offer/service"
	profileRepository "indivoyage/internal/domains/profile/repository"
	profileService "indivoyage/internal/domains/profile/service"

	bookingHandler "indivoyage/internal/handlers/booking"
	calculatorHandler "indivoyage/internal/handlers/calculator"
	destinationHandler "indivoyage/internal/handlers/destination"
	homeHandler "indivoyage/internal/handlers/home"
	layoutHandler "indivoyage/internal/handlers/layout"
	offerHandler "indivoyage/internal/handlers/offer"
	profileHandler "indivoyage/internal/handlers/profile"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	money.NewFromConfig,
	navigation.Get,
)

var itineraryDomain = wire.NewSet(
	itineraryRepository.New,
	itineraryService.New,
)

var offerDomain = wire.NewSet(
	offerRepository.New,
	offerService.New,
)

var destinationDomain = wire.NewSet(
	destinationRepository.New,
	destinationRepository.NewDetail,
	destinationService.New,
)

var estimateDomain = wire.NewSet(
	estimateService.New,
)

var homeDomain = wire.NewSet(
	homeRepository.New,
	homeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	profileService.New,
)

var domains = wire.NewSet(
	itineraryDomain,
	offerDomain,
	destinationDomain,
	estimateDomain,
	homeDomain,
	bookingDomain,
	profileDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	homeHandler.New,
	calculatorHandler.New,
	offerHandler.New,
	destinationHandler.New,
	bookingHandler.New,
	profileHandler.New,
	layoutHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

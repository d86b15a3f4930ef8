package router

import (
	"indivoyage/internal/handlers/booking"
	"indivoyage/internal/handlers/calculator"
	"indivoyage/internal/handlers/destination"
	"indivoyage/internal/handlers/home"
	"indivoyage/internal/handlers/layout"
	"indivoyage/internal/handlers/offer"
	"indivoyage/internal/handlers/profile"
	"indivoyage/transport/http/middleware"
	"indivoyage/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Home        home.Handler
	Calculator  calculator.Handler
	Offer       offer.Handler
	Destination destination.Handler
	Booking     booking.Handler
	Profile     profile.Handler
	Layout      layout.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestID,
		r.Middleware.Tracing,
		r.Middleware.Logger,
		r.Middleware.CORS(),
		r.Middleware.RateLimit(),
	)

	r.DomainHandlers.Home.Router(router)
	r.DomainHandlers.Calculator.Router(router)
	r.DomainHandlers.Offer.Router(router)
	r.DomainHandlers.Destination.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Profile.Router(router)
	r.DomainHandlers.Layout.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}

package home

import (
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/home/service"
	"indivoyage/shared/constant"
	"indivoyage/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Home
	otel    otel.Otel
}

func New(service service.Home, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetHome)
}

// GetHome returns the landing page content.
// @Summary Get home page
// @Description Carousel slides, popular destinations, the highlighted offer and suggested itineraries.
// @Tags Home
// @Produce json
// @Success 200 {object} response.Data[dto.HomeResponse] "Home page content"
// @Failure 500 {object} response.Error
// @Router / [get]
func (handler *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHome")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get home content")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Home content retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

package destination

import (
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/destination/model/dto"
	"indivoyage/internal/domains/destination/service"
	"indivoyage/shared/constant"
	gDto "indivoyage/shared/dto"
	"indivoyage/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/explore-destinations", handler.GetDestinations)
	router.Get("/destination-detail", handler.GetDetail)
}

// GetDestinations lists destinations.
// @Summary Explore destinations
// @Description One page of destinations filtered by region, interest and a search term over name and tagline.
// @Tags Destination
// @Produce json
// @Param search query string false "Search term"
// @Param region query string false "Region"
// @Param interest query string false "Comma separated interests, any may match"
// @Param page query integer false "Page number, starting at 1"
// @Success 200 {object} response.Data[dto.GetDestinationsResponse] "Page of destinations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /explore-destinations [get]
func (handler *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r, true); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid destination query")

		response.WithError(w, err)

		return
	}

	destinations, err := handler.service.GetAll(ctx, queryParams, dto.BuildFilter(queryParams))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Destinations retrieved successfully")

	response.WithJSON(w, http.StatusOK, destinations)
}

// GetDetail returns a destination detail page.
// @Summary Get destination detail
// @Description Detail record by id or by the itinerary that links to it. Without either the featured destination is returned.
// @Tags Destination
// @Produce json
// @Param id query string false "Destination id"
// @Param itineraryId query string false "Itinerary id"
// @Success 200 {object} response.Data[dto.DetailResponse] "Destination detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /destination-detail [get]
func (handler *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDetail")
	defer scope.End()

	id := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamID))
	itineraryID := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamItineraryID))

	detail, err := handler.service.GetDetail(ctx, id, itineraryID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("itineraryId", itineraryID).Msg("failed to get destination detail")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Destination detail retrieved successfully")

	response.WithJSON(w, http.StatusOK, detail)
}

package offer

import (
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/offer/model/dto"
	"indivoyage/internal/domains/offer/service"
	"indivoyage/shared/constant"
	gDto "indivoyage/shared/dto"
	"indivoyage/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/exclusive-offers", handler.GetOffers)
}

// GetOffers lists exclusive offers.
// @Summary Get exclusive offers
// @Description One page of offers filtered by category and a search term over title, description and tags.
// @Tags Offer
// @Produce json
// @Param search query string false "Search term"
// @Param category query string false "Category" Enums(all, cultural, nature, beaches, adventure)
// @Param page query integer false "Page number, starting at 1"
// @Success 200 {object} response.Data[dto.GetOffersResponse] "Page of offers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /exclusive-offers [get]
func (handler *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r, true); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid offer query")

		response.WithError(w, err)

		return
	}

	offers, err := handler.service.GetAll(ctx, queryParams, dto.BuildFilter(queryParams))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offers retrieved successfully")

	response.WithJSON(w, http.StatusOK, offers)
}

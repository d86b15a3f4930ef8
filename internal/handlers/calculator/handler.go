package calculator

import (
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/estimate/model/dto"
	"indivoyage/internal/domains/estimate/service"
	"indivoyage/shared/constant"
	"indivoyage/shared/validator"
	"indivoyage/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Estimate
	otel    otel.Otel
}

func New(service service.Estimate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trip-calculator", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCalculator)
		routerGroup.Get("/estimate", handler.GetEstimate)
		routerGroup.Post("/estimate", handler.PostEstimate)
	})
}

// GetCalculator returns the calculator form.
// @Summary Get trip calculator
// @Description Tier options, default selections with their estimate, and suggested itineraries.
// @Tags Calculator
// @Produce json
// @Success 200 {object} response.Data[dto.CalculatorResponse] "Calculator form"
// @Failure 500 {object} response.Error
// @Router /trip-calculator [get]
func (handler *Handler) GetCalculator(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalculator")
	defer scope.End()

	res, err := handler.service.Calculator(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calculator")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calculator retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetEstimate estimates a trip from query parameters.
// @Summary Estimate trip cost
// @Description Total trip cost in rupees with a per-day breakdown. Unknown tiers estimate to zero.
// @Tags Calculator
// @Produce json
// @Param days query integer false "Trip length in days (clamped to 1..30)"
// @Param meal query string false "Meal tier" Enums(breakfast_only, half_board, full_board)
// @Param transport query string false "Transport tier" Enums(economy, comfort, luxury)
// @Param accommodation query string false "Accommodation tier" Enums(budget, mid_range, luxury)
// @Success 200 {object} response.Data[dto.EstimateResponse] "Trip estimate"
// @Failure 400 {object} response.Error
// @Router /trip-calculator/estimate [get]
func (handler *Handler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEstimate")
	defer scope.End()

	req := dto.EstimateRequest{}
	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid estimate query")

		response.WithError(w, err)

		return
	}

	res := handler.service.Estimate(ctx, req)

	scope.AddEvent("Estimate calculated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// PostEstimate estimates a trip from a JSON body.
// @Summary Estimate trip cost
// @Description Same as the query form, with the configuration sent as JSON.
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.EstimateRequest true "Trip configuration"
// @Success 200 {object} response.Data[dto.EstimateResponse] "Trip estimate"
// @Failure 400 {object} response.Error
// @Router /trip-calculator/estimate [post]
func (handler *Handler) PostEstimate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostEstimate")
	defer scope.End()

	req := dto.EstimateRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode estimate request")

		response.WithError(w, err)

		return
	}

	res := handler.service.Estimate(ctx, req)

	scope.AddEvent("Estimate calculated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

package booking

import (
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/booking/model/dto"
	"indivoyage/internal/domains/booking/service"
	"indivoyage/shared/constant"
	"indivoyage/shared/logger"
	"indivoyage/shared/validator"
	"indivoyage/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetForm)

		routerGroup.Route("/sessions", func(sessions chi.Router) {
			sessions.Post("/", handler.StartSession)
			sessions.Get("/{id}", handler.GetSession)
			sessions.Delete("/{id}", handler.AbandonSession)
			sessions.Put("/{id}/personal", handler.SubmitPersonal)
			sessions.Put("/{id}/trip", handler.SubmitTrip)
			sessions.Put("/{id}/payment", handler.SubmitPayment)
			sessions.Post("/{id}/back", handler.Back)
			sessions.Get("/{id}/receipt", handler.GetReceipt)
		})
	})
}

// GetForm returns the booking form definition.
// @Summary Get booking form
// @Description Step labels, option lists and pre-fill values taken from an offer or the calculator's destination.
// @Tags Booking
// @Produce json
// @Param offerId query string false "Offer id or slug to pre-fill from"
// @Param destination query string false "Destination to pre-fill"
// @Success 200 {object} response.Data[dto.FormResponse] "Booking form"
// @Failure 404 {object} response.Error
// @Router /booking [get]
func (handler *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForm")
	defer scope.End()

	offerID := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamOfferID))
	destination := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamDestination))

	res, err := handler.service.Form(ctx, offerID, destination)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("offerId", offerID).Msg("failed to build booking form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking form retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// StartSession opens a booking session at the first step.
// @Summary Start booking
// @Description Opens a session at the personal information step. The body is optional.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.StartRequest false "Pre-fill values"
// @Success 201 {object} response.Data[dto.SessionResponse] "New session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /booking/sessions [post]
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	req := dto.StartRequest{}
	if r.ContentLength != 0 {
		if err := validator.Decode(r.Body, &req); err != nil {
			scope.TraceError(err)
			logger.FromContext(ctx).Warn().Err(err).Msg("failed to decode start request")

			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to start booking")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("booking.session_id", res.ID)
	scope.AddEvent("Booking session started")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSession returns the session state.
// @Summary Get booking session
// @Tags Booking
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Router /booking/sessions/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("session", id).Msg("failed to get booking session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking session retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitPersonal completes the personal information step.
// @Summary Submit personal information
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.PersonalRequest true "Personal information"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session at the trip details step"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /booking/sessions/{id}/personal [put]
func (handler *Handler) SubmitPersonal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitPersonal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PersonalRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SubmitPersonal(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Str("session", id).Msg("failed to submit personal information")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Personal information submitted")

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitTrip completes the trip details step.
// @Summary Submit trip details
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.TripRequest true "Trip details"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session at the review step"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /booking/sessions/{id}/trip [put]
func (handler *Handler) SubmitTrip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitTrip")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.TripRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SubmitTrip(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Str("session", id).Msg("failed to submit trip details")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip details submitted")

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitPayment confirms the booking.
// @Summary Confirm booking
// @Description Accepts the payment step and starts the confirmation. Poll the session until its status is confirmed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.PaymentRequest true "Payment method and consent"
// @Success 202 {object} response.Data[dto.SessionResponse] "Session being confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /booking/sessions/{id}/payment [put]
func (handler *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PaymentRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Confirm(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Str("session", id).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmation started")

	response.WithJSON(w, http.StatusAccepted, res)
}

// Back returns to the previous step.
// @Summary Previous step
// @Tags Booking
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session at the previous step"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /booking/sessions/{id}/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Back(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Str("session", id).Msg("failed to go back")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking moved back a step")

	response.WithJSON(w, http.StatusOK, res)
}

// AbandonSession discards the session and any pending confirmation.
// @Summary Abandon booking
// @Tags Booking
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.Message "Session abandoned"
// @Failure 404 {object} response.Error
// @Router /booking/sessions/{id} [delete]
func (handler *Handler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbandonSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Abandon(ctx, id); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Str("session", id).Msg("failed to abandon booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking session abandoned")

	response.WithMessage(w, http.StatusOK, "Booking session abandoned")
}

// GetReceipt downloads the booking receipt.
// @Summary Download receipt
// @Tags Booking
// @Produce application/pdf
// @Param id path string true "Session id"
// @Success 200 {file} file "Receipt PDF"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /booking/sessions/{id}/receipt [get]
func (handler *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceipt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	receipt, err := handler.service.Receipt(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Str("session", id).Msg("failed to build receipt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Receipt generated")

	response.WithPDF(w, receipt.Filename, receipt.Content)
}

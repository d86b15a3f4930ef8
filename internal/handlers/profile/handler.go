package profile

import (
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/profile/model/dto"
	"indivoyage/internal/domains/profile/service"
	"indivoyage/shared/constant"
	"indivoyage/shared/validator"
	"indivoyage/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user-profile", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProfile)
		routerGroup.Put("/", handler.UpdateProfile)
	})
}

// GetProfile returns the sample traveller profile.
// @Summary Get user profile
// @Description User details, bookings, wishlist and notification settings.
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse] "Profile"
// @Failure 500 {object} response.Error
// @Router /user-profile [get]
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile validates the profile form.
// @Summary Update user profile
// @Description Validates the form and echoes the accepted values. Nothing is stored.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile form"
// @Success 200 {object} response.Data[dto.UserResponse] "Accepted profile"
// @Failure 400 {object} response.Error
// @Router /user-profile [put]
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

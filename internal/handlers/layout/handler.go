package layout

import (
	"errors"
	"indivoyage/infras/otel"
	"indivoyage/navigation"
	"indivoyage/shared/constant"
	"indivoyage/shared/failure"
	"indivoyage/shared/timezone"
	"indivoyage/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errNavigationUnavailable = errors.New("navigation unavailable")

type Handler struct {
	navigation *navigation.Navigation
	otel       otel.Otel
}

func New(navigation *navigation.Navigation, otel otel.Otel) Handler {
	return Handler{
		navigation: navigation,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/layout", handler.GetLayout)
}

// GetLayout returns the shared page chrome.
// @Summary Get page layout
// @Description Brand, header, sidebar and footer with the entries for the given path marked active.
// @Tags Layout
// @Produce json
// @Param path query string false "Current page path" default(/)
// @Success 200 {object} response.Data[navigation.Navigation] "Page layout"
// @Failure 500 {object} response.Error
// @Router /layout [get]
func (handler *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLayout")
	defer scope.End()

	if handler.navigation == nil {
		err := failure.InternalError(errNavigationUnavailable)

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get layout")

		response.WithError(w, err)

		return
	}

	path := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamPath))
	if path == constant.Empty {
		path = "/"
	}

	scope.SetAttribute("layout.path", path)

	res := handler.navigation.Layout(path, timezone.Now().Year())

	scope.AddEvent("Layout retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

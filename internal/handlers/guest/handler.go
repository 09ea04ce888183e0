package guest

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/form/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Form
	otel    otel.Otel
}

func New(service service.Form, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuests)
	})
}

// GetGuests lists the loaded guests.
// @Summary Get all guests
// @Description List the guests of the last successful load.
// @Tags Guest
// @Produce json
// @Success 200 {object} response.Data[[]model.Guest] "List of guests"
// @Router /v1/guests [get]
func (handler *Handler) GetGuests(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	guests := handler.service.Snapshot().Guests
	scope.SetAttribute("result.count", len(guests))

	response.WithJSON(writer, http.StatusOK, guests)
}

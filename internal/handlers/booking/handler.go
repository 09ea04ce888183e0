package booking

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/form/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/price", handler.GetPrice)
	})
}

// GetBookings lists the loaded bookings with room number and guest name.
// @Summary Get all bookings
// @Description List the bookings of the last successful load. Missing references read "N/A".
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.BookingRow] "List of bookings"
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.BookingRows())
}

// GetPrice prices a stay.
// @Summary Price a stay
// @Description Nights are started days between check-in and check-out; unset dates price at 0.
// @Tags Booking
// @Produce json
// @Param check_in query string false "Check-in day (YYYY-MM-DD)"
// @Param check_out query string false "Check-out day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[pricing.Quote] "Price"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/price [get]
func (handler *Handler) GetPrice(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrice")
	defer scope.End()

	params := gDto.StayParams{}
	if err := params.FromRequest(request); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid stay parameters")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Quote(params.CheckIn, params.CheckOut))
}

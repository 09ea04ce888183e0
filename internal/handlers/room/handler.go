package room

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/form/service"
	"hotel/internal/domains/room/model/dto"
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
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
	})
}

// GetRooms lists the loaded rooms.
// @Summary Get all rooms
// @Description List the rooms of the last successful load.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]model.Room] "List of rooms"
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Snapshot().Rooms)
}

// GetAvailableRooms lists the rooms free for a stay.
// @Summary Get available rooms
// @Description Rooms with no booking overlapping [check_in, check_out). Unset dates do not constrain.
// @Tags Room
// @Produce json
// @Param check_in query string false "Check-in day (YYYY-MM-DD)"
// @Param check_out query string false "Check-out day (YYYY-MM-DD)"
// @Param exclude_booking_id query integer false "Booking being edited"
// @Success 200 {object} response.Data[dto.RoomOptions] "Available rooms"
// @Failure 400 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	params := gDto.StayParams{}
	if err := params.FromRequest(request); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid stay parameters")

		response.WithError(writer, err)

		return
	}

	var options dto.RoomOptions
	options.FromModels(handler.service.AvailableRooms(params.CheckIn, params.CheckOut, params.ExcludeBookingID))

	scope.SetAttribute("result.count", len(options))

	response.WithJSON(writer, http.StatusOK, options)
}

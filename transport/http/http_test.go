package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/form/service"
	guestMocks "hotel/internal/domains/guest/mocks"
	guestModel "hotel/internal/domains/guest/model"
	"hotel/internal/domains/pricing"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	bookingHandler "hotel/internal/handlers/booking"
	formHandler "hotel/internal/handlers/form"
	guestHandler "hotel/internal/handlers/guest"
	roomHandler "hotel/internal/handlers/room"
	"hotel/shared/constant"
	transport "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)

	guests := guestMocks.NewMockGuest(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)

	guests.EXPECT().GetAll(gomock.Any()).Return([]guestModel.Guest{{ID: 1, FullName: "Ana"}}, nil).AnyTimes()
	rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{{ID: 7, Floor: 1, Number: 3, Beds: 2}}, nil).AnyTimes()
	bookings.EXPECT().GetAll(gomock.Any()).Return([]bookingModel.Booking{}, nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}

	otl := mocks.NewOtel()
	form := service.New(guests, rooms, bookings, pricing.New(cfg), otl)

	r := router.New(router.DomainHandlers{
		Guest:   guestHandler.New(form, otl),
		Room:    roomHandler.New(form, otl),
		Booking: bookingHandler.New(form, otl),
		Form:    formHandler.New(form, otl),
	})

	return transport.New(cfg, r, middleware.NewAppMiddleware(otl, cfg, nil), form)
}

func TestHTTP_Routes(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		target string
		want   int
	}{
		{target: "/health", want: http.StatusOK},
		{target: "/v1/guests", want: http.StatusOK},
		{target: "/v1/rooms", want: http.StatusOK},
		{target: "/v1/rooms/available?check_in=2030-01-10&check_out=2030-01-12", want: http.StatusOK},
		{target: "/v1/rooms/available?check_in=bad", want: http.StatusBadRequest},
		{target: "/v1/bookings", want: http.StatusOK},
		{target: "/v1/bookings/price?check_in=2030-01-10&check_out=2030-01-12", want: http.StatusOK},
		{target: "/v1/unknown", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.want, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get(constant.RequestHeaderRequestID))
		})
	}
}

func TestHTTP_LoadsOnFirstRequest(t *testing.T) {
	server := newServer(t)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/guests", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"nombre_completo":"Ana"`)
	assert.True(t, server.Form.Snapshot().Loaded())
	assert.NoError(t, server.Form.Load(context.Background()))
}

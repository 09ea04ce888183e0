package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/form/service"
	guestMocks "hotel/internal/domains/guest/mocks"
	guestModel "hotel/internal/domains/guest/model"
	"hotel/internal/domains/pricing"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/handlers/booking"
	"hotel/shared/constant"
	"hotel/shared/currency"
	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(year int, month time.Month, d int) model.Date {
	return model.NewDate(timezone.Date(year, month, d))
}

func newRouter(t *testing.T, bookings []bookingModel.Booking) chi.Router {
	t.Helper()

	ctrl := gomock.NewController(t)
	guests := guestMocks.NewMockGuest(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)

	guests.EXPECT().GetAll(gomock.Any()).Return([]guestModel.Guest{{ID: 1, FullName: "Ana"}}, nil)
	rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{{ID: 7, Floor: 1, Number: 3, Beds: 2}}, nil)
	bookingRepo.EXPECT().GetAll(gomock.Any()).Return(bookings, nil)

	formatter, err := currency.New("PYG", "es-PY")
	require.NoError(t, err)

	svc := service.New(guests, rooms, bookingRepo, pricing.NewRule(pricing.DefaultNightlyRate, formatter), mocks.NewOtel())
	require.NoError(t, svc.Load(context.Background()))

	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func get(router chi.Router, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestHandler_GetBookings(t *testing.T) {
	router := newRouter(t, []bookingModel.Booking{
		{ID: 1, CheckIn: day(2030, 1, 10), CheckOut: day(2030, 1, 12), RoomID: 7, GuestID: 1, Amount: 240000},
		{ID: 2, CheckIn: day(2030, 2, 1), CheckOut: day(2030, 2, 2), RoomID: 9, GuestID: 99, Amount: 120000},
	})

	recorder := get(router, "/v1/bookings")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []struct {
			ID         int64   `json:"id"`
			CheckIn    string  `json:"fecha_entrada"`
			RoomNumber string  `json:"habitacion_nro"`
			GuestName  string  `json:"nombre_completo"`
			Amount     float64 `json:"monto_reserva"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)

	assert.Equal(t, "2030-01-10", body.Data[0].CheckIn)
	assert.Equal(t, "3", body.Data[0].RoomNumber)
	assert.Equal(t, "Ana", body.Data[0].GuestName)
	assert.Equal(t, float64(240000), body.Data[0].Amount)

	assert.Equal(t, constant.NoticeNotAvailable, body.Data[1].RoomNumber)
	assert.Equal(t, constant.NoticeNotAvailable, body.Data[1].GuestName)
}

func TestHandler_GetPrice(t *testing.T) {
	router := newRouter(t, []bookingModel.Booking{})

	tests := []struct {
		name   string
		query  string
		code   int
		nights float64
		amount float64
	}{
		{name: "three nights", query: "?check_in=2030-01-10&check_out=2030-01-13", code: http.StatusOK, nights: 3, amount: 360000},
		{name: "unset check-out", query: "?check_in=2030-01-10", code: http.StatusOK},
		{name: "malformed date", query: "?check_in=10/01/2030", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(router, "/v1/bookings/price"+tt.query)
			require.Equal(t, tt.code, recorder.Code)

			if tt.code != http.StatusOK {
				return
			}

			var body struct {
				Data struct {
					Nights  float64 `json:"nights"`
					Amount  float64 `json:"amount"`
					Display string  `json:"display"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

			assert.Equal(t, tt.nights, body.Data.Nights)
			assert.Equal(t, tt.amount, body.Data.Amount)
			assert.NotEmpty(t, body.Data.Display)
		})
	}
}

package room_test

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
	"hotel/internal/handlers/room"
	"hotel/shared/currency"
	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	ctrl := gomock.NewController(t)
	guests := guestMocks.NewMockGuest(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)

	guests.EXPECT().GetAll(gomock.Any()).Return([]guestModel.Guest{}, nil)
	rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{
		{ID: 7, Floor: 1, Number: 3, Beds: 2, HasTelevision: true},
		{ID: 8, Floor: 2, Number: 5, Beds: 1},
	}, nil)
	bookings.EXPECT().GetAll(gomock.Any()).Return([]bookingModel.Booking{{
		ID:       1,
		CheckIn:  model.NewDate(timezone.Date(2030, time.January, 10)),
		CheckOut: model.NewDate(timezone.Date(2030, time.January, 12)),
		RoomID:   7,
		GuestID:  1,
	}}, nil)

	formatter, err := currency.New("PYG", "es-PY")
	require.NoError(t, err)

	svc := service.New(guests, rooms, bookings, pricing.NewRule(pricing.DefaultNightlyRate, formatter), mocks.NewOtel())
	require.NoError(t, svc.Load(context.Background()))

	handler := room.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func TestHandler_GetRooms(t *testing.T) {
	recorder := httptest.NewRecorder()
	newRouter(t).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []roomModel.Room `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.True(t, bool(body.Data[0].HasTelevision))
}

func TestHandler_GetAvailableRooms(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		query    string
		code     int
		expected []int64
	}{
		{name: "overlapping stay", query: "?check_in=2030-01-11&check_out=2030-01-13", code: http.StatusOK, expected: []int64{8}},
		{name: "check-in on check-out day", query: "?check_in=2030-01-12&check_out=2030-01-14", code: http.StatusOK, expected: []int64{7, 8}},
		{name: "editing the blocking booking", query: "?check_in=2030-01-11&check_out=2030-01-13&exclude_booking_id=1", code: http.StatusOK, expected: []int64{7, 8}},
		{name: "unset range", query: "", code: http.StatusOK, expected: []int64{7, 8}},
		{name: "bad exclusion id", query: "?exclude_booking_id=abc", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms/available"+tt.query, nil))

			require.Equal(t, tt.code, recorder.Code)

			if tt.code != http.StatusOK {
				return
			}

			var body struct {
				Data []struct {
					ID    int64  `json:"id"`
					Label string `json:"label"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

			ids := make([]int64, 0, len(body.Data))
			for _, option := range body.Data {
				ids = append(ids, option.ID)
				assert.NotEmpty(t, option.Label)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

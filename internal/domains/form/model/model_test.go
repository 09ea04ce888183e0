package model_test

import (
	"net/http"
	"testing"
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/form/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Kind
		wantErr bool
	}{
		{input: "persona", want: model.KindGuest},
		{input: "habitacion", want: model.KindRoom},
		{input: "reserva", want: model.KindBooking},
		{input: " Bookings ", want: model.KindBooking},
		{input: "guest", want: model.KindGuest},
		{input: "rooms", want: model.KindRoom},
		{input: "invoice", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := model.ParseKind(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestGuestDraft_Validate(t *testing.T) {
	draft := model.GuestDraft{FullName: "Ana Benítez", Document: "4512789", Email: "ana@example.com", Phone: "0981555111"}
	assert.NoError(t, draft.Validate())

	draft.Phone = ""
	assert.EqualError(t, draft.Validate(), "telefono is required")
}

func TestRoomDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		draft   model.RoomDraft
		wantErr string
	}{
		{name: "valid", draft: model.RoomDraft{Floor: 10, Number: 20, Beds: 4}},
		{name: "floor zero", draft: model.RoomDraft{Floor: 0, Number: 1, Beds: 1}, wantErr: "habitacion_piso must be greater than or equal to 1"},
		{name: "number too high", draft: model.RoomDraft{Floor: 1, Number: 21, Beds: 1}, wantErr: "habitacion_nro must be less than or equal to 20"},
		{name: "too many beds", draft: model.RoomDraft{Floor: 1, Number: 1, Beds: 5}, wantErr: "cant_camas must be less than or equal to 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestBookingDraft_Validate(t *testing.T) {
	today := timezone.Today()
	valid := model.BookingDraft{
		CheckIn:  gModel.NewDate(today.AddDate(0, 0, 1)),
		CheckOut: gModel.NewDate(today.AddDate(0, 0, 4)),
		RoomID:   1,
		GuestID:  2,
	}

	tests := []struct {
		name    string
		mutate  func(d *model.BookingDraft)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *model.BookingDraft) {}},
		{name: "check-in today", mutate: func(d *model.BookingDraft) { d.CheckIn = gModel.NewDate(today) }, wantErr: "fecha_entrada must be after today"},
		{name: "check-in unset", mutate: func(d *model.BookingDraft) { d.CheckIn = gModel.Date{} }, wantErr: "fecha_entrada is required"},
		{name: "check-out before check-in", mutate: func(d *model.BookingDraft) { d.CheckOut = gModel.NewDate(today) }, wantErr: "fecha_salida must be after CheckIn"},
		{name: "check-out equals check-in", mutate: func(d *model.BookingDraft) { d.CheckOut = d.CheckIn }, wantErr: "fecha_salida must be after CheckIn"},
		{name: "no room", mutate: func(d *model.BookingDraft) { d.RoomID = 0 }, wantErr: "habitacion_id is required"},
		{name: "no guest", mutate: func(d *model.BookingDraft) { d.GuestID = 0 }, wantErr: "persona_id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			err := draft.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestBookingDraftFrom(t *testing.T) {
	stored := bookingModel.Booking{
		ID:       7,
		CheckIn:  gModel.Date{Time: timezone.Date(2024, time.March, 1).Add(15 * time.Hour)},
		CheckOut: gModel.Date{Time: timezone.Date(2024, time.March, 4)},
		RoomID:   3,
		GuestID:  4,
		Amount:   360000,
		BookedAt: gModel.NewTimestamp(time.Now()),
	}

	draft := model.BookingDraftFrom(stored)

	assert.Equal(t, int64(7), draft.ID)
	assert.Equal(t, "2024-03-01", draft.CheckIn.String())
	assert.True(t, draft.CheckIn.Equal(timezone.Date(2024, time.March, 1)))
	assert.Equal(t, int64(3), draft.RoomID)
	assert.Equal(t, int64(4), draft.GuestID)

	sent := draft.ToModel()
	assert.True(t, sent.BookedAt.IsZero())
}

func TestSnapshot_Lookups(t *testing.T) {
	snapshot := model.Snapshot{
		Guests:   []guestModel.Guest{{ID: 1, FullName: "Ana"}},
		Rooms:    []roomModel.Room{{ID: 2, Number: 14}},
		Bookings: []bookingModel.Booking{{ID: 3, RoomID: 2, GuestID: 1}},
	}

	assert.Equal(t, "14", snapshot.RoomNumber(2))
	assert.Equal(t, "N/A", snapshot.RoomNumber(9))
	assert.Equal(t, "Ana", snapshot.GuestName(1))
	assert.Equal(t, "N/A", snapshot.GuestName(9))

	assert.True(t, snapshot.Has(model.KindBooking, 3))
	assert.False(t, snapshot.Has(model.KindGuest, 3))
	assert.False(t, snapshot.Has(model.Kind("x"), 1))
	assert.False(t, snapshot.Loaded())
}

package model

import (
	"strconv"
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
)

// Snapshot is the last complete load of the three collections. It is replaced
// whole and never modified in place.
type Snapshot struct {
	Guests   []guestModel.Guest     `json:"persona"`
	Rooms    []roomModel.Room       `json:"habitacion"`
	Bookings []bookingModel.Booking `json:"reserva"`
	LoadedAt time.Time              `json:"loaded_at"`
}

func (s Snapshot) Loaded() bool {
	return !s.LoadedAt.IsZero()
}

func (s Snapshot) Guest(id int64) (guestModel.Guest, bool) {
	for _, guest := range s.Guests {
		if guest.ID == id {
			return guest, true
		}
	}

	return guestModel.Guest{}, false
}

func (s Snapshot) Room(id int64) (roomModel.Room, bool) {
	for _, room := range s.Rooms {
		if room.ID == id {
			return room, true
		}
	}

	return roomModel.Room{}, false
}

func (s Snapshot) Booking(id int64) (bookingModel.Booking, bool) {
	for _, booking := range s.Bookings {
		if booking.ID == id {
			return booking, true
		}
	}

	return bookingModel.Booking{}, false
}

// Has reports whether a record of kind with the given identity is loaded.
func (s Snapshot) Has(kind Kind, id int64) bool {
	var found bool

	switch kind {
	case KindGuest:
		_, found = s.Guest(id)
	case KindRoom:
		_, found = s.Room(id)
	case KindBooking:
		_, found = s.Booking(id)
	}

	return found
}

// RoomNumber is the number of the referenced room, or "N/A" when it is not loaded.
func (s Snapshot) RoomNumber(id int64) string {
	room, ok := s.Room(id)
	if !ok || room.Number == 0 {
		return constant.NoticeNotAvailable
	}

	return strconv.Itoa(room.Number)
}

// GuestName is the full name of the referenced guest, or "N/A" when it is not loaded.
func (s Snapshot) GuestName(id int64) string {
	guest, ok := s.Guest(id)
	if !ok || guest.FullName == constant.Empty {
		return constant.NoticeNotAvailable
	}

	return guest.FullName
}

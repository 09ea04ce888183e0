// Package availability decides which rooms are free for a stay.
//
// Stays are half-open day ranges [check-in, check-out): the check-out day of
// one booking may be the check-in day of the next on the same room.
package availability

import (
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/timezone"
)

// Conflicts reports whether an existing booking overlaps the candidate range.
// Each bound of the candidate may be unset (zero); a rule that needs an unset
// bound never fires. Bookings without both dates never conflict.
func Conflicts(existing bookingModel.Booking, checkIn, checkOut time.Time) bool {
	if existing.CheckIn.IsZero() || existing.CheckOut.IsZero() {
		return false
	}

	start := timezone.DateOf(existing.CheckIn.Time)
	end := timezone.DateOf(existing.CheckOut.Time)
	checkIn = timezone.DateOf(checkIn)
	checkOut = timezone.DateOf(checkOut)

	hasIn := !checkIn.IsZero()
	hasOut := !checkOut.IsZero()

	// starts inside the existing stay
	if hasIn && !checkIn.Before(start) && checkIn.Before(end) {
		return true
	}

	// ends inside the existing stay
	if hasOut && checkOut.After(start) && !checkOut.After(end) {
		return true
	}

	// swallows the existing stay
	return hasIn && hasOut && !checkIn.After(start) && !checkOut.Before(end)
}

// AvailableRooms returns the rooms with no conflicting booking for the range,
// in the order given. The booking identified by excludeBookingID is ignored,
// so a booking being edited never blocks its own room. Zero excludes nothing.
func AvailableRooms(
	rooms []roomModel.Room,
	bookings []bookingModel.Booking,
	checkIn, checkOut time.Time,
	excludeBookingID int64,
) []roomModel.Room {
	busy := make(map[int64]struct{})

	for _, booking := range bookings {
		if excludeBookingID != 0 && booking.ID == excludeBookingID {
			continue
		}

		if Conflicts(booking, checkIn, checkOut) {
			busy[booking.RoomID] = struct{}{}
		}
	}

	available := make([]roomModel.Room, 0, len(rooms))

	for _, room := range rooms {
		if _, ok := busy[room.ID]; !ok {
			available = append(available, room)
		}
	}

	return available
}

// IsAvailable reports whether roomID is free for the range.
func IsAvailable(roomID int64, bookings []bookingModel.Booking, checkIn, checkOut time.Time, excludeBookingID int64) bool {
	for _, booking := range bookings {
		if booking.RoomID != roomID || (excludeBookingID != 0 && booking.ID == excludeBookingID) {
			continue
		}

		if Conflicts(booking, checkIn, checkOut) {
			return false
		}
	}

	return true
}

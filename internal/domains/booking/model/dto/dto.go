package dto

import (
	"hotel/internal/domains/booking/model"
	gModel "hotel/shared/model"
)

// BookingRow is a booking as listed to the front desk, with its references resolved.
type BookingRow struct {
	ID            int64            `json:"id"`
	CheckIn       gModel.Date      `json:"fecha_entrada"`
	CheckOut      gModel.Date      `json:"fecha_salida"`
	RoomID        int64            `json:"habitacion_id"`
	RoomNumber    string           `json:"habitacion_nro"`
	GuestID       int64            `json:"persona_id"`
	GuestName     string           `json:"nombre_completo"`
	Amount        gModel.Amount    `json:"monto_reserva"`
	AmountDisplay string           `json:"monto_display"`
	BookedAt      gModel.Timestamp `json:"fecha_reserva"`
}

func (r *BookingRow) FromModel(model model.Booking, roomNumber, guestName, amountDisplay string) {
	r.ID = model.ID
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.RoomID = model.RoomID
	r.RoomNumber = roomNumber
	r.GuestID = model.GuestID
	r.GuestName = guestName
	r.Amount = model.Amount
	r.AmountDisplay = amountDisplay
	r.BookedAt = model.BookedAt
}

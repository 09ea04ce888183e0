package model

import (
	"hotel/shared/model"
)

const (
	ResourceName = "reserva"
	EntityName   = "booking"

	FieldID       = "id"
	FieldCheckIn  = "fecha_entrada"
	FieldCheckOut = "fecha_salida"
	FieldRoomID   = "habitacion_id"
	FieldGuestID  = "persona_id"
	FieldAmount   = "monto_reserva"
	FieldBookedAt = "fecha_reserva"
)

type Booking struct {
	ID       int64           `json:"id,omitempty"`
	CheckIn  model.Date      `json:"fecha_entrada"`
	CheckOut model.Date      `json:"fecha_salida"`
	RoomID   int64           `json:"habitacion_id"`
	GuestID  int64           `json:"persona_id"`
	Amount   model.Amount    `json:"monto_reserva"`
	BookedAt model.Timestamp `json:"fecha_reserva"`
}

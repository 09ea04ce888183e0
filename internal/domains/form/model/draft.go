package model

import (
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/model"
	"hotel/shared/validator"
)

// A draft with ID 0 is a new record; any other ID is an edit of that record.

type GuestDraft struct {
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"nombre_completo" validate:"required"`
	Document string `json:"nr_documento"    validate:"required"`
	Email    string `json:"correo"          validate:"required"`
	Phone    string `json:"telefono"        validate:"required"`
}

func (d GuestDraft) Validate() error {
	return validator.ValidateStruct(&d) //nolint:wrapcheck
}

func (d GuestDraft) ToModel() guestModel.Guest {
	return guestModel.Guest{
		ID:       d.ID,
		FullName: d.FullName,
		Document: d.Document,
		Email:    d.Email,
		Phone:    d.Phone,
	}
}

func GuestDraftFrom(guest guestModel.Guest) GuestDraft {
	return GuestDraft{
		ID:       guest.ID,
		FullName: guest.FullName,
		Document: guest.Document,
		Email:    guest.Email,
		Phone:    guest.Phone,
	}
}

type RoomDraft struct {
	ID            int64      `json:"id,omitempty"`
	Floor         int        `json:"habitacion_piso"  validate:"min=1,max=10"`
	Number        int        `json:"habitacion_nro"   validate:"min=1,max=20"`
	Beds          int        `json:"cant_camas"       validate:"min=1,max=4"`
	HasTelevision model.Flag `json:"tiene_television"`
	HasMinibar    model.Flag `json:"tiene_frigobar"`
}

func (d RoomDraft) Validate() error {
	return validator.ValidateStruct(&d) //nolint:wrapcheck
}

func (d RoomDraft) ToModel() roomModel.Room {
	return roomModel.Room{
		ID:            d.ID,
		Floor:         d.Floor,
		Number:        d.Number,
		Beds:          d.Beds,
		HasTelevision: d.HasTelevision,
		HasMinibar:    d.HasMinibar,
	}
}

func RoomDraftFrom(room roomModel.Room) RoomDraft {
	return RoomDraft{
		ID:            room.ID,
		Floor:         room.Floor,
		Number:        room.Number,
		Beds:          room.Beds,
		HasTelevision: room.HasTelevision,
		HasMinibar:    room.HasMinibar,
	}
}

// BookingDraft carries no creation stamp; it is set when the draft is submitted.
// Amount is derived from the dates and any value sent by the client is replaced.
type BookingDraft struct {
	ID       int64        `json:"id,omitempty"`
	CheckIn  model.Date   `json:"fecha_entrada"`
	CheckOut model.Date   `json:"fecha_salida"`
	RoomID   int64        `json:"habitacion_id"`
	GuestID  int64        `json:"persona_id"`
	Amount   model.Amount `json:"monto_reserva"`
}

type bookingRules struct {
	CheckIn  time.Time `json:"fecha_entrada" validate:"required,future"`
	CheckOut time.Time `json:"fecha_salida"  validate:"required,gtfield=CheckIn"`
	RoomID   int64     `json:"habitacion_id" validate:"required"`
	GuestID  int64     `json:"persona_id"    validate:"required"`
}

// Validate checks the fields of the draft alone. Whether the room and guest
// exist and the room is free is decided against the loaded records.
func (d BookingDraft) Validate() error {
	rules := bookingRules{
		CheckIn:  d.CheckIn.Time,
		CheckOut: d.CheckOut.Time,
		RoomID:   d.RoomID,
		GuestID:  d.GuestID,
	}

	return validator.ValidateStruct(&rules) //nolint:wrapcheck
}

func (d BookingDraft) ToModel() bookingModel.Booking {
	return bookingModel.Booking{
		ID:       d.ID,
		CheckIn:  d.CheckIn,
		CheckOut: d.CheckOut,
		RoomID:   d.RoomID,
		GuestID:  d.GuestID,
		Amount:   d.Amount,
	}
}

// BookingDraftFrom normalizes the dates to calendar days and drops the
// creation stamp of the stored booking.
func BookingDraftFrom(booking bookingModel.Booking) BookingDraft {
	return BookingDraft{
		ID:       booking.ID,
		CheckIn:  model.NewDate(booking.CheckIn.Time),
		CheckOut: model.NewDate(booking.CheckOut.Time),
		RoomID:   booking.RoomID,
		GuestID:  booking.GuestID,
		Amount:   booking.Amount,
	}
}

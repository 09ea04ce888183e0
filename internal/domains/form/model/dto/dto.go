package dto

import (
	"hotel/internal/domains/form/model"
	"hotel/shared/constant"
)

type SwitchRequest struct {
	Kind string `json:"kind" validate:"required"`
}

type ActiveResponse struct {
	Kind model.Kind `json:"kind"`
}

type ValidationResponse struct {
	Kind    model.Kind `json:"kind"`
	Valid   bool       `json:"valid"`
	Message string     `json:"message,omitempty"`
}

func (r *ValidationResponse) FromError(kind model.Kind, err error) {
	r.Kind = kind
	r.Valid = err == nil
	r.Message = constant.Empty

	if err != nil {
		r.Message = err.Error()
	}
}

// Drafts is every draft at once, keyed by kind.
type Drafts struct {
	Active  model.Kind         `json:"active"`
	Guest   model.GuestDraft   `json:"persona"`
	Room    model.RoomDraft    `json:"habitacion"`
	Booking model.BookingDraft `json:"reserva"`
}

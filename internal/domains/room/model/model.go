package model

import (
	"fmt"

	"hotel/shared/model"
)

const (
	ResourceName = "habitacion"
	EntityName   = "room"

	FieldID            = "id"
	FieldFloor         = "habitacion_piso"
	FieldNumber        = "habitacion_nro"
	FieldBeds          = "cant_camas"
	FieldHasTelevision = "tiene_television"
	FieldHasMinibar    = "tiene_frigobar"
)

type Room struct {
	ID            int64      `json:"id,omitempty"`
	Floor         int        `json:"habitacion_piso"`
	Number        int        `json:"habitacion_nro"`
	Beds          int        `json:"cant_camas"`
	HasTelevision model.Flag `json:"tiene_television"`
	HasMinibar    model.Flag `json:"tiene_frigobar"`
}

// Label is how a room is offered when picking one for a booking.
func (r Room) Label() string {
	return fmt.Sprintf("Piso %d, Nro %d", r.Floor, r.Number)
}

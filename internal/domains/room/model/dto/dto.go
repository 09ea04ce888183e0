package dto

import (
	"hotel/internal/domains/room/model"
)

// RoomOption is a room offered in the booking form.
type RoomOption struct {
	ID            int64  `json:"id"`
	Label         string `json:"label"`
	Beds          int    `json:"cant_camas"`
	HasTelevision bool   `json:"tiene_television"`
	HasMinibar    bool   `json:"tiene_frigobar"`
}

func (o *RoomOption) FromModel(model model.Room) {
	o.ID = model.ID
	o.Label = model.Label()
	o.Beds = model.Beds
	o.HasTelevision = bool(model.HasTelevision)
	o.HasMinibar = bool(model.HasMinibar)
}

type RoomOptions []RoomOption

func (o *RoomOptions) FromModels(models []model.Room) {
	*o = make(RoomOptions, len(models))
	for i, mod := range models {
		(*o)[i].FromModel(mod)
	}
}

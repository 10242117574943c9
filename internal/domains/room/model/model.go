package model

import (
	"ehotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldHotelID      = "hotel_id"
	FieldRoomNumber   = "room_number"
	FieldPrice        = "price"
	FieldCapacity     = "capacity"
	FieldView         = "view"
	FieldIsExtendable = "is_extendable"
	FieldAmenities    = "amenities"
	FieldProblems     = "problems"
	FieldPhotoURL     = "photo_url"
)

const (
	CapacitySingle = "single"
	CapacityDouble = "double"
	CapacityFamily = "family"
	CapacitySuite  = "suite"

	ViewSea      = "sea"
	ViewMountain = "mountain"
)

type Room struct {
	ID           string         `db:"id"`
	HotelID      string         `db:"hotel_id"`
	RoomNumber   string         `db:"room_number"`
	Price        float64        `db:"price"`
	Capacity     string         `db:"capacity"`
	View         string         `db:"view"`
	IsExtendable bool           `db:"is_extendable"`
	Amenities    pq.StringArray `db:"amenities"`
	Problems     pq.StringArray `db:"problems"`
	PhotoURL     string         `db:"photo_url"`
	model.Metadata
}

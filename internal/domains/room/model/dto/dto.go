package dto

import (
	"mime/multipart"

	"ehotel/internal/domains/room/model"
	"ehotel/shared"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID      string   `json:"hotel_id"      validate:"required,uuid4"`
	RoomNumber   string   `json:"room_number"   validate:"required,max=20"`
	Price        float64  `json:"price"         validate:"required,min=0"`
	Capacity     string   `json:"capacity"      validate:"required,oneof=single double family suite"`
	View         string   `json:"view"          validate:"omitempty,oneof=sea mountain"`
	IsExtendable *bool    `json:"is_extendable" validate:"omitempty"`
	Amenities    []string `json:"amenities"     validate:"omitempty,dive,max=50"`
	Problems     []string `json:"problems"      validate:"omitempty,dive,max=200"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	isExtendable := false
	if c.IsExtendable != nil {
		isExtendable = *c.IsExtendable
	}

	return model.Room{
		ID:           uuid.NewString(),
		HotelID:      c.HotelID,
		RoomNumber:   c.RoomNumber,
		Price:        c.Price,
		Capacity:     c.Capacity,
		View:         c.View,
		IsExtendable: isExtendable,
		Amenities:    c.Amenities,
		Problems:     c.Problems,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber   string   `db:"room_number"   json:"room_number"   validate:"omitempty,max=20"`
	Price        *float64 `db:"price"         json:"price"         validate:"omitempty,min=0"`
	Capacity     string   `db:"capacity"      json:"capacity"      validate:"omitempty,oneof=single double family suite"`
	View         string   `db:"view"          json:"view"          validate:"omitempty,oneof=sea mountain"`
	IsExtendable *bool    `db:"is_extendable" json:"is_extendable" validate:"omitempty"`
	Amenities    []string `json:"amenities"     validate:"omitempty,dive,max=50"`
	Problems     []string `json:"problems"      validate:"omitempty,dive,max=200"`
}

type UploadRoomPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile multipart.File        `json:"-"`
}

type AvailabilityRequest struct {
	HotelID  string  `json:"hotel_id"  validate:"omitempty,uuid4"`
	CheckIn  string  `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	Capacity string  `json:"capacity"  validate:"omitempty,oneof=single double family suite"`
	View     string  `json:"view"      validate:"omitempty,oneof=sea mountain"`
	MaxPrice float64 `json:"max_price" validate:"omitempty,min=0"`
}

type RoomResponse struct {
	ID           string   `json:"id"`
	HotelID      string   `json:"hotel_id"`
	RoomNumber   string   `json:"room_number"`
	Price        float64  `json:"price"`
	Capacity     string   `json:"capacity"`
	View         string   `json:"view"`
	IsExtendable bool     `json:"is_extendable"`
	Amenities    []string `json:"amenities"`
	Problems     []string `json:"problems"`
	PhotoURL     string   `json:"photo_url"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomNumber = model.RoomNumber
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.View = model.View
	r.IsExtendable = model.IsExtendable
	r.Amenities = model.Amenities
	r.Problems = model.Problems
	r.PhotoURL = model.PhotoURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	CheckIn  string         `json:"check_in"`
	CheckOut string         `json:"check_out"`
	Rooms    []RoomResponse `json:"rooms"`
}

func (r *AvailabilityResponse) FromModels(checkIn, checkOut string, models []model.Room) {
	r.CheckIn = checkIn
	r.CheckOut = checkOut

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

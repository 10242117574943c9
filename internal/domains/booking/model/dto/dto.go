package dto

import (
	"database/sql"
	"time"

	"ehotel/internal/domains/booking/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     string  `json:"room_id"       validate:"required,uuid4"`
	CustomerID string  `json:"customer_id"   validate:"required,uuid4"`
	EmployeeID string  `json:"employee_id"   validate:"omitempty,uuid4"`
	CheckIn    string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	TotalCost  float64 `json:"total_cost"    validate:"min=0"`
}

func (c *CreateBookingRequest) ToModel(user, hotelID string, checkIn, checkOut time.Time) model.Booking {
	employeeID := sql.NullString{}
	if c.EmployeeID != constant.Empty {
		employeeID = sql.NullString{String: c.EmployeeID, Valid: true}
	}

	return model.Booking{
		ID:           uuid.NewString(),
		RoomID:       c.RoomID,
		HotelID:      hotelID,
		CustomerID:   c.CustomerID,
		EmployeeID:   employeeID,
		BookingDate:  timezone.Now(),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalCost:    c.TotalCost,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CheckInBookingRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid4"`
}

type BookingResponse struct {
	ID           string  `json:"id"`
	RoomID       string  `json:"room_id"`
	HotelID      string  `json:"hotel_id"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	EmployeeID   string  `json:"employee_id,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	BookingDate  string  `json:"booking_date"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalCost    float64 `json:"total_cost"`
	IsPaid       bool    `json:"is_paid"`
	IsRenting    bool    `json:"is_renting"`
	IsCheckout   bool    `json:"is_checkout"`
	IsArchived   bool    `json:"is_archived"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.HotelID = model.HotelID
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.EmployeeID = model.EmployeeID.String
	r.EmployeeName = model.EmployeeName.String
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.CheckInDate = model.CheckInDate.Format(constant.BookingDateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.BookingDateFormat)
	r.TotalCost = model.TotalCost
	r.IsPaid = model.IsPaid
	r.IsRenting = model.IsRenting
	r.IsCheckout = model.IsCheckout
	r.IsArchived = model.IsArchived
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type RoomAvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in_date"`
	CheckOut  string `json:"check_out_date"`
	Available bool   `json:"available"`
}

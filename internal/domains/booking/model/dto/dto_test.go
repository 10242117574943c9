package dto_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	checkIn := time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC)

	t.Run("online booking leaves employee unset", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			RoomID:     "room-id",
			CustomerID: "customer-id",
			CheckIn:    "2030-01-10",
			CheckOut:   "2030-01-12",
			TotalCost:  240,
		}

		booking := req.ToModel("test-user", "hotel-id", checkIn, checkOut)

		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "room-id", booking.RoomID)
		assert.Equal(t, "hotel-id", booking.HotelID)
		assert.Equal(t, "customer-id", booking.CustomerID)
		assert.False(t, booking.EmployeeID.Valid)
		assert.Equal(t, checkIn, booking.CheckInDate)
		assert.Equal(t, checkOut, booking.CheckOutDate)
		assert.False(t, booking.IsPaid)
		assert.False(t, booking.IsRenting)
		assert.False(t, booking.IsCheckout)
		assert.False(t, booking.IsArchived)
		assert.Equal(t, "test-user", booking.CreatedBy)
	})

	t.Run("in-person booking records the employee", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			RoomID:     "room-id",
			CustomerID: "customer-id",
			EmployeeID: "employee-id",
			CheckIn:    "2030-01-10",
			CheckOut:   "2030-01-12",
			TotalCost:  240,
		}

		booking := req.ToModel("test-user", "hotel-id", checkIn, checkOut)

		assert.True(t, booking.EmployeeID.Valid)
		assert.Equal(t, "employee-id", booking.EmployeeID.String)
	})
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:           "booking-id",
		RoomID:       "room-id",
		HotelID:      "hotel-id",
		CustomerID:   "customer-id",
		EmployeeID:   sql.NullString{String: "employee-id", Valid: true},
		CheckInDate:  time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
		TotalCost:    240,
		IsPaid:       true,
		IsRenting:    true,
		CustomerName: "Jane Doe",
		EmployeeName: sql.NullString{String: "John Smith", Valid: true},
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-id", res.ID)
	assert.Equal(t, "2030-01-10", res.CheckInDate)
	assert.Equal(t, "2030-01-12", res.CheckOutDate)
	assert.Equal(t, "employee-id", res.EmployeeID)
	assert.Equal(t, "Jane Doe", res.CustomerName)
	assert.Equal(t, "John Smith", res.EmployeeName)
	assert.True(t, res.IsPaid)
	assert.True(t, res.IsRenting)
	assert.False(t, res.IsCheckout)
	assert.False(t, res.IsArchived)
}

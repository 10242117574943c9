package model

import (
	"database/sql"
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldHotelID      = "hotel_id"
	FieldCustomerID   = "customer_id"
	FieldEmployeeID   = "employee_id"
	FieldBookingDate  = "booking_date"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalCost    = "total_cost"
	FieldIsPaid       = "is_paid"
	FieldIsRenting    = "is_renting"
	FieldIsCheckout   = "is_checkout"
	FieldIsArchived   = "is_archived"
)

// Lifecycle event types published to Kafka on every booking mutation.
const (
	EventCreated    = "booking.created"
	EventPaid       = "booking.paid"
	EventRented     = "booking.rented"
	EventCheckedOut = "booking.checked_out"
	EventArchived   = "booking.archived"
)

type Booking struct {
	ID           string         `db:"id"`
	RoomID       string         `db:"room_id"`
	HotelID      string         `db:"hotel_id"`
	CustomerID   string         `db:"customer_id"`
	EmployeeID   sql.NullString `db:"employee_id"`
	BookingDate  time.Time      `db:"booking_date"`
	CheckInDate  time.Time      `db:"check_in_date"`
	CheckOutDate time.Time      `db:"check_out_date"`
	TotalCost    float64        `db:"total_cost"`
	IsPaid       bool           `db:"is_paid"`
	IsRenting    bool           `db:"is_renting"`
	IsCheckout   bool           `db:"is_checkout"`
	IsArchived   bool           `db:"is_archived"`
	CustomerName string         `db:"customer_name" table:"customers" column:"full_name"`
	EmployeeName sql.NullString `db:"employee_name" table:"employees" column:"full_name"`
	model.Metadata
}

// GetJoinQuery is picked up by the generic repository to enrich reads with
// the customer and employee display names.
func (Booking) GetJoinQuery() string {
	return "LEFT JOIN customers ON customers.id = bookings.customer_id " +
		"LEFT JOIN employees ON employees.id = bookings.employee_id"
}

type BookingEvent struct {
	EventType  string `json:"event_type"`
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	HotelID    string `json:"hotel_id"`
	CustomerID string `json:"customer_id"`
	OccurredAt string `json:"occurred_at"`
}

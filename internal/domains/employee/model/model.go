package model

import "ehotel/shared/model"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldFullName      = "full_name"
	FieldRole          = "role"
	FieldSSN           = "ssn"
	FieldStreetAddress = "street_address"
	FieldCity          = "city"
	FieldState         = "state"
	FieldPostalCode    = "postal_code"
)

type Employee struct {
	ID            string `db:"id"`
	HotelID       string `db:"hotel_id"`
	FullName      string `db:"full_name"`
	Role          string `db:"role"`
	SSN           string `db:"ssn"`
	StreetAddress string `db:"street_address"`
	City          string `db:"city"`
	State         string `db:"state"`
	PostalCode    string `db:"postal_code"`
	model.Metadata
}

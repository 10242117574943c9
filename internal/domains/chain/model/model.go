package model

import "ehotel/shared/model"

const (
	TableName  = "hotel_chains"
	EntityName = "hotel_chain"

	FieldID            = "id"
	FieldName          = "name"
	FieldStreetAddress = "street_address"
	FieldCity          = "city"
	FieldState         = "state"
	FieldPostalCode    = "postal_code"
	FieldEmail         = "email"
	FieldPhoneNumber   = "phone_number"
)

type HotelChain struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	StreetAddress string `db:"street_address"`
	City          string `db:"city"`
	State         string `db:"state"`
	PostalCode    string `db:"postal_code"`
	Email         string `db:"email"`
	PhoneNumber   string `db:"phone_number"`
	model.Metadata
}

package model

import "ehotel/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID            = "id"
	FieldChainID       = "chain_id"
	FieldName          = "name"
	FieldCategory      = "category"
	FieldStreetAddress = "street_address"
	FieldCity          = "city"
	FieldState         = "state"
	FieldPostalCode    = "postal_code"
	FieldEmail         = "email"
	FieldPhoneNumber   = "phone_number"
)

type Hotel struct {
	ID            string `db:"id"`
	ChainID       string `db:"chain_id"`
	Name          string `db:"name"`
	Category      int    `db:"category"`
	StreetAddress string `db:"street_address"`
	City          string `db:"city"`
	State         string `db:"state"`
	PostalCode    string `db:"postal_code"`
	Email         string `db:"email"`
	PhoneNumber   string `db:"phone_number"`
	model.Metadata
}

package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID               = "id"
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPhoneNumber      = "phone_number"
	FieldIDType           = "id_type"
	FieldIDNumber         = "id_number"
	FieldStreetAddress    = "street_address"
	FieldCity             = "city"
	FieldState            = "state"
	FieldPostalCode       = "postal_code"
	FieldRegistrationDate = "registration_date"
)

const (
	IDTypeSSN            = "ssn"
	IDTypePassport       = "passport"
	IDTypeDrivingLicense = "driving_license"
)

type Customer struct {
	ID               string    `db:"id"`
	FullName         string    `db:"full_name"`
	Email            string    `db:"email"`
	PhoneNumber      string    `db:"phone_number"`
	IDType           string    `db:"id_type"`
	IDNumber         string    `db:"id_number"`
	StreetAddress    string    `db:"street_address"`
	City             string    `db:"city"`
	State            string    `db:"state"`
	PostalCode       string    `db:"postal_code"`
	RegistrationDate time.Time `db:"registration_date"`
	model.Metadata
}

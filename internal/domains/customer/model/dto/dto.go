package dto

import (
	"time"

	"ehotel/internal/domains/customer/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FullName      string `json:"full_name"      validate:"required,max=100"`
	Email         string `json:"email"          validate:"required,email,max=100"`
	PhoneNumber   string `json:"phone_number"   validate:"omitempty,max=30"`
	IDType        string `json:"id_type"        validate:"required,oneof=ssn passport driving_license"`
	IDNumber      string `json:"id_number"      validate:"required,max=50"`
	StreetAddress string `json:"street_address" validate:"required,max=150"`
	City          string `json:"city"           validate:"required,max=100"`
	State         string `json:"state"          validate:"required,max=100"`
	PostalCode    string `json:"postal_code"    validate:"required,max=20"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:               uuid.NewString(),
		FullName:         c.FullName,
		Email:            c.Email,
		PhoneNumber:      c.PhoneNumber,
		IDType:           c.IDType,
		IDNumber:         c.IDNumber,
		StreetAddress:    c.StreetAddress,
		City:             c.City,
		State:            c.State,
		PostalCode:       c.PostalCode,
		RegistrationDate: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FullName      string `db:"full_name"      json:"full_name"      validate:"omitempty,max=100"`
	Email         string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	PhoneNumber   string `db:"phone_number"   json:"phone_number"   validate:"omitempty,max=30"`
	IDType        string `db:"id_type"        json:"id_type"        validate:"omitempty,oneof=ssn passport driving_license"`
	IDNumber      string `db:"id_number"      json:"id_number"      validate:"omitempty,max=50"`
	StreetAddress string `db:"street_address" json:"street_address" validate:"omitempty,max=150"`
	City          string `db:"city"           json:"city"           validate:"omitempty,max=100"`
	State         string `db:"state"          json:"state"          validate:"omitempty,max=100"`
	PostalCode    string `db:"postal_code"    json:"postal_code"    validate:"omitempty,max=20"`
}

type CustomerResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	IDType           string `json:"id_type"`
	StreetAddress    string `json:"street_address"`
	City             string `json:"city"`
	State            string `json:"state"`
	PostalCode       string `json:"postal_code"`
	RegistrationDate string `json:"registration_date"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.IDType = model.IDType
	r.StreetAddress = model.StreetAddress
	r.City = model.City
	r.State = model.State
	r.PostalCode = model.PostalCode

	if !model.RegistrationDate.Equal(time.Time{}) {
		r.RegistrationDate = model.RegistrationDate.Format(constant.BookingDateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}

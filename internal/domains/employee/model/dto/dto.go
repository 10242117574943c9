package dto

import (
	"ehotel/internal/domains/employee/model"
	"ehotel/shared"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	HotelID       string `json:"hotel_id"       validate:"required,uuid4"`
	FullName      string `json:"full_name"      validate:"required,max=100"`
	Role          string `json:"role"           validate:"required,max=50"`
	SSN           string `json:"ssn"            validate:"required,max=20"`
	StreetAddress string `json:"street_address" validate:"required,max=150"`
	City          string `json:"city"           validate:"required,max=100"`
	State         string `json:"state"          validate:"required,max=100"`
	PostalCode    string `json:"postal_code"    validate:"required,max=20"`
}

func (c *CreateEmployeeRequest) ToModel(user string) model.Employee {
	return model.Employee{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		FullName:      c.FullName,
		Role:          c.Role,
		SSN:           c.SSN,
		StreetAddress: c.StreetAddress,
		City:          c.City,
		State:         c.State,
		PostalCode:    c.PostalCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	HotelID       string `db:"hotel_id"       json:"hotel_id"       validate:"omitempty,uuid4"`
	FullName      string `db:"full_name"      json:"full_name"      validate:"omitempty,max=100"`
	Role          string `db:"role"           json:"role"           validate:"omitempty,max=50"`
	StreetAddress string `db:"street_address" json:"street_address" validate:"omitempty,max=150"`
	City          string `db:"city"           json:"city"           validate:"omitempty,max=100"`
	State         string `db:"state"          json:"state"          validate:"omitempty,max=100"`
	PostalCode    string `db:"postal_code"    json:"postal_code"    validate:"omitempty,max=20"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	HotelID       string `json:"hotel_id"`
	FullName      string `json:"full_name"`
	Role          string `json:"role"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.FullName = model.FullName
	r.Role = model.Role
	r.StreetAddress = model.StreetAddress
	r.City = model.City
	r.State = model.State
	r.PostalCode = model.PostalCode
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}

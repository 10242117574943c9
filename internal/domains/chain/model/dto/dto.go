package dto

import (
	"ehotel/internal/domains/chain/model"
	"ehotel/shared"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateChainRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	StreetAddress string `json:"street_address" validate:"required,max=150"`
	City          string `json:"city"           validate:"required,max=100"`
	State         string `json:"state"          validate:"required,max=100"`
	PostalCode    string `json:"postal_code"    validate:"required,max=20"`
	Email         string `json:"email"          validate:"required,email,max=100"`
	PhoneNumber   string `json:"phone_number"   validate:"required,max=30"`
}

func (c *CreateChainRequest) ToModel(user string) model.HotelChain {
	return model.HotelChain{
		ID:            uuid.NewString(),
		Name:          c.Name,
		StreetAddress: c.StreetAddress,
		City:          c.City,
		State:         c.State,
		PostalCode:    c.PostalCode,
		Email:         c.Email,
		PhoneNumber:   c.PhoneNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateChainRequest struct {
	Name          string `db:"name"           json:"name"           validate:"omitempty,max=100"`
	StreetAddress string `db:"street_address" json:"street_address" validate:"omitempty,max=150"`
	City          string `db:"city"           json:"city"           validate:"omitempty,max=100"`
	State         string `db:"state"          json:"state"          validate:"omitempty,max=100"`
	PostalCode    string `db:"postal_code"    json:"postal_code"    validate:"omitempty,max=20"`
	Email         string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	PhoneNumber   string `db:"phone_number"   json:"phone_number"   validate:"omitempty,max=30"`
}

type ChainResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	gDto.Metadata
}

func (r *ChainResponse) FromModel(model model.HotelChain) {
	r.ID = model.ID
	r.Name = model.Name
	r.StreetAddress = model.StreetAddress
	r.City = model.City
	r.State = model.State
	r.PostalCode = model.PostalCode
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetChainsResponse struct {
	Chains    []ChainResponse `json:"chains"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetChainsResponse) FromModels(models []model.HotelChain, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Chains = make([]ChainResponse, len(models))
	for i, mod := range models {
		r.Chains[i].FromModel(mod)
	}
}

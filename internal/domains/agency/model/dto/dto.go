package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/agency/model"
	reservationModel "tourism/internal/domains/reservation/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
)

type CreateAgencyRequest struct {
	Name        string                                `json:"name"                  validate:"required,max=100"`
	PhoneNumber string                                `json:"phone_number"          validate:"required,phone"`
	Transport   string                                `json:"transport"             validate:"required,oneof=AIRPLANE BUS TRAIN SHIP"`
	Cost        float64                               `json:"cost"                  validate:"min=0"`
	Reservation *reservationModel.EmbeddedReservation `json:"reservation,omitempty"`
}

func (r *CreateAgencyRequest) ToModel(userID, reservationID string) model.Agency {
	return model.Agency{
		ID:            uuid.NewString(),
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		Transport:     r.Transport,
		Cost:          r.Cost,
		ReservationID: reservationID,
		OwnerID:       &userID,
		Metadata:      gModel.NewMetadata(userID),
	}
}

type UpdateAgencyRequest struct {
	Name        *string  `json:"name,omitempty"         db:"name"         validate:"omitempty,min=1,max=100"`
	PhoneNumber *string  `json:"phone_number,omitempty" db:"phone_number" validate:"omitempty,phone"`
	Transport   *string  `json:"transport,omitempty"    db:"transport"    validate:"omitempty,oneof=AIRPLANE BUS TRAIN SHIP"`
	Cost        *float64 `json:"cost,omitempty"         db:"cost"         validate:"omitempty,min=0"`
}

type AgencyResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Transport   string  `json:"transport"`
	Cost        float64 `json:"cost"`
	Reservation string  `json:"reservation"`
	gDto.Metadata
}

func (r *AgencyResponse) FromModel(model model.Agency) {
	r.ID = model.ID
	r.Name = model.Name
	r.PhoneNumber = model.PhoneNumber
	r.Transport = model.Transport
	r.Cost = model.Cost
	r.Reservation = model.ReservationID
	r.Metadata.FromModel(model.Metadata)
}

type GetAgenciesResponse struct {
	Agencies  []AgencyResponse `json:"agencies"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetAgenciesResponse) FromModels(models []model.Agency, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Agencies = FromModels(models)
}

func FromModels(models []model.Agency) []AgencyResponse {
	res := make([]AgencyResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

package dto

import (
	"github.com/google/uuid"

	reservationModel "tourism/internal/domains/reservation/model"
	"tourism/internal/domains/tour/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
)

type CreateTourRequest struct {
	Name        string                                `json:"name"                  validate:"required,max=100"`
	Facilities  string                                `json:"facilities"            validate:"max=500"`
	Description string                                `json:"description"           validate:"max=1000"`
	Transport   string                                `json:"transport"             validate:"required,oneof=AIRPLANE BUS TRAIN SHIP"`
	Cost        float64                               `json:"cost"                  validate:"min=0"`
	Reservation *reservationModel.EmbeddedReservation `json:"reservation,omitempty"`
}

func (r *CreateTourRequest) ToModel(userID, reservationID string) model.Tour {
	return model.Tour{
		ID:            uuid.NewString(),
		Name:          r.Name,
		Facilities:    r.Facilities,
		Description:   r.Description,
		Transport:     r.Transport,
		Cost:          r.Cost,
		ReservationID: reservationID,
		OwnerID:       &userID,
		Metadata:      gModel.NewMetadata(userID),
	}
}

type UpdateTourRequest struct {
	Name        *string  `json:"name,omitempty"        db:"name"        validate:"omitempty,min=1,max=100"`
	Facilities  *string  `json:"facilities,omitempty"  db:"facilities"  validate:"omitempty,max=500"`
	Description *string  `json:"description,omitempty" db:"description" validate:"omitempty,max=1000"`
	Transport   *string  `json:"transport,omitempty"   db:"transport"   validate:"omitempty,oneof=AIRPLANE BUS TRAIN SHIP"`
	Cost        *float64 `json:"cost,omitempty"        db:"cost"        validate:"omitempty,min=0"`
}

type TourResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Facilities  string  `json:"facilities"`
	Description string  `json:"description"`
	Transport   string  `json:"transport"`
	Cost        float64 `json:"cost"`
	Reservation string  `json:"reservation"`
	gDto.Metadata
}

func (r *TourResponse) FromModel(model model.Tour) {
	r.ID = model.ID
	r.Name = model.Name
	r.Facilities = model.Facilities
	r.Description = model.Description
	r.Transport = model.Transport
	r.Cost = model.Cost
	r.Reservation = model.ReservationID
	r.Metadata.FromModel(model.Metadata)
}

type GetToursResponse struct {
	Tours     []TourResponse `json:"tours"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Tours = FromModels(models)
}

func FromModels(models []model.Tour) []TourResponse {
	res := make([]TourResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/hotel/model"
	reservationModel "tourism/internal/domains/reservation/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
)

type CreateHotelRequest struct {
	Name        string                                `json:"name"                  validate:"required,max=100"`
	TypeHotel   string                                `json:"type_hotel"            validate:"required,oneof=HOTEL RESIDENCE APARTMENT MOTEL"`
	Address     string                                `json:"address"               validate:"max=300"`
	Facilities  string                                `json:"facilities"            validate:"max=500"`
	Star        *int                                  `json:"star,omitempty"        validate:"omitempty,min=1,max=5"`
	Cost        float64                               `json:"cost"                  validate:"min=0"`
	Reservation *reservationModel.EmbeddedReservation `json:"reservation,omitempty"`
}

func (r *CreateHotelRequest) ToModel(userID, reservationID string) model.Hotel {
	star := model.DefaultStar
	if r.Star != nil {
		star = *r.Star
	}

	return model.Hotel{
		ID:            uuid.NewString(),
		Name:          r.Name,
		TypeHotel:     r.TypeHotel,
		Address:       r.Address,
		Facilities:    r.Facilities,
		Star:          star,
		Cost:          r.Cost,
		ReservationID: &reservationID,
		OwnerID:       &userID,
		Metadata:      gModel.NewMetadata(userID),
	}
}

type UpdateHotelRequest struct {
	Name       *string  `json:"name,omitempty"       db:"name"       validate:"omitempty,min=1,max=100"`
	TypeHotel  *string  `json:"type_hotel,omitempty" db:"type_hotel" validate:"omitempty,oneof=HOTEL RESIDENCE APARTMENT MOTEL"`
	Address    *string  `json:"address,omitempty"    db:"address"    validate:"omitempty,max=300"`
	Facilities *string  `json:"facilities,omitempty" db:"facilities" validate:"omitempty,max=500"`
	Star       *int     `json:"star,omitempty"       db:"star"       validate:"omitempty,min=1,max=5"`
	Cost       *float64 `json:"cost,omitempty"       db:"cost"       validate:"omitempty,min=0"`
}

type HotelResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TypeHotel   string  `json:"type_hotel"`
	Address     string  `json:"address"`
	Facilities  string  `json:"facilities"`
	Star        int     `json:"star"`
	Cost        float64 `json:"cost"`
	Reservation *string `json:"reservation"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.TypeHotel = model.TypeHotel
	r.Address = model.Address
	r.Facilities = model.Facilities
	r.Star = model.Star
	r.Cost = model.Cost
	r.Reservation = model.ReservationID
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Hotels = FromModels(models)
}

func FromModels(models []model.Hotel) []HotelResponse {
	res := make([]HotelResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

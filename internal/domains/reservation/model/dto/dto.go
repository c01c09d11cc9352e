package dto

import (
	"github.com/google/uuid"

	agencyDto "tourism/internal/domains/agency/model/dto"
	hotelDto "tourism/internal/domains/hotel/model/dto"
	"tourism/internal/domains/reservation/model"
	tourDto "tourism/internal/domains/tour/model/dto"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
)

type CreateReservationRequest struct {
	Title  string  `json:"title"            validate:"required,max=150"`
	Detail *string `json:"detail,omitempty" validate:"omitempty,max=220"`
	Type   string  `json:"type,omitempty"   validate:"omitempty,oneof=HOTEL_AND_RESIDENCE TRAVEL_AGENCY TOURIST_TOUR NOTSET"`
}

func (r *CreateReservationRequest) ToModel(userID string) model.Reservation {
	reservationType := model.Type(r.Type)
	if reservationType == "" {
		reservationType = model.TypeNotSet
	}

	return model.Reservation{
		ID:       uuid.NewString(),
		Title:    r.Title,
		Detail:   r.Detail,
		Type:     reservationType,
		UserID:   userID,
		Metadata: gModel.NewMetadata(userID),
	}
}

type UpdateReservationRequest struct {
	Title  *string `json:"title,omitempty"  db:"title"  validate:"omitempty,min=1,max=150"`
	Detail *string `json:"detail,omitempty" db:"detail" validate:"omitempty,max=220"`
	Type   *string `json:"type,omitempty"   db:"type"   validate:"omitempty,oneof=HOTEL_AND_RESIDENCE TRAVEL_AGENCY TOURIST_TOUR NOTSET"`
}

type ReservationResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Title = model.Title
	r.Type = string(model.Type)
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationDetailResponse is a reservation together with every booking attached to it.
type ReservationDetailResponse struct {
	ReservationResponse
	Detail *string                    `json:"detail"`
	Hotels []hotelDto.HotelResponse   `json:"hotels"`
	Tours  []tourDto.TourResponse     `json:"tours"`
	Travel []agencyDto.AgencyResponse `json:"travel"`
}

func (r *ReservationDetailResponse) FromModel(model model.Reservation) {
	r.ReservationResponse.FromModel(model)
	r.Detail = model.Detail
	r.Hotels = []hotelDto.HotelResponse{}
	r.Tours = []tourDto.TourResponse{}
	r.Travel = []agencyDto.AgencyResponse{}
}

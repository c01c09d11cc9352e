package model

import "tourism/shared/model"

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID     = "id"
	FieldTitle  = "title"
	FieldDetail = "detail"
	FieldType   = "type"
	FieldUserID = "user_id"

	ConstraintUserID = "reservations_user_id_fkey"
)

// Type tags a reservation with the kind of booking last attached to it.
type Type string

const (
	TypeHotelAndResidence Type = "HOTEL_AND_RESIDENCE"
	TypeTravelAgency      Type = "TRAVEL_AGENCY"
	TypeTouristTour       Type = "TOURIST_TOUR"
	TypeNotSet            Type = "NOTSET"
)

type Reservation struct {
	ID     string  `db:"id"`
	Title  string  `db:"title"`
	Detail *string `db:"detail"`
	Type   Type    `db:"type"`
	UserID string  `db:"user_id"`
	model.Metadata
}

// EmbeddedUser is the optional owner reference inside an embedded reservation payload.
type EmbeddedUser struct {
	ID string `json:"id"`
}

// EmbeddedReservation is the reservation sub-payload a client may send with a booking.
type EmbeddedReservation struct {
	ID   string        `json:"id"             validate:"omitempty,uuid"`
	User *EmbeddedUser `json:"user,omitempty"`
}

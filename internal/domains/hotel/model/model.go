package model

import (
	"tourism/internal/domains/reservation/model"
	gModel "tourism/shared/model"
)

const (
	TableName  = "hotel_and_residences"
	EntityName = "hotel"

	FieldID            = "id"
	FieldName          = "name"
	FieldTypeHotel     = "type_hotel"
	FieldAddress       = "address"
	FieldFacilities    = "facilities"
	FieldStar          = "star"
	FieldCost          = "cost"
	FieldReservationID = "reservation_id"

	ConstraintReservationID = "hotel_and_residences_reservation_id_fkey"
	ConstraintStar          = "hotel_and_residences_star_check"

	DefaultStar = 1
)

type Hotel struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	TypeHotel     string  `db:"type_hotel"`
	Address       string  `db:"address"`
	Facilities    string  `db:"facilities"`
	Star          int     `db:"star"`
	Cost          float64 `db:"cost"`
	ReservationID *string `db:"reservation_id"`
	OwnerID       *string `db:"owner_id" table:"reservations" column:"user_id"`
	gModel.Metadata
}

// GetJoinQuery exposes the owning reservation so reads can be scoped to its user.
func (Hotel) GetJoinQuery() string {
	return "LEFT JOIN " + model.TableName + " ON " + model.TableName + ".id = " + TableName + "." + FieldReservationID
}

package model

import (
	"tourism/internal/domains/reservation/model"
	gModel "tourism/shared/model"
)

const (
	TableName  = "tourist_tours"
	EntityName = "tour"

	FieldID            = "id"
	FieldName          = "name"
	FieldFacilities    = "facilities"
	FieldDescription   = "description"
	FieldTransport     = "transport"
	FieldCost          = "cost"
	FieldReservationID = "reservation_id"

	ConstraintReservationID = "tourist_tours_reservation_id_fkey"
)

type Tour struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Facilities    string  `db:"facilities"`
	Description   string  `db:"description"`
	Transport     string  `db:"transport"`
	Cost          float64 `db:"cost"`
	ReservationID string  `db:"reservation_id"`
	OwnerID       *string `db:"owner_id" table:"reservations" column:"user_id"`
	gModel.Metadata
}

func (Tour) GetJoinQuery() string {
	return "JOIN " + model.TableName + " ON " + model.TableName + ".id = " + TableName + "." + FieldReservationID
}

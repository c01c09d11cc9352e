package model

import (
	"tourism/internal/domains/reservation/model"
	gModel "tourism/shared/model"
)

const (
	TableName  = "travel_agencies"
	EntityName = "agency"

	FieldID            = "id"
	FieldName          = "name"
	FieldPhoneNumber   = "phone_number"
	FieldTransport     = "transport"
	FieldCost          = "cost"
	FieldReservationID = "reservation_id"

	ConstraintReservationID = "travel_agencies_reservation_id_fkey"
)

type Agency struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	PhoneNumber   string  `db:"phone_number"`
	Transport     string  `db:"transport"`
	Cost          float64 `db:"cost"`
	ReservationID string  `db:"reservation_id"`
	OwnerID       *string `db:"owner_id" table:"reservations" column:"user_id"`
	gModel.Metadata
}

func (Agency) GetJoinQuery() string {
	return "JOIN " + model.TableName + " ON " + model.TableName + ".id = " + TableName + "." + FieldReservationID
}

package linker

import (
	"github.com/google/uuid"

	"tourism/internal/domains/reservation/model"
	gModel "tourism/shared/model"
)

type Action int

const (
	// ActionReuse retypes the reservation the user already owns.
	ActionReuse Action = iota + 1
	// ActionRelink attaches to the reservation id sent by the client.
	ActionRelink
	// ActionCreate inserts a new reservation owned by the user.
	ActionCreate
)

func (a Action) String() string {
	switch a {
	case ActionReuse:
		return "reuse"
	case ActionRelink:
		return "relink"
	case ActionCreate:
		return "create"
	default:
		return "unknown"
	}
}

// Input is everything the linking rule looks at.
type Input struct {
	UserID    string
	FirstName string
	Type      model.Type
	// Existing is the user's oldest reservation, nil when the user owns none.
	Existing *model.Reservation
	Embedded *model.EmbeddedReservation
}

// Decision is the outcome of the linking rule. Reservation holds the row to write for
// ActionReuse and ActionCreate; for ActionRelink only its ID is known.
type Decision struct {
	Action      Action
	Reservation model.Reservation
}

func (d Decision) ReservationID() string {
	return d.Reservation.ID
}

// Decide applies the linking rule, first match wins:
//  1. the user owns a reservation: reuse it, overwriting its type
//  2. the embedded payload names the user as owner: relink to its id, unchecked
//  3. otherwise create a reservation titled with the user's first name
//
// A user therefore holds one reservation whose type follows the latest booking.
func Decide(in Input) Decision {
	if in.Existing != nil && in.Existing.ID != "" {
		reservation := *in.Existing
		reservation.Type = in.Type

		return Decision{Action: ActionReuse, Reservation: reservation}
	}

	if embedded := in.Embedded; embedded != nil && embedded.ID != "" &&
		embedded.User != nil && embedded.User.ID == in.UserID {
		return Decision{Action: ActionRelink, Reservation: model.Reservation{ID: embedded.ID}}
	}

	return Decision{
		Action: ActionCreate,
		Reservation: model.Reservation{
			ID:       uuid.NewString(),
			Title:    in.FirstName,
			Type:     in.Type,
			UserID:   in.UserID,
			Metadata: gModel.NewMetadata(in.UserID),
		},
	}
}

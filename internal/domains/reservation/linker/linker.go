package linker

//go:generate go run go.uber.org/mock/mockgen -source=./linker.go -destination=../mocks/linker_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/reservation/model"
	"tourism/internal/domains/reservation/repository"
	userModel "tourism/internal/domains/user/model"
	userRepo "tourism/internal/domains/user/repository"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/timezone"
)

const oldestFirst = model.TableName + "." + constant.FieldCreatedAt + " ASC"

// AttachFunc stores the booking under reservationID inside the linking transaction.
type AttachFunc func(ctx context.Context, tx *sqlx.Tx, reservationID string) error

type LinkRequest struct {
	UserID   string
	Type     model.Type
	Embedded *model.EmbeddedReservation
	// Constraints names the booking table constraints for client errors.
	Constraints failure.Constraints
}

// Linker resolves the reservation a new booking belongs to and stores both atomically.
type Linker interface {
	Link(ctx context.Context, req LinkRequest, attach AttachFunc) (Decision, error)
}

type linkerImpl struct {
	db           *postgres.Connection
	reservations repository.Reservation
	users        userRepo.User
	otel         otel.Otel
}

func New(db *postgres.Connection, reservations repository.Reservation, users userRepo.User, otel otel.Otel) Linker {
	return &linkerImpl{
		db:           db,
		reservations: reservations,
		users:        users,
		otel:         otel,
	}
}

// Link runs the linking rule and attach in one serializable transaction. A per-user advisory
// lock serializes concurrent first bookings so a user never ends up with two reservations.
func (l *linkerImpl) Link(ctx context.Context, req LinkRequest, attach AttachFunc) (decision Decision, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Link")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := l.users.Get(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName),
		userModel.FieldID, userModel.FieldFirstName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return decision, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return decision, failure.NotFound("user not found")
	}

	txOptions := &sql.TxOptions{Isolation: sql.LevelSerializable}

	err = l.db.WithTx(ctx, txOptions, func(tx *sqlx.Tx) error {
		if err := postgres.LockTx(ctx, tx, req.UserID); err != nil {
			return err
		}

		existing, err := l.reservations.GetForUpdateTx(ctx, tx,
			gDto.And(shared.FilterByOwner(req.UserID, model.FieldUserID, model.TableName)), oldestFirst)
		if err != nil {
			return err
		}

		decision = Decide(Input{
			UserID:    req.UserID,
			FirstName: user.FirstName,
			Type:      req.Type,
			Existing:  &existing,
			Embedded:  req.Embedded,
		})

		if err := l.apply(ctx, tx, req.UserID, decision); err != nil {
			return err
		}

		return attach(ctx, tx, decision.ReservationID())
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("failed to link reservation")

		return decision, fmt.Errorf("failed to link reservation: %w", failure.FromDatabase(err, req.Constraints))
	}

	scope.SetAttributes(map[string]any{
		"reservation.action": decision.Action.String(),
		"reservation.id":     decision.ReservationID(),
	})

	return decision, nil
}

func (l *linkerImpl) apply(ctx context.Context, tx *sqlx.Tx, userID string, decision Decision) error {
	switch decision.Action {
	case ActionReuse:
		fields := map[string]any{
			model.FieldType:          decision.Reservation.Type,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: userID,
		}

		return l.reservations.UpdateTx(ctx, tx, fields, shared.FilterByID(decision.ReservationID(), model.FieldID, model.TableName))
	case ActionCreate:
		return l.reservations.InsertTx(ctx, tx, decision.Reservation)
	default:
		return nil
	}
}

package linker_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/infras/otel/mocks"
	"tourism/infras/postgres"
	"tourism/internal/domains/reservation/linker"
	"tourism/internal/domains/reservation/model"
	"tourism/internal/domains/reservation/repository"
	userMocks "tourism/internal/domains/user/mocks"
	userModel "tourism/internal/domains/user/model"
	"tourism/shared/failure"
)

const (
	lockQuery   = `SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`
	selectQuery = `SELECT .+ FROM reservations\s+WHERE \(reservations\.user_id = \$1\)\s+ORDER BY reservations\.created_at ASC LIMIT 1 FOR UPDATE OF reservations`
	updateQuery = `UPDATE reservations SET modified_at = \$1, modified_by = \$2, type = \$3\s+WHERE \(reservations\.id = \$4\)`
	insertQuery = `INSERT INTO reservations \(id, title, detail, type, user_id, created_at, modified_at, created_by, modified_by\) VALUES`
)

var reservationColumns = []string{"id", "title", "type", "user_id"}

type fixture struct {
	sql    sqlmock.Sqlmock
	users  *userMocks.MockUser
	linker linker.Linker
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"))
	otl := mocks.NewOtel()
	users := userMocks.NewMockUser(gomock.NewController(t))

	return fixture{
		sql:    mock,
		users:  users,
		linker: linker.New(conn, repository.New(conn, otl), users, otl),
	}
}

func (f fixture) expectUser() {
	f.users.EXPECT().
		Get(gomock.Any(), gomock.Any(), userModel.FieldID, userModel.FieldFirstName).
		Return(userModel.User{ID: "user-1", FirstName: "John"}, nil)
}

func (f fixture) expectLockedRead(rows *sqlmock.Rows) {
	f.sql.ExpectBegin()
	f.sql.ExpectExec(lockQuery).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 0))
	f.sql.ExpectQuery(selectQuery).WithArgs("user-1").WillReturnRows(rows)
}

type attachRecorder struct {
	ids []string
	err error
}

func (a *attachRecorder) attach(_ context.Context, tx *sqlx.Tx, reservationID string) error {
	if tx == nil {
		return errors.New("missing transaction")
	}

	a.ids = append(a.ids, reservationID)

	return a.err
}

func TestLink_CreatesFirstReservation(t *testing.T) {
	f := newFixture(t)
	f.expectUser()
	f.expectLockedRead(sqlmock.NewRows(reservationColumns))
	f.sql.ExpectExec(insertQuery).
		WithArgs(sqlmock.AnyArg(), "John", nil, "HOTEL_AND_RESIDENCE", "user-1", sqlmock.AnyArg(), sqlmock.AnyArg(), "user-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.sql.ExpectCommit()

	recorder := &attachRecorder{}

	decision, err := f.linker.Link(context.Background(), linker.LinkRequest{UserID: "user-1", Type: model.TypeHotelAndResidence}, recorder.attach)
	require.NoError(t, err)

	assert.Equal(t, linker.ActionCreate, decision.Action)
	assert.Equal(t, "John", decision.Reservation.Title)
	assert.Equal(t, []string{decision.ReservationID()}, recorder.ids)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLink_ReusesAndRetypesExistingReservation(t *testing.T) {
	f := newFixture(t)
	f.expectUser()
	f.expectLockedRead(sqlmock.NewRows(reservationColumns).AddRow("res-1", "John", "HOTEL_AND_RESIDENCE", "user-1"))
	f.sql.ExpectExec(updateQuery).
		WithArgs(sqlmock.AnyArg(), "user-1", "TOURIST_TOUR", "res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.sql.ExpectCommit()

	recorder := &attachRecorder{}

	decision, err := f.linker.Link(context.Background(), linker.LinkRequest{UserID: "user-1", Type: model.TypeTouristTour}, recorder.attach)
	require.NoError(t, err)

	assert.Equal(t, linker.ActionReuse, decision.Action)
	assert.Equal(t, model.TypeTouristTour, decision.Reservation.Type)
	assert.Equal(t, []string{"res-1"}, recorder.ids)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLink_RelinksEmbeddedReservation(t *testing.T) {
	f := newFixture(t)
	f.expectUser()
	f.expectLockedRead(sqlmock.NewRows(reservationColumns))
	f.sql.ExpectCommit()

	recorder := &attachRecorder{}
	req := linker.LinkRequest{
		UserID:   "user-1",
		Type:     model.TypeTravelAgency,
		Embedded: &model.EmbeddedReservation{ID: "res-9", User: &model.EmbeddedUser{ID: "user-1"}},
	}

	decision, err := f.linker.Link(context.Background(), req, recorder.attach)
	require.NoError(t, err)

	assert.Equal(t, linker.ActionRelink, decision.Action)
	assert.Equal(t, []string{"res-9"}, recorder.ids)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLink_DanglingReservationIsBadRequest(t *testing.T) {
	f := newFixture(t)
	f.expectUser()
	f.expectLockedRead(sqlmock.NewRows(reservationColumns))
	f.sql.ExpectRollback()

	recorder := &attachRecorder{err: &pq.Error{Code: "23503", Constraint: "tourist_tours_reservation_id_fkey"}}
	req := linker.LinkRequest{
		UserID:      "user-1",
		Type:        model.TypeTouristTour,
		Embedded:    &model.EmbeddedReservation{ID: "res-missing", User: &model.EmbeddedUser{ID: "user-1"}},
		Constraints: failure.Constraints{"tourist_tours_reservation_id_fkey": "reservation does not exist"},
	}

	_, err := f.linker.Link(context.Background(), req, recorder.attach)
	require.Error(t, err)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "reservation does not exist")
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLink_RetriesSerializationFailure(t *testing.T) {
	f := newFixture(t)
	f.expectUser()

	f.sql.ExpectBegin()
	f.sql.ExpectExec(lockQuery).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 0))
	f.sql.ExpectQuery(selectQuery).WithArgs("user-1").WillReturnError(&pq.Error{Code: "40001"})
	f.sql.ExpectRollback()

	f.expectLockedRead(sqlmock.NewRows(reservationColumns).AddRow("res-1", "John", "TRAVEL_AGENCY", "user-1"))
	f.sql.ExpectExec(updateQuery).
		WithArgs(sqlmock.AnyArg(), "user-1", "HOTEL_AND_RESIDENCE", "res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.sql.ExpectCommit()

	recorder := &attachRecorder{}

	decision, err := f.linker.Link(context.Background(), linker.LinkRequest{UserID: "user-1", Type: model.TypeHotelAndResidence}, recorder.attach)
	require.NoError(t, err)

	assert.Equal(t, linker.ActionReuse, decision.Action)
	assert.Equal(t, []string{"res-1"}, recorder.ids)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLink_UnknownUser(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

	_, err := f.linker.Link(context.Background(), linker.LinkRequest{UserID: "ghost", Type: model.TypeTouristTour}, (&attachRecorder{}).attach)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

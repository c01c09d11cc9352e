package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/infras/otel/mocks"
	"tourism/infras/postgres"
	"tourism/internal/domains/hotel/model"
	"tourism/internal/domains/hotel/repository"
	reservationModel "tourism/internal/domains/reservation/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
)

func TestHotelRepository_GetScopedByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	repo := repository.New(postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel())

	mock.ExpectPrepare(`SELECT hotel_and_residences\.id, .+, reservations\.user_id AS owner_id, .+ FROM hotel_and_residences `+
		`LEFT JOIN reservations ON reservations\.id = hotel_and_residences\.reservation_id\s+`+
		`WHERE \(\(hotel_and_residences\.id = \$1\) AND reservations\.user_id = \$2\)`).
		ExpectQuery().
		WithArgs("hotel-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "star", "reservation_id", "owner_id"}).
			AddRow("hotel-1", "Grand", 3, "res-1", "user-1"))

	hotel, err := repo.Get(context.Background(), gDto.And(
		shared.FilterByID("hotel-1", model.FieldID, model.TableName),
		shared.FilterByOwner("user-1", reservationModel.FieldUserID, reservationModel.TableName),
	))
	require.NoError(t, err)

	assert.Equal(t, "Grand", hotel.Name)
	assert.Equal(t, 3, hotel.Star)
	require.NotNil(t, hotel.OwnerID)
	assert.Equal(t, "user-1", *hotel.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_InsertSkipsJoinedColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	repo := repository.New(postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO hotel_and_residences \(id, name, type_hotel, address, facilities, star, cost, reservation_id, created_at, modified_at, created_by, modified_by\) VALUES`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sqlxDB := sqlx.NewDb(db, "postgres")

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	reservationID := "res-1"
	require.NoError(t, repo.InsertTx(context.Background(), tx, model.Hotel{ID: "hotel-1", Name: "Grand", Star: 1, ReservationID: &reservationID}))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

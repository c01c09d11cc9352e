package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/infras/otel/mocks"
	agencyMocks "tourism/internal/domains/agency/mocks"
	agencyModel "tourism/internal/domains/agency/model"
	hotelMocks "tourism/internal/domains/hotel/mocks"
	hotelModel "tourism/internal/domains/hotel/model"
	reservationMocks "tourism/internal/domains/reservation/mocks"
	"tourism/internal/domains/reservation/model"
	"tourism/internal/domains/reservation/model/dto"
	"tourism/internal/domains/reservation/service"
	tourMocks "tourism/internal/domains/tour/mocks"
	tourModel "tourism/internal/domains/tour/model"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const reservationID = "c0ffee00-1234-4abc-8def-0123456789ab"

type fixture struct {
	repo     *reservationMocks.MockReservation
	hotels   *hotelMocks.MockHotel
	tours    *tourMocks.MockTour
	agencies *agencyMocks.MockAgency
	svc      service.Reservation
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     reservationMocks.NewMockReservation(ctrl),
		hotels:   hotelMocks.NewMockHotel(ctrl),
		tours:    tourMocks.NewMockTour(ctrl),
		agencies: agencyMocks.NewMockAgency(ctrl),
	}
	f.svc = service.New(f.repo, f.hotels, f.tours, f.agencies, mocks.NewOtel())

	return f
}

func (f fixture) expectOwned(reservation model.Reservation) {
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
}

func (f fixture) expectNoBookings() {
	f.hotels.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]hotelModel.Hotel{}, nil)
	f.tours.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]tourModel.Tour{}, nil)
	f.agencies.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]agencyModel.Agency{}, nil)
}

func TestReservationService_Create(t *testing.T) {
	t.Run("owned by caller and typed NOTSET by default", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
			assert.Equal(t, "user-1", reservation.UserID)
			assert.Equal(t, model.TypeNotSet, reservation.Type)

			return nil
		})

		res, err := f.svc.Create(context.Background(), "user-1", dto.CreateReservationRequest{Title: "Summer"})
		require.NoError(t, err)

		assert.Equal(t, "Summer", res.Title)
		assert.Equal(t, string(model.TypeNotSet), res.Type)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23503", Constraint: model.ConstraintUserID})

		_, err := f.svc.Create(context.Background(), "ghost", dto.CreateReservationRequest{Title: "Summer"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.ErrorContains(t, err, "user does not exist")
	})
}

func TestReservationService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
			assert.Equal(t, "reservations.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(reservations.user_id = :owner_user_id)", where)
			assert.Equal(t, "user-1", args["owner_user_id"])

			return []model.Reservation{{ID: "b"}, {ID: "a"}}, nil
		})
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)

	res, err := f.svc.GetAll(context.Background(), "user-1", gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, res.Reservations, 2)
	assert.Equal(t, "b", res.Reservations[0].ID)
	assert.Equal(t, 2, res.TotalData)
}

func TestReservationService_Get(t *testing.T) {
	t.Run("detail includes attached bookings", func(t *testing.T) {
		f := newFixture(t)

		detail := "two nights"

		f.expectOwned(model.Reservation{ID: reservationID, Title: "John", Detail: &detail, Type: model.TypeTouristTour})
		f.hotels.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]hotelModel.Hotel, error) {
				assert.Equal(t, "hotel_and_residences.created_at", params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				where, _ := filter.GetWhereClause()
				assert.Equal(t, "(hotel_and_residences.reservation_id = :reservation_id)", where)

				return []hotelModel.Hotel{{ID: "h1", Name: "Grand"}}, nil
			})
		f.tours.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]tourModel.Tour{{ID: "t1"}, {ID: "t2"}}, nil)
		f.agencies.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]agencyModel.Agency{}, nil)

		res, err := f.svc.Get(context.Background(), "user-1", reservationID)
		require.NoError(t, err)

		assert.Equal(t, &detail, res.Detail)
		assert.Equal(t, string(model.TypeTouristTour), res.Type)
		assert.Len(t, res.Hotels, 1)
		assert.Len(t, res.Tours, 2)
		assert.NotNil(t, res.Travel)
		assert.Empty(t, res.Travel)
	})

	t.Run("not owned", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwned(model.Reservation{})

		_, err := f.svc.Get(context.Background(), "user-2", reservationID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("listing failure", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwned(model.Reservation{ID: reservationID})
		f.hotels.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.Get(context.Background(), "user-1", reservationID)

		assert.ErrorContains(t, err, "db down")
	})
}

func TestReservationService_Update(t *testing.T) {
	f := newFixture(t)

	title := "Winter"

	f.expectOwned(model.Reservation{ID: reservationID, Title: "Summer"})
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, &title, fields[model.FieldTitle])
			assert.NotContains(t, fields, model.FieldUserID)

			return nil
		})
	f.expectOwned(model.Reservation{ID: reservationID, Title: title})
	f.expectNoBookings()

	res, err := f.svc.Update(context.Background(), "user-1", reservationID, dto.UpdateReservationRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, title, res.Title)
}

func TestReservationService_Listings(t *testing.T) {
	t.Run("hotels", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwned(model.Reservation{ID: reservationID})
		f.hotels.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]hotelModel.Hotel{{ID: "h1"}}, nil)

		res, err := f.svc.GetHotels(context.Background(), "user-1", reservationID)
		require.NoError(t, err)

		assert.Len(t, res, 1)
	})

	t.Run("tours of someone else's reservation", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwned(model.Reservation{})

		_, err := f.svc.GetTours(context.Background(), "user-2", reservationID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("agencies with malformed id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetAgencies(context.Background(), "user-1", "not-a-uuid")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

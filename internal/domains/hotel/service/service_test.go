package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/infras/otel/mocks"
	hotelMocks "tourism/internal/domains/hotel/mocks"
	"tourism/internal/domains/hotel/model"
	"tourism/internal/domains/hotel/model/dto"
	"tourism/internal/domains/hotel/service"
	"tourism/internal/domains/reservation/linker"
	reservationMocks "tourism/internal/domains/reservation/mocks"
	reservationModel "tourism/internal/domains/reservation/model"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const (
	userID  = "user-1"
	hotelID = "3f1c2b9e-8a1d-4c55-9a57-0d4f3f1e2a10"
)

type fixture struct {
	repo   *hotelMocks.MockHotel
	linker *reservationMocks.MockLinker
	svc    service.Hotel
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:   hotelMocks.NewMockHotel(ctrl),
		linker: reservationMocks.NewMockLinker(ctrl),
	}
	f.svc = service.New(f.repo, f.linker, mocks.NewOtel())

	return f
}

// linkTo makes the mocked linker resolve to reservationID and run the attach step.
func (f fixture) linkTo(t *testing.T, reservationID string, action linker.Action) {
	f.linker.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req linker.LinkRequest, attach linker.AttachFunc) (linker.Decision, error) {
			assert.Equal(t, reservationModel.TypeHotelAndResidence, req.Type)
			assert.Equal(t, userID, req.UserID)
			assert.Contains(t, req.Constraints, model.ConstraintReservationID)

			if err := attach(ctx, &sqlx.Tx{}, reservationID); err != nil {
				return linker.Decision{}, err
			}

			return linker.Decision{Action: action, Reservation: reservationModel.Reservation{ID: reservationID}}, nil
		})
}

func intPtr(v int) *int {
	return &v
}

func TestHotelService_Create(t *testing.T) {
	t.Run("stores hotel under resolved reservation with default star", func(t *testing.T) {
		f := newFixture(t)
		f.linkTo(t, "res-1", linker.ActionCreate)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, hotel model.Hotel) error {
				require.NotNil(t, hotel.ReservationID)
				assert.Equal(t, "res-1", *hotel.ReservationID)
				assert.Equal(t, model.DefaultStar, hotel.Star)
				assert.Equal(t, userID, hotel.CreatedBy)

				return nil
			})

		res, err := f.svc.Create(context.Background(), userID, dto.CreateHotelRequest{Name: "Grand", TypeHotel: "HOTEL"})
		require.NoError(t, err)

		assert.Equal(t, "Grand", res.Name)
		require.NotNil(t, res.Reservation)
		assert.Equal(t, "res-1", *res.Reservation)
	})

	t.Run("keeps requested star", func(t *testing.T) {
		f := newFixture(t)
		f.linkTo(t, "res-1", linker.ActionReuse)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), userID, dto.CreateHotelRequest{Name: "Grand", TypeHotel: "MOTEL", Star: intPtr(4)})
		require.NoError(t, err)

		assert.Equal(t, 4, res.Star)
	})

	t.Run("passes linker failure through", func(t *testing.T) {
		f := newFixture(t)
		f.linker.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(linker.Decision{}, failure.BadRequestFromString("reservation does not exist"))

		_, err := f.svc.Create(context.Background(), userID, dto.CreateHotelRequest{Name: "Grand", TypeHotel: "HOTEL"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("insert failure aborts link", func(t *testing.T) {
		f := newFixture(t)
		f.linkTo(t, "res-1", linker.ActionCreate)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		_, err := f.svc.Create(context.Background(), userID, dto.CreateHotelRequest{Name: "Grand", TypeHotel: "HOTEL"})

		assert.ErrorContains(t, err, "boom")
	})
}

func TestHotelService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 2, Limit: 1, SortBy: "star", SortDir: gDto.SortDirAsc}

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, got gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Hotel, error) {
			assert.Equal(t, "hotel_and_residences.star", got.SortBy)
			assert.Equal(t, gDto.SortDirAsc, got.SortDir)

			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "reservations.user_id = :owner_user_id")
			assert.Equal(t, userID, args["owner_user_id"])

			return []model.Hotel{{ID: hotelID, Name: "Grand"}}, nil
		})
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)

	res, err := f.svc.GetAll(context.Background(), userID, params, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Len(t, res.Hotels, 1)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}

func TestHotelService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "own hotel",
			id:   hotelID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: hotelID, Name: "Grand"}, nil)
			},
		},
		{
			name: "someone else's hotel is not found",
			id:   hotelID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "malformed id is not found",
			id:       "42",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.Get(context.Background(), userID, tt.id)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, hotelID, res.ID)
		})
	}
}

func TestHotelService_Update(t *testing.T) {
	t.Run("updates by id after scoped read", func(t *testing.T) {
		f := newFixture(t)

		name := "Renamed"

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: hotelID, Name: "Grand"}, nil),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
					assert.Equal(t, &name, fields[model.FieldName])
					assert.Equal(t, userID, fields["modified_by"])

					where, _ := filter.GetWhereClause()
					assert.Equal(t, "(hotel_and_residences.id = :id)", where)

					return nil
				}),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: hotelID, Name: name}, nil),
		)

		res, err := f.svc.Update(context.Background(), userID, hotelID, dto.UpdateHotelRequest{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, name, res.Name)
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(context.Background(), userID, hotelID, dto.UpdateHotelRequest{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not owned", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := f.svc.Update(context.Background(), userID, hotelID, dto.UpdateHotelRequest{Star: intPtr(2)})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_Delete(t *testing.T) {
	t.Run("deletes own hotel", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: hotelID}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), userID, hotelID))
	})

	t.Run("not owned", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		err := f.svc.Delete(context.Background(), userID, hotelID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

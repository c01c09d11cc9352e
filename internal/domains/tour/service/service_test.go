package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/infras/otel/mocks"
	"tourism/internal/domains/reservation/linker"
	reservationMocks "tourism/internal/domains/reservation/mocks"
	reservationModel "tourism/internal/domains/reservation/model"
	tourMocks "tourism/internal/domains/tour/mocks"
	"tourism/internal/domains/tour/model"
	"tourism/internal/domains/tour/model/dto"
	"tourism/internal/domains/tour/service"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const tourID = "7a0e4c1d-2b3f-4e5a-8c9d-1f2e3d4c5b6a"

func TestTourService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := tourMocks.NewMockTour(ctrl)
	link := reservationMocks.NewMockLinker(ctrl)

	embedded := &reservationModel.EmbeddedReservation{ID: "res-7", User: &reservationModel.EmbeddedUser{ID: "user-1"}}

	link.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req linker.LinkRequest, attach linker.AttachFunc) (linker.Decision, error) {
			assert.Equal(t, reservationModel.TypeTouristTour, req.Type)
			assert.Same(t, embedded, req.Embedded)

			return linker.Decision{Action: linker.ActionRelink, Reservation: reservationModel.Reservation{ID: "res-7"}},
				attach(ctx, &sqlx.Tx{}, "res-7")
		})
	repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, tour model.Tour) error {
			assert.Equal(t, "res-7", tour.ReservationID)
			assert.Equal(t, "SHIP", tour.Transport)

			return nil
		})

	svc := service.New(repo, link, mocks.NewOtel())

	res, err := svc.Create(context.Background(), "user-1", dto.CreateTourRequest{
		Name:        "Island hopping",
		Transport:   "SHIP",
		Reservation: embedded,
	})
	require.NoError(t, err)

	assert.Equal(t, "res-7", res.Reservation)
	assert.Equal(t, "Island hopping", res.Name)
}

func TestTourService_ScopedAccess(t *testing.T) {
	tests := []struct {
		name string
		call func(svc service.Tour) error
	}{
		{
			name: "get",
			call: func(svc service.Tour) error {
				_, err := svc.Get(context.Background(), "user-2", tourID)

				return err
			},
		},
		{
			name: "update",
			call: func(svc service.Tour) error {
				cost := 10.5
				_, err := svc.Update(context.Background(), "user-2", tourID, dto.UpdateTourRequest{Cost: &cost})

				return err
			},
		},
		{
			name: "delete",
			call: func(svc service.Tour) error {
				return svc.Delete(context.Background(), "user-2", tourID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := tourMocks.NewMockTour(ctrl)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Tour, error) {
					_, args := filter.GetWhereClause()
					assert.Equal(t, "user-2", args["owner_user_id"])

					return model.Tour{}, nil
				})

			err := tt.call(service.New(repo, reservationMocks.NewMockLinker(ctrl), mocks.NewOtel()))

			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		})
	}
}

func TestTourService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := tourMocks.NewMockTour(ctrl)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Tour, error) {
			assert.Equal(t, "tourist_tours.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Tour{{ID: tourID}}, nil
		})
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	svc := service.New(repo, reservationMocks.NewMockLinker(ctrl), mocks.NewOtel())

	res, err := svc.GetAll(context.Background(), "user-1", gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password"}, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Len(t, res.Tours, 1)
	assert.Equal(t, 1, res.TotalPage)
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Tour=MockTourService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/reservation/linker"
	reservationModel "tourism/internal/domains/reservation/model"
	"tourism/internal/domains/tour/model"
	"tourism/internal/domains/tour/model/dto"
	"tourism/internal/domains/tour/repository"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

var constraints = failure.Constraints{
	model.ConstraintReservationID: "reservation does not exist",
}

type Tour interface {
	Create(ctx context.Context, userID string, req dto.CreateTourRequest) (dto.TourResponse, error)
	GetAll(ctx context.Context, userID string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetToursResponse, error)
	Get(ctx context.Context, userID, id string) (dto.TourResponse, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateTourRequest) (dto.TourResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo   repository.Tour
	linker linker.Linker
	otel   otel.Otel
}

func New(repo repository.Tour, linker linker.Linker, otel otel.Otel) Tour {
	return &serviceImpl{
		repo:   repo,
		linker: linker,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateTourRequest) (res dto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var tour model.Tour

	_, err = s.linker.Link(ctx, linker.LinkRequest{
		UserID:      userID,
		Type:        reservationModel.TypeTouristTour,
		Embedded:    req.Reservation,
		Constraints: constraints,
	}, func(ctx context.Context, tx *sqlx.Tx, reservationID string) error {
		tour = req.ToModel(userID, reservationID)

		return s.repo.InsertTx(ctx, tx, tour)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create tour")

		return res, fmt.Errorf("failed to create tour: %w", err)
	}

	res.FromModel(tour)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetToursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sortable(model.TableName, constant.DefaultValueSortBy, model.FieldName, model.FieldCost, constant.FieldCreatedAt)
	filter = filter.Add(shared.FilterByOwner(userID, reservationModel.FieldUserID, reservationModel.TableName))

	tours, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tours")

		return res, fmt.Errorf("failed to get tours: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tours")

		return res, fmt.Errorf("failed to count tours: %w", err)
	}

	res.FromModels(tours, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, id string) (res dto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tour, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(tour)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, userID, id string, req dto.UpdateTourRequest) (res dto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateTourRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.get(ctx, userID, id); err != nil {
		return res, err
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, userID), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update tour")

		return res, fmt.Errorf("failed to update tour: %w", failure.FromDatabase(err, constraints))
	}

	tour, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(tour)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, userID, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete tour")

		return fmt.Errorf("failed to delete tour: %w", err)
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, userID, id string) (model.Tour, error) {
	if uuid.Validate(id) != nil {
		return model.Tour{}, failure.NotFound("tour not found")
	}

	tour, err := s.repo.Get(ctx, gDto.And(
		shared.FilterByID(id, model.FieldID, model.TableName),
		shared.FilterByOwner(userID, reservationModel.FieldUserID, reservationModel.TableName),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour")

		return tour, fmt.Errorf("failed to get tour: %w", err)
	}

	if tour.ID == "" {
		return tour, failure.NotFound("tour not found")
	}

	return tour, nil
}

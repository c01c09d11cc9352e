package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Agency=MockAgencyService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/agency/model"
	"tourism/internal/domains/agency/model/dto"
	"tourism/internal/domains/agency/repository"
	"tourism/internal/domains/reservation/linker"
	reservationModel "tourism/internal/domains/reservation/model"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

var constraints = failure.Constraints{
	model.ConstraintReservationID: "reservation does not exist",
}

type Agency interface {
	Create(ctx context.Context, userID string, req dto.CreateAgencyRequest) (dto.AgencyResponse, error)
	GetAll(ctx context.Context, userID string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAgenciesResponse, error)
	Get(ctx context.Context, userID, id string) (dto.AgencyResponse, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateAgencyRequest) (dto.AgencyResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo   repository.Agency
	linker linker.Linker
	otel   otel.Otel
}

func New(repo repository.Agency, linker linker.Linker, otel otel.Otel) Agency {
	return &serviceImpl{
		repo:   repo,
		linker: linker,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateAgencyRequest) (res dto.AgencyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agency.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var agency model.Agency

	_, err = s.linker.Link(ctx, linker.LinkRequest{
		UserID:      userID,
		Type:        reservationModel.TypeTravelAgency,
		Embedded:    req.Reservation,
		Constraints: constraints,
	}, func(ctx context.Context, tx *sqlx.Tx, reservationID string) error {
		agency = req.ToModel(userID, reservationID)

		return s.repo.InsertTx(ctx, tx, agency)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create agency")

		return res, fmt.Errorf("failed to create agency: %w", err)
	}

	res.FromModel(agency)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAgenciesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agency.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sortable(model.TableName, constant.DefaultValueSortBy, model.FieldName, model.FieldTransport, model.FieldCost, constant.FieldCreatedAt)
	filter = filter.Add(shared.FilterByOwner(userID, reservationModel.FieldUserID, reservationModel.TableName))

	agencies, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get agencies")

		return res, fmt.Errorf("failed to get agencies: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count agencies")

		return res, fmt.Errorf("failed to count agencies: %w", err)
	}

	res.FromModels(agencies, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, id string) (res dto.AgencyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agency.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	agency, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(agency)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, userID, id string, req dto.UpdateAgencyRequest) (res dto.AgencyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agency.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateAgencyRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.get(ctx, userID, id); err != nil {
		return res, err
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, userID), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update agency")

		return res, fmt.Errorf("failed to update agency: %w", failure.FromDatabase(err, constraints))
	}

	agency, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(agency)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agency.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, userID, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete agency")

		return fmt.Errorf("failed to delete agency: %w", err)
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, userID, id string) (model.Agency, error) {
	if uuid.Validate(id) != nil {
		return model.Agency{}, failure.NotFound("agency not found")
	}

	agency, err := s.repo.Get(ctx, gDto.And(
		shared.FilterByID(id, model.FieldID, model.TableName),
		shared.FilterByOwner(userID, reservationModel.FieldUserID, reservationModel.TableName),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get agency")

		return agency, fmt.Errorf("failed to get agency: %w", err)
	}

	if agency.ID == "" {
		return agency, failure.NotFound("agency not found")
	}

	return agency, nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/hotel/model"
	"tourism/internal/domains/hotel/model/dto"
	"tourism/internal/domains/hotel/repository"
	"tourism/internal/domains/reservation/linker"
	reservationModel "tourism/internal/domains/reservation/model"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

var constraints = failure.Constraints{
	model.ConstraintReservationID: "reservation does not exist",
	model.ConstraintStar:          "star must be between 1 and 5",
}

var sortable = []string{model.FieldName, model.FieldStar, model.FieldCost, constant.FieldCreatedAt}

type Hotel interface {
	Create(ctx context.Context, userID string, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context, userID string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, userID, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateHotelRequest) (dto.HotelResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo   repository.Hotel
	linker linker.Linker
	otel   otel.Otel
}

func New(repo repository.Hotel, linker linker.Linker, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:   repo,
		linker: linker,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var hotel model.Hotel

	linkReq := linker.LinkRequest{
		UserID:      userID,
		Type:        reservationModel.TypeHotelAndResidence,
		Embedded:    req.Reservation,
		Constraints: constraints,
	}

	decision, err := s.linker.Link(ctx, linkReq, func(ctx context.Context, tx *sqlx.Tx, reservationID string) error {
		hotel = req.ToModel(userID, reservationID)

		return s.repo.InsertTx(ctx, tx, hotel)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	log.Debug().Str("action", decision.Action.String()).Str("reservation_id", decision.ReservationID()).Msg("hotel linked to reservation")

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sortable(model.TableName, constant.DefaultValueSortBy, sortable...)
	filter = filter.Add(shared.FilterByOwner(userID, reservationModel.FieldUserID, reservationModel.TableName))

	hotels, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	res.FromModels(hotels, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, userID, id string, req dto.UpdateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateHotelRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.get(ctx, userID, id); err != nil {
		return res, err
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, userID), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return res, fmt.Errorf("failed to update hotel: %w", failure.FromDatabase(err, constraints))
	}

	hotel, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, userID, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	return nil
}

// get reads a hotel through its reservation owner; other users' rows are reported missing.
func (s *serviceImpl) get(ctx context.Context, userID, id string) (model.Hotel, error) {
	if uuid.Validate(id) != nil {
		return model.Hotel{}, failure.NotFound("hotel not found")
	}

	filter := gDto.And(
		shared.FilterByID(id, model.FieldID, model.TableName),
		shared.FilterByOwner(userID, reservationModel.FieldUserID, reservationModel.TableName),
	)

	hotel, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return hotel, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == "" {
		return hotel, failure.NotFound("hotel not found")
	}

	return hotel, nil
}

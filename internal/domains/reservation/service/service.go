package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	agencyModel "tourism/internal/domains/agency/model"
	agencyDto "tourism/internal/domains/agency/model/dto"
	agencyRepo "tourism/internal/domains/agency/repository"
	hotelModel "tourism/internal/domains/hotel/model"
	hotelDto "tourism/internal/domains/hotel/model/dto"
	hotelRepo "tourism/internal/domains/hotel/repository"
	"tourism/internal/domains/reservation/model"
	"tourism/internal/domains/reservation/model/dto"
	"tourism/internal/domains/reservation/repository"
	tourModel "tourism/internal/domains/tour/model"
	tourDto "tourism/internal/domains/tour/model/dto"
	tourRepo "tourism/internal/domains/tour/repository"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

var constraints = failure.Constraints{
	model.ConstraintUserID: "user does not exist",
}

type Reservation interface {
	Create(ctx context.Context, userID string, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, userID string, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, userID, id string) (dto.ReservationDetailResponse, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateReservationRequest) (dto.ReservationDetailResponse, error)
	GetHotels(ctx context.Context, userID, id string) ([]hotelDto.HotelResponse, error)
	GetTours(ctx context.Context, userID, id string) ([]tourDto.TourResponse, error)
	GetAgencies(ctx context.Context, userID, id string) ([]agencyDto.AgencyResponse, error)
}

type serviceImpl struct {
	repo     repository.Reservation
	hotels   hotelRepo.Hotel
	tours    tourRepo.Tour
	agencies agencyRepo.Agency
	otel     otel.Otel
}

func New(repo repository.Reservation, hotels hotelRepo.Hotel, tours tourRepo.Tour, agencies agencyRepo.Agency, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:     repo,
		hotels:   hotels,
		tours:    tours,
		agencies: agencies,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation := req.ToModel(userID)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", failure.FromDatabase(err, constraints))
	}

	res.FromModel(reservation)

	return res, nil
}

// GetAll lists the user's reservations, newest first unless another order is requested.
func (s *serviceImpl) GetAll(ctx context.Context, userID string, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sortable(model.TableName, constant.DefaultValueSortBy, model.FieldTitle, model.FieldType, constant.FieldCreatedAt)
	filter := gDto.And(shared.FilterByOwner(userID, model.FieldUserID, model.TableName))

	reservations, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	res.FromModels(reservations, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, id string) (res dto.ReservationDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	return s.detail(ctx, reservation)
}

func (s *serviceImpl) Update(ctx context.Context, userID, id string, req dto.UpdateReservationRequest) (res dto.ReservationDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateReservationRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.get(ctx, userID, id); err != nil {
		return res, err
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, userID), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", failure.FromDatabase(err, constraints))
	}

	reservation, err := s.get(ctx, userID, id)
	if err != nil {
		return res, err
	}

	return s.detail(ctx, reservation)
}

func (s *serviceImpl) GetHotels(ctx context.Context, userID, id string) (res []hotelDto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetHotels")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, userID, id); err != nil {
		return res, err
	}

	return s.listHotels(ctx, id)
}

func (s *serviceImpl) GetTours(ctx context.Context, userID, id string) (res []tourDto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetTours")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, userID, id); err != nil {
		return res, err
	}

	return s.listTours(ctx, id)
}

func (s *serviceImpl) GetAgencies(ctx context.Context, userID, id string) (res []agencyDto.AgencyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAgencies")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, userID, id); err != nil {
		return res, err
	}

	return s.listAgencies(ctx, id)
}

func (s *serviceImpl) get(ctx context.Context, userID, id string) (model.Reservation, error) {
	if uuid.Validate(id) != nil {
		return model.Reservation{}, failure.NotFound("reservation not found")
	}

	reservation, err := s.repo.Get(ctx, gDto.And(
		shared.FilterByID(id, model.FieldID, model.TableName),
		shared.FilterByOwner(userID, model.FieldUserID, model.TableName),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return reservation, failure.NotFound("reservation not found")
	}

	return reservation, nil
}

func (s *serviceImpl) detail(ctx context.Context, reservation model.Reservation) (res dto.ReservationDetailResponse, err error) {
	res.FromModel(reservation)

	if res.Hotels, err = s.listHotels(ctx, reservation.ID); err != nil {
		return res, err
	}

	if res.Tours, err = s.listTours(ctx, reservation.ID); err != nil {
		return res, err
	}

	if res.Travel, err = s.listAgencies(ctx, reservation.ID); err != nil {
		return res, err
	}

	return res, nil
}

// attachedParams lists every booking of a reservation in creation order.
func attachedParams(table string) gDto.QueryParams {
	return gDto.QueryParams{SortBy: table + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}
}

func (s *serviceImpl) listHotels(ctx context.Context, reservationID string) ([]hotelDto.HotelResponse, error) {
	hotels, err := s.hotels.GetAll(ctx, attachedParams(hotelModel.TableName),
		shared.FilterByID(reservationID, hotelModel.FieldReservationID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation hotels")

		return nil, fmt.Errorf("failed to get reservation hotels: %w", err)
	}

	return hotelDto.FromModels(hotels), nil
}

func (s *serviceImpl) listTours(ctx context.Context, reservationID string) ([]tourDto.TourResponse, error) {
	tours, err := s.tours.GetAll(ctx, attachedParams(tourModel.TableName),
		shared.FilterByID(reservationID, tourModel.FieldReservationID, tourModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation tours")

		return nil, fmt.Errorf("failed to get reservation tours: %w", err)
	}

	return tourDto.FromModels(tours), nil
}

func (s *serviceImpl) listAgencies(ctx context.Context, reservationID string) ([]agencyDto.AgencyResponse, error) {
	agencies, err := s.agencies.GetAll(ctx, attachedParams(agencyModel.TableName),
		shared.FilterByID(reservationID, agencyModel.FieldReservationID, agencyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation agencies")

		return nil, fmt.Errorf("failed to get reservation agencies: %w", err)
	}

	return agencyDto.FromModels(agencies), nil
}

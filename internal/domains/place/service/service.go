package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Place=MockPlaceService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/infras/s3"
	"tourism/internal/domains/place/model"
	"tourism/internal/domains/place/model/dto"
	"tourism/internal/domains/place/repository"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/geo"
	"tourism/shared/upload"
)

const (
	cachePrefix       = "place"
	cacheListPlaces   = cachePrefix + ":list"
	cacheGetPlace     = cachePrefix + ":get"
	cacheListLocation = cachePrefix + ":locations"
	cacheGetLocation  = cachePrefix + ":location"
)

var errDuplicatePoint = failure.Conflict("a location already exists at this point")

type Place interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPlacesResponse, error)
	Get(ctx context.Context, id string) (dto.PlaceResponse, error)
	GetLocations(ctx context.Context, kind model.Kind, params gDto.QueryParams, bbox *geo.BBox) (dto.LocationCollection, error)
	GetLocation(ctx context.Context, kind model.Kind, id string) (dto.LocationFeature, error)
	Create(ctx context.Context, adminID string, req dto.CreatePlaceRequest) (dto.PlaceResponse, error)
	AddLocation(ctx context.Context, adminID, placeID string, kind model.Kind, req dto.AddLocationRequest) (dto.LocationFeature, error)
}

type serviceImpl struct {
	repo      repository.Place
	locations repository.Locations
	cfg       *config.Config
	cache     cache.RedisCache
	storage   s3.S3
	otel      otel.Otel
}

func New(repo repository.Place, locations repository.Locations, cfg *config.Config, cache cache.RedisCache, storage s3.S3, otel otel.Otel) Place {
	return &serviceImpl{
		repo:      repo,
		locations: locations,
		cfg:       cfg,
		cache:     cache,
		storage:   storage,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPlacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sortable(model.TableName, constant.DefaultValueSortBy, model.FieldName, model.FieldType, constant.FieldCreatedAt)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheListPlaces, params, filter)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	places, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get places")

		return res, fmt.Errorf("failed to get places: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count places")

		return res, fmt.Errorf("failed to count places: %w", err)
	}

	res.FromModels(places, total, params.Limit)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PlaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPlace, id)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	place, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(place)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// GetLocations lists locations of one kind as a GeoJSON feature collection, optionally
// restricted to a bounding box.
func (s *serviceImpl) GetLocations(ctx context.Context, kind model.Kind, params gDto.QueryParams, bbox *geo.BBox) (res dto.LocationCollection, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.GetLocations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo, err := s.location(kind)
	if err != nil {
		return res, err
	}

	params.Sortable(kind.TableName(), constant.DefaultValueSortBy, constant.FieldCreatedAt)

	filter := gDto.FilterGroup{}
	if bbox != nil {
		filter = bbox.Filter(kind.TableName())
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheListLocation, string(kind)), params, filter)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	locations, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	total, err := repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to count locations")

		return res, fmt.Errorf("failed to count locations: %w", err)
	}

	res = dto.NewLocationCollection(locations, total, params.Limit, s.storage.ObjectURL)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetLocation(ctx context.Context, kind model.Kind, id string) (res dto.LocationFeature, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.GetLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo, err := s.location(kind)
	if err != nil {
		return res, err
	}

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("location not found")
	}

	cacheKey := shared.BuildCacheKey(cacheGetLocation, string(kind), id)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	location, err := repo.Get(ctx, shared.FilterByID(id, model.FieldID, kind.TableName()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get location")

		return res, fmt.Errorf("failed to get location: %w", err)
	}

	if location.ID == "" {
		return res, failure.NotFound("location not found")
	}

	res = dto.NewLocationFeature(location, s.storage.ObjectURL)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, adminID string, req dto.CreatePlaceRequest) (res dto.PlaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	place := req.ToModel(adminID)

	if err = s.repo.Insert(ctx, place); err != nil {
		log.Error().Err(err).Msg("failed to create place")

		return res, fmt.Errorf("failed to create place: %w", failure.FromDatabase(err, failure.Constraints{
			model.ConstraintAdminID: "admin does not exist",
		}))
	}

	s.invalidate(ctx)
	res.FromModel(place)

	return res, nil
}

// AddLocation stores an image at a point and attaches it to a place. Shopping and tourism
// locations may not share a point.
func (s *serviceImpl) AddLocation(ctx context.Context, adminID, placeID string, kind model.Kind, req dto.AddLocationRequest) (res dto.LocationFeature, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.AddLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo, err := s.location(kind)
	if err != nil {
		return res, err
	}

	if err = req.Point.Validate(); err != nil {
		return res, failure.BadRequest(err)
	}

	if err = req.Image.Validate(s.cfg.App.Upload.MaxSizeMB); err != nil {
		return res, err
	}

	if _, err = s.get(ctx, placeID); err != nil {
		return res, err
	}

	if kind.UniquePoint() {
		taken, err := repo.Exist(ctx, gDto.And(
			gDto.Filter{Field: geo.FieldLatitude, Table: kind.TableName(), Operator: gDto.FilterOperatorEq, Value: req.Point.Latitude},
			gDto.Filter{Field: geo.FieldLongitude, Table: kind.TableName(), Operator: gDto.FilterOperatorEq, Value: req.Point.Longitude},
		))
		if err != nil {
			log.Error().Err(err).Msg("failed to check location point")

			return res, fmt.Errorf("failed to check location point: %w", err)
		}

		if taken {
			return res, errDuplicatePoint
		}
	}

	key := req.Image.Key(upload.CategoryPlaces)

	if err = s.storage.UploadFileBytes(ctx, key, req.Image.ContentType, req.Image.Data); err != nil {
		log.Error().Err(err).Msg("failed to upload place image")

		return res, fmt.Errorf("failed to upload place image: %w", err)
	}

	location := req.ToModel(adminID, placeID, key)

	if err = repo.Insert(ctx, location); err != nil {
		log.Error().Err(err).Msg("failed to create location")

		go func() {
			if err := s.storage.DeleteFile(context.WithoutCancel(ctx), key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to delete place image")
			}
		}()

		return res, fmt.Errorf("failed to create location: %w", failure.FromDatabase(err, failure.Constraints{
			kind.PointConstraint(): errDuplicatePoint.Error(),
			kind.PlaceConstraint(): "place not found",
		}))
	}

	s.invalidate(ctx)

	return dto.NewLocationFeature(location, s.storage.ObjectURL), nil
}

func (s *serviceImpl) location(kind model.Kind) (repository.Location, error) {
	repo, ok := s.locations[kind]
	if !ok {
		return nil, failure.NotFound("unknown place kind " + string(kind))
	}

	return repo, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Place, error) {
	if uuid.Validate(id) != nil {
		return model.Place{}, failure.NotFound("place not found")
	}

	place, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get place")

		return place, fmt.Errorf("failed to get place: %w", err)
	}

	if place.ID == "" {
		return place, failure.NotFound("place not found")
	}

	return place, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save place cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix)
}

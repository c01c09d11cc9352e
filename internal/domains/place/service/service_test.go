package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/otel/mocks"
	s3Mocks "tourism/infras/s3/mocks"
	placeMocks "tourism/internal/domains/place/mocks"
	"tourism/internal/domains/place/model"
	"tourism/internal/domains/place/model/dto"
	"tourism/internal/domains/place/repository"
	"tourism/internal/domains/place/service"
	cacheMocks "tourism/shared/cache/mocks"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/geo"
	"tourism/shared/upload"
)

const placeID = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	places    *placeMocks.MockPlace
	locations map[model.Kind]*placeMocks.MockLocation
	cache     *cacheMocks.MockRedisCache
	storage   *s3Mocks.MockS3
	svc       service.Place
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.App.Upload.MaxSizeMB = 1

	f := fixture{
		places:    placeMocks.NewMockPlace(ctrl),
		locations: map[model.Kind]*placeMocks.MockLocation{},
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		storage:   s3Mocks.NewMockS3(ctrl),
	}

	repos := repository.Locations{}
	for _, kind := range model.Kinds {
		f.locations[kind] = placeMocks.NewMockLocation(ctrl)
		repos[kind] = f.locations[kind]
	}

	f.svc = service.New(f.places, repos, cfg, f.cache, f.storage, mocks.NewOtel())

	f.storage.EXPECT().ObjectURL(gomock.Any()).DoAndReturn(func(key string) string {
		return "https://cdn.example.com/" + key
	}).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func pngImage() upload.File {
	return upload.File{Name: "view.png", ContentType: "image/png", Data: []byte("png")}
}

func TestPlaceService_GetLocations(t *testing.T) {
	t.Run("renders geojson inside bbox", func(t *testing.T) {
		f := newFixture(t)

		bbox := geo.BBox{MinLon: 10, MinLat: 40, MaxLon: 20, MaxLat: 50}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.locations[model.KindShopping].EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Location, error) {
				assert.Equal(t, "shopping_places.created_at", params.SortBy)

				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "shopping_places.longitude >= :bbox_min_lon")
				assert.InDelta(t, 50, args["bbox_max_lat"], 0.0001)

				return []model.Location{{ID: "loc-1", Latitude: 45.5, Longitude: 12.25, Image: "uploads/places/a.png", PlaceID: placeID}}, nil
			})
		f.locations[model.KindShopping].EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		res, err := f.svc.GetLocations(context.Background(), model.KindShopping, gDto.QueryParams{Page: 1, Limit: 10}, &bbox)
		require.NoError(t, err)

		assert.Equal(t, geo.TypeFeatureCollection, res.Type)
		require.Len(t, res.Features, 1)

		feature := res.Features[0]
		assert.Equal(t, [2]float64{12.25, 45.5}, feature.Geometry.Coordinates)
		assert.Equal(t, "https://cdn.example.com/uploads/places/a.png", feature.Properties.Image)
		assert.Equal(t, placeID, feature.Properties.PlaceID)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.GetLocations(context.Background(), model.KindTourism, gDto.QueryParams{}, nil)

		assert.NoError(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetLocations(context.Background(), model.Kind("museum"), gDto.QueryParams{}, nil)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPlaceService_GetLocation(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "place:location:recreational:"+placeID, gomock.Any()).Return(errCacheMiss)
	f.locations[model.KindRecreational].EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Location{}, nil)

	_, err := f.svc.GetLocation(context.Background(), model.KindRecreational, placeID)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestPlaceService_Create(t *testing.T) {
	f := newFixture(t)

	f.places.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, place model.Place) error {
		require.NotNil(t, place.AdminID)
		assert.Equal(t, "admin-1", *place.AdminID)
		assert.Equal(t, model.TypeNotSet, place.Type)

		return nil
	})

	res, err := f.svc.Create(context.Background(), "admin-1", dto.CreatePlaceRequest{Name: "Old Town"})
	require.NoError(t, err)

	assert.Equal(t, "Old Town", res.Name)
}

func TestPlaceService_AddLocation(t *testing.T) {
	point := geo.Point{Latitude: 35.7, Longitude: 51.4}

	t.Run("stores image under places and attaches location", func(t *testing.T) {
		f := newFixture(t)

		var storedKey string

		f.places.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Place{ID: placeID}, nil)
		f.locations[model.KindTourism].EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), "image/png", []byte("png")).
			DoAndReturn(func(_ context.Context, key, _ string, _ []byte) error {
				storedKey = key

				return nil
			})
		f.locations[model.KindTourism].EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, location model.Location) error {
				assert.Equal(t, storedKey, location.Image)
				assert.Equal(t, placeID, location.PlaceID)

				return nil
			})

		res, err := f.svc.AddLocation(context.Background(), "admin-1", placeID, model.KindTourism,
			dto.AddLocationRequest{Point: point, Image: pngImage()})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(storedKey, "uploads/places/"))
		assert.True(t, strings.HasSuffix(storedKey, ".png"))
		assert.Equal(t, [2]float64{51.4, 35.7}, res.Geometry.Coordinates)
	})

	t.Run("duplicate point on shopping", func(t *testing.T) {
		f := newFixture(t)
		f.places.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Place{ID: placeID}, nil)
		f.locations[model.KindShopping].EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.AddLocation(context.Background(), "admin-1", placeID, model.KindShopping,
			dto.AddLocationRequest{Point: point, Image: pngImage()})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("concurrent duplicate caught by constraint", func(t *testing.T) {
		f := newFixture(t)
		f.places.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Place{ID: placeID}, nil)
		f.locations[model.KindShopping].EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.locations[model.KindShopping].EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505", Constraint: model.KindShopping.PointConstraint()})
		f.storage.EXPECT().DeleteFile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := f.svc.AddLocation(context.Background(), "admin-1", placeID, model.KindShopping,
			dto.AddLocationRequest{Point: point, Image: pngImage()})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("recreational points may repeat", func(t *testing.T) {
		f := newFixture(t)
		f.places.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Place{ID: placeID}, nil)
		f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.locations[model.KindRecreational].EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.AddLocation(context.Background(), "admin-1", placeID, model.KindRecreational,
			dto.AddLocationRequest{Point: point, Image: pngImage()})

		assert.NoError(t, err)
	})

	t.Run("rejects unsupported image type", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.AddLocation(context.Background(), "admin-1", placeID, model.KindRecreational,
			dto.AddLocationRequest{Point: point, Image: upload.File{Name: "doc.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown place", func(t *testing.T) {
		f := newFixture(t)
		f.places.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Place{}, nil)

		_, err := f.svc.AddLocation(context.Background(), "admin-1", placeID, model.KindTourism,
			dto.AddLocationRequest{Point: point, Image: pngImage()})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

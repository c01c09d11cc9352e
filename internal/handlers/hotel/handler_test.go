package hotel_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/infras/otel/mocks"
	hotelMocks "tourism/internal/domains/hotel/mocks"
	"tourism/internal/domains/hotel/model/dto"
	"tourism/internal/handlers/hotel"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const hotelID = "0f8d9a3e-4b5c-4d6e-8f70-a1b2c3d4e5f6"

func newRouter(t *testing.T) (*hotelMocks.MockHotelService, http.Handler) {
	t.Helper()

	svc := hotelMocks.NewMockHotelService(gomock.NewController(t))
	handler := hotel.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, "user-1")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return svc, router
}

func TestCreateHotel(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req dto.CreateHotelRequest) (dto.HotelResponse, error) {
			assert.Equal(t, "Seaside", req.Name)

			return dto.HotelResponse{ID: hotelID, Name: req.Name}, nil
		})

	body := `{"name":"Seaside","type_hotel":"HOTEL","star":4,"cost":120}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hotelandresidence/", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), hotelID)
}

func TestCreateHotel_InvalidStar(t *testing.T) {
	_, router := newRouter(t)

	body := `{"name":"Seaside","type_hotel":"HOTEL","star":7,"cost":120}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hotelandresidence/", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHotels_NameFilter(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, "%sea%", args["name"])

			return dto.GetHotelsResponse{}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotelandresidence/?name=sea", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetHotelByID_NotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "user-1", hotelID).Return(dto.HotelResponse{}, failure.NotFound("hotel not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotelandresidence/"+hotelID, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteHotel(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "user-1", hotelID).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/hotelandresidence/"+hotelID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

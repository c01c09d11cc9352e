package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/infras/otel/mocks"
	authMocks "tourism/internal/domains/auth/mocks"
	"tourism/internal/domains/auth/model/dto"
	"tourism/internal/handlers/auth"
	"tourism/shared/failure"
)

func newRouter(t *testing.T) (*authMocks.MockAuth, http.Handler) {
	t.Helper()

	svc := authMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestToken(t *testing.T) {
	t.Run("first login", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Token(gomock.Any(), dto.TokenRequest{Email: "ana@example.com", Password: "secret"}).
			Return(dto.TokenResponse{Token: "access", RefreshToken: "refresh", FirstTimeLogin: true}, nil)

		body := `{"email":"ana@example.com","password":"secret"}`

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"first_time_login":true`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Token(gomock.Any(), gomock.Any()).
			Return(dto.TokenResponse{}, failure.BadRequestFromString("Unable to authenticate with provided credentials"))

		body := `{"email":"ana@example.com","password":"wrong"}`

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unable to authenticate")
	})

	t.Run("missing password", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader(`{"email":"ana@example.com"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "refresh"}).
		Return(dto.RefreshTokenResponse{Token: "access-2", RefreshToken: "refresh-2"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/token/refresh", strings.NewReader(`{"refresh_token":"refresh"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-2")
}

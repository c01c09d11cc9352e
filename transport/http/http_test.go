package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/config"
	jwtMocks "tourism/infras/jwt/mocks"
	otelMocks "tourism/infras/otel/mocks"
	"tourism/permissions"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/transport/http/middleware"
	"tourism/transport/http/router"
)

func newServer(t *testing.T) *HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	otel := otelMocks.NewOtel()

	app := middleware.NewAppMiddleware(otel, cfg, cacheMocks.NewMockRedisCache(ctrl))
	auth := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otel, permissions.Get(), cfg)

	return New(cfg, router.New(router.DomainHandlers{}), app, auth)
}

func TestHealth(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	server.setState(ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVER PREPARING TO SHUT DOWN")
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reservations/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

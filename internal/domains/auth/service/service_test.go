package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/jwt"
	jwtMocks "tourism/infras/jwt/mocks"
	"tourism/infras/otel/mocks"
	s3Mocks "tourism/infras/s3/mocks"
	"tourism/internal/domains/auth/model/dto"
	"tourism/internal/domains/auth/service"
	userMocks "tourism/internal/domains/user/mocks"
	userModel "tourism/internal/domains/user/model"
	"tourism/shared/constant"
	"tourism/shared/failure"
	"tourism/shared/password"
)

var tokenPair = &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}

func newUser(t *testing.T, firstTimeLogin bool) userModel.User {
	t.Helper()

	hashed, err := password.Hash("secret")
	require.NoError(t, err)

	return userModel.User{
		ID:             "user-1",
		Email:          "john@example.com",
		Password:       hashed,
		FirstName:      "John",
		Level:          constant.RoleUser,
		FirstTimeLogin: firstTimeLogin,
		Active:         true,
	}
}

func TestAuthService_Token(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.TokenRequest
		setupMock func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT)
		wantCode  int
		wantFirst bool
	}{
		{
			name: "first login reports true and clears the flag",
			req:  dto.TokenRequest{Email: "john@EXAMPLE.com", Password: "secret"},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newUser(t, true), nil)
				repo.EXPECT().ConsumeFirstLogin(gomock.Any(), "user-1").Return(true, nil)
				jwtSvc.EXPECT().GenerateTokenPair(gomock.Any(), "user-1", "john@example.com", constant.RoleUser).Return(tokenPair, nil)
			},
			wantFirst: true,
		},
		{
			name: "later login reports false",
			req:  dto.TokenRequest{Email: "john@example.com", Password: "secret"},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newUser(t, false), nil)
				jwtSvc.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair, nil)
			},
			wantFirst: false,
		},
		{
			name: "concurrent login that lost the flag reports false",
			req:  dto.TokenRequest{Email: "john@example.com", Password: "secret"},
			setupMock: func(repo *userMocks.MockUser, jwtSvc *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newUser(t, true), nil)
				repo.EXPECT().ConsumeFirstLogin(gomock.Any(), "user-1").Return(false, nil)
				jwtSvc.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair, nil)
			},
			wantFirst: false,
		},
		{
			name: "unknown email",
			req:  dto.TokenRequest{Email: "nobody@example.com", Password: "secret"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			req:  dto.TokenRequest{Email: "john@example.com", Password: "wrong"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newUser(t, true), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.TokenRequest{Email: "john@example.com", Password: "secret"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := userMocks.NewMockUser(ctrl)
			jwtSvc := jwtMocks.NewMockJWT(ctrl)
			storage := s3Mocks.NewMockS3(ctrl)
			storage.EXPECT().ObjectURL(gomock.Any()).Return("").AnyTimes()

			tt.setupMock(repo, jwtSvc)

			svc := service.New(repo, &config.Config{}, mocks.NewOtel(), jwtSvc, storage)

			res, err := svc.Token(context.Background(), tt.req)
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.Token)
			assert.Equal(t, "John", res.FirstName)
			assert.Equal(t, tt.wantFirst, res.FirstTimeLogin)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)

	jwtSvc := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(userMocks.NewMockUser(ctrl), &config.Config{}, mocks.NewOtel(), jwtSvc, s3Mocks.NewMockS3(ctrl))

	jwtSvc.EXPECT().RefreshTokens(gomock.Any(), "good").Return(tokenPair, nil)
	jwtSvc.EXPECT().RefreshTokens(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})
	require.NoError(t, err)
	assert.Equal(t, "refresh", res.RefreshToken)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

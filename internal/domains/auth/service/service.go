package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/jwt"
	"tourism/infras/otel"
	"tourism/infras/s3"
	"tourism/internal/domains/auth/model/dto"
	userModel "tourism/internal/domains/user/model"
	userRepo "tourism/internal/domains/user/repository"
	"tourism/shared"
	"tourism/shared/constant"
	"tourism/shared/failure"
	"tourism/shared/password"
)

var errInvalidCredentials = failure.BadRequestFromString("Unable to authenticate with provided credentials")

type Auth interface {
	Token(ctx context.Context, req dto.TokenRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	storage    s3.S3
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, storage s3.S3) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		storage:    storage,
	}
}

// Token exchanges credentials for a token pair. The stored first login flag is cleared on the
// first successful exchange, and only that response reports first_time_login as true.
func (s *serviceImpl) Token(ctx context.Context, req dto.TokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Token")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := userModel.NormalizeEmail(req.Email)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(email, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", email).Msg("token request with unknown email")

		return res, errInvalidCredentials
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", email).Msg("token request with wrong password")

		return res, errInvalidCredentials
	}

	if !user.Active {
		return res, errInvalidCredentials
	}

	if user.FirstTimeLogin {
		user.FirstTimeLogin, err = s.userRepo.ConsumeFirstLogin(ctx, user.ID)
		if err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to clear first login flag")

			return res, fmt.Errorf("failed to clear first login flag: %w", err)
		}
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.FromUser(user)
	res.Image = s.storage.ObjectURL(res.Image)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

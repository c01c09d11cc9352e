package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/infras/s3"
	"tourism/internal/domains/user/model"
	"tourism/internal/domains/user/model/dto"
	"tourism/internal/domains/user/repository"
	"tourism/shared"
	"tourism/shared/cache"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/password"
	"tourism/shared/upload"
)

const cacheGetUser = "user:get"

var (
	errEmailTaken = failure.BadRequestFromString("user with this email already exists")
	errPhoneTaken = failure.BadRequestFromString("user with this phone number already exists")

	constraints = failure.Constraints{
		model.ConstraintEmail:       "user with this email already exists",
		model.ConstraintPhoneNumber: "user with this phone number already exists",
	}
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest, image *upload.File) (dto.UserResponse, error)
	Me(ctx context.Context, userID string) (dto.UserResponse, error)
	Update(ctx context.Context, userID string, req dto.UpdateUserRequest) (dto.UserResponse, error)
	UpdateImage(ctx context.Context, userID string, image upload.File) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo    repository.User
	cfg     *config.Config
	cache   cache.RedisCache
	storage s3.S3
	otel    otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, storage s3.S3, otel otel.Otel) User {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest, image *upload.File) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := req.ToModel("")

	if err = s.checkUnique(ctx, "", &user.Email, user.PhoneNumber); err != nil {
		return res, err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = hashedPassword

	if image != nil {
		key, err := s.storeImage(ctx, *image)
		if err != nil {
			return res, err
		}

		user.Image = &key
	}

	if err = s.repo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		if user.Image != nil {
			s.deleteImage(ctx, *user.Image)
		}

		return res, fmt.Errorf("failed to create user: %w", failure.FromDatabase(err, constraints))
	}

	return s.toResponse(user), nil
}

func (s *serviceImpl) Me(ctx context.Context, userID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, userID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.get(ctx, userID)
	if err != nil {
		return res, err
	}

	res = s.toResponse(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, userID string, req dto.UpdateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateUserRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if req.Email != nil {
		email := model.NormalizeEmail(*req.Email)
		req.Email = &email
	}

	if err = s.checkUnique(ctx, userID, req.Email, req.PhoneNumber); err != nil {
		return res, err
	}

	if req.Password != nil {
		hashedPassword, err := password.Hash(*req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return res, fmt.Errorf("failed to hash password: %w", err)
		}

		req.Password = &hashedPassword
	}

	if err = s.update(ctx, userID, shared.TransformFields(req, userID)); err != nil {
		return res, err
	}

	user, err := s.get(ctx, userID)
	if err != nil {
		return res, err
	}

	return s.toResponse(user), nil
}

func (s *serviceImpl) UpdateImage(ctx context.Context, userID string, image upload.File) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.get(ctx, userID)
	if err != nil {
		return res, err
	}

	key, err := s.storeImage(ctx, image)
	if err != nil {
		return res, err
	}

	if err = s.update(ctx, userID, shared.TransformFields(dto.UpdateImageRequest{Image: &key}, userID)); err != nil {
		s.deleteImage(ctx, key)

		return res, err
	}

	if user.Image != nil {
		s.deleteImage(ctx, *user.Image)
	}

	user.Image = &key

	return s.toResponse(user), nil
}

func (s *serviceImpl) get(ctx context.Context, userID string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return user, failure.NotFound("user not found")
	}

	return user, nil
}

func (s *serviceImpl) update(ctx context.Context, userID string, fields map[string]any) error {
	if err := s.repo.Update(ctx, fields, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", failure.FromDatabase(err, constraints))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete user from cache")
		}
	}()

	return nil
}

// checkUnique rejects an email or phone number already held by a user other than exceptID.
func (s *serviceImpl) checkUnique(ctx context.Context, exceptID string, email, phone *string) error {
	checks := []struct {
		field string
		value *string
		fail  error
	}{
		{field: model.FieldEmail, value: email, fail: errEmailTaken},
		{field: model.FieldPhoneNumber, value: phone, fail: errPhoneTaken},
	}

	for _, check := range checks {
		if check.value == nil || *check.value == "" {
			continue
		}

		filter := shared.FilterByID(*check.value, check.field, model.TableName)
		if exceptID != "" {
			filter = filter.Add(gDto.Filter{
				ArgName:  "except_id",
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorNotEq,
				Value:    exceptID,
				Table:    model.TableName,
			})
		}

		exists, err := s.repo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Str("field", check.field).Msg("failed to check if user exists")

			return fmt.Errorf("failed to check if user exists: %w", err)
		}

		if exists {
			return check.fail
		}
	}

	return nil
}

func (s *serviceImpl) storeImage(ctx context.Context, image upload.File) (string, error) {
	if err := image.Validate(s.cfg.App.Upload.MaxSizeMB); err != nil {
		return "", err
	}

	key := image.Key(upload.CategoryUser)

	if err := s.storage.UploadFileBytes(ctx, key, image.ContentType, image.Data); err != nil {
		log.Error().Err(err).Msg("failed to upload user image")

		return "", fmt.Errorf("failed to upload user image: %w", err)
	}

	return key, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, key string) {
	go func() {
		if err := s.storage.DeleteFile(context.WithoutCancel(ctx), key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to delete user image")
		}
	}()
}

func (s *serviceImpl) toResponse(user model.User) dto.UserResponse {
	var res dto.UserResponse

	res.FromModel(user)
	res.Image = s.storage.ObjectURL(res.Image)

	return res
}

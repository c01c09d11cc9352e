package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/otel/mocks"
	s3Mocks "tourism/infras/s3/mocks"
	userMocks "tourism/internal/domains/user/mocks"
	"tourism/internal/domains/user/model"
	"tourism/internal/domains/user/model/dto"
	"tourism/internal/domains/user/service"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/shared/failure"
	"tourism/shared/password"
	"tourism/shared/upload"
)

type fixture struct {
	repo    *userMocks.MockUser
	cache   *cacheMocks.MockRedisCache
	storage *s3Mocks.MockS3
	svc     service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Upload.MaxSizeMB = 1

	f := fixture{
		repo:    userMocks.NewMockUser(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, f.storage, mocks.NewOtel())

	f.storage.EXPECT().ObjectURL(gomock.Any()).DoAndReturn(func(key string) string {
		if key == "" {
			return ""
		}

		return "https://cdn.example.com/" + key
	}).AnyTimes()

	return f
}

func strPtr(s string) *string {
	return &s
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		image     *upload.File
		setupMock func(f fixture)
		wantCode  int
		check     func(t *testing.T, res dto.UserResponse)
	}{
		{
			name: "successful creation normalizes email",
			req: dto.CreateUserRequest{
				Email:       "John@EXAMPLE.com",
				Password:    "secret",
				FirstName:   "John",
				PhoneNumber: strPtr("+12345678901"),
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user model.User) error {
					assert.Equal(t, "John@example.com", user.Email)
					assert.True(t, user.FirstTimeLogin)
					assert.NoError(t, password.Verify("secret", user.Password))
					assert.Nil(t, user.Image)

					return nil
				})
			},
			check: func(t *testing.T, res dto.UserResponse) {
				assert.Equal(t, "John@example.com", res.Email)
				assert.True(t, res.FirstTimeLogin)
				assert.Empty(t, res.Image)
			},
		},
		{
			name: "duplicate email",
			req:  dto.CreateUserRequest{Email: "john@example.com", Password: "secret"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate phone",
			req:  dto.CreateUserRequest{Email: "john@example.com", Password: "secret", PhoneNumber: strPtr("123456789")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "stores image under the user category",
			req:   dto.CreateUserRequest{Email: "john@example.com", Password: "secret"},
			image: &upload.File{Name: "me.png", ContentType: "image/png", Data: []byte("png")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), "image/png", []byte("png")).Return(nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user model.User) error {
					require.NotNil(t, user.Image)
					assert.Regexp(t, `^uploads/user/[0-9a-f-]{36}\.png$`, *user.Image)

					return nil
				})
			},
			check: func(t *testing.T, res dto.UserResponse) {
				assert.Regexp(t, `^https://cdn\.example\.com/uploads/user/`, res.Image)
			},
		},
		{
			name:     "rejects non image upload",
			req:      dto.CreateUserRequest{Email: "john@example.com", Password: "secret"},
			image:    &upload.File{Name: "notes.txt", ContentType: "text/plain", Data: []byte("x")},
			wantCode: http.StatusBadRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "unique violation on insert",
			req:  dto.CreateUserRequest{Email: "john@example.com", Password: "secret"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: model.ConstraintEmail})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  dto.CreateUserRequest{Email: "john@example.com", Password: "secret"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req, tt.image)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestUserService_Me(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.UserResponse)
			require.True(t, ok)
			res.ID = "user-1"

			return nil
		})

		res, err := f.svc.Me(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
	})

	t.Run("cache miss reads repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", FirstName: "John", Image: strPtr("uploads/user/a.png")}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()

		res, err := f.svc.Me(context.Background(), "user-1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "John", res.FirstName)
		assert.Equal(t, "https://cdn.example.com/uploads/user/a.png", res.Image)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.Me(context.Background(), "user-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(context.Background(), "user-1", dto.UpdateUserRequest{})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			hashed, ok := fields[model.FieldPassword].(*string)
			require.True(t, ok)
			assert.NotEqual(t, "new-secret", *hashed)
			assert.NoError(t, password.Verify("new-secret", *hashed))
			assert.Equal(t, "user-1", fields["modified_by"])

			return nil
		})
		f.cache.EXPECT().Delete(gomock.Any(), "user:get:user-1").Return(nil).AnyTimes()
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)

		_, err := f.svc.Update(context.Background(), "user-1", dto.UpdateUserRequest{Password: strPtr("new-secret")})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Update(context.Background(), "user-1", dto.UpdateUserRequest{Email: strPtr("jane@Example.com")})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestUserService_UpdateImage(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", Image: strPtr("uploads/user/old.png")}, nil)
	f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).Return(nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.storage.EXPECT().DeleteFile(gomock.Any(), "uploads/user/old.png").Return(nil)

	res, err := f.svc.UpdateImage(context.Background(), "user-1", upload.File{Name: "new.jpg", ContentType: "image/jpeg", Data: []byte("jpg")})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Regexp(t, `uploads/user/[0-9a-f-]{36}\.jpg$`, res.Image)
}

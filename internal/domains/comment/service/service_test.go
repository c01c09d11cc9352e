package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/infras/otel/mocks"
	commentMocks "tourism/internal/domains/comment/mocks"
	"tourism/internal/domains/comment/model"
	"tourism/internal/domains/comment/model/dto"
	"tourism/internal/domains/comment/service"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

const commentID = "5e6f7a8b-9c0d-4e1f-a2b3-c4d5e6f7a8b9"

func newService(t *testing.T) (*commentMocks.MockComment, service.Comment) {
	t.Helper()

	repo := commentMocks.NewMockComment(gomock.NewController(t))

	return repo, service.New(repo, mocks.NewOtel())
}

func TestCommentService_Create(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, comment model.Comment) error {
		assert.Equal(t, "user-1", comment.UserID)
		assert.Equal(t, "great trip", comment.Feedback)
		assert.False(t, comment.CreatedAt.IsZero())

		return nil
	})

	res, err := svc.Create(context.Background(), "user-1", dto.CreateCommentRequest{Feedback: "great trip"})
	require.NoError(t, err)

	assert.Equal(t, "user-1", res.User)
	assert.NotEmpty(t, res.CreatedAt)
}

func TestCommentService_GetAll(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Comment, error) {
			assert.Equal(t, "comments.created_at", params.SortBy)

			_, args := filter.GetWhereClause()
			assert.Equal(t, "user-1", args["owner_user_id"])

			return []model.Comment{{ID: commentID, Feedback: "nice", UserID: "user-1"}}, nil
		})
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	res, err := svc.GetAll(context.Background(), "user-1", gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, res.Comments, 1)
	assert.Equal(t, "nice", res.Comments[0].Feedback)
}

func TestCommentService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *commentMocks.MockComment)
		wantCode  int
	}{
		{
			name: "own comment",
			id:   commentID,
			setupMock: func(repo *commentMocks.MockComment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "someone else's comment",
			id:   commentID,
			setupMock: func(repo *commentMocks.MockComment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "malformed id",
			id:       "1",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := svc.Delete(context.Background(), "user-1", tt.id)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Comment=MockCommentService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/comment/model"
	"tourism/internal/domains/comment/model/dto"
	"tourism/internal/domains/comment/repository"
	"tourism/shared"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
)

var constraints = failure.Constraints{
	model.ConstraintUserID: "user does not exist",
}

type Comment interface {
	Create(ctx context.Context, userID string, req dto.CreateCommentRequest) (dto.CommentResponse, error)
	GetAll(ctx context.Context, userID string, params gDto.QueryParams) (dto.GetCommentsResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo repository.Comment
	otel otel.Otel
}

func New(repo repository.Comment, otel otel.Otel) Comment {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	comment := req.ToModel(userID)

	if err = s.repo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", failure.FromDatabase(err, constraints))
	}

	res.FromModel(comment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string, params gDto.QueryParams) (res dto.GetCommentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sortable(model.TableName, constant.DefaultValueSortBy, constant.FieldCreatedAt)
	filter := gDto.And(shared.FilterByOwner(userID, model.FieldUserID, model.TableName))

	comments, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return res, fmt.Errorf("failed to get comments: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count comments")

		return res, fmt.Errorf("failed to count comments: %w", err)
	}

	res.FromModels(comments, total, params.Limit)

	return res, nil
}

// Delete removes one of the caller's comments. Comments of other users are reported missing.
func (s *serviceImpl) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return failure.NotFound("comment not found")
	}

	filter := gDto.And(
		shared.FilterByID(id, model.FieldID, model.TableName),
		shared.FilterByOwner(userID, model.FieldUserID, model.TableName),
	)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check comment")

		return fmt.Errorf("failed to check comment: %w", err)
	}

	if !exists {
		return failure.NotFound("comment not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete comment")

		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/comment/model/dto"
	"tourism/internal/domains/comment/service"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/validator"
	"tourism/transport/http/middleware"
	"tourism/transport/http/response"
)

type Handler struct {
	service service.Comment
	otel    otel.Otel
}

func New(service service.Comment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users/comments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetComments)
		routerGroup.Post("/", handler.CreateComment)
		routerGroup.Delete("/{id}", handler.DeleteComment)
	})
}

// @Summary Get own comments
// @Tags Comment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCommentsResponse] "List of comments"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/comments [get]
// @Security BearerAuth
func (handler *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	comments, err := handler.service.GetAll(ctx, middleware.UserID(ctx), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get comments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, comments)
}

// @Summary Leave a comment
// @Tags Comment
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} response.Data[dto.CommentResponse] "Comment created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/comments [post]
// @Security BearerAuth
func (handler *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
	defer scope.End()

	req := dto.CreateCommentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	comment, err := handler.service.Create(ctx, middleware.UserID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create comment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, comment)
}

// @Summary Delete own comment
// @Tags Comment
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} response.Message "Comment deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/comments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteComment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, middleware.UserID(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete comment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Comment deleted successfully")
}

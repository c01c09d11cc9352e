package user

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/user/model/dto"
	"tourism/internal/domains/user/service"
	"tourism/shared/constant"
	"tourism/shared/failure"
	"tourism/shared/upload"
	"tourism/shared/validator"
	"tourism/transport/http/middleware"
	"tourism/transport/http/response"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateUser)
		routerGroup.Get("/me", handler.Me)
		routerGroup.Patch("/me", handler.UpdateMe)
		routerGroup.Put("/me", handler.UpdateMe)
		routerGroup.Post("/me/image", handler.UpdateImage)
	})
}

// CreateUser registers a new account.
// @Summary Create a new user
// @Description Create an account from JSON (image as base64 data uri) or multipart form data (image as file).
// @Tags User
// @Accept json,mpfd
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Data[dto.UserResponse] "User created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/create [post]
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req, image, err := decodeCreateRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Create(ctx, req, image)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User created successfully")

	response.WithJSON(writer, http.StatusCreated, user)
}

// Me returns the profile of the authenticated user.
// @Summary Get own profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "User details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	user, err := handler.service.Me(ctx, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateMe updates the profile of the authenticated user. A new password is hashed before it is stored.
// @Summary Update own profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Data[dto.UserResponse] "User updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [patch]
// @Router /v1/users/me [put]
// @Security BearerAuth
func (handler *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMe")
	defer scope.End()

	req := dto.UpdateUserRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID := middleware.UserID(ctx)

	user, err := handler.service.Update(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User updated successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateImage replaces the profile image of the authenticated user.
// @Summary Upload own profile image
// @Tags User
// @Accept mpfd
// @Produce json
// @Param image formData file true "Profile image"
// @Success 200 {object} response.Data[dto.UserResponse] "Image updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/image [post]
// @Security BearerAuth
func (handler *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err))
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	image, err := formImage(r)
	if err == nil && image == nil {
		err = failure.BadRequestFromString("image is required")
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read image")

		response.WithError(w, err)

		return
	}

	user, err := handler.service.UpdateImage(ctx, middleware.UserID(ctx), *image)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

func decodeCreateRequest(r *http.Request) (dto.CreateUserRequest, *upload.File, error) {
	req := dto.CreateUserRequest{}

	if !strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		if err := validator.Validate(r.Body, &req); err != nil {
			return req, nil, err
		}

		if req.Image == "" {
			return req, nil, nil
		}

		image, err := upload.FromDataURI(req.Image)
		if err != nil {
			return req, nil, err
		}

		return req, &image, nil
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, nil, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err))
	}

	req.Email = r.FormValue("email")
	req.Password = r.FormValue("password")
	req.FirstName = r.FormValue("first_name")
	req.LastName = r.FormValue("last_name")
	req.Address = r.FormValue("address")
	req.CardInfo = r.FormValue("card_info")

	if phone := r.FormValue("phone_number"); phone != "" {
		req.PhoneNumber = &phone
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, nil, err
	}

	image, err := formImage(r)

	return req, image, err
}

// formImage reads the optional image part of a parsed multipart form.
func formImage(r *http.Request) (*upload.File, error) {
	file, fileHeader, err := r.FormFile(constant.FormImage)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}

	if err != nil {
		return nil, failure.BadRequest(fmt.Errorf("failed to read image: %w", err))
	}

	file.Close()

	image, err := upload.FromMultipart(fileHeader)
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	return &image, nil
}

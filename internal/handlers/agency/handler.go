package agency

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/agency/model"
	"tourism/internal/domains/agency/model/dto"
	"tourism/internal/domains/agency/service"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/validator"
	"tourism/transport/http/middleware"
	"tourism/transport/http/response"
)

type Handler struct {
	service service.Agency
	otel    otel.Otel
}

func New(service service.Agency, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/travelagency", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAgency)
		routerGroup.Get("/", handler.GetAgencies)
		routerGroup.Get("/{id}", handler.GetAgencyByID)
		routerGroup.Patch("/{id}", handler.UpdateAgency)
		routerGroup.Delete("/{id}", handler.DeleteAgency)
	})
}

// CreateAgency books a travel agency, linking it to the caller's reservation.
// @Summary Create a travel agency booking
// @Description Create a travel agency booking. The booking is attached to the reservation chosen by the linking rule.
// @Tags Agency
// @Accept json
// @Produce json
// @Param request body dto.CreateAgencyRequest true "Create Agency Request"
// @Success 201 {object} response.Data[dto.AgencyResponse] "Travel agency created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travelagency [post]
// @Security BearerAuth
func (handler *Handler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAgency")
	defer scope.End()

	req := dto.CreateAgencyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID := middleware.UserID(ctx)

	agency, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create travel agency")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Travel agency created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, agency)
}

// GetAgencies lists the caller's travel agencies.
// @Summary Get own travel agencies
// @Tags Agency
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetAgenciesResponse] "List of travel agencies"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travelagency [get]
// @Security BearerAuth
func (handler *Handler) GetAgencies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAgencies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup = filterGroup.Add(gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	agencies, err := handler.service.GetAll(ctx, middleware.UserID(ctx), queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get travel agencies")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, agencies)
}

// GetAgencyByID returns one of the caller's travel agencies.
// @Summary Get own travel agency by ID
// @Tags Agency
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} response.Data[dto.AgencyResponse] "Travel agency details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travelagency/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAgencyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAgencyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	agency, err := handler.service.Get(ctx, middleware.UserID(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get travel agency by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, agency)
}

// UpdateAgency updates one of the caller's travel agencies.
// @Summary Update own travel agency by ID
// @Tags Agency
// @Accept json
// @Produce json
// @Param id path string true "Agency ID"
// @Param request body dto.UpdateAgencyRequest true "Update Agency Request"
// @Success 200 {object} response.Data[dto.AgencyResponse] "Travel agency updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travelagency/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAgency")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAgencyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID := middleware.UserID(ctx)

	agency, err := handler.service.Update(ctx, userID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update travel agency")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Travel agency updated successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, agency)
}

// DeleteAgency deletes one of the caller's travel agencies.
// @Summary Delete own travel agency by ID
// @Tags Agency
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} response.Message "Travel agency deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travelagency/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAgency")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	userID := middleware.UserID(ctx)

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete travel agency")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Travel agency deleted successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Travel agency deleted successfully")
}

package place

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourism/infras/otel"
	"tourism/internal/domains/place/model"
	"tourism/internal/domains/place/model/dto"
	"tourism/internal/domains/place/service"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	"tourism/shared/failure"
	"tourism/shared/geo"
	"tourism/shared/upload"
	"tourism/shared/validator"
	"tourism/transport/http/middleware"
	"tourism/transport/http/response"
)

const (
	queryInBBox    = "in_bbox"
	formLatitude   = "latitude"
	formLongitude  = "longitude"
	kindsPattern   = "recreational|shopping|tourism"
	kindRouteParam = "{" + constant.RequestParamKind + ":" + kindsPattern + "}"
)

type Handler struct {
	service service.Place
	otel    otel.Otel
}

func New(service service.Place, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the place routes. Kind listings match a fixed set of names, so
// /places/shopping never reaches the place lookup by id.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/places", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPlaces)
		routerGroup.Post("/", handler.CreatePlace)
		routerGroup.Get("/"+kindRouteParam, handler.GetLocations)
		routerGroup.Get("/"+kindRouteParam+"/{id}", handler.GetLocationByID)
		routerGroup.Get("/{id}", handler.GetPlaceByID)
		routerGroup.Post("/{id}/{kind}", handler.AddLocation)
	})
}

// GetPlaces lists places.
// @Summary Get places
// @Tags Place
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Data[dto.GetPlacesResponse] "List of places"
// @Failure 500 {object} response.Error
// @Router /v1/places [get]
func (handler *Handler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlaces")
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

	if placeType := r.URL.Query().Get(model.FieldType); placeType != "" {
		filterGroup = filterGroup.Add(gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    strings.ToUpper(placeType),
			Table:    model.TableName,
		})
	}

	places, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get places")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, places)
}

// GetPlaceByID returns a place.
// @Summary Get a place by ID
// @Tags Place
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} response.Data[dto.PlaceResponse] "Place details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{id} [get]
func (handler *Handler) GetPlaceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlaceByID")
	defer scope.End()

	place, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get place by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, place)
}

// GetLocations lists the located images of one kind as a GeoJSON feature collection.
// @Summary Get place locations of a kind
// @Description in_bbox restricts the result to minLon,minLat,maxLon,maxLat.
// @Tags Place
// @Produce json
// @Param kind path string true "Location kind" Enums(recreational, shopping, tourism)
// @Param in_bbox query string false "Bounding box"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.LocationCollection "GeoJSON feature collection"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{kind} [get]
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	kind, err := kindFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	var bbox *geo.BBox

	if value := r.URL.Query().Get(queryInBBox); value != "" {
		box, err := geo.ParseBBox(value)
		if err != nil {
			err = failure.BadRequest(err)
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse bounding box")

			response.WithError(w, err)

			return
		}

		bbox = &box
	}

	locations, err := handler.service.GetLocations(ctx, kind, queryParams, bbox)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to get locations")

		response.WithError(w, err)

		return
	}

	response.WithGeoJSON(w, http.StatusOK, locations)
}

// GetLocationByID returns one located image as a GeoJSON feature.
// @Summary Get a place location by ID
// @Tags Place
// @Produce json
// @Param kind path string true "Location kind" Enums(recreational, shopping, tourism)
// @Param id path string true "Location ID"
// @Success 200 {object} dto.LocationFeature "GeoJSON feature"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{kind}/{id} [get]
func (handler *Handler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocationByID")
	defer scope.End()

	kind, err := kindFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	location, err := handler.service.GetLocation(ctx, kind, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to get location by ID")

		response.WithError(w, err)

		return
	}

	response.WithGeoJSON(w, http.StatusOK, location)
}

// CreatePlace creates a place. Admin only.
// @Summary Create a place @Admin
// @Tags Place
// @Accept json
// @Produce json
// @Param request body dto.CreatePlaceRequest true "Create Place Request"
// @Success 201 {object} response.Data[dto.PlaceResponse] "Place created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places [post]
// @Security BearerAuth
func (handler *Handler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlace")
	defer scope.End()

	req := dto.CreatePlaceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	adminID := middleware.UserID(ctx)

	place, err := handler.service.Create(ctx, adminID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create place")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Place created successfully by admin " + adminID)

	response.WithJSON(w, http.StatusCreated, place)
}

// AddLocation uploads a located image for a place. Admin only.
// @Summary Add a location to a place @Admin
// @Tags Place
// @Accept mpfd
// @Produce json
// @Param id path string true "Place ID"
// @Param kind path string true "Location kind" Enums(recreational, shopping, tourism)
// @Param file formData file true "Image"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Success 201 {object} dto.LocationFeature "GeoJSON feature"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/places/{id}/{kind} [post]
// @Security BearerAuth
func (handler *Handler) AddLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddLocation")
	defer scope.End()

	kind, err := kindFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req, err := decodeLocationRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	adminID := middleware.UserID(ctx)

	location, err := handler.service.AddLocation(ctx, adminID, chi.URLParam(r, constant.RequestParamID), kind, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to add location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Location added successfully by admin " + adminID)

	response.WithGeoJSON(w, http.StatusCreated, location)
}

func kindFromRequest(r *http.Request) (model.Kind, error) {
	value := chi.URLParam(r, constant.RequestParamKind)

	kind, ok := model.ParseKind(strings.ToLower(value))
	if !ok {
		return kind, failure.NotFound("unknown place kind " + value)
	}

	return kind, nil
}

func decodeLocationRequest(r *http.Request) (dto.AddLocationRequest, error) {
	req := dto.AddLocationRequest{}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err))
	}

	point, err := geo.ParsePoint(r.FormValue(formLatitude), r.FormValue(formLongitude))
	if err != nil {
		return req, failure.BadRequest(err)
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if errors.Is(err, http.ErrMissingFile) {
		return req, failure.BadRequestFromString("file is required")
	}

	if err != nil {
		return req, failure.BadRequest(fmt.Errorf("failed to read file: %w", err))
	}

	file.Close()

	image, err := upload.FromMultipart(fileHeader)
	if err != nil {
		return req, failure.BadRequest(err)
	}

	req.Point = point
	req.Image = image

	return req, nil
}

package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/place/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	"tourism/shared/geo"
	gModel "tourism/shared/model"
	"tourism/shared/upload"
)

type CreatePlaceRequest struct {
	Name    string `json:"name"           validate:"required,max=100"`
	Address string `json:"address"        validate:"max=300"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=RECREATIONAL SHOPPING TOURISM NOTSET"`
}

func (r *CreatePlaceRequest) ToModel(adminID string) model.Place {
	placeType := model.Type(r.Type)
	if placeType == "" {
		placeType = model.TypeNotSet
	}

	var admin *string
	if adminID != "" {
		admin = &adminID
	}

	return model.Place{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Address:  r.Address,
		Type:     placeType,
		AdminID:  admin,
		Metadata: gModel.NewMetadata(adminID),
	}
}

// AddLocationRequest is read from a multipart form: file, latitude and longitude.
type AddLocationRequest struct {
	Point geo.Point
	Image upload.File
}

func (r *AddLocationRequest) ToModel(adminID, placeID, imageKey string) model.Location {
	return model.Location{
		ID:        uuid.NewString(),
		Latitude:  r.Point.Latitude,
		Longitude: r.Point.Longitude,
		Image:     imageKey,
		PlaceID:   placeID,
		Metadata:  gModel.NewMetadata(adminID),
	}
}

type PlaceResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Type    string  `json:"type"`
	AdminID *string `json:"admin_id"`
	gDto.Metadata
}

func (r *PlaceResponse) FromModel(model model.Place) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Type = string(model.Type)
	r.AdminID = model.AdminID
	r.Metadata.FromModel(model.Metadata)
}

type GetPlacesResponse struct {
	Places    []PlaceResponse `json:"places"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPlacesResponse) FromModels(models []model.Place, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Places = make([]PlaceResponse, len(models))
	for i, mod := range models {
		r.Places[i].FromModel(mod)
	}
}

type LocationProperties struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	PlaceID string `json:"place_id"`
}

type LocationFeature = geo.Feature[LocationProperties]

type LocationCollection = geo.FeatureCollection[LocationProperties]

// NewLocationFeature renders a location; imageURL resolves the stored object key.
func NewLocationFeature(location model.Location, imageURL func(string) string) LocationFeature {
	return geo.NewFeature(location.ID, location.Point(), LocationProperties{
		ID:      location.ID,
		Image:   imageURL(location.Image),
		PlaceID: location.PlaceID,
	})
}

func NewLocationCollection(locations []model.Location, totalData, limit int, imageURL func(string) string) LocationCollection {
	features := make([]LocationFeature, len(locations))
	for i, location := range locations {
		features[i] = NewLocationFeature(location, imageURL)
	}

	return geo.NewFeatureCollection(features, totalData, shared.CalculateTotalPage(totalData, limit))
}

// Package geo holds the coordinate types used by place listings and their GeoJSON rendering.
package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tourism/shared/dto"
)

const (
	TypeFeature           = "Feature"
	TypeFeatureCollection = "FeatureCollection"
	TypePoint             = "Point"

	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"

	bboxParts = 4
)

var (
	ErrInvalidBBox  = errors.New("in_bbox must be minLon,minLat,maxLon,maxLat")
	ErrInvalidPoint = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")
)

type Point struct {
	Latitude  float64
	Longitude float64
}

func (p Point) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidPoint
	}

	return nil
}

// ParsePoint reads a point from its textual latitude and longitude.
func ParsePoint(latitude, longitude string) (Point, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latitude), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(longitude), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}

	point := Point{Latitude: lat, Longitude: lon}

	return point, point.Validate()
}

type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// ParseBBox parses "minLon,minLat,maxLon,maxLat". Corners given in the wrong order are swapped.
func ParseBBox(value string) (BBox, error) {
	parts := strings.Split(value, ",")
	if len(parts) != bboxParts {
		return BBox{}, ErrInvalidBBox
	}

	values := make([]float64, bboxParts)

	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BBox{}, ErrInvalidBBox
		}

		values[i] = v
	}

	box := BBox{
		MinLon: min(values[0], values[2]),
		MinLat: min(values[1], values[3]),
		MaxLon: max(values[0], values[2]),
		MaxLat: max(values[1], values[3]),
	}

	if (Point{Latitude: box.MinLat, Longitude: box.MinLon}).Validate() != nil ||
		(Point{Latitude: box.MaxLat, Longitude: box.MaxLon}).Validate() != nil {
		return BBox{}, ErrInvalidBBox
	}

	return box, nil
}

func (b BBox) Contains(p Point) bool {
	return p.Longitude >= b.MinLon && p.Longitude <= b.MaxLon &&
		p.Latitude >= b.MinLat && p.Latitude <= b.MaxLat
}

// Filter restricts rows of table to the points inside the box.
func (b BBox) Filter(table string) dto.FilterGroup {
	return dto.And(
		dto.Filter{ArgName: "bbox_min_lon", Field: FieldLongitude, Table: table, Operator: dto.FilterOperatorGreaterEq, Value: b.MinLon},
		dto.Filter{ArgName: "bbox_max_lon", Field: FieldLongitude, Table: table, Operator: dto.FilterOperatorLessEq, Value: b.MaxLon},
		dto.Filter{ArgName: "bbox_min_lat", Field: FieldLatitude, Table: table, Operator: dto.FilterOperatorGreaterEq, Value: b.MinLat},
		dto.Filter{ArgName: "bbox_max_lat", Field: FieldLatitude, Table: table, Operator: dto.FilterOperatorLessEq, Value: b.MaxLat},
	)
}

type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewGeometry renders a point in GeoJSON axis order: longitude first.
func NewGeometry(p Point) Geometry {
	return Geometry{
		Type:        TypePoint,
		Coordinates: [2]float64{p.Longitude, p.Latitude},
	}
}

type Feature[P any] struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Geometry   Geometry `json:"geometry"`
	Properties P        `json:"properties"`
}

func NewFeature[P any](id string, p Point, properties P) Feature[P] {
	return Feature[P]{
		ID:         id,
		Type:       TypeFeature,
		Geometry:   NewGeometry(p),
		Properties: properties,
	}
}

type FeatureCollection[P any] struct {
	Type      string       `json:"type"`
	Features  []Feature[P] `json:"features"`
	TotalPage int          `json:"total_page"`
	TotalData int          `json:"total_data"`
}

func NewFeatureCollection[P any](features []Feature[P], totalData, totalPage int) FeatureCollection[P] {
	if features == nil {
		features = []Feature[P]{}
	}

	return FeatureCollection[P]{
		Type:      TypeFeatureCollection,
		Features:  features,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}

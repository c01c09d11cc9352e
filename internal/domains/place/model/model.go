package model

import (
	"slices"

	"tourism/shared/geo"
	gModel "tourism/shared/model"
)

const (
	TableName  = "places"
	EntityName = "place"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldType    = "type"
	FieldAdminID = "admin_id"

	FieldImage   = "image"
	FieldPlaceID = "place_id"

	ConstraintAdminID = "places_admin_id_fkey"
)

type Type string

const (
	TypeRecreational Type = "RECREATIONAL"
	TypeShopping     Type = "SHOPPING"
	TypeTourism      Type = "TOURISM"
	TypeNotSet       Type = "NOTSET"
)

type Place struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Address string  `db:"address"`
	Type    Type    `db:"type"`
	AdminID *string `db:"admin_id"`
	gModel.Metadata
}

// Kind names a family of located images attached to places, one table per kind.
type Kind string

const (
	KindRecreational Kind = "recreational"
	KindShopping     Kind = "shopping"
	KindTourism      Kind = "tourism"
)

var Kinds = []Kind{KindRecreational, KindShopping, KindTourism}

func ParseKind(value string) (Kind, bool) {
	kind := Kind(value)

	return kind, slices.Contains(Kinds, kind)
}

func (k Kind) TableName() string {
	return string(k) + "_places"
}

func (k Kind) EntityName() string {
	return string(k) + "_place"
}

// UniquePoint reports whether two locations of this kind may not share coordinates.
func (k Kind) UniquePoint() bool {
	return k == KindShopping || k == KindTourism
}

func (k Kind) PointConstraint() string {
	return k.TableName() + "_latitude_longitude_key"
}

func (k Kind) PlaceConstraint() string {
	return k.TableName() + "_place_id_fkey"
}

type Location struct {
	ID        string  `db:"id"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
	Image     string  `db:"image"`
	PlaceID   string  `db:"place_id"`
	gModel.Metadata
}

func (l Location) Point() geo.Point {
	return geo.Point{Latitude: l.Latitude, Longitude: l.Longitude}
}

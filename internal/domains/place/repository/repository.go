package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/place/model"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

type Place interface {
	Insert(ctx context.Context, model model.Place) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Place, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Place, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Location interface {
	Insert(ctx context.Context, model model.Location) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Location, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Location, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

// Locations holds one repository per location kind.
type Locations map[model.Kind]Location

type placeRepository struct {
	gRepo.Repository[model.Place]
}

type locationRepository struct {
	gRepo.Repository[model.Location]
}

func New(db *postgres.Connection, otel otel.Otel) Place {
	return &placeRepository{
		Repository: gRepo.NewRepository[model.Place](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func NewLocation(kind model.Kind, db *postgres.Connection, otel otel.Otel) Location {
	return &locationRepository{
		Repository: gRepo.NewRepository[model.Location](kind.EntityName(), kind.TableName(), model.FieldID, db, otel),
	}
}

func NewLocations(db *postgres.Connection, otel otel.Otel) Locations {
	locations := make(Locations, len(model.Kinds))
	for _, kind := range model.Kinds {
		locations[kind] = NewLocation(kind, db, otel)
	}

	return locations
}

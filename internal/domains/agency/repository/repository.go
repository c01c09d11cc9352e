package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/agency/model"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
)

type Agency interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Agency) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Agency, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Agency, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Agency]
}

func New(db *postgres.Connection, otel otel.Otel) Agency {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Agency](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

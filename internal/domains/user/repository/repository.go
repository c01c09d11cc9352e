package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/internal/domains/user/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gRepo "tourism/shared/repository"
	"tourism/shared/timezone"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ConsumeFirstLogin(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ConsumeFirstLogin clears the first login flag and reports whether this call cleared it.
// Only one of several concurrent logins observes true.
func (r *repositoryImpl) ConsumeFirstLogin(ctx context.Context, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.ConsumeFirstLogin")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s = false, %s = $1 WHERE %s = $2 AND %s = true",
		model.TableName, model.FieldFirstTimeLogin, constant.FieldModifiedAt, model.FieldID, model.FieldFirstTimeLogin)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, timezone.Now(), id)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to clear first login flag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

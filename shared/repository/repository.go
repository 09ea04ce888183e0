package repository

import (
	"context"
	"fmt"

	"hotel/infras/hotelapi"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/logger"
)

// Resource is one collection of the remote data service.
type Resource[T any] struct {
	client   hotelapi.Client
	otel     otel.Otel
	resource string
	entitas  string
}

func NewResource[T any](entitasName, resourceName string, client hotelapi.Client, otl otel.Otel) Resource[T] {
	return Resource[T]{
		client:   client,
		otel:     otl,
		resource: resourceName,
		entitas:  entitasName,
	}
}

// GetAll never returns a nil slice for a successful call.
func (repo *Resource[T]) GetAll(ctx context.Context) (models []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelResourceAttributeKey, repo.resource)

	if err = repo.client.List(ctx, repo.resource, &models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	if models == nil {
		models = []T{}
	}

	scope.SetAttribute("result.count", len(models))

	return models, nil
}

func (repo *Resource[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if err := repo.client.Create(ctx, repo.resource, model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Resource[T]) Update(ctx context.Context, id int64, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute("record.id", id)

	if err := repo.client.Update(ctx, repo.resource, id, model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Resource[T]) Delete(ctx context.Context, id int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute("record.id", id)

	if err := repo.client.Delete(ctx, repo.resource, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}

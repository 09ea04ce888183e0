package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/hotelapi"
	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	gRepo "hotel/shared/repository"
)

type Guest interface {
	GetAll(ctx context.Context) ([]model.Guest, error)
	Insert(ctx context.Context, model model.Guest) error
	Update(ctx context.Context, id int64, model model.Guest) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	gRepo.Resource[model.Guest]
}

func New(client hotelapi.Client, otel otel.Otel) Guest {
	return &repositoryImpl{
		Resource: gRepo.NewResource[model.Guest](model.EntityName, model.ResourceName, client, otel),
	}
}

// Insert leaves the identity to the remote service.
func (r *repositoryImpl) Insert(ctx context.Context, record model.Guest) error {
	record.ID = 0

	return r.Resource.Insert(ctx, record) //nolint:wrapcheck
}

// Update sends the identity in the path only.
func (r *repositoryImpl) Update(ctx context.Context, id int64, record model.Guest) error {
	record.ID = 0

	return r.Resource.Update(ctx, id, record) //nolint:wrapcheck
}

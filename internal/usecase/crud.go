package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/storykeep/internal/validate"
)

// OwnedUsecase serves rows owned directly by the caller's account.
type OwnedUsecase[T any, In any] struct {
	name string
	repo OwnedRepository[T, In]
}

func NewOwnedUsecase[T any, In any](name string, repo OwnedRepository[T, In]) *OwnedUsecase[T, In] {
	return &OwnedUsecase[T, In]{name: name, repo: repo}
}

func (uc *OwnedUsecase[T, In]) List(ctx context.Context, accountID int64) ([]T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.List")
	defer span.End()

	return uc.repo.List(ctx, accountID)
}

func (uc *OwnedUsecase[T, In]) Get(ctx context.Context, accountID, id int64) (T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Get")
	defer span.End()

	return uc.repo.Get(ctx, accountID, id)
}

func (uc *OwnedUsecase[T, In]) Create(ctx context.Context, accountID int64, in In) (T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Create")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		var zero T
		return zero, err
	}
	return uc.repo.Create(ctx, accountID, in)
}

// Update replaces every field of the row.
func (uc *OwnedUsecase[T, In]) Update(ctx context.Context, accountID, id int64, in In) (T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("ID", id))

	if err := validate.Struct(in); err != nil {
		var zero T
		return zero, err
	}
	return uc.repo.Update(ctx, accountID, id, in)
}

func (uc *OwnedUsecase[T, In]) Delete(ctx context.Context, accountID, id int64) error {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("ID", id))

	return uc.repo.Delete(ctx, accountID, id)
}

// StoryScopedUsecase serves rows nested under one of the caller's stories.
type StoryScopedUsecase[T any, In any] struct {
	name string
	repo StoryScopedRepository[T, In]
}

func NewStoryScopedUsecase[T any, In any](name string, repo StoryScopedRepository[T, In]) *StoryScopedUsecase[T, In] {
	return &StoryScopedUsecase[T, In]{name: name, repo: repo}
}

func (uc *StoryScopedUsecase[T, In]) List(ctx context.Context, accountID, storyID int64) ([]T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.List")
	defer span.End()

	return uc.repo.List(ctx, accountID, storyID)
}

func (uc *StoryScopedUsecase[T, In]) Get(ctx context.Context, accountID, storyID, id int64) (T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Get")
	defer span.End()

	return uc.repo.Get(ctx, accountID, storyID, id)
}

func (uc *StoryScopedUsecase[T, In]) Create(ctx context.Context, accountID, storyID int64, in In) (T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Create")
	defer span.End()
	span.SetAttributes(attribute.Int64("StoryID", storyID))

	if err := validate.Struct(in); err != nil {
		var zero T
		return zero, err
	}
	return uc.repo.Create(ctx, accountID, storyID, in)
}

func (uc *StoryScopedUsecase[T, In]) Update(ctx context.Context, accountID, storyID, id int64, in In) (T, error) {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("StoryID", storyID), attribute.Int64("ID", id))

	if err := validate.Struct(in); err != nil {
		var zero T
		return zero, err
	}
	return uc.repo.Update(ctx, accountID, storyID, id, in)
}

func (uc *StoryScopedUsecase[T, In]) Delete(ctx context.Context, accountID, storyID, id int64) error {
	ctx, span := tracer.Start(ctx, uc.name+".Usecase.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("StoryID", storyID), attribute.Int64("ID", id))

	return uc.repo.Delete(ctx, accountID, storyID, id)
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/metrics"
	"github.com/totegamma/storykeep/internal/validate"
)

// AssociationUsecase links shared rows such as people or links to an owner.
// The payload is validated before anything is read or written, and every
// change is counted and published to the caller's event channel.
type AssociationUsecase[T any, In any] struct {
	resource  string
	repo      AssociationRepository[T, In]
	publisher Publisher
}

func NewAssociationUsecase[T any, In any](resource string, repo AssociationRepository[T, In], publisher Publisher) *AssociationUsecase[T, In] {
	return &AssociationUsecase[T, In]{
		resource:  resource,
		repo:      repo,
		publisher: publisher,
	}
}

func (uc *AssociationUsecase[T, In]) Link(ctx context.Context, accountID int64, owner domain.OwnerRef, in In) (domain.LinkResult[T], error) {
	ctx, span := tracer.Start(ctx, "Association.Usecase.Link")
	defer span.End()
	span.SetAttributes(
		attribute.String("Resource", uc.resource),
		attribute.Int64("OwnerID", owner.ID),
	)

	if err := validate.Struct(in); err != nil {
		return domain.LinkResult[T]{}, err
	}

	result, err := uc.repo.Link(ctx, accountID, owner, in)
	if err != nil {
		span.RecordError(err)
		return domain.LinkResult[T]{}, err
	}

	outcome := metrics.OutcomeExisting
	if result.Created {
		outcome = metrics.OutcomeCreated
	}
	metrics.RecordAssociation(uc.resource, outcome)
	span.SetAttributes(attribute.Bool("Created", result.Created))

	uc.publish(ctx, domain.Event{
		Type:      domain.EventLinked,
		AccountID: accountID,
		StoryID:   owner.StoryID,
		OwnerID:   result.Association.OwnerID,
		Resource:  uc.resource,
		SharedID:  result.Association.SharedID,
		Created:   result.Created,
		Timestamp: time.Now(),
	})

	return result, nil
}

func (uc *AssociationUsecase[T, In]) List(ctx context.Context, accountID int64, owner domain.OwnerRef) ([]T, error) {
	ctx, span := tracer.Start(ctx, "Association.Usecase.List")
	defer span.End()

	return uc.repo.List(ctx, accountID, owner)
}

// Unlink removes the association; the shared row stays.
func (uc *AssociationUsecase[T, In]) Unlink(ctx context.Context, accountID int64, owner domain.OwnerRef, sharedID int64) error {
	ctx, span := tracer.Start(ctx, "Association.Usecase.Unlink")
	defer span.End()

	if err := uc.repo.Unlink(ctx, accountID, owner, sharedID); err != nil {
		return err
	}
	metrics.RecordAssociation(uc.resource, metrics.OutcomeRemoved)

	uc.publish(ctx, domain.Event{
		Type:      domain.EventUnlinked,
		AccountID: accountID,
		StoryID:   owner.StoryID,
		OwnerID:   owner.ID,
		Resource:  uc.resource,
		SharedID:  sharedID,
		Timestamp: time.Now(),
	})
	return nil
}

func (uc *AssociationUsecase[T, In]) publish(ctx context.Context, event domain.Event) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(
			ctx, "failed to publish association event",
			slog.String("error", err.Error()),
			slog.String("resource", event.Resource),
			slog.String("module", "association"),
		)
	}
}

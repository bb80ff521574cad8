package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/totegamma/storykeep/internal/domain"
)

type mockStoryRepo struct {
	created []domain.StoryInput
	updated map[int64]domain.StoryInput
}

func (m *mockStoryRepo) List(ctx context.Context, accountID int64) ([]domain.Story, error) {
	return nil, nil
}
func (m *mockStoryRepo) Get(ctx context.Context, accountID, id int64) (domain.Story, error) {
	return domain.Story{}, domain.NotFoundError{Resource: "story"}
}
func (m *mockStoryRepo) Create(ctx context.Context, accountID int64, in domain.StoryInput) (domain.Story, error) {
	m.created = append(m.created, in)
	return domain.Story{ID: int64(len(m.created)), AccountID: accountID, Title: in.Title}, nil
}
func (m *mockStoryRepo) Update(ctx context.Context, accountID, id int64, in domain.StoryInput) (domain.Story, error) {
	if m.updated == nil {
		m.updated = map[int64]domain.StoryInput{}
	}
	m.updated[id] = in
	return domain.Story{ID: id, AccountID: accountID, Title: in.Title}, nil
}
func (m *mockStoryRepo) Delete(ctx context.Context, accountID, id int64) error {
	return nil
}

func TestOwnedUsecaseCreate(t *testing.T) {
	repo := &mockStoryRepo{}
	uc := NewOwnedUsecase[domain.Story, domain.StoryInput]("Story", repo)

	story, err := uc.Create(context.Background(), 3, domain.StoryInput{Title: "first"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if story.AccountID != 3 || story.Title != "first" {
		t.Fatalf("unexpected story %+v", story)
	}

	_, err = uc.Create(context.Background(), 3, domain.StoryInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("invalid input reached the repository")
	}
}

func TestOwnedUsecaseUpdateValidates(t *testing.T) {
	repo := &mockStoryRepo{}
	uc := NewOwnedUsecase[domain.Story, domain.StoryInput]("Story", repo)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	_, err := uc.Update(context.Background(), 1, 2, domain.StoryInput{Title: string(long)})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("invalid input reached the repository")
	}

	if _, err := uc.Update(context.Background(), 1, 2, domain.StoryInput{Title: "ok"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.updated[2].Title != "ok" {
		t.Fatalf("expected update to reach the repository")
	}
}

type mockMediaRepo struct {
	created []domain.MediaInput
}

func (m *mockMediaRepo) List(ctx context.Context, accountID, storyID int64) ([]domain.Media, error) {
	return nil, nil
}
func (m *mockMediaRepo) Get(ctx context.Context, accountID, storyID, id int64) (domain.Media, error) {
	return domain.Media{}, nil
}
func (m *mockMediaRepo) Create(ctx context.Context, accountID, storyID int64, in domain.MediaInput) (domain.Media, error) {
	m.created = append(m.created, in)
	return domain.Media{ID: 1, StoryID: storyID, Type: in.Type, MediaURL: in.MediaURL}, nil
}
func (m *mockMediaRepo) Update(ctx context.Context, accountID, storyID, id int64, in domain.MediaInput) (domain.Media, error) {
	return domain.Media{}, nil
}
func (m *mockMediaRepo) Delete(ctx context.Context, accountID, storyID, id int64) error {
	return nil
}

func TestStoryScopedUsecaseCreate(t *testing.T) {
	repo := &mockMediaRepo{}
	uc := NewStoryScopedUsecase[domain.Media, domain.MediaInput]("Media", repo)

	_, err := uc.Create(context.Background(), 1, 1, domain.MediaInput{Type: "photo", MediaURL: "not a slug"})
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["media_url"]; !ok {
		t.Fatalf("expected media_url error, got %v", verr.Fields)
	}

	media, err := uc.Create(context.Background(), 1, 1, domain.MediaInput{Type: "photo", MediaURL: "beach-2019"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if media.StoryID != 1 || len(repo.created) != 1 {
		t.Fatalf("unexpected result %+v", media)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/totegamma/storykeep/internal/domain"
)

type mockPeopleRepo struct {
	linked   map[domain.PersonKey]int64
	calls    int
	unlinked []int64
	err      error
}

func (m *mockPeopleRepo) Link(ctx context.Context, accountID int64, owner domain.OwnerRef, in domain.PersonInput) (domain.LinkResult[domain.Person], error) {
	m.calls++
	if m.err != nil {
		return domain.LinkResult[domain.Person]{}, m.err
	}
	if m.linked == nil {
		m.linked = map[domain.PersonKey]int64{}
	}
	id, ok := m.linked[in.Key()]
	if !ok {
		id = int64(len(m.linked) + 1)
		m.linked[in.Key()] = id
	}
	return domain.LinkResult[domain.Person]{
		Shared:      domain.Person{ID: id, FirstName: in.FirstName, Type: in.Type},
		Association: domain.Association{OwnerID: owner.ID, SharedID: id, CreatedAt: time.Now()},
		Created:     !ok,
	}, nil
}

func (m *mockPeopleRepo) List(ctx context.Context, accountID int64, owner domain.OwnerRef) ([]domain.Person, error) {
	return nil, m.err
}

func (m *mockPeopleRepo) Unlink(ctx context.Context, accountID int64, owner domain.OwnerRef, sharedID int64) error {
	if m.err != nil {
		return m.err
	}
	m.unlinked = append(m.unlinked, sharedID)
	return nil
}

type mockPublisher struct {
	events []domain.Event
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.Event) error {
	m.events = append(m.events, event)
	return m.err
}

func TestAssociationUsecaseLink(t *testing.T) {
	repo := &mockPeopleRepo{}
	pub := &mockPublisher{}
	uc := NewAssociationUsecase[domain.Person, domain.PersonInput]("person", repo, pub)

	owner := domain.OwnerRef{StoryID: 4, ID: 4}
	in := domain.PersonInput{FirstName: "Nima", Type: "friend"}

	first, err := uc.Link(context.Background(), 1, owner, in)
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if !first.Created || first.Status() != domain.LinkStatusLinked {
		t.Fatalf("expected a new link, got %+v", first)
	}

	second, err := uc.Link(context.Background(), 1, owner, in)
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if second.Created || second.Status() != domain.LinkStatusAlreadyLinked {
		t.Fatalf("expected an existing link, got %+v", second)
	}

	if len(pub.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Type != domain.EventLinked || ev.AccountID != 1 || ev.StoryID != 4 || ev.Resource != "person" || !ev.Created {
		t.Fatalf("unexpected event %+v", ev)
	}
	if pub.events[1].Created {
		t.Fatalf("second event should not be marked created")
	}
}

func TestAssociationUsecaseValidatesBeforeRepository(t *testing.T) {
	repo := &mockPeopleRepo{}
	pub := &mockPublisher{}
	uc := NewAssociationUsecase[domain.Person, domain.PersonInput]("person", repo, pub)

	_, err := uc.Link(context.Background(), 1, domain.OwnerRef{StoryID: 1, ID: 1}, domain.PersonInput{Type: "friend"})

	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["first_name"]; !ok {
		t.Fatalf("expected first_name field error, got %v", verr.Fields)
	}
	if repo.calls != 0 {
		t.Fatalf("repository must not be touched on invalid input")
	}
	if len(pub.events) != 0 {
		t.Fatalf("no event expected on invalid input")
	}
}

func TestAssociationUsecasePropagatesNotFound(t *testing.T) {
	repo := &mockPeopleRepo{err: domain.NotFoundError{Resource: "story"}}
	pub := &mockPublisher{}
	uc := NewAssociationUsecase[domain.Person, domain.PersonInput]("person", repo, pub)

	_, err := uc.Link(context.Background(), 1, domain.OwnerRef{StoryID: 9, ID: 9}, domain.PersonInput{FirstName: "A", Type: "B"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatalf("no event expected on failure")
	}
}

func TestAssociationUsecaseIgnoresPublishFailure(t *testing.T) {
	repo := &mockPeopleRepo{}
	pub := &mockPublisher{err: errors.New("redis down")}
	uc := NewAssociationUsecase[domain.Person, domain.PersonInput]("person", repo, pub)

	if _, err := uc.Link(context.Background(), 1, domain.OwnerRef{StoryID: 1, ID: 1}, domain.PersonInput{FirstName: "A", Type: "B"}); err != nil {
		t.Fatalf("publish failure must not fail the link: %v", err)
	}
}

func TestAssociationUsecaseUnlink(t *testing.T) {
	repo := &mockPeopleRepo{}
	pub := &mockPublisher{}
	uc := NewAssociationUsecase[domain.Person, domain.PersonInput]("person", repo, pub)

	if err := uc.Unlink(context.Background(), 1, domain.OwnerRef{StoryID: 2, ID: 2}, 5); err != nil {
		t.Fatalf("unlink failed: %v", err)
	}
	if len(repo.unlinked) != 1 || repo.unlinked[0] != 5 {
		t.Fatalf("expected shared 5 to be unlinked, got %v", repo.unlinked)
	}
	if len(pub.events) != 1 || pub.events[0].Type != domain.EventUnlinked || pub.events[0].SharedID != 5 {
		t.Fatalf("unexpected events %+v", pub.events)
	}
}

func TestAssociationUsecaseWithoutPublisher(t *testing.T) {
	uc := NewAssociationUsecase[domain.Person, domain.PersonInput]("person", &mockPeopleRepo{}, nil)
	if _, err := uc.Link(context.Background(), 1, domain.OwnerRef{StoryID: 1, ID: 1}, domain.PersonInput{FirstName: "A", Type: "B"}); err != nil {
		t.Fatalf("link failed: %v", err)
	}
}

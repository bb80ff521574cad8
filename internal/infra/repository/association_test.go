package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/testutil"
)

func TestStoryPeopleLinkIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewStoryPeopleRepository(db)

	alice := seedAccount(t, db, "alice")
	story := seedStory(t, db, alice.ID, "summer")
	ref := domain.OwnerRef{StoryID: story.ID, ID: story.ID}
	in := domain.PersonInput{FirstName: "Maryam", Type: "friend"}

	first, err := repo.Link(ctx, alice.ID, ref, in)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, domain.LinkStatusLinked, first.Status())
	assert.Equal(t, "Maryam", first.Shared.FirstName)
	assert.Equal(t, story.ID, first.Association.OwnerID)
	assert.Equal(t, first.Shared.ID, first.Association.SharedID)

	second, err := repo.Link(ctx, alice.ID, ref, in)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, domain.LinkStatusAlreadyLinked, second.Status())
	assert.Equal(t, first.Shared, second.Shared)
	assert.Equal(t, first.Association.SharedID, second.Association.SharedID)

	assert.EqualValues(t, 1, countRows(t, db, "people"))
	assert.EqualValues(t, 1, countRows(t, db, "story_people"))
}

func TestPeopleAreSharedAcrossOwners(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewStoryPeopleRepository(db)

	alice := seedAccount(t, db, "alice")
	bob := seedAccount(t, db, "bob")
	s1 := seedStory(t, db, alice.ID, "one")
	s2 := seedStory(t, db, bob.ID, "two")
	in := domain.PersonInput{FirstName: "Reza", Type: "brother"}

	r1, err := repo.Link(ctx, alice.ID, domain.OwnerRef{StoryID: s1.ID, ID: s1.ID}, in)
	require.NoError(t, err)
	r2, err := repo.Link(ctx, bob.ID, domain.OwnerRef{StoryID: s2.ID, ID: s2.ID}, in)
	require.NoError(t, err)

	assert.True(t, r1.Created)
	assert.True(t, r2.Created)
	assert.Equal(t, r1.Shared.ID, r2.Shared.ID)
	assert.EqualValues(t, 1, countRows(t, db, "people"))
	assert.EqualValues(t, 2, countRows(t, db, "story_people"))

	// a different type is a different person
	r3, err := repo.Link(ctx, alice.ID, domain.OwnerRef{StoryID: s1.ID, ID: s1.ID}, domain.PersonInput{FirstName: "Reza", Type: "cousin"})
	require.NoError(t, err)
	assert.NotEqual(t, r1.Shared.ID, r3.Shared.ID)
	assert.EqualValues(t, 2, countRows(t, db, "people"))
}

func TestLinkToForeignStoryIsNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewStoryLinksRepository(db)

	alice := seedAccount(t, db, "alice")
	bob := seedAccount(t, db, "bob")
	story := seedStory(t, db, bob.ID, "bob's")

	_, err := repo.Link(ctx, alice.ID, domain.OwnerRef{StoryID: story.ID, ID: story.ID}, domain.LinkInput{
		Title: "thread", Description: "ties", Colour: "red",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, "links"))

	_, err = repo.Link(ctx, alice.ID, domain.OwnerRef{StoryID: 9999, ID: 9999}, domain.LinkInput{
		Title: "thread", Description: "ties", Colour: "red",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, "links"))
}

func TestUnlinkKeepsSharedRow(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewStoryCharactersRepository(db)

	alice := seedAccount(t, db, "alice")
	story := seedStory(t, db, alice.ID, "winter")
	ref := domain.OwnerRef{StoryID: story.ID, ID: story.ID}

	linked, err := repo.Link(ctx, alice.ID, ref, domain.CharacterInput{BodyLanguage: "crossed arms", Dialog: "no."})
	require.NoError(t, err)

	listed, err := repo.List(ctx, alice.ID, ref)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, linked.Shared, listed[0])

	require.NoError(t, repo.Unlink(ctx, alice.ID, ref, linked.Shared.ID))

	listed, err = repo.List(ctx, alice.ID, ref)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.EqualValues(t, 1, countRows(t, db, "characters"))

	err = repo.Unlink(ctx, alice.ID, ref, linked.Shared.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	relinked, err := repo.Link(ctx, alice.ID, ref, domain.CharacterInput{BodyLanguage: "crossed arms", Dialog: "no."})
	require.NoError(t, err)
	assert.True(t, relinked.Created)
	assert.Equal(t, linked.Shared.ID, relinked.Shared.ID)
}

func TestStoryDeleteCascadesJunctionOnly(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewStoryLinksRepository(db)

	alice := seedAccount(t, db, "alice")
	story := seedStory(t, db, alice.ID, "spring")

	_, err := repo.Link(ctx, alice.ID, domain.OwnerRef{StoryID: story.ID, ID: story.ID}, domain.LinkInput{
		Title: "thread", Description: "ties", Colour: "blue",
	})
	require.NoError(t, err)

	require.NoError(t, NewStoryRepository(db).Delete(ctx, alice.ID, story.ID))
	assert.EqualValues(t, 0, countRows(t, db, "story_links"))
	assert.EqualValues(t, 1, countRows(t, db, "links"))
}

func TestIncidentPeopleRequireIncidentUnderStory(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewIncidentPeopleRepository(db)

	alice := seedAccount(t, db, "alice")
	s1 := seedStory(t, db, alice.ID, "one")
	s2 := seedStory(t, db, alice.ID, "two")
	incident, err := NewIncidentRepository(db).Create(ctx, alice.ID, s1.ID, domain.IncidentInput{
		What: "met", Where: "cafe",
	})
	require.NoError(t, err)

	in := domain.PersonInput{FirstName: "Sara", Type: "stranger"}

	_, err = repo.Link(ctx, alice.ID, domain.OwnerRef{StoryID: s2.ID, ID: incident.ID}, in)
	require.ErrorIs(t, err, domain.ErrNotFound)

	res, err := repo.Link(ctx, alice.ID, domain.OwnerRef{StoryID: s1.ID, ID: incident.ID}, in)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, incident.ID, res.Association.OwnerID)

	// the same person can sit on the story itself too
	storyRes, err := NewStoryPeopleRepository(db).Link(ctx, alice.ID, domain.OwnerRef{StoryID: s1.ID, ID: s1.ID}, in)
	require.NoError(t, err)
	assert.Equal(t, res.Shared.ID, storyRes.Shared.ID)
	assert.EqualValues(t, 1, countRows(t, db, "people"))
}

func TestTaskMilestonesAreAccountScoped(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewTaskMilestonesRepository(db)

	alice := seedAccount(t, db, "alice")
	bob := seedAccount(t, db, "bob")
	task := seedTask(t, db, alice.ID)

	own, err := NewMilestoneRepository(db).Create(ctx, alice.ID, domain.MilestoneInput{Title: "draft", Description: "done"})
	require.NoError(t, err)
	foreign, err := NewMilestoneRepository(db).Create(ctx, bob.ID, domain.MilestoneInput{Title: "other", Description: "x"})
	require.NoError(t, err)

	ref := domain.OwnerRef{ID: task.ID}

	_, err = repo.Link(ctx, alice.ID, ref, domain.MilestoneRef{MilestoneID: foreign.ID})
	require.ErrorIs(t, err, domain.ErrNotFound)

	first, err := repo.Link(ctx, alice.ID, ref, domain.MilestoneRef{MilestoneID: own.ID})
	require.NoError(t, err)
	assert.True(t, first.Created)

	again, err := repo.Link(ctx, alice.ID, ref, domain.MilestoneRef{MilestoneID: own.ID})
	require.NoError(t, err)
	assert.False(t, again.Created)

	_, err = repo.List(ctx, bob.ID, ref)
	require.ErrorIs(t, err, domain.ErrNotFound)

	listed, err := repo.List(ctx, alice.ID, ref)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, own.ID, listed[0].ID)
}

func TestTaskResourcesLinkAndUnlink(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewTaskResourcesRepository(db)

	alice := seedAccount(t, db, "alice")
	task := seedTask(t, db, alice.ID)
	resource, err := NewResourceRepository(db).Create(ctx, alice.ID, domain.ResourceInput{Type: "time", Quantity: 40})
	require.NoError(t, err)

	ref := domain.OwnerRef{ID: task.ID}
	res, err := repo.Link(ctx, alice.ID, ref, domain.ResourceRef{ResourceID: resource.ID})
	require.NoError(t, err)
	assert.Equal(t, resource, res.Shared)

	require.NoError(t, repo.Unlink(ctx, alice.ID, ref, resource.ID))
	_, err = NewResourceRepository(db).Get(ctx, alice.ID, resource.ID)
	assert.NoError(t, err)
}

func TestFindOrCreateSharedDetectsCollision(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	key := domain.PersonKey{FirstName: "Ali", Type: "neighbour"}
	digest, err := domain.NaturalKeyDigest(key)
	require.NoError(t, err)

	// plant a row whose digest matches but whose fields do not
	require.NoError(t, db.Exec(
		"INSERT INTO people (natural_key, first_name, type) VALUES (?, ?, ?)",
		digest, "Someone", "else",
	).Error)

	alice := seedAccount(t, db, "alice")
	story := seedStory(t, db, alice.ID, "collide")

	_, err = NewStoryPeopleRepository(db).Link(ctx, alice.ID, domain.OwnerRef{StoryID: story.ID, ID: story.ID}, domain.PersonInput{
		FirstName: "Ali", Type: "neighbour",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, "story_people"))
}

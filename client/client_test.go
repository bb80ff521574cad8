package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/storykeep/internal/application"
	"github.com/totegamma/storykeep/internal/domain"
	"github.com/totegamma/storykeep/internal/testutil"
)

func newServer(t *testing.T) *httptest.Server {
	db := testutil.NewDB(t)
	app := application.New(db, nil, domain.AuthConfig{Issuer: "storykeep", Secret: "client-secret"})
	srv := httptest.NewServer(app.Echo())
	t.Cleanup(srv.Close)
	return srv
}

func register(t *testing.T, c *Client, email string) {
	_, err := c.Register(context.Background(), domain.RegisterInput{
		Email:           email,
		FirstName:       "Ada",
		LastName:        "Lovelace",
		DateOfBirth:     "1990-12-10",
		City:            "london",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	require.NoError(t, c.Login(context.Background(), email, "password123"))
}

func TestClientLinkFlow(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t)
	c := New(srv.URL)
	register(t, c, "ada@example.com")

	profile, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)

	story, err := c.CreateStory(ctx, "Harbour")
	require.NoError(t, err)

	first, err := c.LinkPerson(ctx, story.ID, domain.PersonInput{FirstName: "Ann", Type: "friend"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, domain.LinkStatusLinked, first.LinkStatus)
	assert.Equal(t, "Ann", first.Shared.FirstName)

	second, err := c.LinkPerson(ctx, story.ID, domain.PersonInput{FirstName: "Ann", Type: "friend"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, domain.LinkStatusAlreadyLinked, second.LinkStatus)
	assert.Equal(t, first.Shared.ID, second.Shared.ID)

	people, err := c.StoryPeople(ctx, story.ID)
	require.NoError(t, err)
	require.Len(t, people, 1)

	require.NoError(t, c.UnlinkPerson(ctx, story.ID, first.Shared.ID))

	err = c.UnlinkPerson(ctx, story.ID, first.Shared.ID)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClientValidationError(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t)
	c := New(srv.URL)
	register(t, c, "val@example.com")

	story, err := c.CreateStory(ctx, "Fields")
	require.NoError(t, err)

	_, err = c.LinkCharacter(ctx, story.ID, domain.CharacterInput{Dialog: "hello"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "body_language")
}

func TestClientRefreshesExpiredAccessToken(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t)
	c := New(srv.URL)
	register(t, c, "refresh@example.com")

	c.tokens.Delete(accessKey)

	_, err := c.Profile(ctx)
	require.NoError(t, err)
	_, found := c.tokens.Get(accessKey)
	assert.True(t, found)
}

func TestClientRequiresLogin(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL)

	_, err := c.ListStories(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	c.Logout()
	_, found := c.tokens.Get(refreshKey)
	assert.False(t, found)
}

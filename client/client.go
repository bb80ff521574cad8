package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"

	"github.com/totegamma/storykeep/internal/domain"
)

const (
	defaultTimeout = 5 * time.Second
	// tokens are dropped from the cache this long before they expire
	expiryMargin = 10 * time.Second

	accessKey  = "token:access"
	refreshKey = "token:refresh"
)

// Client talks to a storykeep server on behalf of one account.
type Client struct {
	client    *http.Client
	tokens    *cache.Cache
	userAgent string
	baseURL   string
}

func New(baseURL string) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	c := &Client{
		client:    &httpClient,
		tokens:    cache.New(cache.NoExpiration, time.Minute),
		userAgent: "storykeep-client",
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
	httpClient.Transport = c
	return c
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	return http.DefaultTransport.RoundTrip(req)
}

// APIError is any non 2xx response.
type APIError struct {
	Status  int               `json:"-"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Fields)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// LinkResponse mirrors the body returned by every link endpoint.
type LinkResponse[S any] struct {
	Shared      S
	Association domain.Association
	Created     bool
	LinkStatus  string
}

func (c *Client) HttpRequest(ctx context.Context, method, path string, body, response any) error {
	return c.do(ctx, method, path, "", body, response)
}

func (c *Client) authedRequest(ctx context.Context, method, path string, body, response any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, token, body, response)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, response any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	url := c.baseURL + path
	slog.DebugContext(ctx, "storykeep request", slog.String("method", method), slog.String("url", url))
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if response == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token pair and keeps both tokens
// until shortly before they expire.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var pair domain.TokenPair
	err := c.HttpRequest(ctx, http.MethodPost, "/user/token/", domain.LoginInput{Email: email, Password: password}, &pair)
	if err != nil {
		return err
	}
	c.storeToken(accessKey, pair.Access)
	c.storeToken(refreshKey, pair.Refresh)
	return nil
}

func (c *Client) Logout() {
	c.tokens.Flush()
}

func (c *Client) storeToken(key, token string) {
	ttl := cache.NoExpiration
	if exp, ok := tokenExpiry(token); ok {
		ttl = time.Until(exp) - expiryMargin
		if ttl <= 0 {
			return
		}
	}
	c.tokens.Set(key, token, ttl)
}

// accessToken returns the cached access token, refreshing it when only the
// refresh token is still alive.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if x, found := c.tokens.Get(accessKey); found {
		return x.(string), nil
	}

	x, found := c.tokens.Get(refreshKey)
	if !found {
		return "", &APIError{Status: http.StatusUnauthorized, Message: "not logged in"}
	}

	var pair domain.TokenPair
	err := c.HttpRequest(ctx, http.MethodPost, "/user/token/refresh/", domain.RefreshInput{Refresh: x.(string)}, &pair)
	if err != nil {
		return "", err
	}
	c.storeToken(accessKey, pair.Access)
	return pair.Access, nil
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := gojwt.RegisteredClaims{}
	_, _, err := gojwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (domain.Account, error) {
	var account domain.Account
	err := c.HttpRequest(ctx, http.MethodPost, "/user/registration/", in, &account)
	return account, err
}

func (c *Client) Profile(ctx context.Context) (domain.Account, error) {
	var account domain.Account
	err := c.authedRequest(ctx, http.MethodGet, "/user/", nil, &account)
	return account, err
}

func (c *Client) UpdateProfile(ctx context.Context, in domain.ProfileInput) (domain.Account, error) {
	var account domain.Account
	err := c.authedRequest(ctx, http.MethodPut, "/user/", in, &account)
	return account, err
}

func (c *Client) CreateStory(ctx context.Context, title string) (domain.Story, error) {
	var story domain.Story
	err := c.authedRequest(ctx, http.MethodPost, "/stories/", domain.StoryInput{Title: title}, &story)
	return story, err
}

func (c *Client) ListStories(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	err := c.authedRequest(ctx, http.MethodGet, "/stories/", nil, &stories)
	return stories, err
}

func (c *Client) DeleteStory(ctx context.Context, storyID int64) error {
	return c.authedRequest(ctx, http.MethodDelete, fmt.Sprintf("/stories/%d/", storyID), nil, nil)
}

func (c *Client) LinkPerson(ctx context.Context, storyID int64, in domain.PersonInput) (LinkResponse[domain.Person], error) {
	return link[domain.Person](ctx, c, fmt.Sprintf("/stories/%d/people/", storyID), "person", in)
}

func (c *Client) LinkIncidentPerson(ctx context.Context, storyID, incidentID int64, in domain.PersonInput) (LinkResponse[domain.Person], error) {
	return link[domain.Person](ctx, c, fmt.Sprintf("/stories/%d/incidents/%d/people/", storyID, incidentID), "person", in)
}

func (c *Client) LinkStoryLink(ctx context.Context, storyID int64, in domain.LinkInput) (LinkResponse[domain.Link], error) {
	return link[domain.Link](ctx, c, fmt.Sprintf("/stories/%d/links/", storyID), "link", in)
}

func (c *Client) LinkCharacter(ctx context.Context, storyID int64, in domain.CharacterInput) (LinkResponse[domain.Character], error) {
	return link[domain.Character](ctx, c, fmt.Sprintf("/stories/%d/characters/", storyID), "character", in)
}

func (c *Client) StoryPeople(ctx context.Context, storyID int64) ([]domain.Person, error) {
	var people []domain.Person
	err := c.authedRequest(ctx, http.MethodGet, fmt.Sprintf("/stories/%d/people/", storyID), nil, &people)
	return people, err
}

func (c *Client) UnlinkPerson(ctx context.Context, storyID, personID int64) error {
	return c.authedRequest(ctx, http.MethodDelete, fmt.Sprintf("/stories/%d/people/%d/", storyID, personID), nil, nil)
}

func link[S any](ctx context.Context, c *Client, path, key string, in any) (LinkResponse[S], error) {
	var raw map[string]json.RawMessage
	if err := c.authedRequest(ctx, http.MethodPost, path, in, &raw); err != nil {
		return LinkResponse[S]{}, err
	}

	var result LinkResponse[S]
	fields := []struct {
		name string
		dst  any
	}{
		{key, &result.Shared},
		{"association", &result.Association},
		{"created", &result.Created},
		{"link_status", &result.LinkStatus},
	}
	for _, f := range fields {
		v, ok := raw[f.name]
		if !ok {
			return LinkResponse[S]{}, fmt.Errorf("link response is missing %q", f.name)
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return LinkResponse[S]{}, fmt.Errorf("failed to decode %q: %w", f.name, err)
		}
	}
	return result, nil
}

// Package recipeapi is a client for the food2fork-style recipe API: a
// keyword search endpoint and a single-recipe endpoint, both authenticated
// with an API key query parameter.
package recipeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound is returned by Get when the API has no recipe with that ID.
var ErrNotFound = errors.New("recipeapi: recipe not found")

// APIError is a non-2xx response, or a 2xx response whose body carries an
// "error" field (the API reports exhausted quotas that way).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recipe api: status %d: %s", e.Status, e.Message)
}

// Summary is one search hit.
type Summary struct {
	ID         string  `json:"recipe_id"`
	Title      string  `json:"title"`
	Publisher  string  `json:"publisher"`
	ImageURL   string  `json:"image_url"`
	SourceURL  string  `json:"source_url"`
	SocialRank float64 `json:"social_rank"`
}

// Recipe is a full recipe with its raw ingredient lines.
type Recipe struct {
	ID          string   `json:"recipe_id"`
	Title       string   `json:"title"`
	Publisher   string   `json:"publisher"`
	ImageURL    string   `json:"image_url"`
	SourceURL   string   `json:"source_url"`
	Ingredients []string `json:"ingredients"`
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Key     string
	Timeout time.Duration
}

// Client talks to the recipe API. It is safe for concurrent use.
type Client struct {
	http *resty.Client
	key  string
}

// New creates a Client. A zero Timeout means 30 seconds.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	client.SetRetryCount(2)
	client.SetRetryWaitTime(200 * time.Millisecond)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		return err != nil || res.StatusCode() >= 500 || res.StatusCode() == http.StatusTooManyRequests
	})

	return &Client{http: client, key: opts.Key}
}

type searchResponse struct {
	Count   int       `json:"count"`
	Recipes []Summary `json:"recipes"`
}

type getResponse struct {
	Recipe *Recipe `json:"recipe"`
}

// Search returns the API's matches for query, in the API's order.
func (c *Client) Search(ctx context.Context, query string) ([]Summary, error) {
	var out searchResponse
	if err := c.get(ctx, "/search", map[string]string{"q": query}, &out); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if out.Recipes == nil {
		out.Recipes = []Summary{}
	}
	return out.Recipes, nil
}

// Get fetches a single recipe.
func (c *Client) Get(ctx context.Context, id string) (Recipe, error) {
	var out getResponse
	if err := c.get(ctx, "/get", map[string]string{"rId": id}, &out); err != nil {
		return Recipe{}, fmt.Errorf("get recipe %s: %w", id, err)
	}
	if out.Recipe == nil || out.Recipe.Title == "" {
		return Recipe{}, fmt.Errorf("get recipe %s: %w", id, ErrNotFound)
	}
	if out.Recipe.ID == "" {
		out.Recipe.ID = id
	}
	return *out.Recipe, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, v any) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.key).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return err
	}

	body := res.Body()
	if res.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}
	if res.IsError() {
		return &APIError{Status: res.StatusCode(), Message: errorMessage(body, res.Status())}
	}

	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if probe.Error != "" {
		return &APIError{Status: res.StatusCode(), Message: probe.Error}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(body []byte, fallback string) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return fallback
}

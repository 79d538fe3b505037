package wpsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client performs single-request calls against the WordPress REST API.
// It carries no retry logic: retries, if any, are the engine's policy.
type Client struct {
	base     string
	username string
	password string
	http     *http.Client
	limiter  *rate.Limiter
}

// NewClient builds a client for the given site. appPassword is a
// WordPress application password paired with username for Basic auth.
func NewClient(baseURL, username, appPassword string, timeout time.Duration) *Client {
	return &Client{
		base:     strings.TrimRight(baseURL, "/"),
		username: username,
		password: appPassword,
		http:     &http.Client{Timeout: timeout},
		// WP shared hosting throttles aggressively; keep outbound calls polite.
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

func (c *Client) propertiesURL() string { return c.base + "/wp-json/wp/v2/properties" }
func (c *Client) categoriesURL() string { return c.base + "/wp-json/wp/v2/categories" }

func (c *Client) do(ctx context.Context, method, url string, body any) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return 0, nil, err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "NectarSync/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, b, nil
}

type postResponse struct {
	ID int64 `json:"id"`
}

// CreateProperty posts a new property and returns the assigned post id.
func (c *Client) CreateProperty(ctx context.Context, p Payload) (int64, error) {
	status, body, err := c.do(ctx, http.MethodPost, c.propertiesURL(), p)
	if err != nil {
		return 0, err
	}
	if status < 200 || status > 299 {
		return 0, &RemoteError{Status: status, Body: string(body)}
	}
	var out postResponse
	if err := json.Unmarshal(body, &out); err != nil || out.ID == 0 {
		return 0, fmt.Errorf("wpsync: create response missing id: %w", err)
	}
	return out.ID, nil
}

// UpdateProperty targets an existing post. A 404 means the post was
// deleted out-of-band and is reported as ErrRemoteNotFound.
func (c *Client) UpdateProperty(ctx context.Context, externalID int64, p Payload) (int64, error) {
	url := fmt.Sprintf("%s/%d", c.propertiesURL(), externalID)
	status, body, err := c.do(ctx, http.MethodPut, url, p)
	if err != nil {
		return 0, err
	}
	if status == http.StatusNotFound {
		return 0, ErrRemoteNotFound
	}
	if status < 200 || status > 299 {
		return 0, &RemoteError{Status: status, Body: string(body)}
	}
	var out postResponse
	if err := json.Unmarshal(body, &out); err != nil || out.ID == 0 {
		// Some WP setups return an empty body on update; the target id
		// is authoritative either way.
		return externalID, nil
	}
	return out.ID, nil
}

// ListCategories fetches the remote taxonomy for name resolution.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.categoriesURL()+"?per_page=100", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &RemoteError{Status: status, Body: string(body)}
	}
	var cats []Category
	if err := json.Unmarshal(body, &cats); err != nil {
		return nil, fmt.Errorf("wpsync: bad category list: %w", err)
	}
	return cats, nil
}

type termError struct {
	Code string `json:"code"`
	Data struct {
		TermID int64 `json:"term_id"`
	} `json:"data"`
}

// CreateCategory creates a taxonomy term. A term_exists conflict from a
// racing create is treated as success: the conflicting id is captured
// from the error body.
func (c *Client) CreateCategory(ctx context.Context, name string) (int64, error) {
	status, body, err := c.do(ctx, http.MethodPost, c.categoriesURL(), map[string]string{"name": name})
	if err != nil {
		return 0, err
	}
	if status >= 200 && status <= 299 {
		var out postResponse
		if err := json.Unmarshal(body, &out); err != nil || out.ID == 0 {
			return 0, fmt.Errorf("wpsync: create category response missing id: %w", err)
		}
		return out.ID, nil
	}
	var te termError
	if json.Unmarshal(body, &te) == nil && te.Code == "term_exists" && te.Data.TermID > 0 {
		return te.Data.TermID, nil
	}
	return 0, &RemoteError{Status: status, Body: string(body)}
}

package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Gateway is the narrow surface the repositories need from the hosted
// store: read rows with a filter, insert a row and get the stored rows
// (including generated identity) echoed back. Any PostgREST-compatible
// backend satisfies it.
type Gateway interface {
	Query(ctx context.Context, table, sel string, filter Filter, dest any) error
	Insert(ctx context.Context, table string, payload, dest any) error
}

// Client talks to the Supabase REST interface (PostgREST).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError is a PostgREST error payload. Code carries the SQLSTATE when
// the failure originates in the database.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("supabase: %d %s: %s (%s)", e.Status, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("supabase: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsUniqueViolation reports whether the error is a database uniqueness
// constraint violation (SQLSTATE 23505).
func (e *APIError) IsUniqueViolation() bool { return e.Code == "23505" }

func (c *Client) Query(ctx context.Context, table, sel string, filter Filter, dest any) error {
	q := url.Values{}
	q.Set("select", sel)
	for col, pred := range filter {
		q.Set(col, pred)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(table)+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	return c.do(req, dest)
}

func (c *Client) Insert(ctx context.Context, table string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(table), bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if dest != nil {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	return c.do(req, dest)
}

func (c *Client) endpoint(table string) string {
	return c.baseURL + "/rest/v1/" + table
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

func (c *Client) do(req *http.Request, dest any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return parseAPIError(res)
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(dest)
}

func parseAPIError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		apiErr.Message = res.Status
		return apiErr
	}
	if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" && apiErr.Code == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

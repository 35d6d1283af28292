// Package apiclient talks to the loan back end. Every call carries the
// bearer token found in its context and decodes the {data, message} envelope.
package apiclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type errorBody struct {
	Message string `json:"message"`
}

type Client struct{ r *resty.Client }

func New(baseURL string, timeout time.Duration) *Client {
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	// attach the caller's session token, when there is one
	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok := TokenFrom(req.Context()); tok != "" {
			req.SetAuthToken(tok)
		}
		return nil
	})
	return &Client{r: r}
}

// do runs one request and unwraps the envelope's data.
func do[T any](ctx context.Context, c *Client, method, path string, prep func(*resty.Request)) (T, error) {
	var (
		env   envelope[T]
		ebody errorBody
		zero  T
	)
	req := c.r.R().SetContext(ctx).SetResult(&env).SetError(&ebody)
	if prep != nil {
		prep(req)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := ebody.Message
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
			if len(msg) > 200 || strings.HasPrefix(msg, "<") {
				msg = ""
			}
		}
		return zero, &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return env.Data, nil
}

// ListQuery is the shared filter for the paginated admin tables.
type ListQuery struct {
	Page        int
	Limit       int
	SearchQuery string
	IsSeen      *bool
	Date        string
}

// Params renders the query string. isSeen is sent only when set.
func (q ListQuery) Params() map[string]string {
	p := map[string]string{
		"page":        strconv.Itoa(max(q.Page, 1)),
		"limit":       strconv.Itoa(q.Limit),
		"searchQuery": q.SearchQuery,
		"date":        q.Date,
	}
	if q.IsSeen != nil {
		p["isSeen"] = strconv.FormatBool(*q.IsSeen)
	}
	return p
}

// Key is a stable representation of the query, used for cache keys.
func (q ListQuery) Key() string {
	seen := "any"
	if q.IsSeen != nil {
		seen = strconv.FormatBool(*q.IsSeen)
	}
	return fmt.Sprintf("p=%d&l=%d&q=%s&seen=%s&d=%s", max(q.Page, 1), q.Limit, q.SearchQuery, seen, q.Date)
}

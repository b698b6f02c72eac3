package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAuthExpired reports that the service rejected the bearer token.
// Callers distinguish it from transport failures with errors.Is.
var ErrAuthExpired = errors.New("authorization expired")

// Source is the read-only remote interface the controller consumes.
// *Client implements it; tests substitute fakes.
type Source interface {
	ListCalendars(ctx context.Context, token string) ([]Calendar, error)
	ListEvents(ctx context.Context, token, calendarID string, startUTC, endUTC time.Time) ([]Event, error)
}

var _ Source = (*Client)(nil)

// Client talks to the Microsoft Graph REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://graph.microsoft.com/v1.0"
	defaultUserAgent = "365cal-tui/0.1"
	requestTimeout   = 15 * time.Second

	selectFields = "subject,start,end,body,attendees,location,organizer"
)

// NewClient builds a Client against the production Graph endpoint.
func NewClient() *Client {
	c, _ := NewClientWithBase(defaultBaseURL)
	return c
}

// NewClientWithBase builds a Client against an alternate endpoint,
// primarily for tests.
func NewClientWithBase(base string) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	return &Client{
		baseURL: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListCalendars retrieves the user's calendar list.
func (c *Client) ListCalendars(ctx context.Context, token string) ([]Calendar, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.JoinPath("me", "calendars")
	var payload calendarListResponse
	if err := c.get(ctx, token, reqURL.String(), &payload); err != nil {
		return nil, err
	}
	return payload.Value, nil
}

// ListEvents issues a calendarview query for one calendar across a UTC
// window and follows continuation links until the result set is
// exhausted. Events come back ordered by start.
func (c *Client) ListEvents(ctx context.Context, token, calendarID string, startUTC, endUTC time.Time) ([]Event, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.JoinPath("me", "calendars", calendarID, "calendarview")
	values := url.Values{}
	values.Set("startDateTime", startUTC.Format(time.RFC3339))
	values.Set("endDateTime", endUTC.Format(time.RFC3339))
	values.Set("$select", selectFields)
	values.Set("$orderby", "start/dateTime")
	reqURL.RawQuery = values.Encode()

	var all []Event
	next := reqURL.String()
	for next != "" {
		var page eventListResponse
		if err := c.get(ctx, token, next, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Value...)
		// Continuation links are followed unchanged.
		next = page.NextLink
	}
	return all, nil
}

func (c *Client) get(ctx context.Context, token, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("graph %s: %w", req.URL.Path, ErrAuthExpired)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("graph %s returned status %d", req.URL.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Package remote implements the client for the vocabulary website REST
// API. Every operation is a single synchronous call with a fixed timeout
// and no retries.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/elyorka22/-telegram-bot/internal/domain"
)

const (
	// requestTimeout bounds every API call.
	requestTimeout = 15 * time.Second
	// statusTimeout bounds the lighter availability probe.
	statusTimeout = 10 * time.Second
)

var (
	// ErrUnavailable wraps transport failures: the website cannot be
	// reached at all.
	ErrUnavailable = errors.New("website unavailable")
	// ErrAlreadyExists maps the 409 answer on hashtag creation.
	ErrAlreadyExists = errors.New("hashtag already exists")
	// ErrNotFound maps the 404 answer on hashtag deletion.
	ErrNotFound = errors.New("hashtag not found")
)

// StatusError reports an unexpected HTTP status from the website API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("website returned status %d", e.Code)
}

// Client talks to the vocabulary website REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an API client for the website at baseURL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// do executes the request and decodes a 2xx response body into target
// when one is given. Transport failures come back as ErrUnavailable,
// other statuses as *StatusError.
func (c *Client) do(req *http.Request, target interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &StatusError{Code: resp.StatusCode}
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) postJSON(path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

// Status reports whether the website answers its hashtag listing.
func (c *Client) Status(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/hashtags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Website status check failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	c.logger.Info("Website status check", zap.Int("status", resp.StatusCode))
	return resp.StatusCode == http.StatusOK
}

// Hashtags lists every category known to the website.
func (c *Client) Hashtags() ([]domain.Hashtag, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/hashtags", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	var hashtags []domain.Hashtag
	if err := c.do(req, &hashtags); err != nil {
		return nil, err
	}
	return hashtags, nil
}

// CreateHashtag registers a new category. A duplicate name comes back as
// ErrAlreadyExists.
func (c *Client) CreateHashtag(name, description string) error {
	err := c.postJSON("/api/hashtags", domain.Hashtag{Name: name, Description: description})

	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusConflict {
		return ErrAlreadyExists
	}
	return err
}

// DeleteHashtag removes a category. An unknown name comes back as
// ErrNotFound.
func (c *Client) DeleteHashtag(name string) error {
	q := url.Values{"name": {name}}
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/api/hashtags?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	err = c.do(req, nil)

	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}

// PostMessage saves a tagged note on the website.
func (c *Client) PostMessage(text string, hashtags []string, userID int64, username string, sentAt time.Time) error {
	payload := struct {
		Text      string   `json:"text"`
		Hashtags  []string `json:"hashtags"`
		UserID    string   `json:"user_id"`
		Username  string   `json:"username"`
		Timestamp string   `json:"timestamp"`
	}{
		Text:      text,
		Hashtags:  hashtags,
		UserID:    strconv.FormatInt(userID, 10),
		Username:  username,
		Timestamp: sentAt.Format(time.RFC3339),
	}
	return c.postJSON("/api/messages", payload)
}

// MessagesByCategory returns every saved note whose category matches.
// The API has no filter parameter, so the full list is fetched and
// narrowed here.
func (c *Client) MessagesByCategory(category string) ([]domain.Message, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/messages", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	var messages []domain.Message
	if err := c.do(req, &messages); err != nil {
		return nil, err
	}

	var matched []domain.Message
	for _, msg := range messages {
		if msg.Category == category {
			matched = append(matched, msg)
		}
	}
	c.logger.Info("Fetched category messages",
		zap.String("category", category),
		zap.Int("total", len(messages)),
		zap.Int("matched", len(matched)))
	return matched, nil
}

// UpsertUser mirrors a registered user's record to the website.
func (c *Client) UpsertUser(rec *domain.UserRecord) error {
	payload := struct {
		UserID       string          `json:"user_id"`
		Username     string          `json:"username"`
		FirstName    string          `json:"first_name"`
		LastName     string          `json:"last_name"`
		Language     domain.Language `json:"language"`
		RegisteredAt string          `json:"registered_at"`
		Stats        domain.Stats    `json:"stats"`
	}{
		UserID:       strconv.FormatInt(rec.UserID, 10),
		Username:     rec.Username,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		Language:     rec.Language,
		RegisteredAt: rec.RegisteredAt.Format(time.RFC3339),
		Stats:        rec.Stats,
	}
	return c.postJSON("/api/users", payload)
}

package images

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/presentwallah/engine/pkg/logger"
	"go.uber.org/zap"
)

// Per-call timeouts. Exceeding either is treated the same as "not found".
const (
	searchTimeout   = 10 * time.Second
	downloadTimeout = 15 * time.Second

	defaultBaseURL = "https://api.pexels.com/v1/search"
)

// Client queries the Pexels photo API. Every operation fails soft: a missing
// API key, transport error, non-200 response, or empty result set resolves
// to "no image available" rather than an error, so a failed lookup can never
// abort slide generation.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the search endpoint, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// Search returns the URL of one matching photo, or ok=false when nothing
// usable was found.
func (c *Client) Search(ctx context.Context, query, orientation string) (string, bool) {
	if c.apiKey == "" {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(1))
	q.Set("orientation", orientation)
	q.Set("size", "medium")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.L().Debug("image search failed", zap.String("query", query), zap.Error(err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.L().Debug("image search non-200", zap.String("query", query), zap.Int("status", resp.StatusCode))
		return "", false
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		logger.L().Debug("image search decode failed", zap.String("query", query), zap.Error(err))
		return "", false
	}
	if len(sr.Photos) == 0 || sr.Photos[0].Src.Large == "" {
		return "", false
	}
	return sr.Photos[0].Src.Large, true
}

// Download fetches the image bytes, or ok=false on any failure.
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.L().Debug("image download failed", zap.String("url", imageURL), zap.Error(err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.L().Debug("image download non-200", zap.String("url", imageURL), zap.Int("status", resp.StatusCode))
		return nil, false
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

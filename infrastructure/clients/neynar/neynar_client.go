// Package neynar implements a thin HTTP client for the hosted social-graph
// API. It only moves bytes; response reshaping lives in the social usecase.
package neynar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"jobcast/infrastructure/clients/neynar/models"
	"jobcast/infrastructure/logger"
)

// IClient defines the social provider operations the service consumes.
type IClient interface {
	LookupSigner(ctx context.Context, signerUUID string) (*models.Signer, error)
	FetchBulkUsers(ctx context.Context, fids []int64) ([]models.User, error)
	PublishCast(ctx context.Context, req *models.PublishCastRequest) (*models.PublishCastResponse, error)
	DeleteCast(ctx context.Context, signerUUID, hash string) error
	PublishReaction(ctx context.Context, signerUUID, reactionType, targetHash string) error
	DeleteReaction(ctx context.Context, signerUUID, reactionType, targetHash string) error
	FetchFeed(ctx context.Context, opts *models.FeedOptions) (*models.FeedResponse, error)
	FetchFeedForYou(ctx context.Context, fid int64, opts *models.FeedOptions) (*models.FeedResponse, error)
}

// Config represents the provider API configuration.
type Config struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
}

// Client talks to the provider over plain HTTP with an API key header.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) (IClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("neynar api key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.neynar.com"
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// StatusError carries the provider's HTTP status so callers can map it.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("neynar: %d %s", e.StatusCode, e.Message)
}

func (c *Client) LookupSigner(ctx context.Context, signerUUID string) (*models.Signer, error) {
	var signer models.Signer
	path := "/v2/farcaster/signer?signer_uuid=" + signerUUID
	if err := c.do(ctx, http.MethodGet, path, nil, &signer); err != nil {
		return nil, err
	}
	return &signer, nil
}

func (c *Client) FetchBulkUsers(ctx context.Context, fids []int64) ([]models.User, error) {
	parts := make([]string, len(fids))
	for i, fid := range fids {
		parts[i] = strconv.FormatInt(fid, 10)
	}
	var res models.BulkUsersResponse
	path := "/v2/farcaster/user/bulk?fids=" + strings.Join(parts, ",")
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}

func (c *Client) PublishCast(ctx context.Context, req *models.PublishCastRequest) (*models.PublishCastResponse, error) {
	var res models.PublishCastResponse
	if err := c.do(ctx, http.MethodPost, "/v2/farcaster/cast", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteCast(ctx context.Context, signerUUID, hash string) error {
	body := map[string]string{"signer_uuid": signerUUID, "target_hash": hash}
	return c.do(ctx, http.MethodDelete, "/v2/farcaster/cast", body, nil)
}

func (c *Client) PublishReaction(ctx context.Context, signerUUID, reactionType, targetHash string) error {
	body := map[string]string{"signer_uuid": signerUUID, "reaction_type": reactionType, "target": targetHash}
	return c.do(ctx, http.MethodPost, "/v2/farcaster/reaction", body, nil)
}

func (c *Client) DeleteReaction(ctx context.Context, signerUUID, reactionType, targetHash string) error {
	body := map[string]string{"signer_uuid": signerUUID, "reaction_type": reactionType, "target": targetHash}
	return c.do(ctx, http.MethodDelete, "/v2/farcaster/reaction", body, nil)
}

func (c *Client) FetchFeed(ctx context.Context, opts *models.FeedOptions) (*models.FeedResponse, error) {
	if opts == nil {
		opts = &models.FeedOptions{}
	}
	values, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var res models.FeedResponse
	if err := c.do(ctx, http.MethodGet, "/v2/farcaster/feed?"+values.Encode(), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) FetchFeedForYou(ctx context.Context, fid int64, opts *models.FeedOptions) (*models.FeedResponse, error) {
	if opts == nil {
		opts = &models.FeedOptions{}
	}
	opts.Fid = fid
	values, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var res models.FeedResponse
	if err := c.do(ctx, http.MethodGet, "/v2/farcaster/feed/for_you?"+values.Encode(), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("neynar request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("neynar response read failed: %w", err)
	}

	if res.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		msg := res.Status
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		logger.GetLogger().WithField("status", res.StatusCode).WithField("path", path).Warn("Provider returned an error")
		return &StatusError{StatusCode: res.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("neynar response decode failed: %w", err)
		}
	}
	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	v1 "github.com/tupyy/parcm/api/v1"
	serviceErrs "github.com/tupyy/parcm/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Client talks to the /api/v1 surface of a running parcm.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/v1",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Status returns the player status
// GET /api/v1/status
func (c *Client) Status(ctx context.Context) (*v1.PlayerStatus, error) {
	var status v1.PlayerStatus
	if err := c.do(ctx, http.MethodGet, "/status", http.StatusOK, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Next requests the next album and returns its index
// POST /api/v1/player/next
func (c *Client) Next(ctx context.Context) (int, error) {
	return c.navigate(ctx, "/player/next")
}

// Prev requests the previous album and returns its index
// POST /api/v1/player/prev
func (c *Client) Prev(ctx context.Context) (int, error) {
	return c.navigate(ctx, "/player/prev")
}

// Play requests the album at index
// POST /api/v1/player/play/{index}
func (c *Client) Play(ctx context.Context, index int) error {
	_, err := c.navigate(ctx, "/player/play/"+strconv.Itoa(index))
	if serviceErrs.IsResourceNotFoundError(err) {
		return serviceErrs.NewAlbumNotFoundError(index)
	}
	return err
}

// Albums lists one page of the catalog
// GET /api/v1/albums
func (c *Client) Albums(ctx context.Context, page, pageSize int) (*v1.AlbumListResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	path := "/albums"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp v1.AlbumListResponse
	if err := c.do(ctx, http.MethodGet, path, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) navigate(ctx context.Context, path string) (int, error) {
	var resp v1.NavigationResponse
	if err := c.do(ctx, http.MethodPost, path, http.StatusAccepted, &resp); err != nil {
		return -1, err
	}
	return resp.Requested, nil
}

func (c *Client) do(ctx context.Context, method, path string, expected int, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	zap.S().Named("client").Debugw("request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case expected:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return serviceErrs.NewResourceNotFoundError("resource", path)
	case http.StatusConflict:
		return serviceErrs.NewEmptyCatalogError()
	default:
		var e v1.ErrorResponse
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, e.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
}

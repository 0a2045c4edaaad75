package dynamicmockups

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://app.dynamicmockups.com/api/v1"

	RenderFormat = "png"
	RenderWidth  = 1500
)

type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	downloadClient *http.Client
	backoffs       []time.Duration
}

type Asset struct {
	URL string `json:"url"`
}

type SmartObject struct {
	UUID  string `json:"uuid"`
	Color string `json:"color,omitempty"`
	Asset Asset  `json:"asset"`
}

type RenderRequest struct {
	MockupUUID            string        `json:"mockup_uuid"`
	SmartObjects          []SmartObject `json:"smart_objects"`
	Format                string        `json:"format"`
	Width                 int           `json:"width"`
	TransparentBackground bool          `json:"transparent_background"`
}

type RenderResponse struct {
	Data struct {
		ExportLabel string `json:"export_label"`
		ExportPath  string `json:"export_path"`
	} `json:"data"`
	Message string `json:"message"`
}

type MockupSmartObject struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type Mockup struct {
	UUID         string              `json:"uuid"`
	Name         string              `json:"name"`
	Thumbnail    string              `json:"thumbnail"`
	SmartObjects []MockupSmartObject `json:"smart_objects"`
}

type MockupsResponse struct {
	Data []Mockup `json:"data"`
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		downloadClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		backoffs: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// NewRenderRequest builds the request for one design, color and template.
func NewRenderRequest(mockupUUID, smartObjectUUID, color, imageURL string) RenderRequest {
	return RenderRequest{
		MockupUUID: mockupUUID,
		SmartObjects: []SmartObject{
			{
				UUID:  smartObjectUUID,
				Color: color,
				Asset: Asset{URL: imageURL},
			},
		},
		Format:                RenderFormat,
		Width:                 RenderWidth,
		TransparentBackground: true,
	}
}

// Render submits a render and returns the URL of the rendered image.
func (c *Client) Render(ctx context.Context, renderReq RenderRequest) (string, error) {
	jsonData, err := json.Marshal(renderReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/renders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to render mockup: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result RenderResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if result.Data.ExportPath == "" {
		return "", fmt.Errorf("export_path is empty in response, body: %s", string(body))
	}

	return result.Data.ExportPath, nil
}

// ListMockups returns the templates available to the account.
func (c *Client) ListMockups(ctx context.Context) ([]Mockup, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + "/mockups"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to list mockups: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result MockupsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Data, nil
}

// CheckImage verifies that the design image is publicly reachable before any
// render is attempted.
func (c *Client) CheckImage(ctx context.Context, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image URL is not accessible: status %d", resp.StatusCode)
	}
	return nil
}

// Download fetches a rendered image.
func (c *Client) Download(ctx context.Context, downloadURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to download file: status %d, body: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// RetryWithBackoff executes a function with exponential backoff retry logic.
// It stops waiting as soon as ctx is done.
func (c *Client) RetryWithBackoff(ctx context.Context, fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(c.backoffs) && i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry cancelled after %d attempts: %w", i+1, ctx.Err())
			case <-time.After(c.backoffs[i]):
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

// SetBackoffs replaces the retry delays.
func (c *Client) SetBackoffs(backoffs []time.Duration) {
	c.backoffs = backoffs
}

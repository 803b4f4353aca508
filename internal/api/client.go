package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

	// YouTube API maximums per request
	maxPageSize  = 50
	maxBatchSize = 50

	defaultTimeout = 10 * time.Second
)

// YouTubeClient handles direct HTTP requests to the YouTube Data API
type YouTubeClient struct {
	apiKey   string
	client   *http.Client
	reporter ErrorReporter
	baseURL  string // defaults to youtubeAPIBaseURL
}

// NewYouTubeClient creates a new YouTube client
func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey:   apiKey,
		client:   &http.Client{Timeout: defaultTimeout},
		reporter: LogReporter{},
		baseURL:  youtubeAPIBaseURL,
	}
}

// WithTimeout sets the timeout applied to each upstream request.
// Non-positive values are ignored.
func (c *YouTubeClient) WithTimeout(d time.Duration) *YouTubeClient {
	if d > 0 {
		c.client.Timeout = d
	}
	return c
}

// WithErrorReporter replaces the sink that receives fetch failures.
func (c *YouTubeClient) WithErrorReporter(r ErrorReporter) *YouTubeClient {
	if r != nil {
		c.reporter = r
	}
	return c
}

// fetchJSON performs a single GET and decodes the JSON body into dst. Every
// failure is reported once and returned wrapped in ErrTransport or ErrDecode.
func (c *YouTubeClient) fetchJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return c.report(fmt.Errorf("%w: %v", ErrTransport, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.report(fmt.Errorf("%w: %v", ErrTransport, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.report(fmt.Errorf("%w: status code %d", ErrTransport, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return c.report(fmt.Errorf("%w: %v", ErrDecode, err))
	}

	return nil
}

// report forwards err to the reporter and returns it unchanged.
func (c *YouTubeClient) report(err error) error {
	c.reporter.ReportError(err)
	return err
}

package httputil

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/korunafx/koruna/feed"
	"golang.org/x/text/encoding/charmap"
)

const defaultUserAgent = "koruna/0.0.0"

var ErrStatusCode = errors.New("http status != 200")

var _ feed.Fetcher = FeedHTTPClient{}

// DefaultFeedHTTPClient return preconfigured HTTP client
func DefaultFeedHTTPClient() FeedHTTPClient {
	return FeedHTTPClient{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:          20000,
				MaxIdleConnsPerHost:   1000,
				DisableCompression:    true,
				IdleConnTimeout:       5 * time.Minute,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
			},
		},
	}
}

// NewHTTPClient return prepared FeedHTTPClient
func NewHTTPClient(client *http.Client) FeedHTTPClient {
	return FeedHTTPClient{client: client}
}

// FeedHTTPClient downloads feed bodies over HTTP. One request per Get call,
// no retries. Safe for concurrent use
type FeedHTTPClient struct {
	client *http.Client
}

func (f FeedHTTPClient) UserAgent() string {
	return defaultUserAgent
}

// Get implements HTTP method GET client and returns the slice byte from the body.
// An empty url fails with feed.ErrInvalidArgument before any network activity;
// every transport or status failure comes back as a *feed.FetchError
func (f FeedHTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: url is empty", feed.ErrInvalidArgument)
	}

	b, err := f.fetch(ctx, url)
	if err != nil {
		return nil, &feed.FetchError{URL: url, Err: err}
	}

	return b, nil
}

func (f FeedHTTPClient) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := f.prepareRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("build HTTP request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("make HTTP request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status: %d, %s: %w", resp.StatusCode, resp.Status, ErrStatusCode)
	}

	var reader io.Reader = resp.Body
	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	contentEncoding := resp.Header.Get("Content-Encoding")

	switch {
	case strings.Contains(contentType, "zip"), strings.Contains(contentEncoding, "gzip"):
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("unable create gzip.NewReader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	// The older feed hosts still publish text in the windows codepages
	switch {
	case strings.Contains(contentType, "charset=windows-1250"):
		reader = charmap.Windows1250.NewDecoder().Reader(reader)
	case strings.Contains(contentType, "charset=windows-1251"):
		reader = charmap.Windows1251.NewDecoder().Reader(reader)
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read body: %w", err)
		}
	}

	return b, nil
}

func (f FeedHTTPClient) prepareRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	return req, nil
}

package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrMissingImage is returned when a page is fetched successfully but
// declares no Open-Graph image.
var ErrMissingImage = errors.New("no og:image meta tag found")

// Resolver extracts the Open-Graph image URL from an article page. Each
// call performs one outbound GET; results are not cached.
type Resolver struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

func NewResolver(httpClient *http.Client, userAgent string, timeout time.Duration) *Resolver {
	return &Resolver{
		httpClient: httpClient,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

func (r *Resolver) ResolveImage(ctx context.Context, pageURL string) (string, error) {
	data, err := r.fetchPage(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	imageURL, exists := doc.Find(`meta[property="og:image"]`).First().Attr("content")
	if !exists || imageURL == "" {
		return "", ErrMissingImage
	}

	slog.Debug("Open-Graph image resolved", "url", pageURL, "image", imageURL)

	return imageURL, nil
}

func (r *Resolver) fetchPage(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

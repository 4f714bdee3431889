package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/tj2904/pp-api/app/feed"
	"github.com/tj2904/pp-api/app/sentiment"
)

// categoryPattern is the allow-list for category path segments. Categories
// are substituted into the feed URL template, so anything outside this set
// is rejected before a URL is built.
var categoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ImageResolver resolves a representative image URL for an article page.
type ImageResolver interface {
	ResolveImage(ctx context.Context, pageURL string) (string, error)
}

// Pipeline turns a feed category into enriched articles: fetch feed, parse,
// score title and summary, resolve an Open-Graph image per entry.
type Pipeline struct {
	parser      *feed.Parser
	scorer      *sentiment.Scorer
	resolver    ImageResolver
	httpClient  *http.Client
	urlTemplate string
	userAgent   string
	timeout     time.Duration
	workerCount int
}

func NewPipeline(parser *feed.Parser, scorer *sentiment.Scorer, resolver ImageResolver,
	httpClient *http.Client, urlTemplate string, userAgent string,
	timeout time.Duration, workerCount int) *Pipeline {
	if workerCount < 1 {
		workerCount = 1
	}

	return &Pipeline{
		parser:      parser,
		scorer:      scorer,
		resolver:    resolver,
		httpClient:  httpClient,
		urlTemplate: urlTemplate,
		userAgent:   userAgent,
		timeout:     timeout,
		workerCount: workerCount,
	}
}

// NormalizeCategory lowercases a raw category and validates it against the
// safe character set.
func NormalizeCategory(raw string) (string, error) {
	category := strings.ToLower(strings.TrimSpace(raw))
	if !categoryPattern.MatchString(category) {
		return "", fmt.Errorf("invalid category: %q", raw)
	}
	return category, nil
}

// FeedURL builds the feed URL for an already-normalized category.
func (p *Pipeline) FeedURL(category string) string {
	return fmt.Sprintf(p.urlTemplate, category)
}

// Run fetches and enriches the feed for a category. Entries missing a title
// or link are skipped; a failed image resolution leaves that record's
// ImageURL empty. A feed fetch or parse failure aborts the whole run.
// Records are returned in feed order.
func (p *Pipeline) Run(ctx context.Context, category string) ([]Article, error) {
	normalized, err := NormalizeCategory(category)
	if err != nil {
		return nil, err
	}

	data, err := p.fetchFeed(ctx, p.FeedURL(normalized))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	entries, err := p.parser.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	skippedCount := 0
	valid := make([]feed.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Title == "" || entry.Link == "" {
			slog.Warn("Skipping malformed feed entry", "category", normalized,
				"title", entry.Title, "link", entry.Link)
			skippedCount++
			continue
		}
		valid = append(valid, entry)
	}

	images := p.resolveImages(ctx, valid)

	articles := make([]Article, 0, len(valid))
	for i, entry := range valid {
		articles = append(articles, Article{
			Title:            entry.Title,
			Summary:          entry.Summary,
			TitleSentiment:   p.scorer.Score(entry.Title),
			SummarySentiment: p.scorer.Score(entry.Summary),
			ItemURL:          entry.Link,
			ImageURL:         images[i],
			PublishedAt:      entry.PublishedAt,
			Published:        entry.Published,
		})
	}

	slog.Info("Pipeline run completed", "category", normalized,
		"total", len(entries), "skipped", skippedCount, "articles", len(articles))

	return articles, nil
}

// resolveImages fans image resolution out over a bounded worker pool.
// Results are written by entry index, so the caller sees feed order
// regardless of completion order. Failures leave the slot empty.
func (p *Pipeline) resolveImages(ctx context.Context, entries []feed.Entry) []string {
	images := make([]string, len(entries))
	jobs := make(chan int, len(entries))

	var wg sync.WaitGroup
	for w := 0; w < p.workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				imageURL, err := p.resolver.ResolveImage(ctx, entries[i].Link)
				if err != nil {
					slog.Warn("Image resolution failed, continuing without image",
						"url", entries[i].Link, "error", err)
					continue
				}
				images[i] = imageURL
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return images
}

func (p *Pipeline) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
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

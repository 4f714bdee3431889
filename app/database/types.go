package database

import (
	"time"

	"github.com/tj2904/pp-api/app/sentiment"
)

// ScoredArticle is one persisted row of the scored-news store. The store is
// append-only: re-running the pipeline for the same article inserts a new
// row. Published keeps the feed's raw pubDate string, which is the shape
// the store has always served. JSON field names match the documents the
// original store exposed.
type ScoredArticle struct {
	ID               int64           `json:"-"`
	Title            string          `json:"title"`
	Summary          string          `json:"summary"`
	ItemURL          string          `json:"itemUrl"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	Published        string          `json:"published"`
	Source           string          `json:"source"`
	Region           string          `json:"region"`
	TitleSentiment   sentiment.Score `json:"vaderTitle"`
	SummarySentiment sentiment.Score `json:"vaderSummary"`
	CreatedAt        time.Time       `json:"-"`
}

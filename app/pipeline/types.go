package pipeline

import (
	"time"

	"github.com/tj2904/pp-api/app/sentiment"
)

// Article is one feed entry after enrichment: validated, sentiment-scored,
// and (when resolution succeeds) carrying the page's Open-Graph image.
// Records are assembled once per pipeline run and never mutated; re-running
// the pipeline produces fresh records for the same ItemURL.
type Article struct {
	Title            string
	Summary          string
	TitleSentiment   sentiment.Score
	SummarySentiment sentiment.Score
	ItemURL          string
	ImageURL         string
	PublishedAt      time.Time
	Published        string
}

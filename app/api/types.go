package api

import (
	"time"

	"github.com/tj2904/pp-api/app/database"
	"github.com/tj2904/pp-api/app/pipeline"
	"github.com/tj2904/pp-api/app/scrape"
	"github.com/tj2904/pp-api/app/sentiment"
)

type Handler struct {
	pipeline         *pipeline.Pipeline
	scorer           *sentiment.Scorer
	resolver         *scrape.Resolver
	articleRepo      database.ArticleRepository
	topPositiveLimit float64
	strongLimit      float64
}

// liveArticle is the serving shape of an enriched record: the publication
// time is the feed's structured value, and there are no store tags. The
// stored shape (raw published string, source/region tags) is
// database.ScoredArticle.
type liveArticle struct {
	Title            string          `json:"title"`
	Summary          string          `json:"summary"`
	TitleSentiment   sentiment.Score `json:"vaderTitle"`
	SummarySentiment sentiment.Score `json:"vaderSummary"`
	ItemURL          string          `json:"itemUrl"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	PublishedAt      time.Time       `json:"published"`
}

func toLiveArticle(article pipeline.Article) liveArticle {
	return liveArticle{
		Title:            article.Title,
		Summary:          article.Summary,
		TitleSentiment:   article.TitleSentiment,
		SummarySentiment: article.SummarySentiment,
		ItemURL:          article.ItemURL,
		ImageURL:         article.ImageURL,
		PublishedAt:      article.PublishedAt,
	}
}

func toScoredArticle(article pipeline.Article, region string) database.ScoredArticle {
	return database.ScoredArticle{
		Title:            article.Title,
		Summary:          article.Summary,
		ItemURL:          article.ItemURL,
		ImageURL:         article.ImageURL,
		Published:        article.Published,
		Source:           "bbc",
		Region:           region,
		TitleSentiment:   article.TitleSentiment,
		SummarySentiment: article.SummarySentiment,
	}
}

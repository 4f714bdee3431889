package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tj2904/pp-api/app/database"
	"github.com/tj2904/pp-api/app/pipeline"
)

// StoreFeedTask runs the enrichment pipeline's storage variant for one
// region and appends the scored records to the article store.
type StoreFeedTask struct {
	Task
	feedPipeline *pipeline.Pipeline
	articleRepo  database.ArticleRepository
}

func NewStoreFeedTask(region string, feedPipeline *pipeline.Pipeline,
	articleRepo database.ArticleRepository) *StoreFeedTask {
	return &StoreFeedTask{
		Task:         NewTask(TaskTypeStoreFeed, region),
		feedPipeline: feedPipeline,
		articleRepo:  articleRepo,
	}
}

func (t *StoreFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	articles, err := t.feedPipeline.Run(ctx, t.Region)
	if err != nil {
		return fmt.Errorf("failed to run pipeline: %w", err)
	}

	storedCount := 0
	for _, article := range articles {
		dbArticle := database.ScoredArticle{
			Title:            article.Title,
			Summary:          article.Summary,
			ItemURL:          article.ItemURL,
			ImageURL:         article.ImageURL,
			Published:        article.Published,
			Source:           "bbc",
			Region:           t.Region,
			TitleSentiment:   article.TitleSentiment,
			SummarySentiment: article.SummarySentiment,
		}

		if err := t.articleRepo.Insert(dbArticle); err != nil {
			return fmt.Errorf("failed to store article: %w", err)
		}
		storedCount++
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"region", t.Region,
		"duration", t.GetDuration(),
		"stored", storedCount)

	return nil
}

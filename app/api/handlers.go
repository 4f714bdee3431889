package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tj2904/pp-api/app/database"
	"github.com/tj2904/pp-api/app/pipeline"
	"github.com/tj2904/pp-api/app/scrape"
	"github.com/tj2904/pp-api/app/sentiment"
)

func NewHandler(feedPipeline *pipeline.Pipeline, scorer *sentiment.Scorer,
	resolver *scrape.Resolver, articleRepo database.ArticleRepository,
	topPositiveLimit, strongLimit float64) *Handler {
	return &Handler{
		pipeline:         feedPipeline,
		scorer:           scorer,
		resolver:         resolver,
		articleRepo:      articleRepo,
		topPositiveLimit: topPositiveLimit,
		strongLimit:      strongLimit,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"healthcheck": "Everything OK!"})
}

// GetLiveFeed runs the pipeline for a category and serves the enriched
// records directly, with the structured publication time.
func (h *Handler) GetLiveFeed(c *gin.Context) {
	category, err := pipeline.NormalizeCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articles, err := h.pipeline.Run(c.Request.Context(), category)
	if err != nil {
		slog.Error("Pipeline run failed", "category", category, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch news feed"})
		return
	}

	response := make([]liveArticle, 0, len(articles))
	for _, article := range articles {
		response = append(response, toLiveArticle(article))
	}

	c.JSON(http.StatusOK, response)
}

// ScoreText scores an arbitrary piece of text supplied as a path parameter.
func (h *Handler) ScoreText(c *gin.Context) {
	text := c.Param("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.scorer.Score(text)})
}

// StoreFeed runs the pipeline's storage variant for a region and persists
// the records, tagged with their source, keeping the feed's raw published
// string.
func (h *Handler) StoreFeed(c *gin.Context) {
	region, err := pipeline.NormalizeCategory(c.Param("region"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articles, err := h.pipeline.Run(c.Request.Context(), region)
	if err != nil {
		slog.Error("Pipeline run failed", "region", region, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch news feed"})
		return
	}

	for _, article := range articles {
		if err := h.articleRepo.Insert(toScoredArticle(article, region)); err != nil {
			slog.Error("Failed to store article", "region", region, "url", article.ItemURL, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store articles"})
			return
		}
	}

	slog.Info("Stored scored articles", "region", region, "count", len(articles))

	c.JSON(http.StatusOK, gin.H{"message": "successful"})
}

// GetTopPositive returns stored articles whose summary compound score
// strictly exceeds the configured threshold.
func (h *Handler) GetTopPositive(c *gin.Context) {
	articles, err := h.articleRepo.FindTopPositive(h.topPositiveLimit)
	if err != nil {
		slog.Error("Database error", "operation", "find_top_positive", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(articles) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No news found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": articles})
}

// GetAllStrong returns stored articles where both the title and summary
// compound scores meet the configured threshold.
func (h *Handler) GetAllStrong(c *gin.Context) {
	articles, err := h.articleRepo.FindAllStrong(h.strongLimit, h.strongLimit)
	if err != nil {
		slog.Error("Database error", "operation", "find_all_strong", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(articles) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No news found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": articles})
}

// GetOpenGraphImage resolves the Open-Graph image for a single URL.
func (h *Handler) GetOpenGraphImage(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url query parameter"})
		return
	}

	imageURL, err := h.resolver.ResolveImage(c.Request.Context(), url)
	if err != nil {
		if errors.Is(err, scrape.ErrMissingImage) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No Open-Graph image found"})
			return
		}
		slog.Error("Image resolution failed", "url", url, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": imageURL})
}

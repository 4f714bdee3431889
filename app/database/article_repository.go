package database

import (
	"database/sql"
	"fmt"
)

var _ ArticleRepository = (*SQLArticleRepository)(nil)

// SQLArticleRepository handles database operations for scored articles
type SQLArticleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) *SQLArticleRepository {
	return &SQLArticleRepository{db: db}
}

// Insert appends a scored article. There is no dedup key: the same item_url
// may appear once per pipeline run.
func (r *SQLArticleRepository) Insert(article ScoredArticle) error {
	_, err := r.db.Exec(`
		INSERT INTO scored_articles (
			title, summary, item_url, image_url, published, source, region,
			title_neg, title_neu, title_pos, title_compound,
			summary_neg, summary_neu, summary_pos, summary_compound
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.Title, article.Summary, article.ItemURL, article.ImageURL,
		article.Published, article.Source, article.Region,
		article.TitleSentiment.Negative, article.TitleSentiment.Neutral,
		article.TitleSentiment.Positive, article.TitleSentiment.Compound,
		article.SummarySentiment.Negative, article.SummarySentiment.Neutral,
		article.SummarySentiment.Positive, article.SummarySentiment.Compound)

	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// FindTopPositive returns articles whose summary compound score strictly
// exceeds threshold.
func (r *SQLArticleRepository) FindTopPositive(threshold float64) ([]ScoredArticle, error) {
	rows, err := r.db.Query(selectColumns+`
		FROM scored_articles
		WHERE summary_compound > ?
	`, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query top positive articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// FindAllStrong returns articles meeting both compound thresholds.
func (r *SQLArticleRepository) FindAllStrong(summaryThreshold, titleThreshold float64) ([]ScoredArticle, error) {
	rows, err := r.db.Query(selectColumns+`
		FROM scored_articles
		WHERE summary_compound >= ?
		  AND title_compound >= ?
	`, summaryThreshold, titleThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query strong articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// Count returns the total number of stored articles
func (r *SQLArticleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM scored_articles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

const selectColumns = `
		SELECT id, title, summary, item_url, image_url, published, source, region,
		       title_neg, title_neu, title_pos, title_compound,
		       summary_neg, summary_neu, summary_pos, summary_compound,
		       created_at`

func scanArticles(rows *sql.Rows) ([]ScoredArticle, error) {
	var articles []ScoredArticle
	for rows.Next() {
		var article ScoredArticle
		err := rows.Scan(
			&article.ID, &article.Title, &article.Summary, &article.ItemURL,
			&article.ImageURL, &article.Published, &article.Source, &article.Region,
			&article.TitleSentiment.Negative, &article.TitleSentiment.Neutral,
			&article.TitleSentiment.Positive, &article.TitleSentiment.Compound,
			&article.SummarySentiment.Negative, &article.SummarySentiment.Neutral,
			&article.SummarySentiment.Positive, &article.SummarySentiment.Compound,
			&article.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

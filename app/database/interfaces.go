package database

type ArticleRepository interface {
	Insert(article ScoredArticle) error

	// FindTopPositive returns articles whose summary compound score strictly
	// exceeds threshold. FindAllStrong requires both compound scores to meet
	// their thresholds. Both return (nil, nil) when nothing matches;
	// ordering is store-defined.
	FindTopPositive(threshold float64) ([]ScoredArticle, error)
	FindAllStrong(summaryThreshold, titleThreshold float64) ([]ScoredArticle, error)

	Count() (int, error)
}

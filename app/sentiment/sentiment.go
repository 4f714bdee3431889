package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Score holds VADER polarity intensities for a piece of text. The three
// category intensities sum to 1.0; compound is an independently normalized
// aggregate in [-1, 1]. JSON field names match the NLTK polarity_scores
// output consumed by existing clients.
type Score struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Scorer wraps a VADER analyzer. The lexicon is loaded once at construction
// and shared by all calls; scoring itself is stateless.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score rates the polarity of text. Total over all inputs: blank text gets
// a fully neutral score instead of an error.
func (s *Scorer) Score(text string) Score {
	if strings.TrimSpace(text) == "" {
		return Score{Neutral: 1.0}
	}

	result := s.analyzer.PolarityScores(text)

	return Score{
		Negative: result.Negative,
		Neutral:  result.Neutral,
		Positive: result.Positive,
		Compound: result.Compound,
	}
}

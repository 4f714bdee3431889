package sentiment

import (
	"math"
	"testing"
)

func TestScoreIntensitiesSumToOne(t *testing.T) {
	scorer := NewScorer()

	inputs := []string{
		"VADER is smart, handsome, and funny.",
		"The worst day of my life, everything was horrible.",
		"The cat sat on the mat.",
		"Laura Nuttall: Bucket list brain cancer fundraiser dies",
		"Café reopens after müsli festival brings good cheer",
		"<b>Great</b> news for everyone in the region",
	}

	for _, text := range inputs {
		score := scorer.Score(text)

		sum := score.Negative + score.Neutral + score.Positive
		if math.Abs(sum-1.0) > 0.001 {
			t.Errorf("Expected intensities to sum to 1.0 for %q, got: %f", text, sum)
		}

		if score.Compound < -1.0 || score.Compound > 1.0 {
			t.Errorf("Expected compound in [-1, 1] for %q, got: %f", text, score.Compound)
		}
	}
}

func TestScoreEmptyText(t *testing.T) {
	scorer := NewScorer()

	for _, text := range []string{"", "   ", "\n\t"} {
		score := scorer.Score(text)

		if score.Neutral != 1.0 {
			t.Errorf("Expected neutral 1.0 for %q, got: %f", text, score.Neutral)
		}
		if score.Compound != 0.0 {
			t.Errorf("Expected compound 0.0 for %q, got: %f", text, score.Compound)
		}
		if score.Negative != 0.0 || score.Positive != 0.0 {
			t.Errorf("Expected zero negative/positive for %q, got: %f/%f", text, score.Negative, score.Positive)
		}
	}
}

func TestScorePolarity(t *testing.T) {
	scorer := NewScorer()

	positive := scorer.Score("What a wonderful, happy, excellent day!")
	if positive.Compound <= 0 {
		t.Errorf("Expected positive compound, got: %f", positive.Compound)
	}

	negative := scorer.Score("A terrible, horrible disaster killed everything.")
	if negative.Compound >= 0 {
		t.Errorf("Expected negative compound, got: %f", negative.Compound)
	}
}

func TestScoreIdempotent(t *testing.T) {
	scorer := NewScorer()

	text := "Manchester Arena attack: Young survivors lack support, study finds"
	first := scorer.Score(text)
	second := scorer.Score(text)

	if first != second {
		t.Errorf("Expected identical scores for identical text, got: %+v and %+v", first, second)
	}
}

func TestScoreDeterministicAcrossScorers(t *testing.T) {
	text := "Good news at last"

	first := NewScorer().Score(text)
	second := NewScorer().Score(text)

	if first != second {
		t.Errorf("Expected identical scores from separate scorers, got: %+v and %+v", first, second)
	}
}

package dialect

import "brainrot/internal/rewrite"

// MixedThreshold: ниже этой уверенности файл с обоими написаниями считается смешанным.
const MixedThreshold = 0.75

// Classification is the verdict for one file.
type Classification struct {
	Kind            Kind // Unknown on a tie or with no scored hints
	Score           int
	TotalScore      int
	Confidence      float64 // Score / TotalScore
	RunnerUp        Kind
	RunnerUpScore   int
	ObservedSignals int
}

// Mixed reports whether both spellings show up with no clear winner.
func (c Classification) Mixed() bool {
	return c.RunnerUpScore > 0 && c.Confidence < MixedThreshold
}

// Direction translates away from the dominant spelling.
func (c Classification) Direction() (dir rewrite.Direction, ok bool) {
	switch c.Kind {
	case Canonical:
		return rewrite.Forward, true
	case Alternate:
		return rewrite.Backward, true
	}
	return rewrite.Forward, false
}

// Classifier tallies hint scores per side.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	var c Classification
	if e == nil {
		return c
	}
	var tally [kindCount]int
	for _, h := range e.hints {
		c.ObservedSignals++
		if h.Score > 0 && h.Dialect > Unknown && h.Dialect < kindCount {
			tally[h.Dialect] += h.Score
			c.TotalScore += h.Score
		}
	}

	win, lose := Canonical, Alternate
	if tally[Alternate] > tally[Canonical] {
		win, lose = lose, win
	}
	c.Score, c.RunnerUpScore = tally[win], tally[lose]
	if c.TotalScore > 0 {
		c.Confidence = float64(c.Score) / float64(c.TotalScore)
	}
	if c.RunnerUpScore > 0 {
		c.RunnerUp = lose
	}
	if c.Score > c.RunnerUpScore {
		c.Kind = win
	}
	return c
}

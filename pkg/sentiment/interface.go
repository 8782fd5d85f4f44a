package sentiment

// TextSentimentScorer rates the tone of a short text.
type TextSentimentScorer interface {
	// Polarity returns a value in [-1, 1]: negative for unfavourable or
	// urgent-sounding text, positive for favourable text, 0 when neutral.
	Polarity(text string) float64
}

// ScorerFunc adapts a plain function to TextSentimentScorer.
type ScorerFunc func(text string) float64

// Polarity implements TextSentimentScorer.
func (f ScorerFunc) Polarity(text string) float64 { return f(text) }

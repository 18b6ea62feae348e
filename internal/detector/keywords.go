package detector

import "strings"

// Classifier flags messages whose body contains any configured keyword or
// phrase. Matching is case-insensitive substring containment, not strict
// word-boundary matching: the vocabulary spans multiple languages and the
// heuristic deliberately favors recall over precision.
type Classifier struct {
	keywords []string
}

// NewClassifier builds a classifier over the given vocabulary. Empty entries
// are dropped so that a blank config line can never flag every message.
func NewClassifier(keywords []string) *Classifier {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}
	return &Classifier{keywords: lowered}
}

// Match reports whether text contains any vocabulary entry.
func (c *Classifier) Match(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range c.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

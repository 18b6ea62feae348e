package detector

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TargetStrategy extracts candidate target names from the body of a single
// boycott-related message. Strategies are pluggable so the extraction
// heuristic can be swapped without touching the rest of the engine.
type TargetStrategy interface {
	Candidates(text string) []string
}

var wordRegex = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// CapitalizedSpanStrategy treats runs of consecutive capitalized tokens as
// one candidate name span ("Acme Corp"). Spans shorter than MinLength runes
// are dropped, which also filters sentence-initial noise like "I".
type CapitalizedSpanStrategy struct {
	MinLength int
}

// Candidates returns the capitalized spans found in text, in order.
func (s CapitalizedSpanStrategy) Candidates(text string) []string {
	tokens := wordRegex.FindAllString(text, -1)

	var candidates []string
	var span []string
	flush := func() {
		if len(span) == 0 {
			return
		}
		candidate := strings.Join(span, " ")
		if utf8.RuneCountInString(candidate) >= s.MinLength {
			candidates = append(candidates, candidate)
		}
		span = span[:0]
	}

	for _, tok := range tokens {
		first, _ := utf8.DecodeRuneInString(tok)
		if unicode.IsUpper(first) {
			span = append(span, tok)
			continue
		}
		flush()
	}
	flush()

	return candidates
}

// FrequencyStrategy counts every word token of at least MinTokenLength
// runes, mirroring the plain word-frequency heuristic. It works for scripts
// without letter case, at the cost of keyword tokens competing with names.
type FrequencyStrategy struct {
	MinTokenLength int
}

// Candidates returns every sufficiently long word token in text, in order.
func (s FrequencyStrategy) Candidates(text string) []string {
	tokens := wordRegex.FindAllString(text, -1)

	candidates := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) >= s.MinTokenLength {
			candidates = append(candidates, tok)
		}
	}
	return candidates
}

// VocabularyStrategy matches a configured entity list against the message
// body, case-insensitively. Each occurrence reports the canonical entry as
// written in the vocabulary.
type VocabularyStrategy struct {
	entries []string
	lowered []string
}

// NewVocabularyStrategy builds a strategy over the given entity names.
func NewVocabularyStrategy(entries []string) VocabularyStrategy {
	vs := VocabularyStrategy{}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		vs.entries = append(vs.entries, e)
		vs.lowered = append(vs.lowered, strings.ToLower(e))
	}
	return vs
}

// Candidates returns the vocabulary entries contained in text, once per
// occurrence.
func (s VocabularyStrategy) Candidates(text string) []string {
	lowered := strings.ToLower(text)

	var candidates []string
	for i, entry := range s.lowered {
		for n := strings.Count(lowered, entry); n > 0; n-- {
			candidates = append(candidates, s.entries[i])
		}
	}
	return candidates
}

// DetectTarget counts candidate occurrences across all boycott-related,
// non-system messages and returns the most frequent candidate plus the full
// ranked mention list. Ties break toward the earliest-seen candidate. When
// no flagged messages or candidates exist, the target is nil and the mention
// list is empty; this is not an error condition.
func DetectTarget(messages []Message, strategy TargetStrategy, maxMentions int) (*string, []Mention) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, msg := range messages {
		if msg.IsSystem || !msg.BoycottRelated {
			continue
		}
		for _, candidate := range strategy.Candidates(msg.Text) {
			if _, ok := counts[candidate]; !ok {
				firstSeen[candidate] = len(firstSeen)
			}
			counts[candidate]++
		}
	}

	mentions := make([]Mention, 0, len(counts))
	for name, count := range counts {
		mentions = append(mentions, Mention{Name: name, Count: count})
	}
	sort.Slice(mentions, func(i, j int) bool {
		if mentions[i].Count != mentions[j].Count {
			return mentions[i].Count > mentions[j].Count
		}
		return firstSeen[mentions[i].Name] < firstSeen[mentions[j].Name]
	})

	if maxMentions > 0 && len(mentions) > maxMentions {
		mentions = mentions[:maxMentions]
	}

	if len(mentions) == 0 {
		return nil, mentions
	}
	target := mentions[0].Name
	return &target, mentions
}

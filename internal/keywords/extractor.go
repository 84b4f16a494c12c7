// Package keywords derives weighted keyword sets from resume and job-description text.
package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/nlp"
)

const (
	// DefaultMinLength is the minimum keyword length when the caller passes 0.
	DefaultMinLength = 3
	// maxPhraseTokens caps noun phrases at three tokens.
	maxPhraseTokens = 3
)

// Extractor derives keywords from free text using an injected tokenizer.
type Extractor struct {
	tokenizer nlp.Tokenizer
}

// NewExtractor creates an Extractor around the given tokenizer.
func NewExtractor(tokenizer nlp.Tokenizer) *Extractor {
	return &Extractor{tokenizer: tokenizer}
}

// Extract returns the unique set of lemmatized keywords in text: nouns and
// proper nouns plus noun phrases of up to three tokens, with stop words and
// tokens shorter than minLength dropped. Empty text yields an empty set,
// never an error. The result is sorted for stable output.
func (e *Extractor) Extract(text string, minLength int) []string {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	tokens := e.tokenizer.Tokens(text)
	if len(tokens) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)

	// Single-token keywords: nouns and proper nouns only.
	for _, tok := range tokens {
		if !nlp.IsNounTag(tok.Tag) {
			continue
		}
		lemma := tok.Lemma
		if len(lemma) < minLength || nlp.IsStopWord(lemma) {
			continue
		}
		seen[lemma] = true
	}

	// Noun phrases: runs of adjectives/nouns ending in a noun, up to three
	// tokens ("machine learning", "continuous integration pipeline").
	for phrase := range nounPhrases(tokens) {
		if len(phrase) >= minLength {
			seen[phrase] = true
		}
	}

	result := make([]string, 0, len(seen))
	for keyword := range seen {
		result = append(result, keyword)
	}
	sort.Strings(result)
	return result
}

// Frequency counts lemmatized-token occurrences in the full text, skipping
// stop words. Empty text yields an empty map.
func (e *Extractor) Frequency(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range e.tokenizer.Tokens(text) {
		if nlp.IsStopWord(tok.Lemma) || tok.Lemma == "" {
			continue
		}
		counts[tok.Lemma]++
	}
	return counts
}

// Weight maps each keyword to its frequency in the context text normalized
// to (0,1]: the most frequent present keyword weighs 1.0 and weights are
// monotonic in occurrence count. Keywords absent from the context are
// omitted.
func (e *Extractor) Weight(keywordSet []string, context string) map[string]float64 {
	frequencies := e.Frequency(context)

	maxCount := 0
	counts := make(map[string]int, len(keywordSet))
	for _, keyword := range keywordSet {
		count := countOccurrences(keyword, context, frequencies)
		if count == 0 {
			continue
		}
		counts[keyword] = count
		if count > maxCount {
			maxCount = count
		}
	}

	weights := make(map[string]float64, len(counts))
	for keyword, count := range counts {
		weights[keyword] = float64(count) / float64(maxCount)
	}
	return weights
}

// countOccurrences resolves a keyword's occurrence count: single tokens use
// the lemma frequency table, phrases fall back to substring counting.
func countOccurrences(keyword, context string, frequencies map[string]int) int {
	if !strings.Contains(keyword, " ") {
		return frequencies[keyword]
	}
	return strings.Count(strings.ToLower(context), keyword)
}

// nounPhrases yields adjective/noun runs ending in a noun, joined by single
// spaces, between two and maxPhraseTokens tokens long.
func nounPhrases(tokens []nlp.Token) map[string]bool {
	phrases := make(map[string]bool)

	var run []nlp.Token
	flush := func() {
		// Trim leading adjectives so the run starts at a content word and
		// ends at a noun.
		for len(run) > 0 && !nlp.IsNounTag(run[len(run)-1].Tag) {
			run = run[:len(run)-1]
		}
		if len(run) >= 2 {
			start := 0
			if len(run) > maxPhraseTokens {
				start = len(run) - maxPhraseTokens
			}
			words := make([]string, 0, maxPhraseTokens)
			for _, tok := range run[start:] {
				words = append(words, tok.Lemma)
			}
			phrases[strings.Join(words, " ")] = true
		}
		run = nil
	}

	for _, tok := range tokens {
		if nlp.IsNounTag(tok.Tag) || nlp.IsAdjectiveTag(tok.Tag) {
			if nlp.IsStopWord(tok.Lemma) || tok.Lemma == "" {
				flush()
				continue
			}
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases
}

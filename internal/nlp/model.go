// Package nlp provides the shared natural-language model used for tokenization,
// part-of-speech tagging and lemmatization.
package nlp

import (
	"strings"
	"sync"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// Token is one tagged token of input text. Tag is a Penn Treebank
// part-of-speech tag; Lemma is the canonical dictionary form.
type Token struct {
	Text  string
	Tag   string
	Lemma string
}

// Tokenizer produces tagged tokens from free text. The production
// implementation is *Model; tests substitute a lightweight stub.
type Tokenizer interface {
	Tokens(text string) []Token
}

// Model wraps the prose part-of-speech tagger and the golem English
// lemmatizer. Both are expensive to build, so a process-wide instance is
// created once via Load and is safe for concurrent reads afterwards.
type Model struct {
	tagger     *prose.Model
	lemmatizer *golem.Lemmatizer
}

var (
	loadOnce   sync.Once
	sharedErr  error
	sharedInst *Model
)

// Load returns the process-wide model, initializing it on first call.
// Initialization is idempotent and thread-safe; a failure is returned on
// every subsequent call rather than retried.
func Load() (*Model, error) {
	loadOnce.Do(func() {
		lem, err := golem.New(en.New())
		if err != nil {
			sharedErr = &ModelError{Message: "failed to load English lemma dictionary", Cause: err}
			return
		}
		sharedInst = &Model{
			tagger:     prose.ModelFromData("default"),
			lemmatizer: lem,
		}
	})
	return sharedInst, sharedErr
}

// Tokens tokenizes and tags text. Empty or whitespace-only text yields nil.
func (m *Model) Tokens(text string) []Token {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.UsingModel(m.tagger),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		// prose only errors on empty input, which is handled above.
		return nil
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		cleaned := CleanToken(tok.Text)
		if cleaned == "" {
			continue
		}
		tokens = append(tokens, Token{
			Text:  cleaned,
			Tag:   tok.Tag,
			Lemma: m.lemmatizer.Lemma(cleaned),
		})
	}
	return tokens
}

// CleanToken lowercases a token and trims surrounding punctuation while
// preserving tech-name characters like "c++", "c#" and "node.js".
func CleanToken(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	return strings.TrimFunc(lowered, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '+', '#':
			return false
		}
		return true
	})
}

// IsNounTag reports whether a Penn Treebank tag marks a noun or proper noun.
func IsNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

// IsAdjectiveTag reports whether a tag marks an adjective. Adjectives are
// kept only as modifiers inside noun phrases, never as standalone keywords.
func IsAdjectiveTag(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS":
		return true
	}
	return false
}

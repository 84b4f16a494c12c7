package nlp

import "strings"

// StubTokenizer is a lightweight Tokenizer for tests and offline use. It
// splits on whitespace, tags every token as a noun and uses the cleaned
// token as its own lemma, so extraction logic can be exercised without
// loading the shared model.
type StubTokenizer struct{}

// Tokens implements Tokenizer.
func (StubTokenizer) Tokens(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		cleaned := CleanToken(field)
		if cleaned == "" {
			continue
		}
		tokens = append(tokens, Token{Text: cleaned, Tag: "NN", Lemma: cleaned})
	}
	return tokens
}

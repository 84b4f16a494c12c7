package nlp

// stopWords filters common English words that add noise to keyword matching.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"for": true, "nor": true, "with": true, "without": true, "within": true,
	"you": true, "your": true, "yours": true, "our": true, "ours": true,
	"their": true, "theirs": true, "they": true, "them": true, "its": true,
	"are": true, "is": true, "was": true, "were": true, "been": true,
	"be": true, "being": true, "have": true, "has": true, "had": true,
	"will": true, "would": true, "shall": true, "should": true, "can": true,
	"could": true, "may": true, "might": true, "must": true, "do": true,
	"does": true, "did": true, "this": true, "that": true, "these": true,
	"those": true, "from": true, "into": true, "onto": true, "upon": true,
	"about": true, "above": true, "below": true, "between": true, "through": true,
	"which": true, "what": true, "who": true, "whom": true, "whose": true,
	"when": true, "where": true, "why": true, "how": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "only": true,
	"own": true, "same": true, "than": true, "too": true, "very": true,
	"just": true, "also": true, "then": true, "once": true, "here": true,
	"there": true, "again": true, "not": true, "no": true, "so": true,
	"as": true, "at": true, "by": true, "in": true, "of": true, "on": true,
	"to": true, "up": true, "out": true, "off": true, "over": true,
	"under": true, "if": true, "while": true, "because": true, "until": true,
	"we": true, "us": true, "it": true, "he": true, "she": true, "his": true,
	"her": true, "new": true, "able": true, "well": true, "etc": true,
	"experience": true, "work": true, "team": true, "role": true, "job": true,
	"ability": true, "candidate": true, "years": true, "year": true,
	"strong": true, "plus": true, "including": true, "using": true,
	"preferred": true, "required": true, "requirements": true,
}

// IsStopWord reports whether a lowercased token is a stop word.
func IsStopWord(token string) bool {
	return stopWords[token]
}

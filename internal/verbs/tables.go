// Package verbs classifies the verbs opening achievement statements as strong or weak.
package verbs

// DefaultStrongVerbs is the default strong action-verb table. Callers may
// supply their own table (per-locale or per-industry) via NewAnalyzerWithTables.
var DefaultStrongVerbs = []string{
	"accelerated", "achieved", "acquired", "adapted", "advised",
	"analyzed", "architected", "automated", "boosted", "built",
	"centralized", "championed", "coached", "collaborated", "conceived",
	"consolidated", "constructed", "converted", "coordinated", "created",
	"cultivated", "cut", "debugged", "decreased", "defined",
	"delivered", "demonstrated", "deployed", "designed", "developed",
	"devised", "diagnosed", "directed", "doubled", "drove",
	"eliminated", "enabled", "engineered", "enhanced", "established",
	"evaluated", "exceeded", "executed", "expanded", "expedited",
	"facilitated", "forecasted", "formulated", "founded", "generated",
	"grew", "guided", "headed", "identified", "implemented",
	"improved", "increased", "influenced", "initiated", "innovated",
	"instituted", "integrated", "introduced", "invented", "launched",
	"led", "leveraged", "maximized", "mentored", "migrated",
	"minimized", "modernized", "negotiated", "optimized", "orchestrated",
	"organized", "overhauled", "owned", "persuaded", "pioneered",
	"planned", "produced", "programmed", "rearchitected", "reduced",
	"refactored", "redesigned", "resolved", "restructured", "revamped",
	"saved", "scaled", "secured", "shipped", "spearheaded",
	"standardized", "streamlined", "strengthened", "supervised", "surpassed",
	"transformed", "tripled",
}

// DefaultWeakVerbs is the default weak verb/phrase table. Multi-word phrases
// are matched against the start of the achievement line.
var DefaultWeakVerbs = []string{
	"responsible for",
	"in charge of",
	"tasked with",
	"worked on",
	"worked with",
	"helped with",
	"helped",
	"assisted with",
	"assisted",
	"participated in",
	"involved in",
	"contributed to",
	"supported",
	"handled",
	"dealt with",
	"did",
	"made",
	"used",
	"tried",
	"attempted",
}

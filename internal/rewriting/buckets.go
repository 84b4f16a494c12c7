// Package rewriting provides the rule-driven rewrite strategies applied during optimization.
package rewriting

// ContextBucket maps thematic trigger keywords found in an achievement line
// to a priority-ordered shortlist of strong replacement verbs. Buckets are
// checked in table order; the first bucket with a trigger hit wins.
type ContextBucket struct {
	Name     string
	Triggers []string
	Verbs    []string
}

// DefaultBuckets is the default context-bucket table. Callers may substitute
// their own (per-locale or per-industry) via NewBulletRewriterWithBuckets.
var DefaultBuckets = []ContextBucket{
	{
		Name:     "team",
		Triggers: []string{"team", "engineers", "developers", "staff", "members", "headcount", "hires"},
		Verbs:    []string{"led", "managed", "mentored", "coordinated", "supervised"},
	},
	{
		Name:     "system",
		Triggers: []string{"system", "architecture", "infrastructure", "platform", "service", "microservice"},
		Verbs:    []string{"architected", "engineered", "built", "designed", "deployed"},
	},
	{
		Name:     "process",
		Triggers: []string{"process", "workflow", "procedure", "operations", "pipeline"},
		Verbs:    []string{"streamlined", "optimized", "standardized", "overhauled", "established"},
	},
	{
		Name:     "revenue",
		Triggers: []string{"revenue", "sales", "profit", "income", "earnings"},
		Verbs:    []string{"generated", "grew", "increased", "maximized", "drove"},
	},
	{
		Name:     "performance",
		Triggers: []string{"performance", "latency", "speed", "throughput", "efficiency", "load"},
		Verbs:    []string{"optimized", "accelerated", "improved", "boosted", "reduced"},
	},
	{
		Name:     "data",
		Triggers: []string{"data", "database", "analytics", "reporting", "metrics", "dashboard"},
		Verbs:    []string{"analyzed", "consolidated", "migrated", "transformed", "centralized"},
	},
	{
		Name:     "customer",
		Triggers: []string{"customer", "client", "user", "stakeholder", "partner"},
		Verbs:    []string{"delivered", "advised", "supported", "negotiated", "strengthened"},
	},
	{
		Name:     "quality",
		Triggers: []string{"quality", "testing", "tests", "bugs", "defects", "reliability"},
		Verbs:    []string{"improved", "resolved", "eliminated", "diagnosed", "strengthened"},
	},
	{
		Name:     "leadership",
		Triggers: []string{"strategy", "initiative", "vision", "roadmap", "direction"},
		Verbs:    []string{"spearheaded", "championed", "initiated", "directed", "pioneered"},
	},
	{
		Name:     "automation",
		Triggers: []string{"automation", "automated", "manual", "deployment", "script", "tooling"},
		Verbs:    []string{"automated", "implemented", "expedited", "modernized", "integrated"},
	},
	{
		Name:     "design",
		Triggers: []string{"design", "interface", "prototype", "mockup", "layout"},
		Verbs:    []string{"designed", "created", "conceived", "devised", "produced"},
	},
	{
		Name:     "security",
		Triggers: []string{"security", "compliance", "audit", "vulnerability", "encryption"},
		Verbs:    []string{"secured", "hardened", "instituted", "enforced", "resolved"},
	},
	{
		Name:     "cost",
		Triggers: []string{"cost", "budget", "spend", "expense", "savings"},
		Verbs:    []string{"reduced", "cut", "saved", "minimized", "consolidated"},
	},
	{
		Name:     "growth",
		Triggers: []string{"growth", "adoption", "engagement", "retention", "expansion"},
		Verbs:    []string{"expanded", "scaled", "grew", "doubled", "accelerated"},
	},
	{
		Name:     "general",
		Triggers: nil, // fallback bucket, always matches
		Verbs:    []string{"delivered", "executed", "implemented", "achieved", "established"},
	},
}

// Package rewriting provides the rule-driven rewrite strategies applied during optimization.
package rewriting

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/nlp"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/verbs"
)

// BulletRewriter replaces weak leading verbs in achievement lines with
// strong verbs picked from thematic context buckets. Selection is a pure
// function of the line and the seed, so rewrites are reproducible.
type BulletRewriter struct {
	analyzer *verbs.Analyzer
	buckets  []ContextBucket
	seed     uint64
}

// NewBulletRewriter creates a rewriter with the default bucket table and
// seed 0.
func NewBulletRewriter(analyzer *verbs.Analyzer) *BulletRewriter {
	return NewBulletRewriterWithBuckets(analyzer, DefaultBuckets, 0)
}

// NewBulletRewriterWithBuckets creates a rewriter with a caller-supplied
// bucket table and selection seed.
func NewBulletRewriterWithBuckets(analyzer *verbs.Analyzer, buckets []ContextBucket, seed uint64) *BulletRewriter {
	return &BulletRewriter{analyzer: analyzer, buckets: buckets, seed: seed}
}

// Rewrite rewrites every weak-lead achievement line in the snapshot in place
// and returns one modification record per rewritten line. The caller passes
// a clone; original snapshots are never touched by the optimizer.
func (r *BulletRewriter) Rewrite(snapshot *types.ResumeSnapshot) []types.ChangeRecord {
	changes := []types.ChangeRecord{}
	for expIdx := range snapshot.Experiences {
		exp := &snapshot.Experiences[expIdx]
		for achIdx, line := range exp.Achievements {
			rewritten, weak, verb := r.RewriteLine(line)
			if rewritten == line {
				continue
			}
			exp.Achievements[achIdx] = rewritten
			changes = append(changes, types.ChangeRecord{
				Section:    "experience",
				FieldPath:  fmt.Sprintf("experiences[%d].achievements[%d]", expIdx, achIdx),
				OldValue:   line,
				NewValue:   rewritten,
				ChangeType: types.ChangeModification,
				Reason:     fmt.Sprintf("replaced weak verb %q with %q", weak, verb),
			})
		}
	}
	return changes
}

// RewriteLine rewrites a single achievement line if it opens with a weak
// verb or phrase. It returns the (possibly unchanged) line plus the weak
// lead and the chosen strong verb when a rewrite happened.
func (r *BulletRewriter) RewriteLine(line string) (rewritten, weakLead, strongVerb string) {
	stripped := nlp.StripBullet(line)
	weak := r.analyzer.WeakLead(stripped)
	if weak == "" {
		return line, "", ""
	}

	remainder := strings.TrimSpace(stripped[len(weak):])
	remainder = strings.TrimLeft(remainder, ",:; ")
	if remainder == "" {
		return line, "", ""
	}

	verb := r.selectVerb(stripped)

	// A leading gerund is absorbed by the new verb:
	// "responsible for managing a team" -> "Led a team".
	fields := strings.Fields(remainder)
	if len(fields) > 1 && strings.HasSuffix(strings.ToLower(fields[0]), "ing") {
		remainder = strings.Join(fields[1:], " ")
	}

	return capitalize(verb) + " " + remainder, weak, verb
}

// selectVerb classifies the line into a context bucket and picks a verb from
// the bucket's shortlist deterministically: the line hash xor the seed
// indexes the priority-ordered list.
func (r *BulletRewriter) selectVerb(line string) string {
	bucket := r.classify(line)

	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(strings.ToLower(line)))
	index := (hasher.Sum64() ^ r.seed) % uint64(len(bucket.Verbs))
	return bucket.Verbs[index]
}

// classify returns the first bucket whose trigger appears in the line. The
// trailing trigger-less bucket acts as the fallback.
func (r *BulletRewriter) classify(line string) ContextBucket {
	lowered := strings.ToLower(line)
	for _, bucket := range r.buckets {
		if len(bucket.Triggers) == 0 {
			return bucket
		}
		for _, trigger := range bucket.Triggers {
			if strings.Contains(lowered, trigger) {
				return bucket
			}
		}
	}
	return r.buckets[len(r.buckets)-1]
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Matcher resolves a free-text query token to the closest member of a
// vocabulary. A failed match is an expected outcome, not an error.
type Matcher interface {
	// BestMatch returns the highest-scoring vocabulary member and its
	// similarity score on a 0-100 scale (100 = exact).
	BestMatch(query string, vocabulary []string) (string, int)

	// Match returns the best vocabulary member if its score meets the
	// threshold, with ok=false when nothing qualifies.
	Match(query string, vocabulary []string, threshold int) (string, bool)
}

// LevenshteinMatcher scores queries against a vocabulary using exact,
// partial and edit-distance tiers. The vocabulary is sorted before
// scanning and ties resolve to the longer, then lexicographically
// smaller member, so the result is deterministic regardless of the
// caller's vocabulary ordering.
type LevenshteinMatcher struct{}

// NewLevenshteinMatcher creates the default approximate matcher.
func NewLevenshteinMatcher() *LevenshteinMatcher {
	return &LevenshteinMatcher{}
}

// BestMatch implements Matcher.
func (m *LevenshteinMatcher) BestMatch(query string, vocabulary []string) (string, int) {
	if len(vocabulary) == 0 {
		return "", 0
	}

	sorted := make([]string, len(vocabulary))
	copy(sorted, vocabulary)
	sort.Strings(sorted)

	best, bestScore := "", -1
	for _, candidate := range sorted {
		score := Similarity(query, candidate)
		if score > bestScore || (score == bestScore && len(candidate) > len(best)) {
			best, bestScore = candidate, score
		}
	}
	return best, bestScore
}

// Match implements Matcher.
func (m *LevenshteinMatcher) Match(query string, vocabulary []string, threshold int) (string, bool) {
	best, score := m.BestMatch(query, vocabulary)
	if best == "" || score < threshold {
		return "", false
	}
	return best, true
}

// Similarity scores how well query matches target on a 0-100 scale.
// A partial match, where the shorter string leads a word of the longer
// ("10" leading "10th grade"), scores 90 so that natural phrasings still
// resolve to terse catalog tokens without outranking exact matches. The
// partial tier never splits a number, so "9" does not claim "99th".
func Similarity(query, target string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))
	if q == "" || t == "" {
		return 0
	}

	if q == t {
		return 100
	}

	score := 0
	if sub, whole := shorterFirst(q, t); leadsWord(sub, whole) {
		score = 90
	}

	// Edit-distance ratio over the longer string catches typos like
	// "scince" for "science".
	longer := len(q)
	if len(t) > longer {
		longer = len(t)
	}
	dist := levenshtein.ComputeDistance(q, t)
	if s := int(100 * (1 - float64(dist)/float64(longer))); s > score {
		score = s
	}

	return score
}

func shorterFirst(a, b string) (string, string) {
	if len(a) <= len(b) {
		return a, b
	}
	return b, a
}

// leadsWord reports whether sub starts a word of whole without cutting a
// number in half: "10" leads "10th grade", but "9" does not lead "99th".
func leadsWord(sub, whole string) bool {
	for _, word := range strings.Fields(whole) {
		if !strings.HasPrefix(word, sub) {
			continue
		}
		rest := word[len(sub):]
		if rest == "" {
			return true
		}
		if !(isDigit(sub[len(sub)-1]) && isDigit(rest[0])) {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

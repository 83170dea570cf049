package match

import (
	"strings"

	"github.com/progmatch/progmatch/internal/catalog"
)

// identityGroups maps self-reported identity tokens to the canonical
// group names used by catalog restriction fields.
var identityGroups = map[string]string{
	"female": "female",
	"woman":  "female",
	"women":  "female",
	"girl":   "female",
	"girls":  "female",
	"male":   "male",
	"man":    "male",
	"men":    "male",
	"boy":    "male",
	"boys":   "male",
}

// identityGroup canonicalizes an identity or restriction value. Returns
// "" when the value names no recognized group.
func identityGroup(s string) string {
	return identityGroups[strings.ToLower(strings.TrimSpace(s))]
}

// FilterEligible returns the catalog entries not exclusively restricted
// against the given identity. Unrestricted entries always pass. A
// restricted entry passes only when the identity (or, for open identity
// values, the clarification label) resolves to the restricted group;
// with no clarification the broadest rule applies and restricted entries
// are excluded. This is pass/fail exclusion only, scores are untouched.
func FilterEligible(entries []catalog.Entry, identity, identityLabel string) []catalog.Entry {
	group := identityGroup(identity)
	if group == "" {
		// Open/unspecified identity: fall back to the caller-supplied
		// clarification label, if any.
		group = identityGroup(identityLabel)
	}

	eligible := make([]catalog.Entry, 0, len(entries))
	for i := range entries {
		if isEligible(&entries[i], group) {
			eligible = append(eligible, entries[i])
		}
	}
	return eligible
}

func isEligible(e *catalog.Entry, group string) bool {
	if e.Restriction == "" {
		return true
	}

	if restricted := identityGroup(e.Restriction); restricted != "" {
		return restricted == group
	}

	// Restriction names no recognized group. Without evidence that it
	// excludes this identity the entry stays in, which is the broadest
	// rule the filter can apply.
	return true
}

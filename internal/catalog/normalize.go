package catalog

import "strings"

// noiseReplacer strips the bracket and quote characters that spreadsheet
// exports leave around list-valued cells, e.g. `["Math", 'Science']`.
var noiseReplacer = strings.NewReplacer(
	"[", "",
	"]", "",
	"(", "",
	")", "",
	"{", "",
	"}", "",
	`"`, "",
	"'", "",
)

// CleanToken normalizes a single grade or subject token: bracket/quote
// noise removed, whitespace trimmed, case folded.
func CleanToken(s string) string {
	return strings.ToLower(strings.TrimSpace(noiseReplacer.Replace(s)))
}

// CleanText normalizes a scalar free-text field (description, restriction).
// Bracket/quote noise is removed and internal whitespace collapsed, but the
// text is not split or case folded.
func CleanText(s string) string {
	return strings.Join(strings.Fields(noiseReplacer.Replace(s)), " ")
}

// SplitField decomposes a comma-delimited field into a set of cleaned
// tokens. Duplicates collapse; tokens that normalize to empty are dropped.
func SplitField(s string) []string {
	parts := strings.Split(s, ",")
	seen := make(map[string]bool, len(parts))
	tokens := make([]string, 0, len(parts))

	for _, p := range parts {
		tok := CleanToken(p)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}

	return tokens
}

package catalog

// Entry represents one program in the normalized catalog. Entries are
// created once at load time and treated as read-only afterwards, which is
// what makes concurrent matching sessions over a shared catalog safe.
type Entry struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Universities string   `json:"universities"`
	GradeLevels  []string `json:"grade_levels"`
	Subjects     []string `json:"subjects"`
	Description  string   `json:"description"`
	Restriction  string   `json:"restriction,omitempty"`
}

// HasGrade reports whether the entry serves the given normalized grade token.
func (e *Entry) HasGrade(grade string) bool {
	for _, g := range e.GradeLevels {
		if g == grade {
			return true
		}
	}
	return false
}

// HasAnySubject reports whether the entry's subjects intersect the given
// normalized subject tokens.
func (e *Entry) HasAnySubject(subjects []string) bool {
	for _, want := range subjects {
		for _, s := range e.Subjects {
			if s == want {
				return true
			}
		}
	}
	return false
}

// GradeVocabulary returns the union of all grade-level tokens across entries.
func GradeVocabulary(entries []Entry) []string {
	return unionField(entries, func(e *Entry) []string { return e.GradeLevels })
}

// SubjectVocabulary returns the union of all subject tokens across entries.
func SubjectVocabulary(entries []Entry) []string {
	return unionField(entries, func(e *Entry) []string { return e.Subjects })
}

func unionField(entries []Entry, field func(*Entry) []string) []string {
	seen := make(map[string]bool)
	var vocab []string
	for i := range entries {
		for _, tok := range field(&entries[i]) {
			if !seen[tok] {
				seen[tok] = true
				vocab = append(vocab, tok)
			}
		}
	}
	return vocab
}

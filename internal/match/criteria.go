package match

import "github.com/progmatch/progmatch/internal/catalog"

// Reason explains why a matching session produced an empty result.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonEmptyCatalog   Reason = "EMPTY_CATALOG"
	ReasonNoGradeMatch   Reason = "NO_GRADE_MATCH"
	ReasonNoSubjectMatch Reason = "NO_SUBJECT_MATCH"
)

// CriteriaResult is the outcome of criteria filtering: the candidate
// subset plus the vocabulary tokens the user's raw strings resolved to.
// An empty candidate set carries a reason code; it is a reported
// condition, never an error.
type CriteriaResult struct {
	Candidates      []catalog.Entry
	MatchedGrade    string
	MatchedSubjects []string
	Reason          Reason
}

// CriteriaFilter narrows a catalog to the entries matching a user's
// grade level and at least one requested subject.
type CriteriaFilter struct {
	matcher   Matcher
	threshold int
}

// NewCriteriaFilter creates a criteria filter using the given approximate
// matcher and fuzzy acceptance threshold.
func NewCriteriaFilter(matcher Matcher, threshold int) *CriteriaFilter {
	return &CriteriaFilter{matcher: matcher, threshold: threshold}
}

// Filter resolves the raw grade string against the catalog's grade
// vocabulary, then each raw subject against the subject vocabulary of the
// grade-matching entries, and returns entries whose subjects intersect
// the matched set (OR across requested subjects).
func (f *CriteriaFilter) Filter(gradeLevel string, subjects []string, entries []catalog.Entry) CriteriaResult {
	if len(entries) == 0 {
		return CriteriaResult{Reason: ReasonEmptyCatalog}
	}

	grade, ok := f.matcher.Match(catalog.CleanToken(gradeLevel), catalog.GradeVocabulary(entries), f.threshold)
	if !ok {
		return CriteriaResult{Reason: ReasonNoGradeMatch}
	}

	byGrade := make([]catalog.Entry, 0, len(entries))
	for i := range entries {
		if entries[i].HasGrade(grade) {
			byGrade = append(byGrade, entries[i])
		}
	}

	subjectVocab := catalog.SubjectVocabulary(byGrade)
	var matched []string
	seen := make(map[string]bool)
	for _, raw := range subjects {
		subject, ok := f.matcher.Match(catalog.CleanToken(raw), subjectVocab, f.threshold)
		if !ok || seen[subject] {
			continue
		}
		seen[subject] = true
		matched = append(matched, subject)
	}
	if len(matched) == 0 {
		return CriteriaResult{MatchedGrade: grade, Reason: ReasonNoSubjectMatch}
	}

	candidates := make([]catalog.Entry, 0, len(byGrade))
	for i := range byGrade {
		if byGrade[i].HasAnySubject(matched) {
			candidates = append(candidates, byGrade[i])
		}
	}

	return CriteriaResult{
		Candidates:      candidates,
		MatchedGrade:    grade,
		MatchedSubjects: matched,
	}
}

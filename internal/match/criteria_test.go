package match

import (
	"testing"

	"github.com/progmatch/progmatch/internal/catalog"
)

func criteriaCatalog() []catalog.Entry {
	return []catalog.Entry{
		{
			Name:        "STEM Academy",
			GradeLevels: []string{"10", "11"},
			Subjects:    []string{"math", "science"},
		},
		{
			Name:        "Summer Arts",
			GradeLevels: []string{"9", "10"},
			Subjects:    []string{"art"},
		},
		{
			Name:        "Marine Biology Camp",
			GradeLevels: []string{"11", "12"},
			Subjects:    []string{"science", "biology"},
		},
	}
}

func TestCriteriaFilter(t *testing.T) {
	f := NewCriteriaFilter(NewLevenshteinMatcher(), 80)

	tests := []struct {
		name         string
		grade        string
		subjects     []string
		wantNames    []string
		wantGrade    string
		wantSubjects []string
		wantReason   Reason
	}{
		{
			name:         "exact grade and subject",
			grade:        "10",
			subjects:     []string{"science"},
			wantNames:    []string{"STEM Academy"},
			wantGrade:    "10",
			wantSubjects: []string{"science"},
		},
		{
			name:         "noisy grade resolves against vocabulary",
			grade:        "10th grade",
			subjects:     []string{"Math"},
			wantNames:    []string{"STEM Academy"},
			wantGrade:    "10",
			wantSubjects: []string{"math"},
		},
		{
			name:         "subjects combine with OR",
			grade:        "10",
			subjects:     []string{"math", "art"},
			wantNames:    []string{"STEM Academy", "Summer Arts"},
			wantGrade:    "10",
			wantSubjects: []string{"math", "art"},
		},
		{
			name:         "misspelled subject still resolves",
			grade:        "11",
			subjects:     []string{"scince"},
			wantNames:    []string{"STEM Academy", "Marine Biology Camp"},
			wantGrade:    "11",
			wantSubjects: []string{"science"},
		},
		{
			name:       "grade with no fuzzy match",
			grade:      "99th grade",
			subjects:   []string{"science"},
			wantReason: ReasonNoGradeMatch,
		},
		{
			name:       "subject with no fuzzy match",
			grade:      "10",
			subjects:   []string{"underwater basket weaving"},
			wantGrade:  "10",
			wantReason: ReasonNoSubjectMatch,
		},
		{
			name:       "subject outside the grade subset",
			grade:      "9",
			subjects:   []string{"biology"},
			wantGrade:  "9",
			wantReason: ReasonNoSubjectMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Filter(tt.grade, tt.subjects, criteriaCatalog())

			if got.Reason != tt.wantReason {
				t.Fatalf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if got.MatchedGrade != tt.wantGrade {
				t.Errorf("MatchedGrade = %q, want %q", got.MatchedGrade, tt.wantGrade)
			}

			names := make([]string, len(got.Candidates))
			for i := range got.Candidates {
				names[i] = got.Candidates[i].Name
			}
			if len(names) != len(tt.wantNames) {
				t.Fatalf("Candidates = %v, want %v", names, tt.wantNames)
			}
			for i := range names {
				if names[i] != tt.wantNames[i] {
					t.Errorf("Candidates = %v, want %v", names, tt.wantNames)
					break
				}
			}

			if len(got.MatchedSubjects) != len(tt.wantSubjects) {
				t.Fatalf("MatchedSubjects = %v, want %v", got.MatchedSubjects, tt.wantSubjects)
			}
			for i := range got.MatchedSubjects {
				if got.MatchedSubjects[i] != tt.wantSubjects[i] {
					t.Errorf("MatchedSubjects = %v, want %v", got.MatchedSubjects, tt.wantSubjects)
					break
				}
			}
		})
	}
}

func TestCriteriaFilterEmptyCatalog(t *testing.T) {
	f := NewCriteriaFilter(NewLevenshteinMatcher(), 80)

	got := f.Filter("10", []string{"science"}, nil)
	if got.Reason != ReasonEmptyCatalog {
		t.Errorf("Reason = %q, want %q", got.Reason, ReasonEmptyCatalog)
	}
	if len(got.Candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(got.Candidates))
	}
}

func TestCriteriaFilterCandidatesSatisfyBoth(t *testing.T) {
	f := NewCriteriaFilter(NewLevenshteinMatcher(), 80)

	got := f.Filter("10", []string{"math", "art", "biology"}, criteriaCatalog())
	for _, c := range got.Candidates {
		if !c.HasGrade(got.MatchedGrade) {
			t.Errorf("%q does not serve grade %q", c.Name, got.MatchedGrade)
		}
		if !c.HasAnySubject(got.MatchedSubjects) {
			t.Errorf("%q covers none of %v", c.Name, got.MatchedSubjects)
		}
	}
}

func TestCriteriaFilterDuplicateSubjects(t *testing.T) {
	f := NewCriteriaFilter(NewLevenshteinMatcher(), 80)

	// "science" and "scince" resolve to the same token; it appears once.
	got := f.Filter("11", []string{"science", "scince"}, criteriaCatalog())
	if len(got.MatchedSubjects) != 1 || got.MatchedSubjects[0] != "science" {
		t.Errorf("MatchedSubjects = %v, want [science]", got.MatchedSubjects)
	}
}

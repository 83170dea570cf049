package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"
	"github.com/progmatch/progmatch/internal/catalog"
	"github.com/progmatch/progmatch/internal/match"
)

// programNameWidth is the fixed presenter column width; longer names are
// truncated with an ellipsis.
const programNameWidth = 32

// MatchReport bundles a ranked result with the user's original query
// strings, which the presenter echoes back verbatim.
type MatchReport struct {
	Result       *match.Result `json:"result"`
	GradeQuery   string        `json:"grade_query"`
	SubjectQuery string        `json:"subject_query"`
}

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *MatchReport:
		return matchTable(w, v)
	case []catalog.Entry:
		return entriesTable(w, v)
	case *catalog.Entry:
		return entryDetail(w, v)
	case *catalog.Stats:
		return statsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func matchTable(w io.Writer, report *MatchReport) error {
	r := report.Result
	if len(r.Matches) == 0 {
		switch r.Reason {
		case match.ReasonNoGradeMatch:
			fmt.Fprintf(w, "No match: no program serves a grade level like %q.\n", report.GradeQuery)
		case match.ReasonNoSubjectMatch:
			fmt.Fprintf(w, "No match: no program offers subjects like %q.\n", report.SubjectQuery)
		case match.ReasonEmptyCatalog:
			fmt.Fprintln(w, "No match: the catalog has no eligible programs.")
		default:
			fmt.Fprintln(w, "No match.")
		}
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("#", "PROGRAM", "UNIVERSITIES", "GRADE", "SUBJECTS", "SCORE")

	for i, c := range r.Matches {
		if err := table.Append([]string{
			fmt.Sprintf("%d", i+1),
			truncate(c.Entry.Name, programNameWidth),
			truncate(c.Entry.Universities, 24),
			report.GradeQuery,
			report.SubjectQuery,
			fmt.Sprintf("%.2f", c.Score),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func entriesTable(w io.Writer, entries []catalog.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Catalog is empty. Run 'progmatch catalog import <csv>' first.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROGRAM\tUNIVERSITIES\tGRADES\tSUBJECTS\tRESTRICTION")
	fmt.Fprintln(tw, "-------\t------------\t------\t--------\t-----------")

	for i := range entries {
		e := &entries[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			truncate(e.Name, programNameWidth),
			truncate(e.Universities, 24),
			strings.Join(e.GradeLevels, ","),
			truncate(strings.Join(e.Subjects, ","), 30),
			e.Restriction,
		)
	}

	return tw.Flush()
}

func entryDetail(w io.Writer, e *catalog.Entry) error {
	fmt.Fprintf(w, "Program:       %s\n", e.Name)
	if e.Universities != "" {
		fmt.Fprintf(w, "Universities:  %s\n", e.Universities)
	}
	fmt.Fprintf(w, "Grade levels:  %s\n", strings.Join(e.GradeLevels, ", "))
	fmt.Fprintf(w, "Subjects:      %s\n", strings.Join(e.Subjects, ", "))
	if e.Restriction != "" {
		fmt.Fprintf(w, "Restricted to: %s\n", e.Restriction)
	}
	if e.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, wordWrap(e.Description, 78))
	}
	return nil
}

func statsTable(w io.Writer, s *catalog.Stats) error {
	fmt.Fprintln(w, "Catalog Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total programs:     %d\n", s.TotalPrograms)
	fmt.Fprintf(w, "Restricted entry:   %d\n", s.Restricted)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "By grade level:")
	for _, line := range sortedCounts(s.ByGrade) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "By subject:")
	for _, line := range sortedCounts(s.BySubject) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	return nil
}

func sortedCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%-24s %d", k, counts[k]))
	}
	return lines
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// wordWrap wraps text at the specified width
func wordWrap(text string, width int) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if len(line) <= width {
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}
		result.WriteString(currentLine)
		result.WriteString("\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

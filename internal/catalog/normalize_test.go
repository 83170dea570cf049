package catalog

import (
	"reflect"
	"testing"
)

func TestCleanToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`  Math `, "math"},
		{`["Science"]`, "science"},
		{`'Art'`, "art"},
		{`(10)`, "10"},
		{`   `, ""},
		{`[]`, ""},
	}

	for _, tt := range tests {
		if got := CleanToken(tt.in); got != tt.want {
			t.Errorf("CleanToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`A "hands-on" robotics  camp`, "A hands-on robotics camp"},
		{`[Residential] program`, "Residential program"},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "comma delimited with noise",
			in:   `["Math", 'Science', " Art "]`,
			want: []string{"math", "science", "art"},
		},
		{
			name: "duplicates collapse",
			in:   "Math, math, MATH",
			want: []string{"math"},
		},
		{
			name: "empty tokens dropped",
			in:   "10, , 11,",
			want: []string{"10", "11"},
		},
		{
			name: "all noise",
			in:   `[", "]`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitField(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitField(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

package domain

import "testing"

func TestParseGrade(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Grade
	}{
		{"lowercase a", "a", GradeA},
		{"uppercase A", "A", GradeA},
		{"lowercase b", "b", GradeB},
		{"lowercase c", "c", GradeC},
		{"lowercase d", "d", GradeD},
		{"uppercase E", "E", GradeE},
		{"padded", " e ", GradeE},
		{"empty", "", GradeUnknown},
		{"whitespace", "  ", GradeUnknown},
		{"letter outside range", "f", GradeUnknown},
		{"multi-character", "ab", GradeUnknown},
		{"off unknown marker", "unknown", GradeUnknown},
		{"off not-applicable marker", "not-applicable", GradeUnknown},
		{"digit", "1", GradeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseGrade(tt.raw); got != tt.want {
				t.Errorf("ParseGrade(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

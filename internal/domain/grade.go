package domain

import "strings"

// Grade is a Nutri-Score or Eco-Score letter grade.
type Grade string

const (
	GradeA       Grade = "A"
	GradeB       Grade = "B"
	GradeC       Grade = "C"
	GradeD       Grade = "D"
	GradeE       Grade = "E"
	GradeUnknown Grade = "unknown"
)

// ParseGrade maps a raw upstream grade value to a Grade. Anything that
// is not a single letter A-E after trimming and case-folding (Open Food
// Facts also emits values like "unknown" and "not-applicable") yields
// GradeUnknown. A missing or malformed grade is never guessed.
func ParseGrade(raw string) Grade {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "A":
		return GradeA
	case "B":
		return GradeB
	case "C":
		return GradeC
	case "D":
		return GradeD
	case "E":
		return GradeE
	default:
		return GradeUnknown
	}
}

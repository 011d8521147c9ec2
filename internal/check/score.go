package check

// Scoring model: a linear penalty from a fixed ceiling. This is an
// internal heuristic, not a reproduction of any registry's scoring
// algorithm; a full score does not guarantee registry acceptance.
const (
	// Ceiling is the score of a tree with no findings.
	Ceiling = 130

	// ErrorWeight is subtracted per error finding.
	ErrorWeight = 20

	// WarningWeight is subtracted per warning finding.
	WarningWeight = 5
)

// score computes the clamped penalty score for a findings list.
func score(findings []Finding) int {
	s := Ceiling
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			s -= ErrorWeight
		case SeverityWarning:
			s -= WarningWeight
		}
	}
	if s < 0 {
		s = 0
	}
	return s
}

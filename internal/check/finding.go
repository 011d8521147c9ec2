// Package check inspects a project tree against the pub-readiness rule
// set, producing findings and a numeric score, and optionally
// synthesizing missing artifacts through the scaffold templates.
package check

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks findings that block pub-readiness.
	SeverityError Severity = "error"

	// SeverityWarning marks findings that reduce quality but do not
	// block the tool from functioning.
	SeverityWarning Severity = "warning"
)

// Finding is one reported validation issue. Findings are value records:
// produced by the rules, consumed for reporting and for driving
// optional fixes, never changed afterward (Fixed is stamped by the
// fixer before the report is returned).
type Finding struct {
	// Severity is error or warning.
	Severity Severity

	// Message describes the issue.
	Message string

	// Path is the subject path relative to the project root.
	Path string

	// Fixable marks findings --fix can repair.
	Fixable bool

	// Fixed records that --fix repaired this finding in this run.
	Fixed bool

	// fix performs the single corrective materialization for a fixable
	// finding.
	fix func(*fixer) error
}

// Report is the result of one validation run.
type Report struct {
	// Root is the inspected project root.
	Root string

	// Findings lists every issue in rule order.
	Findings []Finding

	// Score is the clamped linear-penalty score.
	Score int

	// FixesApplied counts repairs performed by --fix.
	FixesApplied int
}

// Errors counts error-severity findings.
func (r *Report) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings counts warning-severity findings.
func (r *Report) Warnings() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

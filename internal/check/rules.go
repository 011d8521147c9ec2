package check

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pubforge/cli/internal/pubspec"
	"github.com/pubforge/cli/internal/scaffold"
	"github.com/pubforge/cli/internal/template"
)

// versionPattern accepts MAJOR.MINOR.PATCH with an optional +build
// number and an optional prerelease suffix.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(\+\d+)?(-[\w.-]+)?$`)

// sectionPattern matches a markdown heading line.
var sectionPattern = regexp.MustCompile(`(?m)^#{1,6} `)

// ruleContext is the shared read-only state rules evaluate against.
// Each rule category fails independently; one unreadable file never
// suppresses findings from unrelated rules.
type ruleContext struct {
	root   string
	strict bool

	// ps is the parsed pubspec, nil when missing or unparseable.
	ps *pubspec.Pubspec

	// parseFailed is set when the pubspec exists but cannot be parsed.
	parseFailed bool

	read   func(rel string) ([]byte, bool)
	exists func(rel string) bool
}

// name resolves the project identifier: the pubspec name when known,
// otherwise the root directory's base name. The root is resolved to an
// absolute path first so relative roots like "." still yield a real
// directory name.
func (c *ruleContext) name() string {
	if c.ps != nil && c.ps.Name != "" {
		return c.ps.Name
	}
	root := c.root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Base(root)
}

// rules is the fixed evaluation order. The order affects only report
// layout, never the score.
var rules = []func(*ruleContext) []Finding{
	checkRequiredFiles,
	checkMetadataFields,
	checkVersionFormat,
	checkPublishGuard,
	checkStructure,
	checkDocsQuality,
	checkLintConfig,
}

// checkRequiredFiles verifies the fixed top-level artifact list. The
// pubspec is never synthesized: it defines the project's identity, so
// inventing one would hide the real problem.
func checkRequiredFiles(c *ruleContext) []Finding {
	var findings []Finding

	if !c.exists(pubspec.FileName) {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  "missing pubspec.yaml",
			Path:     pubspec.FileName,
		})
	}

	type required struct {
		rel      string
		template string
	}
	for _, req := range []required{
		{"README.md", scaffold.TmplReadme},
		{"CHANGELOG.md", scaffold.TmplChangelog},
		{"LICENSE", scaffold.TmplLicense},
	} {
		if c.exists(req.rel) {
			continue
		}
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  "missing " + req.rel,
			Path:     req.rel,
			Fixable:  true,
			fix:      fixWriteTemplate(req.rel, req.template),
		})
	}

	return findings
}

// checkMetadataFields verifies pubspec keys. An unparseable pubspec is
// downgraded to a single error finding so the remaining categories
// still report.
func checkMetadataFields(c *ruleContext) []Finding {
	if c.parseFailed {
		return []Finding{{
			Severity: SeverityError,
			Message:  "pubspec.yaml is not a valid key/value mapping",
			Path:     pubspec.FileName,
		}}
	}
	if c.ps == nil {
		return nil
	}

	var findings []Finding

	for _, key := range []string{
		pubspec.KeyName,
		pubspec.KeyDescription,
		pubspec.KeyVersion,
		pubspec.KeyEnvironment,
	} {
		if !c.ps.Has(key) {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Message:  fmt.Sprintf("pubspec.yaml is missing required field %q", key),
				Path:     pubspec.FileName,
			})
		}
	}

	if c.strict {
		for _, key := range []string{
			pubspec.KeyHomepage,
			pubspec.KeyRepository,
			pubspec.KeyIssueTracker,
			pubspec.KeyDocumentation,
		} {
			if !c.ps.Has(key) {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("pubspec.yaml is missing recommended field %q", key),
					Path:     pubspec.FileName,
				})
			}
		}
	}

	return findings
}

// checkVersionFormat warns on malformed versions. A warning, not an
// error: a bad version only blocks downstream publishing, not the tool.
func checkVersionFormat(c *ruleContext) []Finding {
	if c.ps == nil || !c.ps.Has(pubspec.KeyVersion) {
		return nil
	}
	if versionPattern.MatchString(c.ps.Version) {
		return nil
	}
	return []Finding{{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("version %q does not match MAJOR.MINOR.PATCH[+build][-prerelease]", c.ps.Version),
		Path:     pubspec.FileName,
	}}
}

// checkPublishGuard warns when publishing is not explicitly disabled.
// Never fixable: removing the guard, or adding it, is a human decision.
func checkPublishGuard(c *ruleContext) []Finding {
	if c.ps == nil || c.ps.HasPublishGuard() {
		return nil
	}
	return []Finding{{
		Severity: SeverityWarning,
		Message:  "pubspec.yaml has no `publish_to: none` guard; the package can be published accidentally",
		Path:     pubspec.FileName,
	}}
}

// checkStructure verifies the source and test layout.
func checkStructure(c *ruleContext) []Finding {
	var findings []Finding
	name := c.name()

	if !c.exists("lib") {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  "missing lib/ source directory",
			Path:     "lib",
			Fixable:  true,
			fix:      fixEnsureDir("lib"),
		})
	}

	entry := path.Join("lib", name+".dart")
	if !c.exists(entry) {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  fmt.Sprintf("missing entry point %s", entry),
			Path:     entry,
			Fixable:  true,
			fix:      fixWriteTemplate(entry, scaffold.TmplStubEntrypoint),
		})
	}

	if !c.exists("test") {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  "missing test/ directory",
			Path:     "test",
			Fixable:  true,
			fix:      fixTestDir(name),
		})
	}

	return findings
}

// checkDocsQuality applies readme heuristics. Skipped entirely when the
// readme is absent; its absence is already an error finding.
func checkDocsQuality(c *ruleContext) []Finding {
	content, ok := c.read("README.md")
	if !ok {
		return nil
	}

	var findings []Finding
	text := string(content)

	if len(text) < 100 {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  "README.md is shorter than 100 characters",
			Path:     "README.md",
		})
	}
	if !sectionPattern.MatchString(text) {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  "README.md has no section headings",
			Path:     "README.md",
		})
	}
	if c.strict && !strings.Contains(text, "```") {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  "README.md has no fenced code block",
			Path:     "README.md",
		})
	}

	return findings
}

// checkLintConfig verifies the analyzer configuration exists.
func checkLintConfig(c *ruleContext) []Finding {
	if c.exists("analysis_options.yaml") {
		return nil
	}
	return []Finding{{
		Severity: SeverityWarning,
		Message:  "missing analysis_options.yaml",
		Path:     "analysis_options.yaml",
		Fixable:  true,
		fix:      fixWriteTemplate("analysis_options.yaml", scaffold.TmplAnalysisOptions),
	}}
}

// fixBindings builds the binding set for synthesized artifacts. The
// author falls back to a neutral collective since validation has no
// author input.
func fixBindings(name string) template.Bindings {
	return template.Bindings{
		"name":        name,
		"pascal_name": pascal(name),
		"description": "A pub package.",
		"author":      "the " + name + " authors",
	}
}

func pascal(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

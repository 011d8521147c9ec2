package check

import (
	"path"
	"path/filepath"

	"github.com/pubforge/cli/internal/materialize"
	"github.com/pubforge/cli/internal/output"
	"github.com/pubforge/cli/internal/pubspec"
	"github.com/pubforge/cli/internal/scaffold"
)

// Options configures a validation run.
type Options struct {
	// Strict enables the recommended-field and code-block checks.
	Strict bool

	// Fix synthesizes every fixable missing artifact.
	Fix bool

	// Materializer is the filesystem boundary; defaults to the real
	// filesystem.
	Materializer materialize.Materializer
}

// Run validates the tree rooted at root. Validation itself never fails:
// rule problems become findings. The returned error covers only fix
// materialization failures; the partial report is still returned with
// it.
func Run(root string, opts Options) (*Report, error) {
	m := opts.Materializer
	if m == nil {
		m = materialize.OS{}
	}

	c := &ruleContext{
		root:   root,
		strict: opts.Strict,
		exists: func(rel string) bool {
			return m.Exists(filepath.Join(root, filepath.FromSlash(rel)))
		},
		read: func(rel string) ([]byte, bool) {
			content, err := m.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return nil, false
			}
			return content, true
		},
	}

	if data, ok := c.read(pubspec.FileName); ok {
		ps, err := pubspec.Parse(data)
		if err != nil {
			output.Debug("pubspec parse failed", "error", err)
			c.parseFailed = true
		} else {
			c.ps = ps
		}
	}

	report := &Report{Root: root}
	for _, rule := range rules {
		report.Findings = append(report.Findings, rule(c)...)
	}
	report.Score = score(report.Findings)

	if opts.Fix {
		fx := &fixer{root: root, name: c.name(), m: m}
		for i := range report.Findings {
			f := &report.Findings[i]
			if !f.Fixable || f.fix == nil {
				continue
			}
			if err := f.fix(fx); err != nil {
				return report, err
			}
			f.Fixed = true
			report.FixesApplied++
			output.Debug("fixed finding", "path", f.Path)
		}
	}

	return report, nil
}

// fixer carries the state fix actions need. Fixes run sequentially;
// they are the only writer during a validation run.
type fixer struct {
	root string
	name string
	m    materialize.Materializer
}

func (fx *fixer) abs(rel string) string {
	return filepath.Join(fx.root, filepath.FromSlash(rel))
}

// fixWriteTemplate synthesizes one file from the scaffold registry,
// using the same expander as initial generation.
func fixWriteTemplate(rel, tmplName string) func(*fixer) error {
	return func(fx *fixer) error {
		entry := scaffold.Entry{
			RelPath:  rel,
			Template: tmplName,
			Bindings: fixBindings(fx.name),
		}
		content, err := scaffold.Render(entry)
		if err != nil {
			return err
		}
		if err := fx.m.EnsureDir(filepath.Dir(fx.abs(rel))); err != nil {
			return err
		}
		return fx.m.WriteFile(fx.abs(rel), content, false)
	}
}

// fixEnsureDir creates one missing directory.
func fixEnsureDir(rel string) func(*fixer) error {
	return func(fx *fixer) error {
		return fx.m.EnsureDir(fx.abs(rel))
	}
}

// fixTestDir creates the test directory with one placeholder test.
func fixTestDir(name string) func(*fixer) error {
	return func(fx *fixer) error {
		if err := fx.m.EnsureDir(fx.abs("test")); err != nil {
			return err
		}
		rel := path.Join("test", name+"_test.dart")
		return fixWriteTemplate(rel, scaffold.TmplTest)(fx)
	}
}

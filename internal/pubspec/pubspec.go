// Package pubspec reads pubspec.yaml as a loose key/value mapping for
// validation. It deliberately does not model the full pubspec schema;
// rule checks only need top-level key presence and a few scalar values.
package pubspec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	oerrors "github.com/pubforge/cli/internal/errors"
)

// FileName is the canonical metadata file name at the project root.
const FileName = "pubspec.yaml"

// Keys checked by the validator.
const (
	KeyName          = "name"
	KeyDescription   = "description"
	KeyVersion       = "version"
	KeyEnvironment   = "environment"
	KeyHomepage      = "homepage"
	KeyRepository    = "repository"
	KeyIssueTracker  = "issue_tracker"
	KeyDocumentation = "documentation"
	KeyPublishTo     = "publish_to"
)

// Pubspec is a parsed metadata file.
type Pubspec struct {
	// Name is the package identifier, empty when absent.
	Name string

	// Version is the raw version string, empty when absent.
	Version string

	// PublishTo is the raw publish_to value, empty when absent.
	PublishTo string

	keys map[string]bool
}

// Parse decodes pubspec content. A document that is not a mapping, or
// not YAML at all, is an ErrParse failure.
func Parse(data []byte) (*Pubspec, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oerrors.Wrap(oerrors.ErrParse, fmt.Sprintf("pubspec is not valid YAML: %v", err))
	}
	if doc == nil {
		return nil, oerrors.Wrap(oerrors.ErrParse, "pubspec is empty")
	}

	p := &Pubspec{keys: make(map[string]bool, len(doc))}
	for k := range doc {
		p.keys[k] = true
	}

	p.Name = scalar(doc[KeyName])
	p.Version = scalar(doc[KeyVersion])
	p.PublishTo = scalar(doc[KeyPublishTo])

	return p, nil
}

// Has reports whether a top-level key is present, regardless of its
// value type.
func (p *Pubspec) Has(key string) bool {
	return p.keys[key]
}

// HasPublishGuard reports whether publishing is explicitly disabled.
func (p *Pubspec) HasPublishGuard() bool {
	return p.PublishTo == "none"
}

// scalar renders a YAML scalar value as its string form; non-scalars
// come back empty.
func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int, int64, float64, bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

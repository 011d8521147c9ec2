// Package project defines the immutable project model built from CLI
// input and consumed read-only by the scaffold planner.
package project

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/pubforge/cli/internal/errors"
)

// Model describes one project to generate. It is constructed once per
// invocation and never mutated afterward.
type Model struct {
	// Name is the package identifier (lower_snake_case).
	Name string

	// Kind selects the scaffold layout.
	Kind Kind

	// Description is the pubspec description line.
	Description string

	// Author is the copyright holder used in LICENSE and file headers.
	Author string

	// Organization is the reverse-domain identifier for native stubs
	// (e.g. com.example).
	Organization string

	// OutputRoot is the directory the project is created in.
	OutputRoot string

	// Force allows overwriting pre-existing content under OutputRoot.
	Force bool
}

const (
	// DefaultDescription is used when --description is omitted.
	DefaultDescription = "A new pub package."

	// DefaultAuthor is used when --author is omitted and no config
	// default is set.
	DefaultAuthor = "Your Name"

	// DefaultOrganization is used when --organization is omitted and no config
	// default is set.
	DefaultOrganization = "com.example"
)

// namePattern is the shape every project name must match before any
// further checks.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateName checks a project identifier: lower_snake_case, no
// leading or trailing underscore, no double underscore. It runs before
// any filesystem mutation.
func ValidateName(name string) error {
	hint := "Names are lower_snake_case: start with a letter, use only a-z, 0-9 and single underscores."

	if name == "" {
		return oerrors.NewConfigurationError("project name is empty", "", hint)
	}
	if !namePattern.MatchString(name) {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("invalid project name %q", name), name, hint)
	}
	if strings.HasSuffix(name, "_") {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("project name %q ends with an underscore", name), name, hint)
	}
	if strings.Contains(name, "__") {
		return oerrors.NewConfigurationError(
			fmt.Sprintf("project name %q contains a double underscore", name), name, hint)
	}
	return nil
}

// Options carries raw creation input before validation.
type Options struct {
	Name         string
	KindName     string
	Description  string
	Author       string
	Organization string
	PlatformCSV  string
	OutputRoot   string
	Force        bool
}

// NewModel validates options and builds an immutable Model. Every
// failure is a configuration error; no filesystem state is touched.
func NewModel(opts Options) (Model, error) {
	if err := ValidateName(opts.Name); err != nil {
		return Model{}, err
	}

	platforms, err := ParsePlatforms(opts.PlatformCSV)
	if err != nil {
		return Model{}, err
	}

	kind, err := ParseKind(opts.KindName, platforms)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		Name:         opts.Name,
		Kind:         kind,
		Description:  opts.Description,
		Author:       opts.Author,
		Organization: opts.Organization,
		OutputRoot:   opts.OutputRoot,
		Force:        opts.Force,
	}

	if m.Description == "" {
		m.Description = DefaultDescription
	}
	if m.Author == "" {
		m.Author = DefaultAuthor
	}
	if m.Organization == "" {
		m.Organization = DefaultOrganization
	}
	if m.OutputRoot == "" {
		m.OutputRoot = m.Name
	}

	return m, nil
}

// PascalName converts the snake_case project name to PascalCase for
// native class stubs (geo_sensor -> GeoSensor).
func (m Model) PascalName() string {
	parts := strings.Split(m.Name, "_")
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

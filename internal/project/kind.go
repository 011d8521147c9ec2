package project

import (
	"fmt"
	"strings"

	oerrors "github.com/pubforge/cli/internal/errors"
)

// Kind is the closed set of project kinds. It is a sealed interface:
// the only implementations are App, Plugin and Package, so planner code
// can switch over the concrete types without a default error path for
// unknown kinds.
type Kind interface {
	// Name returns the CLI-facing kind name.
	Name() string

	// Platforms returns the target platforms, empty for kinds that
	// have none.
	Platforms() []Platform

	sealed()
}

// App is a runnable application with one runner directory per platform.
type App struct {
	Targets []Platform
}

// Plugin is a library with a platform interface, a default
// implementation, and one native stub subtree per platform.
type Plugin struct {
	Targets []Platform
}

// Package is a pure Dart library with no platform-specific code.
type Package struct{}

func (App) Name() string     { return "app" }
func (Plugin) Name() string  { return "plugin" }
func (Package) Name() string { return "package" }

func (k App) Platforms() []Platform    { return k.Targets }
func (k Plugin) Platforms() []Platform { return k.Targets }
func (Package) Platforms() []Platform  { return nil }

func (App) sealed()     {}
func (Plugin) sealed()  {}
func (Package) sealed() {}

// KindNames returns all valid kind names in CLI order.
func KindNames() []string {
	return []string{"app", "plugin", "package"}
}

// ParseKind builds a Kind from its CLI name and a platform set. The
// platform set is ignored for kinds that have none.
func ParseKind(name string, platforms []Platform) (Kind, error) {
	switch name {
	case "app":
		return App{Targets: platforms}, nil
	case "plugin":
		return Plugin{Targets: platforms}, nil
	case "package":
		return Package{}, nil
	default:
		return nil, oerrors.NewConfigurationError(
			fmt.Sprintf("unknown project kind %q", name),
			name,
			fmt.Sprintf("Valid kinds: %s", strings.Join(KindNames(), ", ")),
		)
	}
}

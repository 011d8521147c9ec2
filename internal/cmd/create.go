package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pubforge/cli/internal/materialize"
	"github.com/pubforge/cli/internal/output"
	"github.com/pubforge/cli/internal/project"
	"github.com/pubforge/cli/internal/scaffold"
)

var (
	createDescription string
	createAuthor      string
	createOrg         string
	createPlatforms   string
	createOutput      string
	createForce       bool
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <kind> <name>",
		Short: "Create a new project from built-in templates",
		Long: `Create a new pub package project.

Kinds:
  app      Runnable application with per-platform runners
  plugin   Platform plugin with method-channel wiring and native stubs
  package  Pure library with no platform code

Examples:
  # Create an application for the default platforms (android, ios)
  pubforge create app my_app

  # Create a plugin targeting specific platforms
  pubforge create plugin geo_sensor --platforms android,ios,web

  # Create a pure package in a specific directory
  pubforge create package my_utils --output ./packages/my_utils`,
		Args: cobra.ExactArgs(2),
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createDescription, "description", "d", "",
		"Project description for pubspec.yaml")
	cmd.Flags().StringVar(&createAuthor, "author", "",
		"Copyright holder for LICENSE (env: PUBFORGE_AUTHOR)")
	cmd.Flags().StringVar(&createOrg, "organization", "",
		"Reverse-domain identifier for native code (env: PUBFORGE_ORGANIZATION)")
	cmd.Flags().StringVarP(&createPlatforms, "platforms", "p", "",
		fmt.Sprintf("Comma-separated platforms (%s)", strings.Join(project.PlatformNames(), ", ")))
	cmd.Flags().StringVarP(&createOutput, "output", "o", "",
		"Directory to create the project in (defaults to project name)")
	cmd.Flags().BoolVar(&createForce, "force", false,
		"Overwrite existing files in the destination")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	kindName, name := args[0], args[1]
	cfg := GetUserConfig()

	opts := project.Options{
		Name:         name,
		KindName:     kindName,
		Description:  createDescription,
		Author:       createAuthor,
		Organization: createOrg,
		PlatformCSV:  createPlatforms,
		OutputRoot:   createOutput,
		Force:        createForce,
	}

	// User config fills flags left empty; built-in defaults apply last.
	if opts.Author == "" {
		opts.Author = cfg.Author
	}
	if opts.Organization == "" {
		opts.Organization = cfg.Organization
	}
	if opts.PlatformCSV == "" {
		opts.PlatformCSV = cfg.Platforms
	}

	m, err := project.NewModel(opts)
	if err != nil {
		return wrapExit(err)
	}

	if err := scaffold.CheckDestination(m.OutputRoot, m.Force); err != nil {
		return wrapExit(err)
	}

	entries := scaffold.Plan(m)
	output.Debug("planned scaffold", "kind", m.Kind.Name(), "entries", len(entries))

	err = output.RunWithSpinner(cmd.Context(),
		fmt.Sprintf("Creating %s '%s'...", m.Kind.Name(), m.Name),
		func() error {
			return scaffold.Apply(cmd.Context(), materialize.OS{}, m.OutputRoot, entries, m.Force)
		})
	if err != nil {
		return wrapExit(err)
	}

	absRoot, absErr := filepath.Abs(m.OutputRoot)
	if absErr != nil {
		absRoot = m.OutputRoot
	}

	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Created %s '%s' in %s",
			m.Kind.Name(), output.StyleNoun.Render(m.Name), absRoot)))
	output.Println("")
	output.Print(output.RenderFileTree(m.Name, scaffold.Descriptions(entries)))

	return nil
}

package scaffold

import (
	"fmt"
	"path"

	"github.com/pubforge/cli/internal/project"
	"github.com/pubforge/cli/internal/template"
)

// Entry is one planned output: a directory or a templated file with a
// path relative to the project root. Directories always precede the
// files beneath them in the plan order; beyond that, entries are
// independent.
type Entry struct {
	// RelPath is the output path relative to the project root.
	RelPath string

	// IsDir marks directory entries; Template and Bindings are unset
	// for them.
	IsDir bool

	// Template is the registry name of the content template.
	Template string

	// Bindings is the data the template expands against.
	Bindings template.Bindings

	// Description is the short annotation shown in the created-file
	// tree.
	Description string
}

// Plan maps a project model to its ordered file plan. It is a pure
// function of the model and the compiled-in templates; no I/O happens
// here.
func Plan(m project.Model) []Entry {
	b := baseBindings(m)

	entries := []Entry{
		{RelPath: "lib", IsDir: true},
		{RelPath: "test", IsDir: true},
		{RelPath: "pubspec.yaml", Template: TmplPubspec, Bindings: b, Description: "Package metadata"},
		{RelPath: "README.md", Template: TmplReadme, Bindings: b, Description: "Project documentation"},
		{RelPath: "CHANGELOG.md", Template: TmplChangelog, Bindings: b, Description: "Release history"},
		{RelPath: "LICENSE", Template: TmplLicense, Bindings: b, Description: "License text"},
		{RelPath: "analysis_options.yaml", Template: TmplAnalysisOptions, Bindings: b, Description: "Analyzer configuration"},
		{RelPath: ".gitignore", Template: TmplGitignore, Bindings: b, Description: "Ignore rules"},
		{RelPath: path.Join("test", m.Name+"_test.dart"), Template: TmplTest, Bindings: b, Description: "Placeholder test"},
	}

	switch kind := m.Kind.(type) {
	case project.App:
		entries = append(entries, planApp(m, kind, b)...)
	case project.Plugin:
		entries = append(entries, planPlugin(m, kind, b)...)
	case project.Package:
		entries = append(entries, planPackage(m, b)...)
	}

	return entries
}

// baseBindings builds the binding set shared by every template. List
// elements carry the scalar fields again because list bodies resolve
// against the element only.
func baseBindings(m project.Model) template.Bindings {
	platforms := make([]template.Bindings, 0, len(m.Kind.Platforms()))
	for _, p := range m.Kind.Platforms() {
		platforms = append(platforms, template.Bindings{
			"tag":         string(p),
			"name":        m.Name,
			"pascal_name": m.PascalName(),
			"org":         m.Organization,
		})
	}

	return template.Bindings{
		"name":        m.Name,
		"pascal_name": m.PascalName(),
		"description": m.Description,
		"author":      m.Author,
		"org":         m.Organization,
		"is_app":      m.Kind.Name() == "app",
		"is_plugin":   m.Kind.Name() == "plugin",
		"is_package":  m.Kind.Name() == "package",
		"platforms":   platforms,
	}
}

func planApp(m project.Model, kind project.App, b template.Bindings) []Entry {
	entries := []Entry{
		{RelPath: path.Join("lib", m.Name+".dart"), Template: TmplEntrypointApp, Bindings: b, Description: "Entry point"},
	}

	for _, p := range kind.Targets {
		entries = append(entries, runnerEntries(p, b)...)
	}
	return entries
}

// runnerEntries plans the per-platform runner subtree for an app.
func runnerEntries(p project.Platform, b template.Bindings) []Entry {
	switch p {
	case project.Android:
		return []Entry{
			{RelPath: "android/app/src/main/kotlin", IsDir: true},
			{RelPath: "android/app/src/main/kotlin/MainActivity.kt", Template: TmplRunnerAndroid, Bindings: b, Description: "Android runner"},
		}
	case project.IOS:
		return []Entry{
			{RelPath: "ios/Runner", IsDir: true},
			{RelPath: "ios/Runner/AppDelegate.swift", Template: TmplRunnerIOS, Bindings: b, Description: "iOS runner"},
		}
	case project.Web:
		return []Entry{
			{RelPath: "web", IsDir: true},
			{RelPath: "web/index.html", Template: TmplRunnerWeb, Bindings: b, Description: "Web bootstrap"},
		}
	case project.Linux:
		return []Entry{
			{RelPath: "linux", IsDir: true},
			{RelPath: "linux/main.cc", Template: TmplRunnerDesktop, Bindings: b, Description: "Linux runner"},
		}
	case project.MacOS:
		return []Entry{
			{RelPath: "macos/Runner", IsDir: true},
			{RelPath: "macos/Runner/AppDelegate.swift", Template: TmplRunnerMacOS, Bindings: b, Description: "macOS runner"},
		}
	case project.Windows:
		return []Entry{
			{RelPath: "windows", IsDir: true},
			{RelPath: "windows/main.cc", Template: TmplRunnerDesktop, Bindings: b, Description: "Windows runner"},
		}
	}
	return nil
}

func planPlugin(m project.Model, kind project.Plugin, b template.Bindings) []Entry {
	entries := []Entry{
		{RelPath: path.Join("lib", m.Name+".dart"), Template: TmplEntrypointPlugin, Bindings: b, Description: "Public plugin API"},
		{RelPath: path.Join("lib", m.Name+"_platform_interface.dart"), Template: TmplPlatformInterface, Bindings: b, Description: "Platform interface"},
		{RelPath: path.Join("lib", m.Name+"_method_channel.dart"), Template: TmplMethodChannel, Bindings: b, Description: "Default implementation"},
	}

	for _, p := range kind.Targets {
		entries = append(entries, stubEntries(m, p, b)...)
	}

	entries = append(entries,
		Entry{RelPath: "example/lib", IsDir: true},
		Entry{RelPath: "example/pubspec.yaml", Template: TmplExamplePubspec, Bindings: b, Description: "Example metadata"},
		Entry{RelPath: "example/lib/main.dart", Template: TmplExampleMain, Bindings: b, Description: "Example entry point"},
	)
	return entries
}

// stubEntries plans the per-platform native stub subtree for a plugin.
// The web implementation is Dart and lives under lib/ instead of a
// native subtree.
func stubEntries(m project.Model, p project.Platform, b template.Bindings) []Entry {
	pascal := m.PascalName()

	switch p {
	case project.Android:
		return []Entry{
			{RelPath: "android/src/main/kotlin", IsDir: true},
			{RelPath: fmt.Sprintf("android/src/main/kotlin/%sPlugin.kt", pascal), Template: TmplStubAndroid, Bindings: b, Description: "Android stub"},
		}
	case project.IOS:
		return []Entry{
			{RelPath: "ios/Classes", IsDir: true},
			{RelPath: fmt.Sprintf("ios/Classes/%sPlugin.swift", pascal), Template: TmplStubIOS, Bindings: b, Description: "iOS stub"},
		}
	case project.Web:
		return []Entry{
			{RelPath: path.Join("lib", m.Name+"_web.dart"), Template: TmplStubWeb, Bindings: b, Description: "Web implementation"},
		}
	case project.Linux:
		return []Entry{
			{RelPath: "linux", IsDir: true},
			{RelPath: path.Join("linux", m.Name+"_plugin.cc"), Template: TmplStubDesktop, Bindings: b, Description: "Linux stub"},
		}
	case project.MacOS:
		return []Entry{
			{RelPath: "macos/Classes", IsDir: true},
			{RelPath: fmt.Sprintf("macos/Classes/%sPlugin.swift", pascal), Template: TmplStubMacOS, Bindings: b, Description: "macOS stub"},
		}
	case project.Windows:
		return []Entry{
			{RelPath: "windows", IsDir: true},
			{RelPath: path.Join("windows", m.Name+"_plugin.cc"), Template: TmplStubDesktop, Bindings: b, Description: "Windows stub"},
		}
	}
	return nil
}

func planPackage(m project.Model, b template.Bindings) []Entry {
	return []Entry{
		{RelPath: "lib/src", IsDir: true},
		{RelPath: "example", IsDir: true},
		{RelPath: path.Join("lib", m.Name+".dart"), Template: TmplEntrypointPackage, Bindings: b, Description: "Public API"},
		{RelPath: path.Join("lib", "src", m.Name+"_base.dart"), Template: TmplPackageBase, Bindings: b, Description: "Internal implementation"},
		{RelPath: path.Join("example", m.Name+"_example.dart"), Template: TmplExampleMain, Bindings: b, Description: "Example entry point"},
	}
}

// Package scaffold turns a project model into a concrete file plan and
// applies that plan through the materializer.
package scaffold

import (
	"embed"
	"fmt"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names, matching files under templates/. All scaffold and
// auto-fix content comes from this one registry so template text is
// never duplicated.
const (
	TmplPubspec           = "pubspec.yaml"
	TmplReadme            = "readme.md"
	TmplChangelog         = "changelog.md"
	TmplLicense           = "license"
	TmplAnalysisOptions   = "analysis_options.yaml"
	TmplGitignore         = "gitignore"
	TmplEntrypointApp     = "entrypoint_app.dart"
	TmplEntrypointPlugin  = "entrypoint_plugin.dart"
	TmplEntrypointPackage = "entrypoint_package.dart"
	TmplStubEntrypoint    = "stub_entrypoint.dart"
	TmplPackageBase       = "package_base.dart"
	TmplPlatformInterface = "platform_interface.dart"
	TmplMethodChannel     = "method_channel.dart"
	TmplTest              = "test.dart"
	TmplExampleMain       = "example_main.dart"
	TmplExamplePubspec    = "example_pubspec.yaml"
	TmplStubAndroid       = "stub_android.kt"
	TmplStubIOS           = "stub_ios.swift"
	TmplStubWeb           = "stub_web.dart"
	TmplStubMacOS         = "stub_macos.swift"
	TmplStubDesktop       = "stub_desktop.cc"
	TmplRunnerAndroid     = "runner_android.kt"
	TmplRunnerIOS         = "runner_ios.swift"
	TmplRunnerWeb         = "runner_web.html"
	TmplRunnerMacOS       = "runner_macos.swift"
	TmplRunnerDesktop     = "runner_desktop.cc"
)

// Content returns the raw template text for a registry name.
// An unknown name is a programmer error surfaced as an error.
func Content(name string) (string, error) {
	data, err := templateFS.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("unknown template %q: %w", name, err)
	}
	return string(data), nil
}

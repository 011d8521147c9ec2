package project

import (
	"fmt"
	"strings"

	oerrors "github.com/pubforge/cli/internal/errors"
)

// Platform is a target-platform tag.
type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
	Web     Platform = "web"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
	Windows Platform = "windows"
)

// DefaultPlatforms is the platform set used when --platforms is omitted.
var DefaultPlatforms = []Platform{Android, IOS}

// allPlatforms lists every valid tag in canonical order.
var allPlatforms = []Platform{Android, IOS, Web, Linux, MacOS, Windows}

// PlatformNames returns all valid platform tags in canonical order.
func PlatformNames() []string {
	names := make([]string, len(allPlatforms))
	for i, p := range allPlatforms {
		names[i] = string(p)
	}
	return names
}

// IsValidPlatform checks if a tag names a known platform.
func IsValidPlatform(tag string) bool {
	for _, p := range allPlatforms {
		if string(p) == tag {
			return true
		}
	}
	return false
}

// ParsePlatforms parses a comma-separated platform list, preserving
// order and dropping duplicates. An empty input yields the defaults.
func ParsePlatforms(csv string) ([]Platform, error) {
	if strings.TrimSpace(csv) == "" {
		return DefaultPlatforms, nil
	}

	var out []Platform
	seen := make(map[Platform]bool)

	for _, raw := range strings.Split(csv, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if !IsValidPlatform(tag) {
			return nil, oerrors.NewConfigurationError(
				fmt.Sprintf("unknown platform %q", tag),
				tag,
				fmt.Sprintf("Valid platforms: %s", strings.Join(PlatformNames(), ", ")),
			)
		}
		p := Platform(tag)
		if !seen[p] {
			out = append(out, p)
			seen[p] = true
		}
	}

	if len(out) == 0 {
		return DefaultPlatforms, nil
	}
	return out, nil
}

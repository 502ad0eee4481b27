// Package version holds the layec build identity.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI, uncoloured.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each numeric part in its own colour.
// fatih/color drops the escapes when colour output is disabled.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Summary is the full "layec version" text.
func Summary() string {
	var sb strings.Builder
	sb.WriteString("layec ")
	sb.WriteString(Colored())
	if GitCommit != "" {
		sb.WriteString("\ncommit: ")
		sb.WriteString(GitCommit)
	}
	if BuildDate != "" {
		sb.WriteString("\nbuilt:  ")
		sb.WriteString(BuildDate)
	}
	return sb.String()
}

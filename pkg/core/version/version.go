// ============================================================================
// hyperf-saas-helper - Precision Calculator
// ============================================================================
//
// Package:     version
// Description: Version information for the calculator library and tools
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library version of pkg/calc
	Library = "1.0.0"

	// CLI version of cmd/calc
	CLI = "1.0.0"
)

// Set at build time via -ldflags "-X .../version.Commit=... -X .../version.BuildDate=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running build.
type Info struct {
	Library   string `json:"library" yaml:"library"`
	CLI       string `json:"cli" yaml:"cli"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information.
func Get() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a single line summary
func (i Info) String() string {
	return fmt.Sprintf("calc %s (library %s, commit %s, built %s, %s %s)",
		i.CLI, i.Library, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}

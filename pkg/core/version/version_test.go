package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Library", Library},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Library != Library || info.CLI != CLI {
		t.Errorf("Get() versions = %s/%s, want %s/%s", info.Library, info.CLI, Library, CLI)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %s, want %s", info.GoVersion, runtime.Version())
	}
	if !strings.Contains(info.Platform, runtime.GOOS) {
		t.Errorf("Platform = %s, want it to contain %s", info.Platform, runtime.GOOS)
	}
}

func TestInfo_String(t *testing.T) {
	s := Get().String()
	if !strings.HasPrefix(s, "calc "+CLI) {
		t.Errorf("String() = %q, want prefix %q", s, "calc "+CLI)
	}
	if !strings.Contains(s, "commit "+Commit) {
		t.Errorf("String() = %q, want commit %q", s, Commit)
	}
}

// Package buildinfo centralises build metadata for the lazydrawer binary.
//
// The linker injects values into cmd/lazydrawer/main.go, for example:
//
//	go build -ldflags "-X main.version=0.4.0 -X main.commit=$(git rev-parse HEAD)"
//
// main() calls Set() to forward them here and Enrich() to fill what a
// plain "go build" or "go install" leaves at its default.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Set stores the build metadata received from linker-injected variables.
// It is meant to be called once, before any getter.
func Set(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
}

// Version returns the build version string, "dev" for local builds.
func Version() string { return version }

// Commit returns the build commit hash, "none" when unknown.
func Commit() string { return commit }

// Date returns the build date string.
func Date() string { return date }

// BuiltBy returns the build agent string.
func BuiltBy() string { return builtBy }

// String is the one-line summary printed by --version. The commit is
// shortened to 12 characters.
func String() string {
	short := commit
	if len(short) > 12 {
		short = short[:12]
	}
	return fmt.Sprintf("lazydrawer %s (%s) built %s by %s", version, short, date, builtBy)
}

// Enrich fills missing metadata from runtime/debug.ReadBuildInfo(): the
// VCS revision when commit is "none" and the Go version when builtBy is
// "unknown".
func Enrich() {
	if commit != "none" && builtBy != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if commit == "none" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
			}
		}
	}

	if builtBy == "unknown" {
		builtBy = info.GoVersion
	}
}

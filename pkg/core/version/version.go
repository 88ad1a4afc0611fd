// ============================================================================
// tsl - TSL Whitespace Transcoder
// ============================================================================
//
// Package:     version
// Description: Central version management for the tsl tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the tool and its commands
const (
	// Tool version
	Tool = "1.0.0"

	// Command versions
	Decode = "1.0.0"
	Encode = "1.1.0"
	Stats  = "1.1.0"
)

// Commands lists the commands that carry their own version
var Commands = []string{"decode", "encode", "stats"}

// Set at build time via -ldflags "-X github.com/msto63/tsl/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Tool,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// CommandVersion returns the version for a given command name
func CommandVersion(name string) string {
	switch name {
	case "decode":
		return Decode
	case "encode":
		return Encode
	case "stats":
		return Stats
	default:
		return Tool
	}
}

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags:
//
//	go build -ldflags "-X main.version=0.1.0 -X main.commit=abc1234 -X main.date=2026-01-02"
var (
	version = ""
	commit  = ""
	date    = ""
)

// appTitle is printed in front of the version.
const appTitle = "Word Histogram Generator"

// shortRevisionLen is the length of an abbreviated commit hash.
const shortRevisionLen = 7

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// currentBuildInfo returns the build information of the running binary.
func currentBuildInfo() buildInfo {
	return newBuildInfo(debug.ReadBuildInfo())
}

// newBuildInfo merges the ldflags values with bi. Values set through
// ldflags win; anything still missing after bi is marked unknown.
func newBuildInfo(bi *debug.BuildInfo, ok bool) buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date}

	if ok && bi != nil {
		if info.Version == "" {
			info.Version = bi.Main.Version
		}
		info.GoVersion = bi.GoVersion

		var revision, modified string
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			case "vcs.modified":
				modified = s.Value
			}
		}
		if info.Commit == "" && revision != "" {
			info.Commit = revision[:min(len(revision), shortRevisionLen)]
			if modified == "true" {
				info.Commit += "-dirty"
			}
		}
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	return info
}

// displayVersion returns the version with a leading "v" for release
// numbers, e.g. "0.1.0" and "v0.1.0" both become "v0.1.0".
func (b buildInfo) displayVersion() string {
	if b.Version != "" && b.Version[0] >= '0' && b.Version[0] <= '9' {
		return "v" + b.Version
	}
	return b.Version
}

// banner returns the one-line version banner.
func (b buildInfo) banner() string {
	return appTitle + " " + b.displayVersion()
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, build date and Go version of wordhist.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := currentBuildInfo()

			var sb strings.Builder
			sb.WriteString(info.banner() + "\n")
			fmt.Fprintf(&sb, "  commit: %s\n", info.Commit)
			fmt.Fprintf(&sb, "  built:  %s\n", info.Date)
			fmt.Fprintf(&sb, "  go:     %s\n", info.GoVersion)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), sb.String())
		},
	}
}

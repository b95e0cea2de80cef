// Copyright (c) 2024-2026 Hemi Labs, Inc.
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const semverAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// Set at link time for releases, e.g.
// -ldflags "-X github.com/hemilabs/tondi-bridge/version.PreRelease=rc1".
var (
	Major = "0"
	Minor = "1"
	Patch = "0"

	PreRelease    = "dev"
	BuildMetadata = ""

	// Component names the binary, set from the main package.
	Component string
)

func init() {
	if BuildMetadata == "" {
		BuildMetadata = vcsCommitID()
	}
}

// String returns the semantic version, e.g. 0.1.0-dev+1a2b3c4d5.
func String() string {
	v := fmt.Sprintf("%s.%s.%s", Major, Minor, Patch)
	if pr := normalize(PreRelease); pr != "" {
		v += "-" + pr
	}
	if bm := normalize(BuildMetadata); bm != "" {
		v += "+" + bm
	}
	return v
}

// normalize drops every character semver does not allow in pre-release and
// build metadata identifiers.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(semverAlphabet, r) {
			return r
		}
		return -1
	}, s)
}

func BuildInfo() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "v%s (", String())
	if Component != "" {
		sb.WriteString(Component)
		sb.WriteString(", ")
	}
	fmt.Fprintf(&sb, "%s %s/%s)", runtime.Version(), runtime.GOOS,
		runtime.GOARCH)
	return sb.String()
}

func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

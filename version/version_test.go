// Copyright (c) 2026 Hemi Labs, Inc.
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	defer func(pr, bm string) { PreRelease, BuildMetadata = pr, bm }(PreRelease, BuildMetadata)

	tests := []struct {
		preRelease, buildMetadata string
		want                      string
	}{
		{"", "", "0.1.0"},
		{"rc1", "", "0.1.0-rc1"},
		{"dev", "abc123", "0.1.0-dev+abc123"},
		{"r c_1!", "a/b", "0.1.0-rc1+ab"},
	}
	for _, tt := range tests {
		PreRelease, BuildMetadata = tt.preRelease, tt.buildMetadata
		if got := String(); got != tt.want {
			t.Errorf("String() = %v, want %v", got, tt.want)
		}
	}
}

func TestBuildInfo(t *testing.T) {
	defer func(c string) { Component = c }(Component)
	Component = "tondinet"
	bi := BuildInfo()
	if !strings.Contains(bi, "tondinet, ") ||
		!strings.Contains(bi, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Fatalf("unexpected build info: %v", bi)
	}
}

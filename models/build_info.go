// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the linker-injected build metadata of a binary. Empty
// values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.commit) }

// String renders the three lines printed by the binaries on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}

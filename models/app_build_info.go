// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// unknownBuildValue is reported for build metadata not injected at link time.
const unknownBuildValue = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags and served
// by the version endpoint.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) Version() string { return orUnknown(a.version) }
func (a AppBuildInfo) Date() string    { return orUnknown(a.date) }
func (a AppBuildInfo) Commit() string  { return orUnknown(a.commit) }

// HasVersion reports whether a version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version() != unknownBuildValue
}

// Response converts the build info into the version endpoint payload.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{
		Version: a.Version(),
		Date:    a.Date(),
		Commit:  a.Commit(),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}

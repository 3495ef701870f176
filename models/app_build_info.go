package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo holds the linker-injected build metadata of the client binary.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the metadata in the form printed by the version command.
// Missing values are shown as N/A.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		orNotAvailable(a.version), orNotAvailable(a.date), orNotAvailable(a.commit))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

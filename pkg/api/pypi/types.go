package pypi

import "time"

// VersionMetadata describes one distributable artifact of a package release,
// as found in the "urls" array or a "releases/<version>" list.
//
// Only the fields this tooling needs are kept; the "digests" object is
// flattened into one field per hashing algorithm. Values are fixed at
// projection time and never mutated afterwards.
type VersionMetadata struct {
	MD5           string    // content hash, 32 hex characters
	SHA256        string    // content hash, 64 hex characters
	Filename      string    // artifact file name, never empty
	PythonVersion string    // target runtime tag, e.g. "source", never empty
	Size          int64     // artifact size in bytes
	UploadTime    time.Time // upload timestamp reported by the API
	URL           string    // download URL ("" when the API reports null)
}

// PackageInfo is the project-level metadata stored under the "info" key of a
// package response, plus the canonical source artifact for that version.
//
// String fields the API reports as null are normalized to "". Only the
// "source"-tagged artifact is kept; wheel and other built artifacts are
// ignored.
type PackageInfo struct {
	Description            string
	DescriptionContentType string
	DocsURL                string
	License                string
	Name                   string
	PackageURL             string
	ProjectURL             string
	HomepageURL            string // from project_urls.Homepage, "" when absent
	SourceURL              string // from project_urls.Source, "" when absent
	ReleaseURL             string
	RequiresPython         string // may be empty
	Summary                string
	Version                string
	SourceMetadata         VersionMetadata
}

// PackageMetadata aggregates everything known about a package: its info block
// and one source artifact per known release version.
type PackageMetadata struct {
	Info PackageInfo
	// Releases maps a version string to the source artifact chosen for it.
	// Never empty; at least the current version from Info is present.
	Releases map[string]VersionMetadata
}

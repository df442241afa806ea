package repodata

import (
	"github.com/Masterminds/semver/v3"
)

// RepodataMetadata is the "info" section of a repodata.json blob.
type RepodataMetadata struct {
	// Required fields.
	Subdir string
	// Optional fields, nil when the blob omits them.
	Arch     *string
	Platform *string
}

// PackageRecord is the per-package data stored in a repodata.json blob,
// keyed by artifact filename.
type PackageRecord struct {
	// Required fields.
	Build       string
	BuildNumber int
	Depends     []string
	MD5         string
	SHA256      string
	Name        string
	Size        int64
	Version     string
	Subdir      string
	// Optional fields, nil when the blob omits them.
	Timestamp     *int64
	Date          *string
	TrackFeatures *string
	License       *string
	LicenseFamily *string
}

// Less reports whether p orders before other by version, with the build
// number as the tie-break when versions are equal.
//
// Records for different packages are incomparable: comparing versions between
// two different software projects is meaningless, so Less returns false (not
// an error) when the names differ. A version string that cannot be parsed
// likewise resolves to false. Callers sorting with this relation must account
// for the incomparable cases themselves.
//
// Version strings are compared segment-wise with numeric segments compared
// numerically (a leading "v" is tolerated), not lexically.
func (p PackageRecord) Less(other PackageRecord) bool {
	if p.Name != other.Name {
		return false
	}
	pv, err := semver.NewVersion(p.Version)
	if err != nil {
		return false
	}
	ov, err := semver.NewVersion(other.Version)
	if err != nil {
		return false
	}
	if pv.Equal(ov) {
		return p.BuildNumber < other.BuildNumber
	}
	return pv.LessThan(ov)
}

// Repodata is one entire repodata.json blob for a channel/architecture pair.
// Constructed wholesale from one validated payload and discarded per fetch.
type Repodata struct {
	Info            RepodataMetadata
	Packages        map[string]PackageRecord // keyed by artifact filename
	Removed         []string                 // filenames removed from the index
	RepodataVersion int
}

// ChannelData is the subset of a channeldata.json blob this tooling consumes:
// the list of architecture subdirs published for a channel.
type ChannelData struct {
	ChannelDataVersion int
	Subdirs            []string
}

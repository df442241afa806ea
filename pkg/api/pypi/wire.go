package pypi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/anaconda/go-packaging-utils/pkg/api"
	"github.com/anaconda/go-packaging-utils/pkg/crypto"
)

// Wire-format structs. The payload has already passed schema validation when
// these are decoded, so required fields are present with correct coarse
// types; the projection functions below add the semantic checks the schema
// cannot express.

type packageResponse struct {
	Info     infoPayload                  `json:"info"`
	URLs     []artifactPayload            `json:"urls"`
	Releases map[string][]artifactPayload `json:"releases"`
}

type infoPayload struct {
	// A JSON null decodes as a no-op into a string field, which gives the
	// required null -> "" normalization for free.
	Description            string         `json:"description"`
	DescriptionContentType string         `json:"description_content_type"`
	DocsURL                string         `json:"docs_url"`
	License                string         `json:"license"`
	Name                   string         `json:"name"`
	PackageURL             string         `json:"package_url"`
	ProjectURL             string         `json:"project_url"`
	ProjectURLs            map[string]any `json:"project_urls"`
	ReleaseURL             string         `json:"release_url"`
	RequiresPython         string         `json:"requires_python"`
	Summary                string         `json:"summary"`
	Version                string         `json:"version"`
}

type artifactPayload struct {
	Digests struct {
		MD5    string `json:"md5"`
		SHA256 string `json:"sha256"`
	} `json:"digests"`
	Filename      string `json:"filename"`
	PythonVersion string `json:"python_version"`
	// Kept raw so a malformed value is reported by the projection with the
	// offending text, not swallowed by the decoder.
	Size       json.RawMessage `json:"size"`
	UploadTime string          `json:"upload_time_iso_8601"`
	URL        string          `json:"url"`
}

// uploadTimeLayouts covers the timestamp shapes PyPI has served over time:
// zoned RFC 3339 (with or without fractional seconds) and the bare form
// without a zone suffix.
var uploadTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseUploadTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range uploadTimeLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// coerceSize turns the raw size value into an integer, accepting either a
// JSON number or a numeric string.
func coerceSize(raw json.RawMessage) (int64, error) {
	s := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	return strconv.ParseInt(s, 10, 64)
}

func checkEmptyField(field, value string) error {
	if value == "" {
		return api.Errorf("`%s` field is empty: %s", field, value)
	}
	return nil
}

// parseVersionMetadata projects one schema-validated artifact object into a
// VersionMetadata record.
func parseVersionMetadata(a artifactPayload) (VersionMetadata, error) {
	uploadTime, err := parseUploadTime(a.UploadTime)
	if err != nil {
		return VersionMetadata{}, api.Wrap(err, "Failed to convert timestamp: %s", a.UploadTime)
	}
	size, err := coerceSize(a.Size)
	if err != nil {
		return VersionMetadata{}, api.Wrap(err, "Failed to convert size: %s", a.Size)
	}

	parsed := VersionMetadata{
		MD5:           a.Digests.MD5,
		SHA256:        a.Digests.SHA256,
		Filename:      a.Filename,
		PythonVersion: a.PythonVersion,
		Size:          size,
		UploadTime:    uploadTime,
		URL:           a.URL,
	}

	if !crypto.IsValidMD5(parsed.MD5) {
		return VersionMetadata{}, api.Errorf("VersionMetadata MD5 hash is invalid: %s", parsed.MD5)
	}
	if !crypto.IsValidSHA256(parsed.SHA256) {
		return VersionMetadata{}, api.Errorf("VersionMetadata SHA-256 hash is invalid: %s", parsed.SHA256)
	}
	if err := checkEmptyField("VersionMetadata.filename", parsed.Filename); err != nil {
		return VersionMetadata{}, err
	}
	if err := checkEmptyField("VersionMetadata.python_version", parsed.PythonVersion); err != nil {
		return VersionMetadata{}, err
	}
	return parsed, nil
}

// parsePackageInfo projects the "info"+"urls" envelope into a PackageInfo
// record. The urls array must contain a "source"-tagged artifact.
func parsePackageInfo(resp *packageResponse) (PackageInfo, error) {
	var sourceMeta *VersionMetadata
	for _, a := range resp.URLs {
		if a.PythonVersion == sourceTag {
			parsed, err := parseVersionMetadata(a)
			if err != nil {
				return PackageInfo{}, err
			}
			sourceMeta = &parsed
			break
		}
	}
	// Schema checks pass without a source artifact, so verify separately.
	if sourceMeta == nil {
		return PackageInfo{}, api.Errorf("Source artifacts are not provided")
	}

	// These entries are not guaranteed to be present.
	homepageURL := optionalURL(resp.Info.ProjectURLs, "Homepage")
	sourceURL := optionalURL(resp.Info.ProjectURLs, "Source")

	parsed := PackageInfo{
		Description:            resp.Info.Description,
		DescriptionContentType: resp.Info.DescriptionContentType,
		DocsURL:                resp.Info.DocsURL,
		License:                resp.Info.License,
		Name:                   resp.Info.Name,
		PackageURL:             resp.Info.PackageURL,
		ProjectURL:             resp.Info.ProjectURL,
		HomepageURL:            homepageURL,
		SourceURL:              sourceURL,
		ReleaseURL:             resp.Info.ReleaseURL,
		RequiresPython:         resp.Info.RequiresPython,
		Summary:                resp.Info.Summary,
		Version:                resp.Info.Version,
		SourceMetadata:         *sourceMeta,
	}

	for _, check := range []struct{ field, value string }{
		{"PackageInfo.license", parsed.License},
		{"PackageInfo.name", parsed.Name},
		{"PackageInfo.package_url", parsed.PackageURL},
		{"PackageInfo.project_url", parsed.ProjectURL},
		{"PackageInfo.release_url", parsed.ReleaseURL},
		{"PackageInfo.version", parsed.Version},
	} {
		if err := checkEmptyField(check.field, check.value); err != nil {
			return PackageInfo{}, err
		}
	}
	return parsed, nil
}

func optionalURL(urls map[string]any, key string) string {
	if s, ok := urls[key].(string); ok {
		return s
	}
	return ""
}

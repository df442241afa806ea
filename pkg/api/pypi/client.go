// Package pypi pulls package metadata from the publicly available PyPI JSON
// API and projects it into typed records.
//
// API docs: https://warehouse.pypa.io/api-reference/json.html
package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anaconda/go-packaging-utils/pkg/api"
	"github.com/anaconda/go-packaging-utils/pkg/schema"
)

const defaultBaseURL = "https://pypi.python.org/pypi"

// sourceTag marks a source artifact, as opposed to a platform-specific built
// one.
const sourceTag = "source"

// Client provides access to the PyPI package registry API. Calls share no
// mutable state and are safe to issue concurrently.
type Client struct {
	gateway *api.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the PyPI endpoint. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewClient creates a PyPI client on top of the given fetch-and-validate
// gateway.
func NewClient(gateway *api.Client, opts ...Option) *Client {
	c := &Client{
		gateway: gateway,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) packageMetadataURL(pkg string) string {
	return fmt.Sprintf("%s/%s/json", c.baseURL, pkg)
}

func (c *Client) packageVersionMetadataURL(pkg, version string) string {
	return fmt.Sprintf("%s/%s/%s/json", c.baseURL, pkg, version)
}

// FetchPackageMetadata fetches and validates the full release history of a
// package. The returned Releases map holds one source artifact per version.
//
// Every failure is reported as a *api.Error.
func (c *Client) FetchPackageMetadata(ctx context.Context, pkg string) (*PackageMetadata, error) {
	resp, err := c.fetch(ctx, c.packageMetadataURL(pkg), schema.PyPIPackage(true))
	if err != nil {
		return nil, err
	}

	info, err := parsePackageInfo(resp)
	if err != nil {
		return nil, err
	}

	// Pre-populate with the top-level "latest" release information that is
	// guaranteed to be there. If the releases section duplicates this entry,
	// the releases section wins.
	releases := map[string]VersionMetadata{
		info.Version: info.SourceMetadata,
	}

	// Pull out exclusively the source artifact of each release. When a
	// version lists more than one source artifact, prefer a tarball over
	// other archive formats for its compression; the check is substring
	// containment, so any filename containing ".tar" qualifies.
	for version, artifacts := range resp.Releases {
		var sources []VersionMetadata
		for _, a := range artifacts {
			if a.PythonVersion == sourceTag {
				parsed, err := parseVersionMetadata(a)
				if err != nil {
					return nil, err
				}
				sources = append(sources, parsed)
			}
		}
		switch {
		case len(sources) == 0:
			return nil, api.Errorf("API did not return any source artifacts")
		case len(sources) == 1:
			releases[version] = sources[0]
		default:
			releases[version] = preferTarball(sources)
		}
	}

	// Unreachable given the seeding above, but kept as a guard.
	if len(releases) == 0 {
		return nil, api.Errorf("API did not return any source information")
	}

	return &PackageMetadata{Info: info, Releases: releases}, nil
}

// FetchPackageVersionMetadata fetches and validates package metadata at a
// specific version. The returned Releases map contains exactly one entry.
func (c *Client) FetchPackageVersionMetadata(ctx context.Context, pkg, version string) (*PackageMetadata, error) {
	resp, err := c.fetch(ctx, c.packageVersionMetadataURL(pkg, version), schema.PyPIPackage(false))
	if err != nil {
		return nil, err
	}

	info, err := parsePackageInfo(resp)
	if err != nil {
		return nil, err
	}

	return &PackageMetadata{
		Info: info,
		Releases: map[string]VersionMetadata{
			info.Version: info.SourceMetadata,
		},
	}, nil
}

func (c *Client) fetch(ctx context.Context, url string, sch *schema.Schema) (*packageResponse, error) {
	payload, err := c.gateway.FetchAndValidate(ctx, url, sch)
	if err != nil {
		return nil, err
	}
	var resp packageResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, api.Wrap(err, "Failed to parse JSON response")
	}
	return &resp, nil
}

// preferTarball picks among multiple source artifacts for one version: the
// first whose filename contains ".tar" (in listed order), else the first
// listed.
func preferTarball(sources []VersionMetadata) VersionMetadata {
	for _, s := range sources {
		if strings.Contains(s.Filename, ".tar") {
			return s
		}
	}
	return sources[0]
}

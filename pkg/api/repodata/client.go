// Package repodata pulls and parses repodata.json blobs from
// repo.anaconda.com. A repodata blob describes every build artifact published
// for one channel/architecture pair.
package repodata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anaconda/go-packaging-utils/pkg/api"
	"github.com/anaconda/go-packaging-utils/pkg/schema"
)

const defaultBaseURL = "https://repo.anaconda.com/pkgs"

// Client provides access to repodata and channeldata blobs. Calls share no
// mutable state and are safe to issue concurrently.
type Client struct {
	gateway *api.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the repository endpoint. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewClient creates a repodata client on top of the given fetch-and-validate
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

// Wire-format structs for the schema-validated payloads.

type repodataResponse struct {
	Info            metadataPayload           `json:"info"`
	Packages        map[string]packagePayload `json:"packages"`
	Removed         []string                  `json:"removed"`
	RepodataVersion int                       `json:"repodata_version"`
}

type metadataPayload struct {
	Subdir   string  `json:"subdir"`
	Arch     *string `json:"arch"`
	Platform *string `json:"platform"`
}

type packagePayload struct {
	Build         string   `json:"build"`
	BuildNumber   int      `json:"build_number"`
	Depends       []string `json:"depends"`
	MD5           string   `json:"md5"`
	SHA256        string   `json:"sha256"`
	Name          string   `json:"name"`
	Size          int64    `json:"size"`
	Version       string   `json:"version"`
	Subdir        string   `json:"subdir"`
	Timestamp     *int64   `json:"timestamp"`
	Date          *string  `json:"date"`
	TrackFeatures *string  `json:"track_features"`
	License       *string  `json:"license"`
	LicenseFamily *string  `json:"license_family"`
}

type channelDataResponse struct {
	ChannelDataVersion int      `json:"channeldata_version"`
	Subdirs            []string `json:"subdirs"`
}

// requestURL verifies the channel/architecture pair against the static
// support table and returns the repodata URL. The check happens before any
// HTTP request is issued.
func (c *Client) requestURL(channel Channel, arch Architecture) (string, error) {
	if !channel.known() {
		return "", api.Errorf("Requested package channel is not supported: %s", channel)
	}
	if !channel.Supports(arch) {
		return "", api.Errorf("Requested architecture `%s` is not supported by this channel: %s", arch, channel)
	}
	return fmt.Sprintf("%s/%s/%s/repodata.json", c.baseURL, channel, arch), nil
}

// FetchRepodata fetches and parses the repodata.json blob for a
// channel/architecture pair. An unsupported pair fails with a *api.Error
// before any request is made.
func (c *Client) FetchRepodata(ctx context.Context, channel Channel, arch Architecture) (*Repodata, error) {
	url, err := c.requestURL(channel, arch)
	if err != nil {
		return nil, err
	}

	payload, err := c.gateway.FetchAndValidate(ctx, url, schema.Repodata())
	if err != nil {
		return nil, err
	}

	var resp repodataResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, api.Wrap(err, "Failed to parse JSON response")
	}
	return projectRepodata(&resp), nil
}

// FetchChannelData fetches and parses the channeldata.json blob for a
// channel, listing the architecture subdirs it actually publishes.
func (c *Client) FetchChannelData(ctx context.Context, channel Channel) (*ChannelData, error) {
	if !channel.known() {
		return nil, api.Errorf("Requested package channel is not supported: %s", channel)
	}

	url := fmt.Sprintf("%s/%s/channeldata.json", c.baseURL, channel)
	payload, err := c.gateway.FetchAndValidate(ctx, url, schema.ChannelData())
	if err != nil {
		return nil, err
	}

	var resp channelDataResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, api.Wrap(err, "Failed to parse JSON response")
	}
	return &ChannelData{
		ChannelDataVersion: resp.ChannelDataVersion,
		Subdirs:            resp.Subdirs,
	}, nil
}

// projectRepodata maps the wire structs onto the domain records. The payload
// is schema-validated by this point, so the mapping is mechanical.
func projectRepodata(resp *repodataResponse) *Repodata {
	packages := make(map[string]PackageRecord, len(resp.Packages))
	for filename, p := range resp.Packages {
		packages[filename] = PackageRecord{
			Build:         p.Build,
			BuildNumber:   p.BuildNumber,
			Depends:       p.Depends,
			MD5:           p.MD5,
			SHA256:        p.SHA256,
			Name:          p.Name,
			Size:          p.Size,
			Version:       p.Version,
			Subdir:        p.Subdir,
			Timestamp:     p.Timestamp,
			Date:          p.Date,
			TrackFeatures: p.TrackFeatures,
			License:       p.License,
			LicenseFamily: p.LicenseFamily,
		}
	}
	return &Repodata{
		Info: RepodataMetadata{
			Subdir:   resp.Info.Subdir,
			Arch:     resp.Info.Arch,
			Platform: resp.Info.Platform,
		},
		Packages:        packages,
		Removed:         resp.Removed,
		RepodataVersion: resp.RepodataVersion,
	}
}

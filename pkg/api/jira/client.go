// Package jira wraps the JIRA API client. Its purpose is to simplify and
// standardize the authentication bootstrap; everything else goes through the
// underlying client directly.
package jira

import (
	gojira "github.com/andygrunwald/go-jira"

	"github.com/anaconda/go-packaging-utils/pkg/api"
	"github.com/anaconda/go-packaging-utils/pkg/config"
)

// DefaultHostURL is where the JIRA boards are hosted.
const DefaultHostURL = "https://anaconda.atlassian.net/"

// Client is an authenticated JIRA API wrapper. Construct one explicitly and
// pass it to the callers that need it.
type Client struct {
	jira *gojira.Client
}

// Option configures a Client before connection.
type Option func(*options)

type options struct {
	hostURL string
}

// WithHostURL overrides the JIRA host. Useful for tests.
func WithHostURL(hostURL string) Option {
	return func(o *options) {
		o.hostURL = hostURL
	}
}

// New builds an authenticated client from the `user_info.email` and
// `token.jira` configuration entries.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	o := options{hostURL: DefaultHostURL}
	for _, opt := range opts {
		opt(&o)
	}

	email, err := cfg.MustGet("user_info.email")
	if err != nil {
		return nil, api.Wrap(err, "Failed to auth or connect to JIRA")
	}
	token, err := cfg.MustGet("token.jira")
	if err != nil {
		return nil, api.Wrap(err, "Failed to auth or connect to JIRA")
	}

	tp := gojira.BasicAuthTransport{Username: email, Password: token}
	client, err := gojira.NewClient(tp.Client(), o.hostURL)
	if err != nil {
		return nil, api.Wrap(err, "Failed to auth or connect to JIRA")
	}
	return &Client{jira: client}, nil
}

// Raw exposes the authenticated underlying client, allowing full use of the
// JIRA API.
func (c *Client) Raw() *gojira.Client { return c.jira }

// Package github wraps the GitHub API with convenience operations for the
// AnacondaRecipes organization: the aggregate repository, per-package
// feedstocks, and recipe files.
//
// The underlying go-github client already provides an extensive API, so this
// package is primarily credential bootstrap plus a few common lookups.
package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/charmbracelet/log"
	gogithub "github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"

	"github.com/anaconda/go-packaging-utils/pkg/api"
	"github.com/anaconda/go-packaging-utils/pkg/config"
	"github.com/anaconda/go-packaging-utils/pkg/crypto"
	"github.com/anaconda/go-packaging-utils/pkg/fileio"
)

// RecipeOrg is the GitHub organization holding recipe feedstocks.
const RecipeOrg = "AnacondaRecipes"

// AggregateRepo is the repository that pins every feedstock to a released
// commit via submodules.
const AggregateRepo = "aggregate"

// Client is an authenticated GitHub API wrapper. Construct one explicitly and
// pass it to the callers that need it.
type Client struct {
	gh  *gogithub.Client
	log *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger for warnings about degraded lookups.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithBaseURL points the underlying client at a different API endpoint.
// Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		u, err := url.Parse(baseURL + "/")
		if err != nil {
			return
		}
		c.gh.BaseURL = u
	}
}

// New builds an authenticated client from the `token.github` configuration
// entry.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	token, err := cfg.MustGet("token.github")
	if err != nil {
		return nil, api.Wrap(err, "Failed to auth or connect to GitHub")
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c := &Client{
		gh: gogithub.NewClient(oauth2.NewClient(context.Background(), src)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Raw exposes the authenticated underlying client for operations this wrapper
// does not cover.
func (c *Client) Raw() *gogithub.Client { return c.gh }

// FetchAggregate returns the aggregate repository.
func (c *Client) FetchAggregate(ctx context.Context) (*gogithub.Repository, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, RecipeOrg, AggregateRepo)
	if err != nil {
		return nil, api.Wrap(err, "Failed to access `%s`", AggregateRepo)
	}
	return repo, nil
}

// FetchFeedstock returns the feedstock repository for a package and, when it
// can be determined, the SHA-1 commit that aggregate pins the feedstock to.
// The SHA is best-effort: lookup failures and malformed values degrade to an
// empty string with a warning, not an error.
func (c *Client) FetchFeedstock(ctx context.Context, pkg string) (*gogithub.Repository, string, error) {
	feedstockName := pkg + "-feedstock"

	// Aggregate is the source of truth for what is publicly released, so its
	// submodule pin decides which feedstock revision to use.
	sha := ""
	file, _, _, err := c.gh.Repositories.GetContents(ctx, RecipeOrg, AggregateRepo, feedstockName, nil)
	switch {
	case err != nil:
		c.warnf("failed to acquire SHA of `%s` from `%s`: %v", pkg, AggregateRepo, err)
	case file == nil:
		c.warnf("`%s` resolved to a directory listing in `%s`", feedstockName, AggregateRepo)
	default:
		sha = file.GetSHA()
		if sha != "" && !crypto.IsValidSHA1(sha) {
			c.warnf("received invalid SHA from `%s`: %s", pkg, sha)
			sha = ""
		}
	}

	repo, _, err := c.gh.Repositories.Get(ctx, RecipeOrg, feedstockName)
	if err != nil {
		return nil, "", api.Wrap(err, "Failed to access `%s` from aggregate", feedstockName)
	}
	return repo, sha, nil
}

// FetchRecipe downloads the recipe file (recipe/meta.yaml) of a package's
// feedstock, pinned to the revision aggregate references when available, and
// writes it to a tagged temp file. Returns the temp file path; the caller
// owns cleanup.
func (c *Client) FetchRecipe(ctx context.Context, pkg string) (string, error) {
	_, sha, err := c.FetchFeedstock(ctx, pkg)
	if err != nil {
		return "", err
	}

	var opts *gogithub.RepositoryContentGetOptions
	if sha != "" {
		opts = &gogithub.RepositoryContentGetOptions{Ref: sha}
	}
	file, _, _, err := c.gh.Repositories.GetContents(ctx, RecipeOrg, pkg+"-feedstock", "recipe/meta.yaml", opts)
	if err != nil {
		return "", api.Wrap(err, "Failed to fetch `meta.yaml` for `%s`", pkg)
	}
	if file == nil {
		return "", api.Errorf("GitHub API returned `meta.yaml` as a list")
	}
	content, err := file.GetContent()
	if err != nil || content == "" {
		return "", api.Wrap(err, "GitHub API returned `meta.yaml` as an invalid string")
	}

	path, err := fileio.WriteTempFile(content, fmt.Sprintf("%s_recipe", pkg))
	if err != nil {
		return "", api.Wrap(err, "Failed to write recipe for `%s` to disk", pkg)
	}
	c.infof("recipe for `%s` downloaded to: %s", pkg, path)
	return path, nil
}

func (c *Client) warnf(format string, args ...any) {
	if c.log != nil {
		c.log.Warnf(format, args...)
	}
}

func (c *Client) infof(format string, args ...any) {
	if c.log != nil {
		c.log.Infof(format, args...)
	}
}

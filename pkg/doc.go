// Package pkg provides the core libraries for packaging metadata tooling.
//
// # Overview
//
// The pkg directory is organized into three main areas:
//
//  1. [api] - External API clients (PyPI, repo.anaconda.com, GitHub, JIRA)
//     sharing a fetch-and-validate HTTP gateway
//  2. [schema] - JSON schema definitions validated against API responses
//  3. Support libraries - [config], [crypto], [fileio], [subshell]
//
// # Architecture
//
// The typical data flow through an API fetch:
//
//	Remote JSON endpoint
//	         ↓
//	    [api] gateway (GET, status, content-type, parse, schema check)
//	         ↓
//	    per-registry wire structs (json tags)
//	         ↓
//	    typed records (PackageMetadata, Repodata, ...)
//
// # Quick Start
//
// Fetch and validate package metadata from PyPI:
//
//	import (
//	    "context"
//	    "github.com/anaconda/go-packaging-utils/pkg/api"
//	    "github.com/anaconda/go-packaging-utils/pkg/api/pypi"
//	)
//
//	client := pypi.NewClient(api.NewClient())
//	meta, err := client.FetchPackageMetadata(context.Background(), "requests")
//
// # Main Packages
//
// [api] - HTTP gateway shared by all registry clients. Every response passes
// the same checks (200 status, application/json content type, parseable JSON,
// minimum schema) before a byte of it is projected into typed records. Also
// defines the unified [api.Error] type that all clients return.
//
// [api/pypi] - PyPI JSON API wrapper. Fetches package and per-version
// metadata, selects a source artifact per release, and verifies MD5/SHA-256
// digests on the way in.
//
// [api/repodata] - repo.anaconda.com wrapper. Fetches repodata.json and
// channeldata.json per channel/architecture pair, rejecting unsupported
// pairs before any request is made. [repodata.PackageRecord.Less] orders
// records by semantic version and build number.
//
// [api/github] - Thin wrapper over go-github for the AnacondaRecipes
// organization: aggregate repo, feedstock repos, and recipe files.
//
// [api/jira] - Authenticated JIRA client construction over go-jira.
//
// [schema] - Compiled JSON schemas for each API payload plus the config
// file. Schemas describe the minimum shape a response must have, not the
// full upstream format.
//
// [config] - Loads and validates the dotted-key YAML config file from the
// user's home directory.
//
// [crypto] - Hex string and digest format checks (MD5, SHA-1, SHA-256).
//
// [fileio] - Small file writing helpers, including uniquely named temp files.
//
// [subshell] - Runs shell commands and command chains, capturing output and
// exit codes without treating non-zero exits as errors.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/api/pypi/...     # Specific package
//
// [api]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/api
// [api/pypi]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/api/pypi
// [api/repodata]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/api/repodata
// [api/github]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/api/github
// [api/jira]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/api/jira
// [schema]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/schema
// [config]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/config
// [crypto]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/crypto
// [fileio]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/fileio
// [subshell]: https://pkg.go.dev/github.com/anaconda/go-packaging-utils/pkg/subshell
package pkg

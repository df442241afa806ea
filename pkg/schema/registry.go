package schema

// artifactDef describes one distributable artifact object, as found in both
// the "urls" array and the per-version lists under "releases".
func artifactDef() map[string]any {
	return map[string]any{
		"type": "object",
		"required": []any{
			"digests",
			"filename",
			"python_version",
			"size",
			"upload_time_iso_8601",
			"url",
		},
		"properties": map[string]any{
			"digests": map[string]any{
				"type":     "object",
				"required": []any{"md5", "sha256"},
				"properties": map[string]any{
					"md5":    map[string]any{"type": "string"},
					"sha256": map[string]any{"type": "string"},
				},
			},
			"filename":             map[string]any{"type": "string"},
			"python_version":       map[string]any{"type": "string"},
			"size":                 map[string]any{"type": "integer"},
			"upload_time_iso_8601": map[string]any{"type": "string"},
			"url":                  map[string]any{"type": "string"},
		},
	}
}

func pypiPackageDef(requiresReleases bool) map[string]any {
	required := []any{"info", "urls"}
	if requiresReleases {
		required = append(required, "releases")
	}
	return map[string]any{
		"type":     "object",
		"required": required,
		"properties": map[string]any{
			"info": map[string]any{
				"type": "object",
				"required": []any{
					"description",
					"description_content_type",
					"docs_url",
					"license",
					"name",
					"package_url",
					"project_url",
					"project_urls",
					"release_url",
					"requires_python",
					"summary",
					"version",
				},
				"properties": map[string]any{
					"description":              map[string]any{"type": []any{"string", "null"}},
					"description_content_type": map[string]any{"type": []any{"string", "null"}},
					"docs_url":                 map[string]any{"type": []any{"string", "null"}},
					"license":                  map[string]any{"type": "string"},
					"name":                     map[string]any{"type": "string"},
					"package_url":              map[string]any{"type": "string"},
					"project_url":              map[string]any{"type": "string"},
					"project_urls": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"Homepage": map[string]any{"type": "string"},
							"Source":   map[string]any{"type": "string"},
						},
					},
					"release_url":     map[string]any{"type": "string"},
					"requires_python": map[string]any{"type": "string"},
					"summary":         map[string]any{"type": []any{"string", "null"}},
					"version":         map[string]any{"type": "string"},
				},
			},
			"releases": map[string]any{
				"type": "object",
				// Version strings are too varied to validate; accept any key
				// so an unusual versioning scheme cannot fail the whole
				// response.
				"patternProperties": map[string]any{
					"^.*$": map[string]any{
						"type":  "array",
						"items": artifactDef(),
					},
				},
				"additionalProperties": false,
			},
			"urls": map[string]any{
				"type":  "array",
				"items": artifactDef(),
			},
		},
	}
}

func repodataDef() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"info", "packages", "removed", "repodata_version"},
		"properties": map[string]any{
			"info": map[string]any{
				"required": []any{"subdir"},
				"properties": map[string]any{
					"subdir":   map[string]any{"type": "string"},
					"arch":     map[string]any{"type": "string"},
					"platform": map[string]any{"type": "string"},
				},
			},
			"packages": map[string]any{
				"additionalProperties": map[string]any{
					"type": "object",
					"required": []any{
						"build",
						"build_number",
						"depends",
						"md5",
						"sha256",
						"name",
						"size",
						"version",
						"subdir",
					},
					"properties": map[string]any{
						"build":          map[string]any{"type": "string"},
						"build_number":   map[string]any{"type": "integer"},
						"depends":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"md5":            map[string]any{"type": "string"},
						"sha256":         map[string]any{"type": "string"},
						"name":           map[string]any{"type": "string"},
						"size":           map[string]any{"type": "integer"},
						"timestamp":      map[string]any{"type": "integer"},
						"version":        map[string]any{"type": "string"},
						"subdir":         map[string]any{"type": "string"},
						"date":           map[string]any{"type": "string"},
						"track_features": map[string]any{"type": "string"},
						"license":        map[string]any{"type": []any{"string", "null"}},
						"license_family": map[string]any{"type": []any{"string", "null"}},
					},
				},
			},
			"removed":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"repodata_version": map[string]any{"type": "integer"},
		},
	}
}

func channelDataDef() map[string]any {
	// Only the fields needed to determine per-channel architecture support.
	return map[string]any{
		"type":     "object",
		"required": []any{"channeldata_version", "subdirs"},
		"properties": map[string]any{
			"channeldata_version": map[string]any{"type": "integer"},
			"subdirs":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}
}

func configDef() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"token", "user_info", "local_path"},
		"properties": map[string]any{
			// Tokens are not individually required; not every developer needs
			// every API.
			"token": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"github": map[string]any{"type": "string"},
					"jira":   map[string]any{"type": "string"},
				},
			},
			"user_info": map[string]any{
				"type":     "object",
				"required": []any{"email"},
				"properties": map[string]any{
					"email": map[string]any{"type": "string"},
				},
			},
			"local_path": map[string]any{
				"type":     "object",
				"required": []any{"aggregate"},
				"properties": map[string]any{
					"aggregate": map[string]any{"type": "string"},
				},
			},
		},
	}
}

var (
	pypiPackageAll    = compile("pypi-package", pypiPackageDef(true))
	pypiPackageSingle = compile("pypi-package-version", pypiPackageDef(false))
	repodata          = compile("repodata", repodataDef())
	channelData       = compile("channeldata", channelDataDef())
	configFile        = compile("config-file", configDef())
)

// PyPIPackage returns the descriptor for the PyPI package endpoint. When
// requiresReleases is true the "releases" map (one entry per known version)
// must be present; the per-version endpoint omits it.
func PyPIPackage(requiresReleases bool) *Schema {
	if requiresReleases {
		return pypiPackageAll
	}
	return pypiPackageSingle
}

// Repodata returns the descriptor for a repodata.json blob.
func Repodata() *Schema { return repodata }

// ChannelData returns the descriptor for a channeldata.json blob.
func ChannelData() *Schema { return channelData }

// Config returns the descriptor for the tool configuration file.
func Config() *Schema { return configFile }

package folio

import "embed"

// EmbeddedAssets contains the static assets shipped with the site
// (site.css, site.js, favicon.svg), served under /public/.
//
//go:embed public/*
var EmbeddedAssets embed.FS

// DefaultContent holds the bundled projects.yaml and developer.yaml.
//
//go:embed content/*.yaml
var DefaultContent embed.FS

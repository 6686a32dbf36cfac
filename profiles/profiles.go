// Package profiles embeds the built-in overlay profiles.
package profiles

import "embed"

// FS holds default.yaml (zh) and default.en.yaml.
//
//go:embed *.yaml
var FS embed.FS

// Root is the directory inside FS that holds the manifests.
const Root = "."

// Default is the name of the built-in profile.
const Default = "default"

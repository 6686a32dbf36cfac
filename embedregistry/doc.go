// Package embedregistry provides an embed.FS-based profile registry that loads
// all YAML manifests at construction (eager). Use New with an fs.FS and root path;
// GetProfile performs an O(1) lookup by name and env.
// Profile name must not contain ':' (used as cache key separator).
package embedregistry

// Package fileregistry provides a file-based profile registry with lazy loading and caching.
// Profiles are resolved as {dir}/{name}.{env}.yaml with fallback to {dir}/{name}.yaml;
// Watch hot-reloads the cache when manifests change.
package fileregistry

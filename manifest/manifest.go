// Package manifest parses YAML profile manifests into annohelper profiles.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/skosovsky/annohelper"
	"github.com/skosovsky/annohelper/internal/cast"

	"gopkg.in/yaml.v3"
)

// fileManifest is the YAML manifest shape. Loosely typed fields go through internal/cast.
type fileManifest struct {
	ID          string               `yaml:"id"`
	Version     string               `yaml:"version"`
	Description string               `yaml:"description"`
	Locale      string               `yaml:"locale"`
	AllowedTags any                  `yaml:"allowed_tags"` // string or list
	Keymap      []annohelper.Binding `yaml:"keymap"`
	Timings     map[string]any       `yaml:"timings"` // duration string or milliseconds
	Templates   struct {
		Count string `yaml:"count"`
		Help  string `yaml:"help"`
	} `yaml:"templates"`
}

var timingKeys = []string{"tooltip_hide", "delete_confirm", "tag_poll", "heartbeat", "panel_hide"}

// ParseBytes parses a YAML manifest and returns a Profile.
// Unknown keys, at the top level or inside keymap entries, are rejected.
func ParseBytes(data []byte) (*annohelper.Profile, error) {
	var m fileManifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", annohelper.ErrInvalidManifest, err)
	}
	return buildProfile(&m)
}

// ParseFile reads and parses a manifest file.
func ParseFile(path string) (*annohelper.Profile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is validated by caller
	if err != nil {
		return nil, fmt.Errorf("manifest: read file: %w", err)
	}
	return ParseBytes(data)
}

// ParseFS reads and parses a manifest from fs.FS (e.g. embed.FS).
func ParseFS(fsys fs.FS, name string) (*annohelper.Profile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read fs: %w", err)
	}
	return ParseBytes(data)
}

func buildProfile(m *fileManifest) (*annohelper.Profile, error) {
	if m.ID == "" {
		return nil, fmt.Errorf("%w: missing id", annohelper.ErrInvalidManifest)
	}
	opts := []annohelper.ProfileOption{
		annohelper.WithMetadata(annohelper.ProfileMetadata{
			ID:          m.ID,
			Version:     m.Version,
			Description: m.Description,
			Locale:      m.Locale,
		}),
	}
	if m.AllowedTags != nil {
		tags, ok := cast.ToStringSlice(m.AllowedTags)
		if !ok {
			return nil, fmt.Errorf("%w: allowed_tags must be a string or a list of strings", annohelper.ErrInvalidManifest)
		}
		opts = append(opts, annohelper.WithAllowedTags(tags))
	}
	if m.Keymap != nil {
		opts = append(opts, annohelper.WithKeymap(m.Keymap))
	}
	if len(m.Timings) > 0 {
		t, err := parseTimings(m.Timings)
		if err != nil {
			return nil, err
		}
		opts = append(opts, annohelper.WithTimings(t))
	}
	if m.Templates.Count != "" {
		opts = append(opts, annohelper.WithCountTemplate(m.Templates.Count))
	}
	if m.Templates.Help != "" {
		opts = append(opts, annohelper.WithHelpTemplate(m.Templates.Help))
	}
	return annohelper.NewProfile(opts...)
}

func parseTimings(raw map[string]any) (annohelper.Timings, error) {
	var t annohelper.Timings
	for key, v := range raw {
		if !slices.Contains(timingKeys, key) {
			return t, fmt.Errorf("%w: unknown timing %q", annohelper.ErrInvalidManifest, key)
		}
		d, ok := cast.ToDuration(v)
		if !ok || d < 0 {
			return t, fmt.Errorf("%w: timing %q: invalid duration %v", annohelper.ErrInvalidManifest, key, v)
		}
		switch key {
		case "tooltip_hide":
			t.TooltipHide = d
		case "delete_confirm":
			t.DeleteConfirm = d
		case "tag_poll":
			t.TagPoll = d
		case "heartbeat":
			t.Heartbeat = d
		case "panel_hide":
			t.PanelHide = d
		}
	}
	return t, nil
}

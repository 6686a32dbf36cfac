package embedregistry

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/skosovsky/annohelper"
	"github.com/skosovsky/annohelper/manifest"
)

// Registry loads all YAML manifests from an fs.FS at construction (eager). No mutex.
var _ annohelper.ProfileRegistry = (*Registry)(nil)

type Registry struct {
	cache map[string]*annohelper.Profile
}

// New walks fsys, parses every .yaml/.yml file under root, and returns a Registry.
// Key format: "name:" for "name.yaml", "name:env" for "name.env.yaml". Duplicate keys overwrite by last.
func New(fsys fs.FS, root string) (*Registry, error) {
	r := &Registry{cache: make(map[string]*annohelper.Profile)}
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}
		p, err := manifest.ParseFS(fsys, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		base := filepath.Base(path)
		name := strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
		if idx := strings.LastIndex(name, "."); idx >= 0 {
			r.cache[name[:idx]+":"+name[idx+1:]] = p
		} else {
			r.cache[name+":"] = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetProfile returns a profile by name and env. O(1) map lookup.
// Prefer name:env key; if missing, fallback to name: (base file).
func (r *Registry) GetProfile(ctx context.Context, name, env string) (*annohelper.Profile, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	p, ok := r.cache[name+":"+env]
	if !ok {
		p, ok = r.cache[name+":"]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", annohelper.ErrProfileNotFound, name)
	}
	out := annohelper.CloneProfile(p)
	out.Metadata.Environment = env
	return out, nil
}

// Names returns the profile keys loaded at construction, in "name:env" form.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cache))
	for k := range r.cache {
		out = append(out, k)
	}
	return out
}

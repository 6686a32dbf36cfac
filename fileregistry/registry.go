package fileregistry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/skosovsky/annohelper"
	"github.com/skosovsky/annohelper/manifest"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"
)

// Ensures Registry implements annohelper.ProfileRegistry.
var _ annohelper.ProfileRegistry = (*Registry)(nil)

// Registry loads profiles from the filesystem (lazy, cached).
// Resolves name+env to {dir}/{name}.{env}.yaml with fallback to {dir}/{name}.yaml.
type Registry struct {
	dir    string
	logger *slog.Logger
	mu     sync.RWMutex
	cache  map[string]*annohelper.Profile
	sf     singleflight.Group
	gen    uint64 // bumped by Reload so in-flight loads do not repopulate a cleared cache
}

// New creates a Registry that reads YAML manifests from dir.
func New(dir string, opts ...Option) *Registry {
	r := &Registry{
		dir:    dir,
		logger: slog.Default(),
		cache:  make(map[string]*annohelper.Profile),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used by Watch. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// GetProfile returns a profile by name and env. Lazy-loads and caches.
// File resolution: {dir}/{name}.{env}.yaml or .yml, fallback {dir}/{name}.yaml or .yml.
// Concurrent misses for the same key share one load.
func (r *Registry) GetProfile(ctx context.Context, name, env string) (*annohelper.Profile, error) {
	if err := annohelper.ValidateName(name, env); err != nil {
		return nil, err
	}
	key := name + ":" + env
	r.mu.RLock()
	p, ok := r.cache[key]
	gen := r.gen
	r.mu.RUnlock()
	if ok {
		return annohelper.CloneProfile(p), nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	v, err, _ := r.sf.Do(key, func() (any, error) {
		p, err := r.load(name, env)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		if r.gen == gen {
			r.cache[key] = p
		}
		r.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return annohelper.CloneProfile(v.(*annohelper.Profile)), nil
}

func (r *Registry) load(name, env string) (*annohelper.Profile, error) {
	extensions := []string{".yaml", ".yml"}
	var candidates []string
	if env != "" {
		for _, ext := range extensions {
			candidates = append(candidates, name+"."+env+ext)
		}
	}
	for _, ext := range extensions {
		candidates = append(candidates, name+ext)
	}
	for _, c := range candidates {
		p, err := manifest.ParseFile(filepath.Join(r.dir, c))
		if err == nil {
			p.Metadata.Environment = env
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", annohelper.ErrProfileNotFound, name)
}

// Reload clears the cache.
func (r *Registry) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*annohelper.Profile)
	r.gen++
}

// Watch clears the cache whenever a manifest in dir is written, created, renamed or removed.
// It returns once the watcher is set up; the watch goroutine exits when ctx is done.
// The returned channel receives the changed path (best effort, never blocks) and is closed on exit.
func (r *Registry) Watch(ctx context.Context) (<-chan string, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fileregistry: watch: %w", err)
	}
	if err := fsw.Add(r.dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("fileregistry: watch %s: %w", r.dir, err)
	}
	changed := make(chan string, 16)
	go func() {
		defer close(changed)
		defer fsw.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !isManifest(ev.Name) || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				r.Reload()
				r.logger.Info("profile manifest changed", "path", ev.Name, "op", ev.Op.String())
				select {
				case changed <- ev.Name:
				default:
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				r.logger.Error("profile watcher error", "error", err)
			}
		}
	}()
	return changed, nil
}

func isManifest(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

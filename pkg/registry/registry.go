// Package registry builds the Identifier Map for schema documents and their
// includes. Loaded files are cached by absolute path so a document included
// from several places is only read once.
package registry

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"miren.dev/thriftgen/pkg/idl"
)

const defaultCacheSize = 256

type registryOptions struct {
	log       *slog.Logger
	cacheSize int
}

type Option func(*registryOptions)

func WithLogger(log *slog.Logger) Option {
	return func(o *registryOptions) {
		o.log = log
	}
}

func WithCacheSize(n int) Option {
	return func(o *registryOptions) {
		o.cacheSize = n
	}
}

type Registry struct {
	log *slog.Logger

	mu    sync.Mutex
	files *lru.Cache[string, *File]
}

func New(opts ...Option) (*Registry, error) {
	o := registryOptions{
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		cacheSize: defaultCacheSize,
	}

	for _, opt := range opts {
		opt(&o)
	}

	files, err := lru.New[string, *File](o.cacheSize)
	if err != nil {
		return nil, err
	}

	return &Registry{
		log:   o.log,
		files: files,
	}, nil
}

// Load reads the document at path, and every document it includes.
func (r *Registry) Load(path string) (*File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(path, map[string]bool{})
}

// Add registers an already decoded document. Its includes are loaded
// relative to doc.Path.
func (r *Registry) Add(doc *idl.Document) (*File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.link(doc, map[string]bool{})
}

func (r *Registry) load(path string, loading map[string]bool) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if f, ok := r.files.Get(abs); ok {
		r.log.Debug("schema cache hit", "path", abs)
		return f, nil
	}

	if loading[abs] {
		return nil, errors.Wrapf(ErrCycle, "include of %s", abs)
	}

	doc, err := idl.Load(abs)
	if err != nil {
		return nil, err
	}

	loading[abs] = true
	defer delete(loading, abs)

	f, err := r.link(doc, loading)
	if err != nil {
		return nil, err
	}

	r.files.Add(abs, f)

	r.log.Debug("loaded schema", "path", abs, "name", doc.Name, "includes", len(doc.Includes))

	return f, nil
}

func (r *Registry) link(doc *idl.Document, loading map[string]bool) (*File, error) {
	f, err := newFile(doc)
	if err != nil {
		return nil, errors.WithMessagef(err, "building identifiers of %s", doc.Name)
	}

	for _, inc := range doc.Includes {
		path := inc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(doc.Path), path)
		}

		sub, err := r.load(path, loading)
		if err != nil {
			return nil, errors.WithMessagef(err, "include %s of %s", inc.Name, doc.Name)
		}

		name := inc.Name
		if name == "" {
			name = sub.Doc.Name
		}

		f.Includes[name] = sub
	}

	return f, nil
}

// Package config reads thriftgen.toml, the per-project settings for
// generating Go code from schema documents.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/thriftgen"
)

const FileName = "thriftgen.toml"

const DefaultSuffix = ".gen.go"

type Config struct {
	// Package overrides the package name derived from each document.
	Package string `toml:"package" json:"package"`

	// Output is the directory generated files are written to. Empty means
	// next to each schema.
	Output string `toml:"output" json:"output"`

	ModulePrefix string            `toml:"module_prefix" json:"module_prefix"`
	Imports      map[string]string `toml:"imports" json:"imports"`
	Suffix       string            `toml:"suffix" json:"suffix"`
	Schemas      []string          `toml:"schemas" json:"schemas"`

	// Dir is where the file was found; relative paths are resolved
	// against it.
	Dir string `toml:"-" json:"-"`
}

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Package, validation.Match(identRe).Error("must be a lower case Go package name")),
		validation.Field(&c.Suffix, validation.By(func(v any) error {
			s, _ := v.(string)
			if s != "" && !strings.HasSuffix(s, ".go") {
				return errors.New("must end in .go")
			}
			return nil
		})),
		validation.Field(&c.ModulePrefix, validation.By(func(v any) error {
			s, _ := v.(string)
			if strings.HasSuffix(s, "/") || strings.Contains(s, " ") {
				return errors.New("must be an import path without a trailing slash")
			}
			return nil
		})),
		validation.Field(&c.Imports, validation.By(func(v any) error {
			m, _ := v.(map[string]string)
			for doc, path := range m {
				if doc == "" || path == "" {
					return errors.Errorf("%q = %q: document and import path are both required", doc, path)
				}
			}
			return nil
		})),
		validation.Field(&c.Schemas, validation.Each(validation.Required, validation.By(func(v any) error {
			s, _ := v.(string)
			_, err := idl.FormatOf(s)
			return err
		}))),
	)
}

// Parse decodes and validates a config file's contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding "+FileName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	cfg.Dir = filepath.Dir(path)

	return cfg, nil
}

// Load looks for thriftgen.toml in dir and each of its parents. It returns
// nil with no error when there is none.
func Load(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)

		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Options turns the config into generator options.
func (c *Config) Options() []thriftgen.Option {
	var opts []thriftgen.Option

	if c == nil {
		return nil
	}

	if c.ModulePrefix != "" {
		opts = append(opts, thriftgen.WithModulePrefix(c.ModulePrefix))
	}

	for doc, path := range c.Imports {
		opts = append(opts, thriftgen.WithImport(doc, path))
	}

	return opts
}

// SchemaPaths resolves the configured schemas against Dir.
func (c *Config) SchemaPaths() []string {
	var out []string

	for _, s := range c.Schemas {
		if !filepath.IsAbs(s) {
			s = filepath.Join(c.Dir, s)
		}
		out = append(out, s)
	}

	return out
}

// OutputPath is where the code generated from the document named doc,
// read from schema, is written.
func (c *Config) OutputPath(schema, doc string) string {
	suffix := DefaultSuffix
	dir := filepath.Dir(schema)

	if c != nil {
		if c.Suffix != "" {
			suffix = c.Suffix
		}

		if c.Output != "" {
			dir = c.Output
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(c.Dir, dir)
			}
		}
	}

	return filepath.Join(dir, doc+suffix)
}

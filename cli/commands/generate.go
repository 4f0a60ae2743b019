package commands

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"miren.dev/thriftgen/pkg/config"
	"miren.dev/thriftgen/pkg/multierror"
	"miren.dev/thriftgen/pkg/registry"
	"miren.dev/thriftgen/pkg/thriftgen"
)

var ErrNoSchemas = errors.New("no schemas given on the command line or in " + config.FileName)

// overrides are command line settings that take precedence over
// thriftgen.toml.
type overrides struct {
	Package      string
	Output       string
	ModulePrefix string
	Suffix       string
	Imports      map[string]string
	Schemas      []string
}

// resolveConfig loads thriftgen.toml, if there is one, and applies o to
// it. Paths given on the command line are taken relative to the working
// directory.
func (c *Context) resolveConfig(o overrides) (*config.Config, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}

		cfg = &config.Config{Dir: wd}
	}

	if o.Package != "" {
		cfg.Package = o.Package
	}

	if o.Output != "" {
		cfg.Output, err = filepath.Abs(o.Output)
		if err != nil {
			return nil, err
		}
	}

	if o.ModulePrefix != "" {
		cfg.ModulePrefix = o.ModulePrefix
	}

	if o.Suffix != "" {
		cfg.Suffix = o.Suffix
	}

	if len(o.Imports) > 0 {
		if cfg.Imports == nil {
			cfg.Imports = map[string]string{}
		}

		for doc, path := range o.Imports {
			cfg.Imports[doc] = path
		}
	}

	if len(o.Schemas) > 0 {
		cfg.Schemas = nil

		for _, s := range o.Schemas {
			abs, err := filepath.Abs(s)
			if err != nil {
				return nil, err
			}
			cfg.Schemas = append(cfg.Schemas, abs)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(cfg.Schemas) == 0 {
		return nil, ErrNoSchemas
	}

	return cfg, nil
}

type generated struct {
	schema string
	output string
	code   string
	err    error
}

func Generate(ctx *Context, opts struct {
	Package      string            `short:"p" long:"package" description:"Package name for generated code"`
	Output       string            `short:"o" long:"output" description:"Directory to write generated files to"`
	ModulePrefix string            `long:"module-prefix" description:"Import path prefix for included documents"`
	Imports      map[string]string `short:"I" long:"import" description:"Import path for an included document, as doc=path"`
	Suffix       string            `long:"suffix" description:"Suffix of generated file names"`
	DryRun       bool              `short:"n" long:"dry-run" description:"Print generated code instead of writing files"`
	Schemas      []string          `rest:"true"`
}) error {
	cfg, err := ctx.resolveConfig(overrides{
		Package:      opts.Package,
		Output:       opts.Output,
		ModulePrefix: opts.ModulePrefix,
		Suffix:       opts.Suffix,
		Imports:      opts.Imports,
		Schemas:      opts.Schemas,
	})
	if err != nil {
		return err
	}

	reg, err := registry.New(registry.WithLogger(ctx.Log))
	if err != nil {
		return err
	}

	paths := cfg.SchemaPaths()
	results := make([]generated, len(paths))

	eg, egctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}

			results[i] = generateOne(ctx, reg, cfg, path, opts.DryRun)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	var failed error

	for _, res := range results {
		if res.err != nil {
			ctx.Status(false, "%s", res.schema)
			failed = multierror.Append(failed, errors.WithMessage(res.err, res.schema))
			continue
		}

		if opts.DryRun {
			ctx.Printf("%s\n", dimmed("// "+res.output))
			ctx.Printf("%s", res.code)
			continue
		}

		ctx.Status(true, "%s %s", res.schema, dimmed("-> "+res.output))
	}

	return failed
}

func generateOne(ctx *Context, reg *registry.Registry, cfg *config.Config, path string, dryRun bool) generated {
	res := generated{schema: path}

	opts := append(cfg.Options(), thriftgen.WithRegistry(reg), thriftgen.WithLogger(ctx.Log))

	gen, err := thriftgen.NewGenerator(opts...)
	if err != nil {
		res.err = err
		return res
	}

	if err := gen.Read(path); err != nil {
		res.err = err
		return res
	}

	res.output = cfg.OutputPath(path, gen.File().Doc.Name)

	res.code, err = gen.Generate(cfg.Package)
	if err != nil {
		res.err = err
		return res
	}

	ctx.Log.Debug("generated", "schema", path, "output", res.output, "bytes", len(res.code))

	if dryRun {
		return res
	}

	if err := os.MkdirAll(filepath.Dir(res.output), 0755); err != nil {
		res.err = err
		return res
	}

	res.err = os.WriteFile(res.output, []byte(res.code), 0644)

	return res
}

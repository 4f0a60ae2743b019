package commands

import (
	"miren.dev/thriftgen/pkg/multierror"
	"miren.dev/thriftgen/pkg/registry"
	"miren.dev/thriftgen/pkg/thriftgen"
)

// Check reads every schema as generate would, without writing anything,
// and reports each problem it finds rather than stopping at the first.
func Check(ctx *Context, opts struct {
	ModulePrefix string            `long:"module-prefix" description:"Import path prefix for included documents"`
	Imports      map[string]string `short:"I" long:"import" description:"Import path for an included document, as doc=path"`
	Schemas      []string          `rest:"true"`
}) error {
	cfg, err := ctx.resolveConfig(overrides{
		ModulePrefix: opts.ModulePrefix,
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

	var problems int

	for _, path := range cfg.SchemaPaths() {
		if err := ctx.Err(); err != nil {
			return err
		}

		gen, err := thriftgen.NewGenerator(append(cfg.Options(), thriftgen.WithRegistry(reg), thriftgen.WithLogger(ctx.Log))...)
		if err != nil {
			return err
		}

		err = gen.Read(path)
		if err == nil {
			ctx.Status(true, "%s", path)
			continue
		}

		ctx.Status(false, "%s", path)

		for _, e := range multierror.Errors(err) {
			problems++
			ctx.Printf("     %s\n", e)
		}
	}

	if problems > 0 {
		ctx.Log.Warn("schemas have problems", "count", problems)
		ctx.SetExitCode(1)
	}

	return nil
}

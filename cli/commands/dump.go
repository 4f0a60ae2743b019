package commands

import (
	"maps"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/registry"
)

var ErrOneSchema = errors.New("exactly one schema is required")

// Dump prints the identifiers a document resolves, including those it
// reaches through its includes. With --encode it instead writes the
// document back out in another format.
func Dump(ctx *Context, opts struct {
	Encode string   `short:"e" long:"encode" description:"Re-encode the document as yaml, json or cbor"`
	Spew   bool     `long:"spew" description:"Dump each definition in full"`
	Schema []string `rest:"true"`
}) error {
	if len(opts.Schema) != 1 {
		return ErrOneSchema
	}

	reg, err := registry.New(registry.WithLogger(ctx.Log))
	if err != nil {
		return err
	}

	f, err := reg.Load(opts.Schema[0])
	if err != nil {
		return err
	}

	if opts.Encode != "" {
		format, err := idl.FormatOf("." + opts.Encode)
		if err != nil {
			return err
		}

		data, err := idl.Encode(format, f.Doc)
		if err != nil {
			return errors.Wrapf(err, "encoding %s", f.Doc.Name)
		}

		_, err = ctx.Stdout.Write(data)
		return err
	}

	sc := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	show := func(prefix string, file *registry.File) {
		for _, id := range file.Identifiers() {
			ctx.Printf("%-10s %s%s\n", id.Kind, prefix, id.Name)

			if opts.Spew {
				sc.Fdump(ctx.Stdout, definition(id))
			}
		}
	}

	show("", f)

	for _, name := range slices.Sorted(maps.Keys(f.Includes)) {
		show(name+".", f.Includes[name])
	}

	return nil
}

func definition(id *registry.Identifier) any {
	switch {
	case id.Struct != nil:
		return id.Struct
	case id.Enum != nil:
		return id.Enum
	case id.Typedef != nil:
		return id.Typedef
	default:
		return id.Service
	}
}

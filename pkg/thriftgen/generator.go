// Package thriftgen turns a resolved schema document into Go code that
// speaks the thrift RPC protocol through github.com/apache/thrift.
package thriftgen

import (
	"bytes"
	"io"
	"log/slog"
	"path"
	"strings"

	j "github.com/dave/jennifer/jen"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/multierror"
	"miren.dev/thriftgen/pkg/registry"
)

type generatorOptions struct {
	log          *slog.Logger
	reg          *registry.Registry
	imports      map[string]string
	modulePrefix string
}

type Option func(*generatorOptions)

func WithLogger(log *slog.Logger) Option {
	return func(o *generatorOptions) {
		o.log = log
	}
}

// WithRegistry shares a registry, and so its cache, between generators.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *generatorOptions) {
		o.reg = reg
	}
}

// WithImport maps a document name to the Go import path of the code
// generated from it.
func WithImport(doc, importPath string) Option {
	return func(o *generatorOptions) {
		o.imports[doc] = importPath
	}
}

// WithModulePrefix derives import paths for documents without an explicit
// import: the prefix joined with the document's go namespace, or its name.
func WithModulePrefix(prefix string) Option {
	return func(o *generatorOptions) {
		o.modulePrefix = prefix
	}
}

type Generator struct {
	log          *slog.Logger
	reg          *registry.Registry
	imports      map[string]string
	modulePrefix string

	file *registry.File
}

func NewGenerator(opts ...Option) (*Generator, error) {
	o := generatorOptions{
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		imports: make(map[string]string),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.reg == nil {
		reg, err := registry.New(registry.WithLogger(o.log))
		if err != nil {
			return nil, err
		}
		o.reg = reg
	}

	return &Generator{
		log:          o.log,
		reg:          o.reg,
		imports:      o.imports,
		modulePrefix: o.modulePrefix,
	}, nil
}

// Read loads the document at path along with its includes and checks that
// everything it references resolves.
func (g *Generator) Read(path string) error {
	f, err := g.reg.Load(path)
	if err != nil {
		return err
	}

	return g.Use(f)
}

// Use selects an already loaded file as the generation input.
func (g *Generator) Use(f *registry.File) error {
	if err := f.Check(); err != nil {
		return err
	}

	g.file = f

	if err := g.validate(); err != nil {
		g.file = nil
		return err
	}

	return nil
}

func (g *Generator) File() *registry.File {
	return g.file
}

// PackageName is the package generated code goes into when Generate is
// given no name: the last element of the go namespace, else the document
// name.
func (g *Generator) PackageName() string {
	if g.file == nil {
		return ""
	}

	return packageName(g.file.Doc)
}

func packageName(doc *idl.Document) string {
	if ns := doc.Namespace("go"); ns != "" {
		ns = strings.ReplaceAll(ns, ".", "/")
		return path.Base(ns)
	}

	return strings.ReplaceAll(doc.Name, "-", "_")
}

func (g *Generator) importPath(f *registry.File) (string, error) {
	if p, ok := g.imports[f.Doc.Name]; ok {
		return p, nil
	}

	if g.modulePrefix == "" {
		return "", errors.Wrapf(ErrNoImportPath, "%s", f.Doc.Name)
	}

	rel := f.Doc.Name
	if ns := f.Doc.Namespace("go"); ns != "" {
		rel = strings.ReplaceAll(ns, ".", "/")
	}

	return path.Join(g.modulePrefix, rel), nil
}

// validate resolves every type the generators will touch, so that the
// generators themselves can not fail on a reference.
func (g *Generator) validate() error {
	var err error

	checkFields := func(owner string, fields []*idl.Field, defaults bool) {
		ids := map[int16]string{}

		for _, fld := range fields {
			if prev, ok := ids[fld.ID]; ok {
				err = multierror.Append(err, errors.Wrapf(ErrInvalidSchema, "%s: %s and %s share field id %d", owner, prev, fld.Name, fld.ID))
			}
			ids[fld.ID] = fld.Name

			ti, terr := g.typeInfo(g.file, fld.Type)
			if terr != nil {
				err = multierror.Append(err, errors.WithMessagef(terr, "%s.%s", owner, fld.Name))
				continue
			}

			if fld.Default == nil {
				continue
			}

			if !defaults {
				err = multierror.Append(err, errors.Wrapf(ErrInvalidSchema, "%s.%s: defaults are not allowed here", owner, fld.Name))
				continue
			}

			if _, derr := g.defaultValue(ti, fld.Default); derr != nil {
				err = multierror.Append(err, errors.WithMessagef(derr, "%s.%s", owner, fld.Name))
			}
		}
	}

	for _, td := range g.file.Doc.Typedefs {
		if _, terr := g.typeInfo(g.file, td.Type); terr != nil {
			err = multierror.Append(err, errors.WithMessagef(terr, "typedef %s", td.Name))
		}
	}

	for _, st := range g.file.Doc.Structs {
		checkFields(st.Name, st.Fields, true)
	}

	for _, svc := range g.file.Doc.Services {
		ancestors, aerr := g.file.Ancestors(svc)
		if aerr != nil {
			err = multierror.Append(err, aerr)
			continue
		}

		if len(ancestors) > 0 {
			if ierr := g.checkImport(ancestors[0]); ierr != nil {
				err = multierror.Append(err, errors.WithMessagef(ierr, "service %s", svc.Name))
			}
		}

		for _, fn := range svc.Functions {
			owner := svc.Name + "." + fn.Name

			checkFields(owner, fn.Params, false)
			checkFields(owner, fn.Throws, false)

			if !fn.IsVoid() {
				if _, terr := g.typeInfo(g.file, fn.ReturnType); terr != nil {
					err = multierror.Append(err, errors.WithMessagef(terr, "%s result", owner))
				}
			}

			if fn.Oneway && len(fn.Throws) > 0 {
				err = multierror.Append(err, errors.Wrapf(ErrInvalidSchema, "oneway %s can not throw", owner))
			}

			for _, x := range fn.Throws {
				ti, terr := g.typeInfo(g.file, x.Type)
				if terr != nil {
					continue
				}

				if ti.kind != structKind || ti.ident.Kind != registry.Exception {
					err = multierror.Append(err, errors.Wrapf(ErrInvalidSchema, "%s throws %s, which is not an exception", owner, x.Type))
				}
			}
		}
	}

	return err
}

// Generate renders the document read by Read as a Go source file in
// package name.
func (g *Generator) Generate(name string) (string, error) {
	if g.file == nil {
		return "", ErrNotRead
	}

	if name == "" {
		name = g.PackageName()
	}

	f := j.NewFile(name)
	f.HeaderComment("Code generated by thriftgen. DO NOT EDIT.")

	for incName, inc := range g.file.Includes {
		if p, err := g.importPath(inc); err == nil {
			f.ImportName(p, packageName(inc.Doc))
		} else {
			g.log.Debug("include has no import path", "include", incName)
		}
	}

	f.ImportName(thriftPkg, "thrift")
	f.ImportName(runtimePkg, "thriftrt")

	g.generateTypedefs(f)
	g.generateEnums(f)

	for _, st := range g.file.Doc.Structs {
		g.log.Debug("generating struct", "name", st.Name, "kind", st.Kind)
		g.generateStruct(f, st)
	}

	for _, svc := range g.file.Doc.Services {
		g.log.Debug("generating service", "name", svc.Name, "functions", len(svc.Functions))

		if err := g.generateService(f, svc); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer

	err := f.Render(&buf)
	if err != nil {
		return "", err
	}

	code, err := imports.Process("out.go", buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		spew.Dump(buf.String())
		return "", err
	}

	return string(code), nil
}

func (g *Generator) generateService(f *j.File, svc *idl.Service) error {
	ancestors, err := g.file.Ancestors(svc)
	if err != nil {
		return err
	}

	var base *registry.Identifier
	if len(ancestors) > 0 {
		base = ancestors[0]
	}

	g.generateHandler(f, svc, base)
	g.generateEnvelopes(f, svc)
	g.generateClient(f, svc, base)
	g.generateProcessor(f, svc, base, ancestors)

	return nil
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/multierror"
)

func TestRegistry(t *testing.T) {
	t.Run("can resolve local and included names", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		f, err := reg.Load("testdata/derived.yml")
		r.NoError(err)
		r.NoError(f.Check())

		id, err := f.Resolve("Batch")
		r.NoError(err)
		r.Equal(Struct, id.Kind)
		r.Equal("derived.Batch", id.QualifiedName())

		id, err = f.Resolve("base.Record")
		r.NoError(err)
		r.Equal(Struct, id.Kind)
		r.Equal("base", id.File.Doc.Name)
		r.Same(f.Includes["base"], id.File)
	})

	t.Run("follows typedefs across files", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		f, err := reg.Load("testdata/derived.yml")
		r.NoError(err)

		ft, err := idl.ParseFieldType("base.Idents")
		r.NoError(err)

		under, owner, err := f.Underlying(ft)
		r.NoError(err)
		r.Equal(idl.List, under.Kind)
		r.Equal("Ident", under.Elem.Name)
		r.Equal("base", owner.Doc.Name)

		elem, owner, err := owner.Underlying(*under.Elem)
		r.NoError(err)
		r.Equal(idl.Base, elem.Kind)
		r.Equal("i64", elem.Name)
		r.Equal("base", owner.Doc.Name)

		ft, err = idl.ParseFieldType("RecordAlias")
		r.NoError(err)

		under, owner, err = f.Underlying(ft)
		r.NoError(err)
		r.Equal(idl.Ref, under.Kind)
		r.Equal("base.Record", under.Name)
		r.Equal("derived", owner.Doc.Name)
	})

	t.Run("walks the extends chain", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		f, err := reg.Load("testdata/derived.yml")
		r.NoError(err)

		audited, err := f.ResolveService("AuditedStore")
		r.NoError(err)

		chain, err := f.Ancestors(audited.Service)
		r.NoError(err)
		r.Len(chain, 2)
		r.Equal("derived.BatchStore", chain[0].QualifiedName())
		r.Equal("base.Store", chain[1].QualifiedName())
	})

	t.Run("shares included files through the cache", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		base, err := reg.Load("testdata/base.yml")
		r.NoError(err)

		derived, err := reg.Load("testdata/derived.yml")
		r.NoError(err)

		r.Same(base, derived.Includes["base"])

		again, err := reg.Load("testdata/derived.yml")
		r.NoError(err)
		r.Same(derived, again)
	})

	t.Run("reports every broken reference", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		f, err := reg.Load("testdata/broken.yml")
		r.NoError(err)

		err = f.Check()
		r.Error(err)

		r.ErrorIs(err, ErrUnresolved)
		r.ErrorIs(err, ErrCycle)
		r.ErrorIs(err, ErrNotService)

		r.Len(multierror.Errors(err), 6)
	})

	t.Run("rejects a service extending a struct", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		f, err := reg.Load("testdata/broken.yml")
		r.NoError(err)

		_, err = f.ResolveService("Thing")
		r.ErrorIs(err, ErrNotService)
	})

	t.Run("detects include cycles", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		_, err = reg.Load("testdata/cycle_a.yml")
		r.ErrorIs(err, ErrCycle)
	})

	t.Run("rejects duplicate definitions", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		_, err = reg.Load("testdata/dup.yml")
		r.ErrorIs(err, ErrDuplicate)
	})

	t.Run("lists identifiers in name order", func(t *testing.T) {
		r := require.New(t)

		reg, err := New()
		r.NoError(err)

		f, err := reg.Load("testdata/base.yml")
		r.NoError(err)

		var names []string
		for _, id := range f.Identifiers() {
			names = append(names, id.Name)
		}

		r.Equal([]string{"Ident", "Idents", "Record", "Store"}, names)
	})
}

package idl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFieldType(t *testing.T) {
	t.Run("can parse base types", func(t *testing.T) {
		r := require.New(t)

		for _, name := range []string{"bool", "byte", "i8", "i16", "i32", "i64", "double", "string", "binary"} {
			ft, err := ParseFieldType(name)
			r.NoError(err)
			r.Equal(Base, ft.Kind)
			r.Equal(name, ft.Name)
		}
	})

	t.Run("can parse nested containers", func(t *testing.T) {
		r := require.New(t)

		ft, err := ParseFieldType("map< string , list<set<shared.Thing>> >")
		r.NoError(err)

		r.Equal(Map, ft.Kind)
		r.Equal(Base, ft.Key.Kind)
		r.Equal(List, ft.Elem.Kind)
		r.Equal(Set, ft.Elem.Elem.Kind)
		r.Equal(Ref, ft.Elem.Elem.Elem.Kind)
		r.Equal("shared.Thing", ft.Elem.Elem.Elem.Name)

		r.Equal("map<string,list<set<shared.Thing>>>", ft.String())
	})

	t.Run("splits include scopes", func(t *testing.T) {
		r := require.New(t)

		ft, err := ParseFieldType("shared.Thing")
		r.NoError(err)

		scope, name := ft.Scope()
		r.Equal("shared", scope)
		r.Equal("Thing", name)

		ft, err = ParseFieldType("Local")
		r.NoError(err)

		scope, name = ft.Scope()
		r.Equal("", scope)
		r.Equal("Local", name)
	})

	t.Run("rejects malformed expressions", func(t *testing.T) {
		r := require.New(t)

		for _, expr := range []string{"", "list<", "list<i32", "map<i32>", "list<i32>>", "1abc", "map<i32,,i32>"} {
			_, err := ParseFieldType(expr)
			r.ErrorIs(err, ErrBadType, expr)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("can load a yaml document", func(t *testing.T) {
		r := require.New(t)

		doc, err := Load("testdata/shapes.yml")
		r.NoError(err)

		r.Equal("shapes", doc.Name)
		r.Equal("shapes", doc.Namespace("go"))
		r.Len(doc.Structs, 3)

		r.Equal(KindStruct, doc.Structs[0].Kind)
		r.True(doc.Structs[2].IsException())

		r.Equal(List, doc.Typedefs[0].Type.Kind)

		shape := doc.Structs[1]
		r.Equal(Ref, shape.Fields[0].Type.Kind)
		r.Equal("GREEN", shape.Fields[1].Default)
		r.Equal(Optional, shape.Fields[2].Requiredness)

		area := doc.Services[0].Functions[0]
		r.False(area.IsVoid())
		r.Equal("double", area.ReturnType.Name)
		r.Len(area.Throws, 1)

		clr := doc.Services[0].Functions[1]
		r.True(clr.IsVoid())
		r.True(clr.Oneway)
	})

	t.Run("reads the same document from json and cbor", func(t *testing.T) {
		r := require.New(t)

		doc, err := Load("testdata/shapes.yml")
		r.NoError(err)

		for _, format := range []Format{JSON, CBOR} {
			data, err := Encode(format, doc)
			r.NoError(err)

			back, err := Decode("shapes."+string(format), data)
			r.NoError(err)

			r.Equal(doc.Name, back.Name)
			r.Equal(doc.Structs[1].Fields[2].Type, back.Structs[1].Fields[2].Type)
			r.Equal(doc.Services[0].Functions[0].ReturnType, back.Services[0].Functions[0].ReturnType)
		}
	})

	t.Run("derives the name from the file", func(t *testing.T) {
		r := require.New(t)

		doc, err := Decode("dir/things.thrift.yml", []byte("structs: []\n"))
		r.NoError(err)
		r.Equal("things", doc.Name)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		r := require.New(t)

		_, err := Decode("shapes.xml", nil)
		r.ErrorIs(err, ErrUnknownFormat)
	})

	t.Run("rejects void fields", func(t *testing.T) {
		r := require.New(t)

		_, err := Decode("bad.yml", []byte(`
structs:
  - name: Bad
    fields:
      - id: 1
        name: nothing
        type: list<void>
`))
		r.ErrorIs(err, ErrBadType)
	})

	t.Run("rejects oneway functions with results", func(t *testing.T) {
		r := require.New(t)

		_, err := Decode("bad.yml", []byte(`
services:
  - name: S
    functions:
      - name: f
        oneway: true
        returns: i32
`))
		r.ErrorIs(err, ErrInvalidDocument)
	})
}

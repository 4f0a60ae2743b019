package thriftgen

import (
	"math"

	j "github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/registry"
)

const (
	thriftPkg  = "github.com/apache/thrift/lib/go/thrift"
	runtimePkg = "miren.dev/thriftgen/pkg/thriftrt"
)

type valueKind int

const (
	scalarKind valueKind = iota
	binaryKind
	enumKind
	structKind
	listKind
	setKind
	mapKind
)

// typeInfo is a field type with typedefs followed and references bound.
// alias is set when the declared type named a typedef; the Go type then
// uses the alias while the codec works on what it resolves to.
type typeInfo struct {
	kind  valueKind
	base  string
	ident *registry.Identifier
	alias *registry.Identifier
	elem  *typeInfo
	key   *typeInfo
}

var wireTags = map[string]string{
	"bool":   "BOOL",
	"byte":   "BYTE",
	"i8":     "BYTE",
	"i16":    "I16",
	"i32":    "I32",
	"i64":    "I64",
	"double": "DOUBLE",
	"string": "STRING",
	"binary": "STRING",
}

var codecSuffix = map[string]string{
	"bool":   "Bool",
	"byte":   "Byte",
	"i8":     "Byte",
	"i16":    "I16",
	"i32":    "I32",
	"i64":    "I64",
	"double": "Double",
	"string": "String",
	"binary": "Binary",
}

func (g *Generator) typeInfo(f *registry.File, t idl.FieldType) (*typeInfo, error) {
	ti := &typeInfo{}

	if t.Kind == idl.Ref {
		id, err := f.Resolve(t.Name)
		if err != nil {
			return nil, err
		}

		if id.Kind == registry.Typedef {
			if err := g.checkImport(id); err != nil {
				return nil, err
			}
			ti.alias = id
		}
	}

	under, owner, err := f.Underlying(t)
	if err != nil {
		return nil, err
	}

	switch under.Kind {
	case idl.Void:
		return nil, errors.Wrap(ErrInvalidSchema, "void is not a value type")
	case idl.Base:
		ti.kind = scalarKind
		if under.Name == "binary" {
			ti.kind = binaryKind
		}
		ti.base = under.Name
	case idl.List, idl.Set:
		ti.kind = listKind
		if under.Kind == idl.Set {
			ti.kind = setKind
		}

		ti.elem, err = g.typeInfo(owner, *under.Elem)
		if err != nil {
			return nil, err
		}
	case idl.Map:
		ti.kind = mapKind

		ti.key, err = g.typeInfo(owner, *under.Key)
		if err != nil {
			return nil, err
		}

		switch ti.key.kind {
		case binaryKind, listKind, setKind, mapKind:
			return nil, errors.Wrapf(ErrInvalidSchema, "%s can not be a map key", under.Key)
		}

		ti.elem, err = g.typeInfo(owner, *under.Elem)
		if err != nil {
			return nil, err
		}
	case idl.Ref:
		id, err := owner.Resolve(under.Name)
		if err != nil {
			return nil, err
		}

		switch {
		case id.IsStruct():
			ti.kind = structKind
		case id.Kind == registry.Enum:
			ti.kind = enumKind
		default:
			return nil, errors.Wrapf(registry.ErrUnresolved, "%s is a %s, not a type", under.Name, id.Kind)
		}

		if err := g.checkImport(id); err != nil {
			return nil, err
		}

		ti.ident = id
	}

	return ti, nil
}

// mustType is typeInfo for code paths that run after validate.
func (g *Generator) mustType(f *registry.File, t idl.FieldType) *typeInfo {
	ti, err := g.typeInfo(f, t)
	if err != nil {
		panic("unvalidated type " + t.String() + ": " + err.Error())
	}
	return ti
}

func (g *Generator) checkImport(id *registry.Identifier) error {
	if id.File == g.file {
		return nil
	}

	_, err := g.importPath(id.File)
	return err
}

// qual refers to an identifier's Go name with suffix, package qualified
// when it lives in another document.
func (g *Generator) qual(id *registry.Identifier, suffix string) *j.Statement {
	return g.qualFunc(id, "", suffix)
}

// qualFunc is qual for generated names that also carry a prefix, such as
// the NewFooClient constructor.
func (g *Generator) qualFunc(id *registry.Identifier, prefix, suffix string) *j.Statement {
	return g.qualName(id.File, prefix+exported(id.Name)+suffix)
}

// qualName refers to name as declared in file. Imports are checked while
// the schema is read, so a missing one here is a bug.
func (g *Generator) qualName(file *registry.File, name string) *j.Statement {
	if file == g.file {
		return j.Id(name)
	}

	path, err := g.importPath(file)
	if err != nil {
		panic("missing import for " + file.Doc.Name)
	}

	return j.Qual(path, name)
}

func (g *Generator) goType(ti *typeInfo) *j.Statement {
	if ti.alias != nil {
		return g.qual(ti.alias, "")
	}

	return g.underlyingType(ti)
}

func (g *Generator) underlyingType(ti *typeInfo) *j.Statement {
	switch ti.kind {
	case scalarKind:
		switch ti.base {
		case "bool":
			return j.Bool()
		case "byte", "i8":
			return j.Int8()
		case "i16":
			return j.Int16()
		case "i32":
			return j.Int32()
		case "i64":
			return j.Int64()
		case "double":
			return j.Float64()
		default:
			return j.String()
		}
	case binaryKind:
		return j.Index().Byte()
	case enumKind:
		return g.qual(ti.ident, "")
	case structKind:
		return j.Op("*").Add(g.qual(ti.ident, ""))
	case listKind, setKind:
		return j.Index().Add(g.goType(ti.elem))
	case mapKind:
		return j.Map(g.goType(ti.key)).Add(g.goType(ti.elem))
	}

	panic("unknown value kind")
}

// pointerStored reports whether fields of this type are stored behind a
// pointer so that absence is a nil check.
func (ti *typeInfo) pointerStored() bool {
	return ti.kind == scalarKind || ti.kind == enumKind
}

func (g *Generator) storageType(ti *typeInfo) *j.Statement {
	if ti.pointerStored() {
		return j.Op("*").Add(g.goType(ti))
	}

	return g.goType(ti)
}

func (ti *typeInfo) wireTag() string {
	switch ti.kind {
	case scalarKind, binaryKind:
		return wireTags[ti.base]
	case enumKind:
		return "I32"
	case structKind:
		return "STRUCT"
	case listKind:
		return "LIST"
	case setKind:
		return "SET"
	case mapKind:
		return "MAP"
	}

	panic("unknown value kind")
}

func ttype(ti *typeInfo) *j.Statement {
	return j.Qual(thriftPkg, ti.wireTag())
}

func (ti *typeInfo) codecSuffix() string {
	if ti.kind == enumKind {
		return "I32"
	}

	return codecSuffix[ti.base]
}

func zeroValue(ti *typeInfo) *j.Statement {
	switch ti.kind {
	case scalarKind:
		switch ti.base {
		case "bool":
			return j.False()
		case "string":
			return j.Lit("")
		default:
			return j.Lit(0)
		}
	case enumKind:
		return j.Lit(0)
	}

	return j.Nil()
}

// defaultValue renders a schema default as an untyped constant, or an enum
// constant, suitable for ti.
func (g *Generator) defaultValue(ti *typeInfo, v any) (*j.Statement, error) {
	switch ti.kind {
	case enumKind:
		name, ok := v.(string)
		if !ok {
			n, ok := asInt(v)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidSchema, "enum default %v", v)
			}

			for _, ev := range ti.ident.Enum.Values {
				if int64(ev.Value) == n {
					return g.enumValue(ti.ident, ev.Name), nil
				}
			}

			return nil, errors.Wrapf(ErrInvalidSchema, "%d is not a value of %s", n, ti.ident.Name)
		}

		if scope, local, ok := cutLast(name); ok {
			if scope != ti.ident.Name {
				return nil, errors.Wrapf(ErrInvalidSchema, "default %s is not a value of %s", name, ti.ident.Name)
			}
			name = local
		}

		for _, ev := range ti.ident.Enum.Values {
			if ev.Name == name {
				return g.enumValue(ti.ident, ev.Name), nil
			}
		}

		return nil, errors.Wrapf(ErrInvalidSchema, "%s is not a value of %s", name, ti.ident.Name)
	case scalarKind:
		switch ti.base {
		case "bool":
			b, ok := v.(bool)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidSchema, "bool default %v", v)
			}
			return j.Lit(b), nil
		case "string":
			s, ok := v.(string)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidSchema, "string default %v", v)
			}
			return j.Lit(s), nil
		case "double":
			if f, ok := asFloat(v); ok {
				return j.Lit(f), nil
			}
			return nil, errors.Wrapf(ErrInvalidSchema, "double default %v", v)
		default:
			n, ok := asInt(v)
			if !ok || !fits(ti.base, n) {
				return nil, errors.Wrapf(ErrInvalidSchema, "%s default %v", ti.base, v)
			}
			return j.Lit(int(n)), nil
		}
	}

	return nil, errors.Wrapf(ErrInvalidSchema, "defaults are only supported for base types and enums")
}

func (g *Generator) enumValue(id *registry.Identifier, value string) *j.Statement {
	return g.qualName(id.File, enumConst(id.Name, value))
}

func cutLast(s string) (string, string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[:i], s[i+1:], true
		}
	}
	return "", s, false
}

// Decoders hand numbers back as int, int64, uint64 or float64 depending
// on the document format.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	}

	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int, int64, uint64:
		i, ok := asInt(n)
		return float64(i), ok
	}

	return 0, false
}

func fits(base string, n int64) bool {
	switch base {
	case "byte", "i8":
		return n >= math.MinInt8 && n <= math.MaxInt8
	case "i16":
		return n >= math.MinInt16 && n <= math.MaxInt16
	case "i32":
		return n >= math.MinInt32 && n <= math.MaxInt32
	case "i64":
		return true
	}

	return false
}

// Package idl models a parsed Thrift schema document. Documents are produced
// by an external parser and stored as YAML, JSON or CBOR; Load reads them
// back and compiles the type expressions they carry.
package idl

type Requiredness string

const (
	Default  Requiredness = ""
	Required Requiredness = "required"
	Optional Requiredness = "optional"
)

type StructKind string

const (
	KindStruct    StructKind = "struct"
	KindUnion     StructKind = "union"
	KindException StructKind = "exception"
)

type Document struct {
	Name       string            `yaml:"name" json:"name" cbor:"name"`
	Namespaces map[string]string `yaml:"namespaces,omitempty" json:"namespaces,omitempty" cbor:"namespaces,omitempty"`
	Includes   []*Include        `yaml:"includes,omitempty" json:"includes,omitempty" cbor:"includes,omitempty"`
	Typedefs   []*Typedef        `yaml:"typedefs,omitempty" json:"typedefs,omitempty" cbor:"typedefs,omitempty"`
	Enums      []*Enum           `yaml:"enums,omitempty" json:"enums,omitempty" cbor:"enums,omitempty"`
	Structs    []*Struct         `yaml:"structs,omitempty" json:"structs,omitempty" cbor:"structs,omitempty"`
	Services   []*Service        `yaml:"services,omitempty" json:"services,omitempty" cbor:"services,omitempty"`

	// Path is where the document was loaded from.
	Path string `yaml:"-" json:"-" cbor:"-"`
}

// Namespace returns the namespace declared for lang, or "".
func (d *Document) Namespace(lang string) string {
	return d.Namespaces[lang]
}

type Include struct {
	Name string `yaml:"name" json:"name" cbor:"name"`
	Path string `yaml:"path" json:"path" cbor:"path"`
}

type Typedef struct {
	Name     string `yaml:"name" json:"name" cbor:"name"`
	TypeExpr string `yaml:"type" json:"type" cbor:"type"`

	Type FieldType `yaml:"-" json:"-" cbor:"-"`
}

type Enum struct {
	Name   string       `yaml:"name" json:"name" cbor:"name"`
	Values []*EnumValue `yaml:"values" json:"values" cbor:"values"`
}

type EnumValue struct {
	Name  string `yaml:"name" json:"name" cbor:"name"`
	Value int32  `yaml:"value" json:"value" cbor:"value"`
}

// Struct covers structs, unions and exceptions.
type Struct struct {
	Name   string     `yaml:"name" json:"name" cbor:"name"`
	Kind   StructKind `yaml:"kind,omitempty" json:"kind,omitempty" cbor:"kind,omitempty"`
	Fields []*Field   `yaml:"fields" json:"fields" cbor:"fields"`
}

func (s *Struct) IsException() bool {
	return s.Kind == KindException
}

func (s *Struct) IsUnion() bool {
	return s.Kind == KindUnion
}

type Service struct {
	Name      string      `yaml:"name" json:"name" cbor:"name"`
	Extends   string      `yaml:"extends,omitempty" json:"extends,omitempty" cbor:"extends,omitempty"`
	Functions []*Function `yaml:"functions" json:"functions" cbor:"functions"`
}

type Function struct {
	Name    string   `yaml:"name" json:"name" cbor:"name"`
	Returns string   `yaml:"returns,omitempty" json:"returns,omitempty" cbor:"returns,omitempty"`
	Oneway  bool     `yaml:"oneway,omitempty" json:"oneway,omitempty" cbor:"oneway,omitempty"`
	Params  []*Field `yaml:"params,omitempty" json:"params,omitempty" cbor:"params,omitempty"`
	Throws  []*Field `yaml:"throws,omitempty" json:"throws,omitempty" cbor:"throws,omitempty"`

	ReturnType FieldType `yaml:"-" json:"-" cbor:"-"`
}

func (f *Function) IsVoid() bool {
	return f.ReturnType.Kind == Void
}

type Field struct {
	ID           int16        `yaml:"id" json:"id" cbor:"id"`
	Name         string       `yaml:"name" json:"name" cbor:"name"`
	TypeExpr     string       `yaml:"type" json:"type" cbor:"type"`
	Requiredness Requiredness `yaml:"requiredness,omitempty" json:"requiredness,omitempty" cbor:"requiredness,omitempty"`
	Default      any          `yaml:"default,omitempty" json:"default,omitempty" cbor:"default,omitempty"`

	Type FieldType `yaml:"-" json:"-" cbor:"-"`
}

func (f *Field) IsRequired() bool {
	return f.Requiredness == Required
}

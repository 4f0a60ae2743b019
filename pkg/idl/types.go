package idl

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type TypeKind int

const (
	Void TypeKind = iota
	Base
	List
	Set
	Map
	Ref
)

var baseTypes = map[string]bool{
	"bool":   true,
	"byte":   true,
	"i8":     true,
	"i16":    true,
	"i32":    true,
	"i64":    true,
	"double": true,
	"string": true,
	"binary": true,
}

// FieldType is the compiled form of a type expression such as
// "map<string, list<shared.Thing>>".
type FieldType struct {
	Kind TypeKind

	// Name is the primitive name for Base and the referenced name for Ref.
	Name string

	// Elem is the element type of a list or set and the value type of a map.
	Elem *FieldType
	Key  *FieldType
}

var ErrBadType = errors.New("invalid type expression")

func (t FieldType) String() string {
	switch t.Kind {
	case Void:
		return "void"
	case Base, Ref:
		return t.Name
	case List:
		return "list<" + t.Elem.String() + ">"
	case Set:
		return "set<" + t.Elem.String() + ">"
	case Map:
		return "map<" + t.Key.String() + "," + t.Elem.String() + ">"
	}

	return "?"
}

// Scope splits a Ref name into its include prefix and local name. The
// prefix is empty for names local to the document.
func (t FieldType) Scope() (string, string) {
	if prefix, name, ok := strings.Cut(t.Name, "."); ok {
		return prefix, name
	}

	return "", t.Name
}

// Walk calls fn for t and every type nested inside it.
func (t FieldType) Walk(fn func(FieldType)) {
	fn(t)

	if t.Key != nil {
		t.Key.Walk(fn)
	}

	if t.Elem != nil {
		t.Elem.Walk(fn)
	}
}

func ParseFieldType(s string) (FieldType, error) {
	p := &typeParser{src: s}

	t, err := p.parse()
	if err != nil {
		return FieldType{}, err
	}

	if tok := p.next(); tok != "" {
		return FieldType{}, errors.Wrapf(ErrBadType, "unexpected %q after type in %q", tok, s)
	}

	return t, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) next() string {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}

	if p.pos >= len(p.src) {
		return ""
	}

	switch c := p.src[p.pos]; c {
	case '<', '>', ',':
		p.pos++
		return string(c)
	}

	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if !(c == '_' || c == '.' || unicode.IsLetter(c) || unicode.IsDigit(c)) {
			break
		}
		p.pos++
	}

	if start == p.pos {
		p.pos++
		return p.src[start:p.pos]
	}

	return p.src[start:p.pos]
}

func (p *typeParser) expect(want string) error {
	if tok := p.next(); tok != want {
		return errors.Wrapf(ErrBadType, "expected %q, got %q in %q", want, tok, p.src)
	}

	return nil
}

func (p *typeParser) parse() (FieldType, error) {
	tok := p.next()

	switch tok {
	case "":
		return FieldType{}, errors.Wrapf(ErrBadType, "missing type in %q", p.src)
	case "void":
		return FieldType{Kind: Void}, nil
	case "list", "set":
		if err := p.expect("<"); err != nil {
			return FieldType{}, err
		}

		elem, err := p.parse()
		if err != nil {
			return FieldType{}, err
		}

		if err := p.expect(">"); err != nil {
			return FieldType{}, err
		}

		kind := List
		if tok == "set" {
			kind = Set
		}

		return FieldType{Kind: kind, Elem: &elem}, nil
	case "map":
		if err := p.expect("<"); err != nil {
			return FieldType{}, err
		}

		key, err := p.parse()
		if err != nil {
			return FieldType{}, err
		}

		if err := p.expect(","); err != nil {
			return FieldType{}, err
		}

		val, err := p.parse()
		if err != nil {
			return FieldType{}, err
		}

		if err := p.expect(">"); err != nil {
			return FieldType{}, err
		}

		return FieldType{Kind: Map, Key: &key, Elem: &val}, nil
	}

	if baseTypes[tok] {
		return FieldType{Kind: Base, Name: tok}, nil
	}

	c := rune(tok[0])
	if !(c == '_' || unicode.IsLetter(c)) {
		return FieldType{}, errors.Wrapf(ErrBadType, "unexpected %q in %q", tok, p.src)
	}

	return FieldType{Kind: Ref, Name: tok}, nil
}

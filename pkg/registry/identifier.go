package registry

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/multierror"
)

var (
	ErrUnresolved = errors.New("unresolved reference")
	ErrNotService = errors.New("extends target is not a service")
	ErrDuplicate  = errors.New("duplicate definition")
	ErrCycle      = errors.New("reference cycle")
)

type Kind int

const (
	Struct Kind = iota + 1
	Union
	Exception
	Enum
	Typedef
	Service
)

func (k Kind) String() string {
	switch k {
	case Struct:
		return "struct"
	case Union:
		return "union"
	case Exception:
		return "exception"
	case Enum:
		return "enum"
	case Typedef:
		return "typedef"
	case Service:
		return "service"
	}

	return "unknown"
}

// Identifier is one entry of the Identifier Map: a named definition and the
// file that declares it. Exactly one of the definition pointers is set.
type Identifier struct {
	Name string
	Kind Kind
	File *File

	Struct  *idl.Struct
	Enum    *idl.Enum
	Typedef *idl.Typedef
	Service *idl.Service
}

func (i *Identifier) QualifiedName() string {
	return i.File.Doc.Name + "." + i.Name
}

// IsStruct reports whether the identifier is encoded as a thrift struct.
func (i *Identifier) IsStruct() bool {
	switch i.Kind {
	case Struct, Union, Exception:
		return true
	}

	return false
}

// File is the resolved form of one document: its own definitions plus the
// files it includes, keyed by include name.
type File struct {
	Path     string
	Doc      *idl.Document
	Includes map[string]*File

	idents map[string]*Identifier
}

func newFile(doc *idl.Document) (*File, error) {
	f := &File{
		Path:     doc.Path,
		Doc:      doc,
		Includes: make(map[string]*File),
		idents:   make(map[string]*Identifier),
	}

	add := func(id *Identifier) error {
		if prev, ok := f.idents[id.Name]; ok {
			return errors.Wrapf(ErrDuplicate, "%s %s already declared as %s", id.Kind, id.Name, prev.Kind)
		}

		id.File = f
		f.idents[id.Name] = id
		return nil
	}

	var err error

	for _, td := range doc.Typedefs {
		err = multierror.Append(err, add(&Identifier{Name: td.Name, Kind: Typedef, Typedef: td}))
	}

	for _, en := range doc.Enums {
		err = multierror.Append(err, add(&Identifier{Name: en.Name, Kind: Enum, Enum: en}))
	}

	for _, st := range doc.Structs {
		kind := Struct
		switch st.Kind {
		case idl.KindUnion:
			kind = Union
		case idl.KindException:
			kind = Exception
		}

		err = multierror.Append(err, add(&Identifier{Name: st.Name, Kind: kind, Struct: st}))
	}

	for _, svc := range doc.Services {
		err = multierror.Append(err, add(&Identifier{Name: svc.Name, Kind: Service, Service: svc}))
	}

	if err != nil {
		return nil, err
	}

	return f, nil
}

// Resolve looks up a local name or an include-qualified name.
func (f *File) Resolve(name string) (*Identifier, error) {
	scope, local, ok := strings.Cut(name, ".")
	if !ok {
		id, ok := f.idents[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnresolved, "%s in %s", name, f.Doc.Name)
		}

		return id, nil
	}

	inc, ok := f.Includes[scope]
	if !ok {
		return nil, errors.Wrapf(ErrUnresolved, "%s: %s is not included by %s", name, scope, f.Doc.Name)
	}

	id, ok := inc.idents[local]
	if !ok {
		return nil, errors.Wrapf(ErrUnresolved, "%s in %s", name, f.Doc.Name)
	}

	return id, nil
}

// ResolveService resolves name and requires it to be a service.
func (f *File) ResolveService(name string) (*Identifier, error) {
	id, err := f.Resolve(name)
	if err != nil {
		return nil, err
	}

	if id.Kind != Service {
		return nil, errors.Wrapf(ErrNotService, "%s is a %s", name, id.Kind)
	}

	return id, nil
}

// Underlying follows typedefs until t is no longer a typedef reference. The
// returned file is the one the result's names are relative to.
func (f *File) Underlying(t idl.FieldType) (idl.FieldType, *File, error) {
	cur := f
	seen := map[*idl.Typedef]bool{}

	for t.Kind == idl.Ref {
		id, err := cur.Resolve(t.Name)
		if err != nil {
			return idl.FieldType{}, nil, err
		}

		if id.Kind != Typedef {
			return t, cur, nil
		}

		if seen[id.Typedef] {
			return idl.FieldType{}, nil, errors.Wrapf(ErrCycle, "typedef %s", id.QualifiedName())
		}
		seen[id.Typedef] = true

		t = id.Typedef.Type
		cur = id.File
	}

	return t, cur, nil
}

// Ancestors returns the services svc extends, nearest first.
func (f *File) Ancestors(svc *idl.Service) ([]*Identifier, error) {
	var chain []*Identifier

	cur := f
	seen := map[*idl.Service]bool{svc: true}

	for svc.Extends != "" {
		id, err := cur.ResolveService(svc.Extends)
		if err != nil {
			return nil, err
		}

		if seen[id.Service] {
			return nil, errors.Wrapf(ErrCycle, "service %s extends itself", id.QualifiedName())
		}
		seen[id.Service] = true

		chain = append(chain, id)

		svc = id.Service
		cur = id.File
	}

	return chain, nil
}

// Identifiers returns the local definitions ordered by name.
func (f *File) Identifiers() []*Identifier {
	ids := make([]*Identifier, 0, len(f.idents))
	for _, id := range f.idents {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b *Identifier) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return ids
}

// Check resolves every reference in the document and reports all failures
// at once.
func (f *File) Check() error {
	var err error

	checkType := func(where string, t idl.FieldType) {
		t.Walk(func(ft idl.FieldType) {
			if ft.Kind != idl.Ref {
				return
			}

			id, rerr := f.Resolve(ft.Name)
			if rerr != nil {
				err = multierror.Append(err, errors.WithMessage(rerr, where))
				return
			}

			if id.Kind == Service {
				err = multierror.Append(err, errors.Wrapf(ErrUnresolved, "%s: %s is a service, not a type", where, ft.Name))
				return
			}

			if id.Kind == Typedef {
				if _, _, uerr := f.Underlying(ft); uerr != nil {
					err = multierror.Append(err, errors.WithMessage(uerr, where))
				}
			}
		})
	}

	for _, td := range f.Doc.Typedefs {
		checkType("typedef "+td.Name, td.Type)
	}

	for _, st := range f.Doc.Structs {
		for _, fld := range st.Fields {
			checkType(st.Name+"."+fld.Name, fld.Type)
		}
	}

	for _, svc := range f.Doc.Services {
		if _, aerr := f.Ancestors(svc); aerr != nil {
			err = multierror.Append(err, errors.WithMessagef(aerr, "service %s", svc.Name))
		}

		for _, fn := range svc.Functions {
			where := svc.Name + "." + fn.Name
			checkType(where, fn.ReturnType)

			for _, p := range fn.Params {
				checkType(where+"("+p.Name+")", p.Type)
			}

			for _, x := range fn.Throws {
				checkType(where+" throws "+x.Name, x.Type)
			}
		}
	}

	return err
}

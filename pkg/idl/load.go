package idl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat   = errors.New("unknown document format")
	ErrInvalidDocument = errors.New("invalid document")
)

type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	CBOR Format = "cbor"
)

// FormatOf picks the document format from a file name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".cbor":
		return CBOR, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%s", name)
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(path, data)
}

// Decode parses data in the format implied by name and compiles the result.
func Decode(name string, data []byte) (*Document, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}

	var doc Document

	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case JSON:
		err = json.Unmarshal(data, &doc)
	case CBOR:
		err = cbor.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", name)
	}

	doc.Path = name

	if doc.Name == "" {
		base := filepath.Base(name)
		if idx := strings.IndexByte(base, '.'); idx > 0 {
			base = base[:idx]
		}
		doc.Name = base
	}

	if err := doc.Compile(); err != nil {
		return nil, errors.Wrapf(err, "compiling %s", name)
	}

	return &doc, nil
}

func Encode(format Format, doc *Document) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(doc)
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	case CBOR:
		return cbor.Marshal(doc)
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "%s", format)
}

// Compile parses every type expression in the document.
func (d *Document) Compile() error {
	for _, td := range d.Typedefs {
		t, err := compileValueType(td.TypeExpr)
		if err != nil {
			return errors.Wrapf(err, "typedef %s", td.Name)
		}

		td.Type = t
	}

	for _, st := range d.Structs {
		if st.Kind == "" {
			st.Kind = KindStruct
		}

		switch st.Kind {
		case KindStruct, KindUnion, KindException:
		default:
			return errors.Wrapf(ErrInvalidDocument, "%s has unknown kind %q", st.Name, st.Kind)
		}

		if err := compileFields(st.Name, st.Fields); err != nil {
			return err
		}
	}

	for _, svc := range d.Services {
		for _, fn := range svc.Functions {
			ret := fn.Returns
			if ret == "" {
				ret = "void"
			}

			t, err := ParseFieldType(ret)
			if err != nil {
				return errors.Wrapf(err, "%s.%s return type", svc.Name, fn.Name)
			}

			fn.ReturnType = t

			if fn.Oneway && !fn.IsVoid() {
				return errors.Wrapf(ErrInvalidDocument, "oneway function %s.%s must return void", svc.Name, fn.Name)
			}

			if err := compileFields(svc.Name+"."+fn.Name, fn.Params); err != nil {
				return err
			}

			if err := compileFields(svc.Name+"."+fn.Name, fn.Throws); err != nil {
				return err
			}
		}
	}

	return nil
}

func compileFields(owner string, fields []*Field) error {
	for _, f := range fields {
		t, err := compileValueType(f.TypeExpr)
		if err != nil {
			return errors.Wrapf(err, "%s.%s", owner, f.Name)
		}

		f.Type = t

		switch f.Requiredness {
		case Default, Required, Optional:
		case "default":
			f.Requiredness = Default
		default:
			return errors.Wrapf(ErrInvalidDocument, "%s.%s has unknown requiredness %q", owner, f.Name, f.Requiredness)
		}
	}

	return nil
}

func compileValueType(expr string) (FieldType, error) {
	t, err := ParseFieldType(expr)
	if err != nil {
		return FieldType{}, err
	}

	var void bool
	t.Walk(func(ft FieldType) {
		if ft.Kind == Void {
			void = true
		}
	})

	if void {
		return FieldType{}, errors.Wrapf(ErrBadType, "void is only valid as a return type: %q", expr)
	}

	return t, nil
}

package thriftgen

import (
	"fmt"

	j "github.com/dave/jennifer/jen"
	"miren.dev/thriftgen/pkg/idl"
)

type structField struct {
	*idl.Field
	goName string
	ti     *typeInfo
}

func (g *Generator) structFields(st *idl.Struct) []*structField {
	fields := make([]*structField, 0, len(st.Fields))

	for _, fld := range st.Fields {
		fields = append(fields, &structField{
			Field:  fld,
			goName: fieldName(fld.Name),
			ti:     g.mustType(g.file, fld.Type),
		})
	}

	return fields
}

func thriftTag(fld *idl.Field) string {
	tag := fmt.Sprintf("%s,%d", fld.Name, fld.ID)

	switch fld.Requiredness {
	case idl.Required:
		tag += ",required"
	case idl.Optional:
		tag += ",optional"
	}

	return tag
}

func ctxParam() *j.Statement {
	return j.Id("ctx").Qual("context", "Context")
}

func errNotNil() *j.Statement {
	return j.Err().Op("!=").Nil()
}

func returnErr() *j.Statement {
	return j.Return(j.Err())
}

// checked renders `if err := call; err != nil { return <ret> }`.
func checked(call *j.Statement, ret ...j.Code) *j.Statement {
	if len(ret) == 0 {
		ret = []j.Code{j.Err()}
	}

	return j.If(j.Err().Op(":=").Add(call), errNotNil()).Block(j.Return(ret...))
}

func (g *Generator) generateStruct(f *j.File, st *idl.Struct) {
	name := exported(st.Name)
	fields := g.structFields(st)

	f.Type().Id(name).StructFunc(func(gr *j.Group) {
		for _, sf := range fields {
			gr.Id(sf.goName).Add(g.storageType(sf.ti)).Tag(map[string]string{
				"thrift": thriftTag(sf.Field),
				"json":   sf.Name + ",omitempty",
			})
		}
	})

	f.Line()

	g.generateConstructor(f, name, fields)
	g.generateAccessors(f, name, fields)
	g.generateValidate(f, name, st, fields)
	g.generateWriter(f, name, st, fields)
	g.generateReader(f, name, fields)

	g.generateStringer(f, name, fields)

	if st.IsException() {
		f.Line()
		f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Error").Params().String().Block(
			j.Return(j.Id("p").Dot("String").Call()),
		)
	}

	f.Line()
}

// generateStringer emits String listing only the set fields, with
// pointer-stored values dereferenced.
func (g *Generator) generateStringer(f *j.File, name string, fields []*structField) {
	f.Func().Params(j.Id("p").Op("*").Id(name)).Id("String").Params().String().BlockFunc(func(b *j.Group) {
		b.If(j.Id("p").Op("==").Nil()).Block(j.Return(j.Lit("<nil>")))
		b.Var().Id("parts").Index().String()

		for _, sf := range fields {
			val := j.Id("p").Dot(sf.goName)
			if sf.ti.pointerStored() {
				val = j.Op("*").Id("p").Dot(sf.goName)
			}

			b.If(j.Id("p").Dot(sf.goName).Op("!=").Nil()).Block(
				j.Id("parts").Op("=").Append(j.Id("parts"), j.Qual("fmt", "Sprintf").Call(j.Lit(sf.goName+":%v"), val)),
			)
		}

		b.Return(j.Lit(name + "(").Op("+").Qual("strings", "Join").Call(j.Id("parts"), j.Lit(" ")).Op("+").Lit(")"))
	})
}

// generateConstructor emits New<Name>. A nil init yields a value with
// defaults; a non-nil one is copied, defaulted and validated.
func (g *Generator) generateConstructor(f *j.File, name string, fields []*structField) {
	f.Commentf("New%s copies init, applies field defaults and checks required fields.", name)
	f.Commentf("With a nil init it returns a %s holding only the defaults.", name)
	f.Func().Id("New"+name).Params(j.Id("init").Op("*").Id(name)).Params(j.Op("*").Id(name), j.Error()).BlockFunc(func(b *j.Group) {
		b.Id("p").Op(":=").Op("&").Id(name).Values()
		b.If(j.Id("init").Op("!=").Nil()).Block(
			j.Op("*").Id("p").Op("=").Op("*").Id("init"),
		)

		for _, sf := range fields {
			if sf.Default == nil {
				continue
			}

			def, _ := g.defaultValue(sf.ti, sf.Default)

			b.If(j.Id("p").Dot(sf.goName).Op("==").Nil()).Block(
				j.Id("p").Dot(sf.goName).Op("=").Qual(runtimePkg, "Ptr").Types(g.goType(sf.ti)).Call(def),
			)
		}

		b.If(j.Id("init").Op("!=").Nil()).Block(
			checked(j.Id("p").Dot("Validate").Call(), j.Nil(), j.Err()),
		)

		b.Return(j.Id("p"), j.Nil())
	})

	f.Line()
}

func (g *Generator) generateAccessors(f *j.File, name string, fields []*structField) {
	for _, sf := range fields {
		f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Has"+sf.goName).Params().Bool().Block(
			j.Return(j.Id("p").Op("!=").Nil().Op("&&").Id("p").Dot(sf.goName).Op("!=").Nil()),
		)

		f.Line()

		if sf.ti.pointerStored() {
			fallback := zeroValue(sf.ti)
			if sf.Default != nil {
				fallback, _ = g.defaultValue(sf.ti, sf.Default)
			}

			f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Get"+sf.goName).Params().Add(g.goType(sf.ti)).Block(
				j.If(j.Id("p").Op("==").Nil().Op("||").Id("p").Dot(sf.goName).Op("==").Nil()).Block(
					j.Return(fallback),
				),
				j.Return(j.Op("*").Id("p").Dot(sf.goName)),
			)
		} else {
			f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Get"+sf.goName).Params().Add(g.goType(sf.ti)).Block(
				j.If(j.Id("p").Op("==").Nil()).Block(j.Return(j.Nil())),
				j.Return(j.Id("p").Dot(sf.goName)),
			)
		}

		f.Line()
	}
}

func (g *Generator) generateValidate(f *j.File, name string, st *idl.Struct, fields []*structField) {
	if st.IsUnion() {
		f.Func().Params(j.Id("p").Op("*").Id(name)).Id("countSetFields").Params().Int().BlockFunc(func(b *j.Group) {
			b.Id("n").Op(":=").Lit(0)
			for _, sf := range fields {
				b.If(j.Id("p").Dot(sf.goName).Op("!=").Nil()).Block(j.Id("n").Op("++"))
			}
			b.Return(j.Id("n"))
		})

		f.Line()
	}

	f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Validate").Params().Error().BlockFunc(func(b *j.Group) {
		for _, sf := range fields {
			if !sf.IsRequired() {
				continue
			}

			b.If(j.Id("p").Dot(sf.goName).Op("==").Nil()).Block(
				j.Return(j.Op("&").Qual(runtimePkg, "RequiredFieldError").Values(j.Dict{
					j.Id("Struct"): j.Lit(st.Name),
					j.Id("Field"):  j.Lit(sf.Name),
				})),
			)
		}

		if st.IsUnion() {
			b.If(j.Id("n").Op(":=").Id("p").Dot("countSetFields").Call(), j.Id("n").Op("!=").Lit(1)).Block(
				j.Return(j.Op("&").Qual(runtimePkg, "UnionFieldCountError").Values(j.Dict{
					j.Id("Union"): j.Lit(st.Name),
					j.Id("Set"):   j.Id("n"),
				})),
			)
		}

		b.Return(j.Nil())
	})

	f.Line()
}

func (g *Generator) generateWriter(f *j.File, name string, st *idl.Struct, fields []*structField) {
	f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Write").Params(
		ctxParam(),
		j.Id("oprot").Qual(thriftPkg, "TProtocol"),
	).Error().BlockFunc(func(b *j.Group) {
		if st.IsUnion() {
			b.If(j.Id("n").Op(":=").Id("p").Dot("countSetFields").Call(), j.Id("n").Op("!=").Lit(1)).Block(
				j.Return(j.Op("&").Qual(runtimePkg, "UnionFieldCountError").Values(j.Dict{
					j.Id("Union"): j.Lit(st.Name),
					j.Id("Set"):   j.Id("n"),
				})),
			)
		}

		b.Add(checked(j.Id("oprot").Dot("WriteStructBegin").Call(j.Id("ctx"), j.Lit(st.Name))))

		for _, sf := range fields {
			b.If(j.Id("p").Dot(sf.goName).Op("!=").Nil()).BlockFunc(func(wb *j.Group) {
				wb.Add(checked(j.Id("oprot").Dot("WriteFieldBegin").Call(
					j.Id("ctx"), j.Lit(sf.Name), ttype(sf.ti), j.Lit(int(sf.ID)),
				)))

				val := j.Id("p").Dot(sf.goName)
				if sf.ti.pointerStored() {
					val = j.Op("*").Id("p").Dot(sf.goName)
				}

				g.writeValue(wb, sf.ti, val, 0)

				wb.Add(checked(j.Id("oprot").Dot("WriteFieldEnd").Call(j.Id("ctx"))))
			})
		}

		b.Add(checked(j.Id("oprot").Dot("WriteFieldStop").Call(j.Id("ctx"))))
		b.Return(j.Id("oprot").Dot("WriteStructEnd").Call(j.Id("ctx")))
	})

	f.Line()
}

// writeValue emits the statements writing val, a value of type ti.
func (g *Generator) writeValue(b *j.Group, ti *typeInfo, val *j.Statement, depth int) {
	switch ti.kind {
	case scalarKind, binaryKind:
		b.Add(checked(j.Id("oprot").Dot("Write"+ti.codecSuffix()).Call(j.Id("ctx"), val)))
	case enumKind:
		b.Add(checked(j.Id("oprot").Dot("WriteI32").Call(j.Id("ctx"), j.Int32().Call(val))))
	case structKind:
		b.Add(checked(val.Clone().Dot("Write").Call(j.Id("ctx"), j.Id("oprot"))))
	case listKind, setKind:
		container := "List"
		if ti.kind == setKind {
			container = "Set"
		}

		elem := fmt.Sprintf("v%d", depth)

		b.Add(checked(j.Id("oprot").Dot("Write"+container+"Begin").Call(j.Id("ctx"), ttype(ti.elem), j.Len(val.Clone()))))
		b.For(j.List(j.Id("_"), j.Id(elem)).Op(":=").Range().Add(val.Clone())).BlockFunc(func(lb *j.Group) {
			g.writeValue(lb, ti.elem, j.Id(elem), depth+1)
		})
		b.Add(checked(j.Id("oprot").Dot("Write" + container + "End").Call(j.Id("ctx"))))
	case mapKind:
		key := fmt.Sprintf("k%d", depth)
		elem := fmt.Sprintf("v%d", depth)

		b.Add(checked(j.Id("oprot").Dot("WriteMapBegin").Call(j.Id("ctx"), ttype(ti.key), ttype(ti.elem), j.Len(val.Clone()))))
		b.For(j.List(j.Id(key), j.Id(elem)).Op(":=").Range().Add(val.Clone())).BlockFunc(func(lb *j.Group) {
			g.writeValue(lb, ti.key, j.Id(key), depth+1)
			g.writeValue(lb, ti.elem, j.Id(elem), depth+1)
		})
		b.Add(checked(j.Id("oprot").Dot("WriteMapEnd").Call(j.Id("ctx"))))
	}
}

// generateReader emits Read. A field is only decoded when both its id and
// its wire tag match; everything else is skipped.
func (g *Generator) generateReader(f *j.File, name string, fields []*structField) {
	f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Read").Params(
		ctxParam(),
		j.Id("iprot").Qual(thriftPkg, "TProtocol"),
	).Error().BlockFunc(func(b *j.Group) {
		b.If(j.List(j.Id("_"), j.Err()).Op(":=").Id("iprot").Dot("ReadStructBegin").Call(j.Id("ctx")), errNotNil()).Block(returnErr())

		b.For().BlockFunc(func(lb *j.Group) {
			lb.List(j.Id("_"), j.Id("fieldTypeID"), j.Id("fieldID"), j.Err()).Op(":=").Id("iprot").Dot("ReadFieldBegin").Call(j.Id("ctx"))
			lb.If(errNotNil()).Block(returnErr())

			lb.If(j.Id("fieldTypeID").Op("==").Qual(thriftPkg, "STOP")).Block(j.Break())

			lb.Switch(j.Id("fieldID")).BlockFunc(func(sb *j.Group) {
				for _, sf := range fields {
					sb.Case(j.Lit(int(sf.ID))).Block(
						j.If(j.Id("fieldTypeID").Op("==").Add(ttype(sf.ti))).BlockFunc(func(rb *j.Group) {
							g.readValue(rb, sf.ti, "v", 0)

							if sf.ti.pointerStored() {
								rb.Id("p").Dot(sf.goName).Op("=").Op("&").Id("v")
							} else {
								rb.Id("p").Dot(sf.goName).Op("=").Id("v")
							}
						}).Else().Add(checked(j.Id("iprot").Dot("Skip").Call(j.Id("ctx"), j.Id("fieldTypeID")))),
					)
				}

				sb.Default().Block(
					checked(j.Id("iprot").Dot("Skip").Call(j.Id("ctx"), j.Id("fieldTypeID"))),
				)
			})

			lb.Add(checked(j.Id("iprot").Dot("ReadFieldEnd").Call(j.Id("ctx"))))
		})

		b.Return(j.Id("iprot").Dot("ReadStructEnd").Call(j.Id("ctx")))
	})

	f.Line()
}

// readValue emits statements that declare target and decode a value of
// type ti into it. depth keeps the names of nested containers apart.
func (g *Generator) readValue(b *j.Group, ti *typeInfo, target string, depth int) {
	switch ti.kind {
	case scalarKind, binaryKind:
		b.List(j.Id(target), j.Err()).Op(":=").Id("iprot").Dot("Read" + ti.codecSuffix()).Call(j.Id("ctx"))
		b.If(errNotNil()).Block(returnErr())
	case enumKind:
		raw := target + "Raw"
		b.List(j.Id(raw), j.Err()).Op(":=").Id("iprot").Dot("ReadI32").Call(j.Id("ctx"))
		b.If(errNotNil()).Block(returnErr())
		b.Id(target).Op(":=").Add(g.goType(ti)).Call(j.Id(raw))
	case structKind:
		b.Id(target).Op(":=").Op("&").Add(g.qual(ti.ident, "")).Values()
		b.Add(checked(j.Id(target).Dot("Read").Call(j.Id("ctx"), j.Id("iprot"))))
	case listKind, setKind:
		container := "List"
		if ti.kind == setKind {
			container = "Set"
		}

		size := fmt.Sprintf("size%d", depth)
		idx := fmt.Sprintf("i%d", depth)
		elem := fmt.Sprintf("elem%d", depth)

		b.List(j.Id("_"), j.Id(size), j.Err()).Op(":=").Id("iprot").Dot("Read" + container + "Begin").Call(j.Id("ctx"))
		b.If(errNotNil()).Block(returnErr())

		b.Id(target).Op(":=").Make(g.goType(ti), j.Lit(0), j.Id(size))
		b.For(j.Id(idx).Op(":=").Lit(0), j.Id(idx).Op("<").Id(size), j.Id(idx).Op("++")).BlockFunc(func(lb *j.Group) {
			g.readValue(lb, ti.elem, elem, depth+1)
			lb.Id(target).Op("=").Append(j.Id(target), j.Id(elem))
		})

		b.Add(checked(j.Id("iprot").Dot("Read" + container + "End").Call(j.Id("ctx"))))
	case mapKind:
		size := fmt.Sprintf("size%d", depth)
		idx := fmt.Sprintf("i%d", depth)
		key := fmt.Sprintf("key%d", depth)
		elem := fmt.Sprintf("val%d", depth)

		b.List(j.Id("_"), j.Id("_"), j.Id(size), j.Err()).Op(":=").Id("iprot").Dot("ReadMapBegin").Call(j.Id("ctx"))
		b.If(errNotNil()).Block(returnErr())

		b.Id(target).Op(":=").Make(g.goType(ti), j.Id(size))
		b.For(j.Id(idx).Op(":=").Lit(0), j.Id(idx).Op("<").Id(size), j.Id(idx).Op("++")).BlockFunc(func(lb *j.Group) {
			g.readValue(lb, ti.key, key, depth+1)
			g.readValue(lb, ti.elem, elem, depth+1)
			lb.Id(target).Index(j.Id(key)).Op("=").Id(elem)
		})

		b.Add(checked(j.Id("iprot").Dot("ReadMapEnd").Call(j.Id("ctx"))))
	}
}

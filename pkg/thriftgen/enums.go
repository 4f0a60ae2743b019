package thriftgen

import (
	j "github.com/dave/jennifer/jen"
)

func (g *Generator) generateTypedefs(f *j.File) {
	for _, td := range g.file.Doc.Typedefs {
		ti := g.mustType(g.file, td.Type)

		f.Type().Id(exported(td.Name)).Op("=").Add(g.goType(ti))
		f.Line()
	}
}

func (g *Generator) generateEnums(f *j.File) {
	for _, en := range g.file.Doc.Enums {
		name := exported(en.Name)

		f.Type().Id(name).Int32()
		f.Line()

		f.Const().DefsFunc(func(gr *j.Group) {
			for _, v := range en.Values {
				gr.Id(enumConst(en.Name, v.Name)).Id(name).Op("=").Lit(int(v.Value))
			}
		})
		f.Line()

		f.Func().Params(j.Id("p").Id(name)).Id("String").Params().String().Block(
			j.Switch(j.Id("p")).BlockFunc(func(sb *j.Group) {
				seen := map[int32]bool{}
				for _, v := range en.Values {
					if seen[v.Value] {
						continue
					}
					seen[v.Value] = true

					sb.Case(j.Id(enumConst(en.Name, v.Name))).Block(j.Return(j.Lit(v.Name)))
				}
			}),
			j.Return(j.Lit("<UNSET>")),
		)
		f.Line()

		f.Func().Id(name+"FromString").Params(j.Id("s").String()).Params(j.Id(name), j.Error()).Block(
			j.Switch(j.Id("s")).BlockFunc(func(sb *j.Group) {
				for _, v := range en.Values {
					sb.Case(j.Lit(v.Name)).Block(j.Return(j.Id(enumConst(en.Name, v.Name)), j.Nil()))
				}
			}),
			j.Return(j.Id(name).Call(j.Lit(0)), j.Qual("fmt", "Errorf").Call(j.Lit("not a valid "+en.Name+" string: %q"), j.Id("s"))),
		)
		f.Line()
	}
}

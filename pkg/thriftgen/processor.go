package thriftgen

import (
	j "github.com/dave/jennifer/jen"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/registry"
)

func protocolParams() *j.Statement {
	return j.Params(
		ctxParam(),
		j.Id("iprot"),
		j.Id("oprot").Qual(thriftPkg, "TProtocol"),
	)
}

// generateProcessor emits <Service>Processor, which reads one call from a
// protocol, dispatches it to a handler and writes the reply. Functions
// inherited from ancestors are dispatched through the embedded base
// processor.
func (g *Generator) generateProcessor(f *j.File, svc *idl.Service, base *registry.Identifier, ancestors []*registry.Identifier) {
	name := exported(svc.Name) + "Processor"
	handler := exported(svc.Name) + "Handler"

	f.Type().Id(name).StructFunc(func(gr *j.Group) {
		if base != nil {
			gr.Op("*").Add(g.qual(base, "Processor"))
		}
		gr.Id("handler").Id(handler)
	})

	f.Line()

	f.Func().Id("New"+name).Params(j.Id("handler").Id(handler)).Op("*").Id(name).Block(
		j.Return(j.Op("&").Id(name).Values(j.DictFunc(func(d j.Dict) {
			if base != nil {
				d[j.Id(exported(base.Name)+"Processor")] = g.qualFunc(base, "New", "Processor").Call(j.Id("handler"))
			}
			d[j.Id("handler")] = j.Id("handler")
		}))),
	)

	f.Line()

	fns := g.functions(svc)

	seen := map[string]bool{}
	var dispatch []j.Code

	addCase := func(fn *idl.Function) {
		if seen[fn.Name] {
			return
		}
		seen[fn.Name] = true

		dispatch = append(dispatch, j.Case(j.Lit(fn.Name)).Block(
			j.Return(j.Id("p").Dot("Process"+methodName(fn.Name)).Call(
				j.Id("ctx"), j.Id("seqID"), j.Id("iprot"), j.Id("oprot"),
			)),
		))
	}

	for _, fn := range fns {
		addCase(fn.Function)
	}

	for _, anc := range ancestors {
		for _, fn := range anc.Service.Functions {
			addCase(fn)
		}
	}

	dispatch = append(dispatch, j.Default().Block(
		checked(j.Id("iprot").Dot("Skip").Call(j.Id("ctx"), j.Qual(thriftPkg, "STRUCT"))),
		checked(j.Id("iprot").Dot("ReadMessageEnd").Call(j.Id("ctx"))),
		j.Line(),
		j.Id("x").Op(":=").Qual(thriftPkg, "NewTApplicationException").Call(
			j.Qual(thriftPkg, "UNKNOWN_METHOD"),
			j.Lit("Unknown function ").Op("+").Id("name"),
		),
		j.Return(j.Qual(runtimePkg, "WriteMessage").Call(
			j.Id("ctx"), j.Id("oprot"), j.Id("name"), j.Qual(thriftPkg, "EXCEPTION"), j.Id("seqID"), j.Id("x"),
		)),
	))

	f.Comment("Process handles a single message read from iprot, writing any reply to oprot.")
	f.Func().Params(j.Id("p").Op("*").Id(name)).Id("Process").Add(protocolParams()).Error().Block(
		j.List(j.Id("name"), j.Id("_"), j.Id("seqID"), j.Err()).Op(":=").Id("iprot").Dot("ReadMessageBegin").Call(j.Id("ctx")),
		j.If(errNotNil()).Block(returnErr()),
		j.Line(),
		j.Switch(j.Id("name")).Block(dispatch...),
	)

	f.Line()

	for _, fn := range fns {
		g.generateProcessMethod(f, name, fn)
	}
}

func (g *Generator) generateProcessMethod(f *j.File, proc string, fn *function) {
	reply := func(mtype string, body j.Code) *j.Statement {
		return j.Return(j.Qual(runtimePkg, "WriteMessage").Call(
			j.Id("ctx"), j.Id("oprot"), j.Lit(fn.Name), j.Qual(thriftPkg, mtype), j.Id("seqID"), body,
		))
	}

	call := j.Id("p").Dot("handler").Dot(fn.goName).CallFunc(func(gr *j.Group) {
		gr.Id("ctx")
		for _, prm := range fn.params {
			gr.Id("args").Dot("Get" + prm.goName).Call()
		}
	})

	f.Func().Params(j.Id("p").Op("*").Id(proc)).Id("Process"+fn.goName).Params(
		ctxParam(),
		j.Id("seqID").Int32(),
		j.Id("iprot"),
		j.Id("oprot").Qual(thriftPkg, "TProtocol"),
	).Error().BlockFunc(func(b *j.Group) {
		b.Id("args").Op(":=").Op("&").Id(fn.args.Name).Values()
		b.Add(checked(j.Id("args").Dot("Read").Call(j.Id("ctx"), j.Id("iprot"))))
		b.Add(checked(j.Id("iprot").Dot("ReadMessageEnd").Call(j.Id("ctx"))))
		b.Line()

		if fn.ret == nil {
			b.List(j.Id("_"), j.Err()).Op(":=").Qual(runtimePkg, "InvokeVoid").Call(
				j.Func().Params().Error().Block(j.Return(call)),
			).Dot("Result").Call()
		} else {
			b.List(j.Id("ret"), j.Err()).Op(":=").Qual(runtimePkg, "Invoke").Call(
				j.Func().Params().Params(g.goType(fn.ret), j.Error()).Block(j.Return(call)),
			).Dot("Result").Call()
		}

		if fn.Oneway {
			b.Return(j.Err())
			return
		}

		b.Line()

		b.Id("result").Op(":=").Op("&").Id(fn.result.Name).Values()
		b.Line()

		b.If(errNotNil()).BlockFunc(func(eb *j.Group) {
			for _, x := range fn.throws {
				eb.Var().Id(x.local).Add(g.goType(x.ti))
				eb.If(j.Qual("errors", "As").Call(j.Err(), j.Op("&").Id(x.local)).Op("&&").Id(x.local).Op("!=").Nil()).Block(
					j.Id("result").Dot(x.goName).Op("=").Id(x.local),
					reply("REPLY", j.Id("result")),
				)
				eb.Line()
			}

			eb.Id("x").Op(":=").Qual(thriftPkg, "NewTApplicationException").Call(
				j.Qual(thriftPkg, "UNKNOWN_APPLICATION_EXCEPTION"),
				j.Err().Dot("Error").Call(),
			)
			eb.Add(reply("EXCEPTION", j.Id("x")))
		})

		if fn.ret != nil {
			b.Line()
			if fn.ret.pointerStored() {
				b.Id("result").Dot("Success").Op("=").Op("&").Id("ret")
			} else {
				b.Id("result").Dot("Success").Op("=").Id("ret")
			}
		}

		b.Line()
		b.Add(reply("REPLY", j.Id("result")))
	})

	f.Line()
}

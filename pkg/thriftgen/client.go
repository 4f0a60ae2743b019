package thriftgen

import (
	j "github.com/dave/jennifer/jen"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/registry"
)

// generateClient emits <Service>Client. A root client embeds the runtime
// client holding the connection and sequence counter; a derived client
// embeds its base client and only adds its own methods.
func (g *Generator) generateClient(f *j.File, svc *idl.Service, base *registry.Identifier) {
	name := exported(svc.Name) + "Client"

	f.Type().Id(name).StructFunc(func(gr *j.Group) {
		if base == nil {
			gr.Op("*").Qual(runtimePkg, "Client")
		} else {
			gr.Op("*").Add(g.qual(base, "Client"))
		}
	})

	f.Line()

	var embedded j.Code
	if base == nil {
		embedded = j.Dict{
			j.Id("Client"): j.Qual(runtimePkg, "NewClient").Call(j.Id("conn")),
		}
	} else {
		embedded = j.Dict{
			j.Id(exported(base.Name) + "Client"): g.qualFunc(base, "New", "Client").Call(j.Id("conn")),
		}
	}

	f.Func().Id("New"+name).Params(j.Id("conn").Qual(runtimePkg, "Connection")).Op("*").Id(name).Block(
		j.Return(j.Op("&").Id(name).Values(embedded)),
	)

	f.Line()

	for _, fn := range g.functions(svc) {
		g.generateClientMethod(f, name, fn)
	}
}

func (g *Generator) generateClientMethod(f *j.File, client string, fn *function) {
	params, results := g.signature(fn)

	fail := func(err j.Code) *j.Statement {
		if fn.ret == nil {
			return j.Return(err)
		}
		return j.Return(zeroValue(fn.ret), err)
	}

	failed := func(call *j.Statement) *j.Statement {
		return j.If(j.Err().Op(":=").Add(call), errNotNil()).Block(fail(j.Err()))
	}

	conn := func() *j.Statement {
		return j.Id("c").Dot("Client").Dot("Connection").Call()
	}

	mtype := "CALL"
	if fn.Oneway {
		mtype = "ONEWAY"
	}

	f.Func().Params(j.Id("c").Op("*").Id(client)).Id(fn.goName).Add(params).Add(results).BlockFunc(func(b *j.Group) {
		b.Id("seqID").Op(":=").Id("c").Dot("Client").Dot("NextSeqID").Call()
		b.Line()

		b.Id("out").Op(":=").Add(conn()).Dot("Transport").Call()
		b.Id("oprot").Op(":=").Add(conn()).Dot("Protocol").Call(j.Id("out"))
		b.Line()

		b.List(j.Id("args"), j.Err()).Op(":=").Id("New" + fn.args.Name).Call(
			j.Op("&").Id(fn.args.Name).Values(j.DictFunc(func(d j.Dict) {
				for _, p := range fn.params {
					if p.ti.pointerStored() {
						d[j.Id(p.goName)] = j.Op("&").Id(p.local)
					} else {
						d[j.Id(p.goName)] = j.Id(p.local)
					}
				}
			})),
		)
		b.If(errNotNil()).Block(fail(j.Err()))
		b.Line()

		b.Add(failed(j.Qual(runtimePkg, "WriteMessage").Call(
			j.Id("ctx"), j.Id("oprot"), j.Lit(fn.Name), j.Qual(thriftPkg, mtype), j.Id("seqID"), j.Id("args"),
		)))
		b.Line()

		if fn.Oneway {
			b.If(j.List(j.Id("_"), j.Err()).Op(":=").Add(conn()).Dot("Send").Call(j.Id("ctx"), j.Id("out").Dot("Bytes").Call()), errNotNil()).Block(
				j.Return(j.Err()),
			)
			b.Line()
			b.Return(j.Nil())
			return
		}

		b.List(j.Id("data"), j.Err()).Op(":=").Add(conn()).Dot("Send").Call(j.Id("ctx"), j.Id("out").Dot("Bytes").Call())
		b.If(errNotNil()).Block(fail(j.Err()))
		b.Line()

		b.Id("iprot").Op(":=").Add(conn()).Dot("Protocol").Call(conn().Dot("Receive").Call(j.Id("data")))
		b.List(j.Id("name"), j.Id("mtype"), j.Id("_"), j.Err()).Op(":=").Id("iprot").Dot("ReadMessageBegin").Call(j.Id("ctx"))
		b.If(errNotNil()).Block(fail(j.Err()))
		b.Line()

		b.If(j.Id("name").Op("!=").Lit(fn.Name)).Block(
			fail(j.Qual(thriftPkg, "NewTApplicationException").Call(
				j.Qual(thriftPkg, "WRONG_METHOD_NAME"),
				j.Lit("Received a response to an unknown RPC function: ").Op("+").Id("name"),
			)),
		)
		b.Line()

		b.If(j.Id("mtype").Op("==").Qual(thriftPkg, "EXCEPTION")).Block(
			j.Id("x").Op(":=").Qual(thriftPkg, "NewTApplicationException").Call(
				j.Qual(thriftPkg, "UNKNOWN_APPLICATION_EXCEPTION"), j.Lit(""),
			),
			failed(j.Id("x").Dot("Read").Call(j.Id("ctx"), j.Id("iprot"))),
			failed(j.Id("iprot").Dot("ReadMessageEnd").Call(j.Id("ctx"))),
			fail(j.Id("x")),
		)
		b.Line()

		b.Id("result").Op(":=").Op("&").Id(fn.result.Name).Values()
		b.Add(failed(j.Id("result").Dot("Read").Call(j.Id("ctx"), j.Id("iprot"))))
		b.Add(failed(j.Id("iprot").Dot("ReadMessageEnd").Call(j.Id("ctx"))))
		b.Line()

		for _, x := range fn.throws {
			b.If(j.Id("result").Dot(x.goName).Op("!=").Nil()).Block(
				fail(j.Id("result").Dot(x.goName)),
			)
		}

		if fn.ret == nil {
			b.Return(j.Nil())
			return
		}

		b.If(j.Id("result").Dot("Success").Op("==").Nil()).Block(
			fail(j.Qual(thriftPkg, "NewTApplicationException").Call(
				j.Qual(thriftPkg, "UNKNOWN_APPLICATION_EXCEPTION"),
				j.Lit(fn.Name+" failed: unknown result"),
			)),
		)

		if fn.ret.pointerStored() {
			b.Return(j.Op("*").Id("result").Dot("Success"), j.Nil())
		} else {
			b.Return(j.Id("result").Dot("Success"), j.Nil())
		}
	})

	f.Line()
}

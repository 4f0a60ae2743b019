package thriftgen

import (
	j "github.com/dave/jennifer/jen"
	"miren.dev/thriftgen/pkg/idl"
	"miren.dev/thriftgen/pkg/registry"
)

type function struct {
	*idl.Function

	goName string
	args   *idl.Struct
	result *idl.Struct

	// ret is nil for void functions.
	ret *typeInfo

	params []*param
	throws []*param
}

type param struct {
	*idl.Field
	local  string
	goName string
	ti     *typeInfo
}

func (g *Generator) functions(svc *idl.Service) []*function {
	var fns []*function

	for _, fn := range svc.Functions {
		prefix := exported(svc.Name) + exported(fn.Name)

		f := &function{
			Function: fn,
			goName:   methodName(fn.Name),
			args: &idl.Struct{
				Name:   prefix + "Args",
				Kind:   idl.KindStruct,
				Fields: fn.Params,
			},
			result: &idl.Struct{
				Name: prefix + "Result",
				Kind: idl.KindStruct,
			},
		}

		if !fn.IsVoid() {
			f.ret = g.mustType(g.file, fn.ReturnType)

			f.result.Fields = append(f.result.Fields, &idl.Field{
				ID:           0,
				Name:         "success",
				Requiredness: idl.Optional,
				Type:         fn.ReturnType,
				TypeExpr:     fn.ReturnType.String(),
			})
		}

		for _, x := range fn.Throws {
			xf := *x
			xf.Requiredness = idl.Optional
			f.result.Fields = append(f.result.Fields, &xf)
		}

		for _, p := range fn.Params {
			f.params = append(f.params, &param{
				Field:  p,
				local:  paramName(p.Name),
				goName: fieldName(p.Name),
				ti:     g.mustType(g.file, p.Type),
			})
		}

		for _, x := range fn.Throws {
			f.throws = append(f.throws, &param{
				Field:  x,
				local:  paramName(x.Name),
				goName: fieldName(x.Name),
				ti:     g.mustType(g.file, x.Type),
			})
		}

		fns = append(fns, f)
	}

	return fns
}

// signature renders (ctx context.Context, <params>) and the result list
// shared by handler and client methods.
func (g *Generator) signature(fn *function) (*j.Statement, *j.Statement) {
	params := j.ParamsFunc(func(gr *j.Group) {
		gr.Add(ctxParam())
		for _, p := range fn.params {
			gr.Id(p.local).Add(g.goType(p.ti))
		}
	})

	if fn.ret == nil {
		return params, j.Error()
	}

	return params, j.Params(g.goType(fn.ret), j.Error())
}

// generateEnvelopes emits the Args and Result structs framing each call.
func (g *Generator) generateEnvelopes(f *j.File, svc *idl.Service) {
	f.Comment("Call envelopes for " + svc.Name)
	f.Line()

	for _, fn := range g.functions(svc) {
		g.generateStruct(f, fn.args)
		g.generateStruct(f, fn.result)
	}
}

// generateHandler emits the interface a server for svc implements. A
// derived service embeds its base's handler rather than repeating it.
func (g *Generator) generateHandler(f *j.File, svc *idl.Service, base *registry.Identifier) {
	name := exported(svc.Name) + "Handler"

	f.Commentf("%s is the server side of %s.", name, svc.Name)
	f.Type().Id(name).InterfaceFunc(func(gr *j.Group) {
		if base != nil {
			gr.Add(g.qual(base, "Handler"))
			gr.Line()
		}

		for _, fn := range g.functions(svc) {
			params, results := g.signature(fn)
			gr.Id(fn.goName).Add(params).Add(results)
		}
	})

	f.Line()
}

package thriftgen

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"miren.dev/thriftgen/pkg/multierror"
	"miren.dev/thriftgen/pkg/registry"
)

func parseOutput(t *testing.T, code string) *ast.File {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "out.go", code, parser.ParseComments)
	require.NoError(t, err, code)

	return file
}

func findType(file *ast.File, name string) ast.Expr {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			if ts.Name.Name == name {
				return ts.Type
			}
		}
	}

	return nil
}

func findMethod(file *ast.File, recv, name string) *ast.FuncDecl {
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || fd.Name.Name != name {
			continue
		}

		typ := fd.Recv.List[0].Type
		if star, ok := typ.(*ast.StarExpr); ok {
			typ = star.X
		}

		if id, ok := typ.(*ast.Ident); ok && id.Name == recv {
			return fd
		}
	}

	return nil
}

func exprString(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return "*" + exprString(e.X)
	case *ast.SelectorExpr:
		return exprString(e.X) + "." + e.Sel.Name
	case *ast.ArrayType:
		return "[]" + exprString(e.Elt)
	case *ast.MapType:
		return "map[" + exprString(e.Key) + "]" + exprString(e.Value)
	}

	return "?"
}

// structFields lists "Name Type" for named fields and "Type" for embedded.
func structFields(t *testing.T, file *ast.File, name string) []string {
	t.Helper()

	st, ok := findType(file, name).(*ast.StructType)
	require.True(t, ok, "%s is not a struct", name)

	var out []string
	for _, fld := range st.Fields.List {
		if len(fld.Names) == 0 {
			out = append(out, exprString(fld.Type))
			continue
		}
		for _, n := range fld.Names {
			out = append(out, n.Name+" "+exprString(fld.Type))
		}
	}

	return out
}

func switchCases(fd *ast.FuncDecl) []string {
	var cases []string

	ast.Inspect(fd.Body, func(n ast.Node) bool {
		cc, ok := n.(*ast.CaseClause)
		if !ok {
			return true
		}

		for _, e := range cc.List {
			if lit, ok := e.(*ast.BasicLit); ok && lit.Kind == token.STRING {
				s, _ := strconv.Unquote(lit.Value)
				cases = append(cases, s)
			}
		}

		return true
	})

	return cases
}

// defaultConcat returns the operands of the string concatenation in the
// default arm of fd's switch.
func defaultConcat(fd *ast.FuncDecl) (lit string, id string) {
	ast.Inspect(fd.Body, func(n ast.Node) bool {
		cc, ok := n.(*ast.CaseClause)
		if !ok || cc.List != nil {
			return true
		}

		ast.Inspect(cc, func(n ast.Node) bool {
			be, ok := n.(*ast.BinaryExpr)
			if !ok || be.Op != token.ADD {
				return true
			}

			if l, ok := be.X.(*ast.BasicLit); ok {
				lit, _ = strconv.Unquote(l.Value)
			}
			if i, ok := be.Y.(*ast.Ident); ok {
				id = i.Name
			}

			return false
		})

		return false
	})

	return lit, id
}

func calcGenerator(t *testing.T) *Generator {
	t.Helper()
	r := require.New(t)

	g, err := NewGenerator(WithImport("shared", "example.com/gen/shared"))
	r.NoError(err)

	r.NoError(g.Read("testdata/calc.yml"))

	return g
}

func TestGenerator(t *testing.T) {
	t.Run("can generate a service extending an included service", func(t *testing.T) {
		r := require.New(t)

		g := calcGenerator(t)
		r.Equal("calc", g.PackageName())

		code, err := g.Generate("")
		r.NoError(err)

		r.True(strings.HasPrefix(code, "// Code generated by thriftgen. DO NOT EDIT."))

		file := parseOutput(t, code)
		r.Equal("calc", file.Name.Name)

		var paths []string
		for _, imp := range file.Imports {
			p, _ := strconv.Unquote(imp.Path.Value)
			paths = append(paths, p)
		}
		r.Contains(paths, "example.com/gen/shared")
		r.Contains(paths, thriftPkg)
		r.Contains(paths, runtimePkg)

		r.Equal([]string{"*shared.SharedServiceClient"}, structFields(t, file, "CalcClient"))
		r.Equal([]string{"*CalcClient"}, structFields(t, file, "SciCalcClient"))

		r.Equal([]string{"*shared.SharedServiceProcessor", "handler CalcHandler"}, structFields(t, file, "CalcProcessor"))
		r.Equal([]string{"*CalcProcessor", "handler SciCalcHandler"}, structFields(t, file, "SciCalcProcessor"))

		iface, ok := findType(file, "CalcHandler").(*ast.InterfaceType)
		r.True(ok)

		var members []string
		for _, m := range iface.Methods.List {
			if len(m.Names) == 0 {
				members = append(members, exprString(m.Type))
			} else {
				members = append(members, m.Names[0].Name)
			}
		}
		r.Equal([]string{"shared.SharedServiceHandler", "Ping", "Calculate", "Zip"}, members)
	})

	t.Run("can dispatch own and inherited functions by name", func(t *testing.T) {
		r := require.New(t)

		code, err := calcGenerator(t).Generate("calc")
		r.NoError(err)

		file := parseOutput(t, code)

		process := findMethod(file, "SciCalcProcessor", "Process")
		r.NotNil(process)
		r.Equal([]string{"power", "ping", "calculate", "zip", "getStruct"}, switchCases(process))

		process = findMethod(file, "CalcProcessor", "Process")
		r.NotNil(process)
		r.Equal([]string{"ping", "calculate", "zip", "getStruct"}, switchCases(process))

		r.NotNil(findMethod(file, "CalcProcessor", "ProcessCalculate"))
		r.Nil(findMethod(file, "SciCalcProcessor", "ProcessCalculate"))

		lit, id := defaultConcat(process)
		r.Equal("Unknown function ", lit)
		r.Equal("name", id)
		r.Contains(code, `"Unknown function "+name`)
	})

	t.Run("can frame calls in args and result envelopes", func(t *testing.T) {
		r := require.New(t)

		code, err := calcGenerator(t).Generate("calc")
		r.NoError(err)

		file := parseOutput(t, code)

		r.Empty(structFields(t, file, "CalcPingResult"))
		r.Empty(structFields(t, file, "CalcZipArgs"))
		r.Equal([]string{"Logid *int32", "W *Work"}, structFields(t, file, "CalcCalculateArgs"))
		r.Equal([]string{"Success *Num", "Ouch *Oops"}, structFields(t, file, "CalcCalculateResult"))
		r.Equal([]string{"Success *float64"}, structFields(t, file, "SciCalcPowerResult"))

		r.Contains(code, "`json:\"success,omitempty\" thrift:\"success,0,optional\"`")
		r.Contains(code, "`json:\"ouch,omitempty\" thrift:\"ouch,1,optional\"`")
	})

	t.Run("can generate structs, unions, exceptions and enums", func(t *testing.T) {
		r := require.New(t)

		code, err := calcGenerator(t).Generate("calc")
		r.NoError(err)

		file := parseOutput(t, code)

		r.Equal([]string{"Num1 *Num", "Num2 *Num", "Op *Op", "Comment *string"}, structFields(t, file, "Work"))
		r.Contains(code, "`json:\"num2,omitempty\" thrift:\"num2,2,required\"`")

		for _, m := range []string{"Read", "Write", "Validate", "String", "GetNum1", "HasComment"} {
			r.NotNil(findMethod(file, "Work", m), m)
		}

		r.NotNil(findMethod(file, "Oops", "Error"))
		r.Nil(findMethod(file, "Work", "Error"))
		r.NotNil(findMethod(file, "Choice", "countSetFields"))

		r.Equal("int64", exprString(findType(file, "Num")))
		r.Equal("int32", exprString(findType(file, "Op")))
		r.Contains(code, "OpAdd      Op = 1")
		r.Contains(code, "OpSubtract Op = 2")
		r.Contains(code, "func OpFromString(s string) (Op, error)")

		r.Contains(code, "thriftrt.Ptr[Op](OpAdd)")
		r.Contains(code, "thriftrt.Ptr[Num](0)")
	})

	t.Run("can describe structs by their set fields", func(t *testing.T) {
		r := require.New(t)

		code, err := calcGenerator(t).Generate("calc")
		r.NoError(err)

		r.NotContains(code, "%+v")
		r.Contains(code, `parts = append(parts, fmt.Sprintf("Num1:%v", *p.Num1))`)
		r.Contains(code, `parts = append(parts, fmt.Sprintf("W:%v", p.W))`)
		r.Contains(code, `return "Oops(" + strings.Join(parts, " ") + ")"`)
	})

	t.Run("can qualify enum values from included documents", func(t *testing.T) {
		r := require.New(t)

		g := calcGenerator(t)

		id := &registry.Identifier{Name: "Mood", Kind: registry.Enum, File: g.file.Includes["shared"]}
		r.Equal("shared.MoodVeryHappy", g.enumValue(id, "VERY_HAPPY").GoString())

		delete(g.imports, "shared")
		r.PanicsWithValue("missing import for shared", func() {
			g.enumValue(id, "VERY_HAPPY")
		})
	})

	t.Run("can ignore nil declared exceptions", func(t *testing.T) {
		r := require.New(t)

		code, err := calcGenerator(t).Generate("calc")
		r.NoError(err)

		r.Contains(code, "if errors.As(err, &ouch) && ouch != nil {")
	})

	t.Run("can write oneway calls without waiting for a reply", func(t *testing.T) {
		r := require.New(t)

		code, err := calcGenerator(t).Generate("calc")
		r.NoError(err)

		file := parseOutput(t, code)

		zip := findMethod(file, "CalcClient", "Zip")
		r.NotNil(zip)

		var sawOneway, sawReadBegin bool
		ast.Inspect(zip.Body, func(n ast.Node) bool {
			if sel, ok := n.(*ast.SelectorExpr); ok {
				switch sel.Sel.Name {
				case "ONEWAY":
					sawOneway = true
				case "ReadMessageBegin":
					sawReadBegin = true
				}
			}
			return true
		})

		r.True(sawOneway)
		r.False(sawReadBegin)
	})

	t.Run("can derive import paths from a module prefix", func(t *testing.T) {
		r := require.New(t)

		g, err := NewGenerator(WithModulePrefix("example.com/mod/gen"))
		r.NoError(err)

		r.NoError(g.Read("testdata/calc.yml"))

		code, err := g.Generate("calc")
		r.NoError(err)

		r.Contains(code, `"example.com/mod/gen/shared"`)
	})

	t.Run("requires an import path for included documents", func(t *testing.T) {
		r := require.New(t)

		g, err := NewGenerator()
		r.NoError(err)

		err = g.Read("testdata/calc.yml")
		r.ErrorIs(err, ErrNoImportPath)
		r.Nil(g.File())
	})

	t.Run("reports unresolved references", func(t *testing.T) {
		r := require.New(t)

		g, err := NewGenerator()
		r.NoError(err)

		err = g.Read("testdata/unresolved.yml")
		r.ErrorIs(err, registry.ErrUnresolved)
		r.Contains(err.Error(), "Missing")
	})

	t.Run("rejects extending something that is not a service", func(t *testing.T) {
		r := require.New(t)

		g, err := NewGenerator()
		r.NoError(err)

		err = g.Read("testdata/extends_struct.yml")
		r.ErrorIs(err, registry.ErrNotService)
	})

	t.Run("rejects throwing something that is not an exception", func(t *testing.T) {
		r := require.New(t)

		g, err := NewGenerator()
		r.NoError(err)

		err = g.Read("testdata/throws_struct.yml")
		r.ErrorIs(err, ErrInvalidSchema)
		r.Contains(err.Error(), "not an exception")
	})

	t.Run("reports every invalid field at once", func(t *testing.T) {
		r := require.New(t)

		g, err := NewGenerator()
		r.NoError(err)

		err = g.Read("testdata/bad_fields.yml")
		r.ErrorIs(err, ErrInvalidSchema)
		r.Len(multierror.Errors(err), 3)

		for _, e := range multierror.Errors(err) {
			r.True(errors.Is(e, ErrInvalidSchema), e.Error())
		}
	})

	t.Run("matches the checked in example packages", func(t *testing.T) {
		for _, name := range []string{"tutorial", "shared"} {
			t.Run(name, func(t *testing.T) {
				r := require.New(t)

				g, err := NewGenerator(WithModulePrefix("miren.dev/thriftgen/pkg/thriftrt/example"))
				r.NoError(err)

				dir := filepath.Join("..", "thriftrt", "example", name)

				r.NoError(g.Read(filepath.Join(dir, name+".yml")))

				code, err := g.Generate("")
				r.NoError(err)

				checkedIn, err := os.ReadFile(filepath.Join(dir, name+".gen.go"))
				r.NoError(err)

				r.Equal(string(checkedIn), code)
			})
		}
	})

	t.Run("refuses to generate before a schema is read", func(t *testing.T) {
		r := require.New(t)

		g, err := NewGenerator()
		r.NoError(err)

		_, err = g.Generate("x")
		r.ErrorIs(err, ErrNotRead)
	})
}

package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/cli"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Cmd wraps a command function with pflag parsing
type Cmd struct {
	syn, name string
	f         reflect.Value

	opts   reflect.Value
	global *GlobalFlags
	fs     *pflag.FlagSet
}

var _ cli.Command = (*Cmd)(nil)

// Infer creates a command from a function with the signature:
// func(ctx *Context, opts StructType) error
func Infer(name, syn string, f interface{}) *Cmd {
	rv := reflect.ValueOf(f)

	if rv.Kind() != reflect.Func {
		panic("must pass a function")
	}

	rt := rv.Type()

	if rt.NumIn() != 2 {
		panic("must provide two arguments only")
	}

	if rt.NumOut() != 1 {
		panic("must return one argument only")
	}

	if rt.In(0) != reflect.TypeFor[*Context]() {
		panic("first argument must be *Context")
	}

	in := rt.In(1)

	if in.Kind() != reflect.Struct {
		panic("argument must be a struct")
	}

	sv := reflect.New(in)

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})

	var globalFlags GlobalFlags

	err := fromStruct(fs, &globalFlags)
	if err != nil {
		panic(fmt.Sprintf("error parsing global flags: %v", err))
	}

	err = fromStruct(fs, sv.Interface())
	if err != nil {
		panic(fmt.Sprintf("error parsing command options: %v", err))
	}

	return &Cmd{
		syn:    syn,
		name:   name,
		f:      rv,
		global: &globalFlags,
		opts:   sv,
		fs:     fs,
	}
}

// fromStruct registers a flag for every field of the struct v points to
// that carries a long or short tag.
func fromStruct(fs *pflag.FlagSet, v any) error {
	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		ft := rt.Field(i)

		long := ft.Tag.Get("long")
		short := ft.Tag.Get("short")

		if long == "" && short == "" {
			continue
		}

		if long == "" {
			long = short
		}

		desc := ft.Tag.Get("description")
		def := ft.Tag.Get("default")

		switch p := rv.Field(i).Addr().Interface().(type) {
		case *string:
			fs.StringVarP(p, long, short, def, desc)
		case *bool:
			fs.BoolVarP(p, long, short, def == "true", desc)
		case *int:
			if ft.Tag.Get("count") == "true" {
				fs.CountVarP(p, long, short, desc)
				continue
			}

			n := 0
			if def != "" {
				var err error
				n, err = strconv.Atoi(def)
				if err != nil {
					return fmt.Errorf("default for %s: %w", long, err)
				}
			}

			fs.IntVarP(p, long, short, n, desc)
		case *[]string:
			fs.StringSliceVarP(p, long, short, nil, desc)
		case *map[string]string:
			fs.StringToStringVarP(p, long, short, nil, desc)
		default:
			return fmt.Errorf("unsupported type %s for flag %s", ft.Type, long)
		}
	}

	return nil
}

// setRest hands positional arguments to any field tagged rest:"true".
func setRest(rv reflect.Value, args []string) {
	for i := 0; i < rv.NumField(); i++ {
		ft := rv.Type().Field(i)
		if ft.Tag.Get("rest") != "true" {
			continue
		}

		if ft.Type == reflect.TypeFor[[]string]() {
			rv.Field(i).Set(reflect.ValueOf(args))
		}
	}
}

func (w *Cmd) ReadOptions(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	vals := make(map[string]any)

	dec := toml.NewDecoder(f)
	err = dec.Decode(&vals)
	if err != nil {
		return err
	}

	err = w.consumeValues(w.opts.Elem(), vals)
	if err != nil {
		return err
	}

	return w.consumeValues(reflect.ValueOf(w.global).Elem(), vals)
}

func (w *Cmd) consumeValues(rv reflect.Value, vals map[string]any) error {
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)

		ft := rv.Type().Field(i)
		name := ft.Tag.Get("long")

		val, ok := vals[name]
		if !ok || name == "" {
			continue
		}

		vv := reflect.ValueOf(val)

		switch {
		case vv.Kind() == field.Kind():
			if vv.Kind() == reflect.Slice || vv.Kind() == reflect.Map {
				break
			}
			field.Set(vv.Convert(ft.Type))
			continue
		case vv.Kind() == reflect.Int64 && field.Kind() == reflect.Int:
			field.SetInt(vv.Int())
			continue
		}

		switch val := val.(type) {
		case []any:
			var out []string
			for _, e := range val {
				out = append(out, fmt.Sprint(e))
			}
			if field.Type() == reflect.TypeFor[[]string]() {
				field.Set(reflect.ValueOf(out))
			}
		case map[string]any:
			out := map[string]string{}
			for k, e := range val {
				out[k] = fmt.Sprint(e)
			}
			if field.Type() == reflect.TypeFor[map[string]string]() {
				field.Set(reflect.ValueOf(out))
			}
		default:
			return fmt.Errorf("option %s: can not use a %T", name, val)
		}
	}

	return nil
}

func (w *Cmd) show(rv reflect.Value) {
	vals := make(map[string]any)

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		name := rv.Type().Field(i).Tag.Get("long")
		if name == "" {
			name = rv.Type().Field(i).Tag.Get("short")
		}
		if name == "" {
			continue
		}
		vals[name] = field.Interface()
	}

	data, err := toml.Marshal(vals)
	if err != nil {
		fmt.Println(err)
	} else {
		fmt.Print(string(data))
	}
}

func (w *Cmd) clean(rv reflect.Value) error {
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		typ := rv.Type().Field(i).Tag.Get("type")
		if typ == "" {
			continue
		}

		name := rv.Type().Field(i).Tag.Get("long")
		if name == "" {
			name = rv.Type().Field(i).Tag.Get("short")
		}

		switch typ {
		case "path":
			if field.String() == "" {
				continue
			}

			path := ExpandPath(field.String())
			if _, err := os.Stat(path); err != nil {
				err = os.MkdirAll(path, 0755)
				if err != nil {
					return fmt.Errorf("error validating %s as path: %w", name, err)
				}
			}

			field.SetString(path)
		case "file":
			if field.String() == "" {
				continue
			}

			path := ExpandPath(field.String())
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("error validating %s as file: %w", name, err)
			}

			field.SetString(path)
		}
	}

	return nil
}

// Help returns help text for the command
func (w *Cmd) Help() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Usage: thriftgen %s [options]\n\n", w.name)
	fmt.Fprintf(&buf, "%s\n\n", w.syn)
	fmt.Fprintf(&buf, "Options:\n")
	w.fs.VisitAll(func(f *pflag.Flag) {
		if f.Shorthand != "" {
			fmt.Fprintf(&buf, "  -%s, --%s\n", f.Shorthand, f.Name)
		} else {
			fmt.Fprintf(&buf, "      --%s\n", f.Name)
		}
		fmt.Fprintf(&buf, "        %s", f.Usage)
		if f.DefValue != "" && f.DefValue != "[]" && f.DefValue != "0" && f.DefValue != "false" {
			fmt.Fprintf(&buf, " (default: %s)", f.DefValue)
		}
		fmt.Fprintf(&buf, "\n")
	})
	return buf.String()
}

// Synopsis returns a short description
func (w *Cmd) Synopsis() string {
	return w.syn
}

func (w *Cmd) loadOptions(args []string) error {
	for i, arg := range args {
		switch {
		case arg == "--options":
			if i+1 < len(args) {
				return w.ReadOptions(args[i+1])
			} else {
				return fmt.Errorf("missing argument for --options")
			}
		case strings.HasPrefix(arg, "--options="):
			return w.ReadOptions(arg[10:])
		}
	}

	return nil
}

type OptsValidate interface {
	Validate(glbl *GlobalFlags) error
}

// Run implements cli.Command
func (w *Cmd) Run(args []string) int {
	err := w.Invoke(args...)
	if err == nil {
		return 0
	}

	if errors.Is(err, pflag.ErrHelp) {
		return cli.RunResultHelp
	}

	var code ErrExitCode
	if errors.As(err, &code) {
		return int(code)
	}

	if !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
	}

	return 1
}

func (w *Cmd) Invoke(args ...string) error {
	if err := w.loadOptions(args); err != nil {
		return fmt.Errorf("error loading options: %w", err)
	}

	if err := w.fs.Parse(args); err != nil {
		return err
	}

	setRest(w.opts.Elem(), w.fs.Args())

	err := w.clean(reflect.ValueOf(w.global).Elem())
	if err != nil {
		return fmt.Errorf("error cleaning global options: %w", err)
	}

	err = w.clean(w.opts.Elem())
	if err != nil {
		return fmt.Errorf("error cleaning command options: %w", err)
	}

	if ov, ok := w.opts.Interface().(OptsValidate); ok {
		err = ov.Validate(w.global)
		if err != nil {
			return fmt.Errorf("error validating options: %w", err)
		}
	}

	if os.Getenv("DEBUG_CONFIG") != "" {
		fmt.Println("# Configuration")
		w.show(reflect.ValueOf(w.global).Elem())
		w.show(w.opts.Elem())
	}

	ctx := setup(context.Background(), w.global)
	defer ctx.Close()

	rets := w.f.Call([]reflect.Value{reflect.ValueOf(ctx), w.opts.Elem()})

	if err, ok := rets[0].Interface().(error); ok {
		if err != nil {
			return err
		}
	}

	if ctx.exitCode != 0 {
		return ErrExitCode(ctx.exitCode)
	}

	return nil
}

type ErrExitCode int

func (e ErrExitCode) Error() string {
	return fmt.Sprintf("exit code %d", e)
}

type CommandOutput struct {
	Stderr bytes.Buffer
	Stdout bytes.Buffer
}

func RunCommand(f any, args ...string) (*CommandOutput, error) {
	cmd := Infer("test command", "A command being tested", f)

	var out CommandOutput

	err := cmd.fs.Parse(args)
	if err != nil {
		out.Stderr.WriteString(err.Error())
		return &out, err
	}

	setRest(cmd.opts.Elem(), cmd.fs.Args())

	ctx := setup(context.Background(), cmd.global)
	defer ctx.Close()

	ctx.Stdout = &out.Stdout
	ctx.Stderr = &out.Stderr

	rets := cmd.f.Call([]reflect.Value{reflect.ValueOf(ctx), cmd.opts.Elem()})

	if err, ok := rets[0].Interface().(error); ok {
		if err != nil {
			return &out, err
		}
	}

	if ctx.exitCode != 0 {
		return &out, ErrExitCode(ctx.exitCode)
	}

	return &out, nil
}

func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	if strings.HasPrefix(path, "~/") {
		return os.ExpandEnv("$HOME" + path[1:])
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		// only happens if getwd fails, which means everything is broken.
		panic(err)
	}

	return dir
}

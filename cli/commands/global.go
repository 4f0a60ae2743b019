package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"miren.dev/thriftgen/pkg/config"
)

type GlobalFlags struct {
	Verbose int    `short:"v" long:"verbose" count:"true" description:"Enable verbose output"`
	Config  string `long:"config" type:"file" description:"Path to thriftgen.toml, found by searching upward from the working directory by default"`
	Options string `long:"options" description:"Load command options from a TOML file"`
	NoColor bool   `long:"no-color" description:"Disable colored output"`
}

type Context struct {
	context.Context

	verbose int
	Log     *slog.Logger

	Stdout io.Writer
	Stderr io.Writer

	configPath string

	cancels []func()

	exitCode int
}

func setup(ctx context.Context, flags *GlobalFlags) *Context {
	s := &Context{
		verbose:    flags.Verbose,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		configPath: flags.Config,
	}

	if flags.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	var level slog.Level

	switch s.verbose {
	case 0:
		level = slog.LevelWarn
	case 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}

	dynLevel := new(slog.LevelVar)
	dynLevel.Set(level)

	s.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: dynLevel,
	}))

	sigCh := make(chan os.Signal, 1)

	signal.Notify(sigCh, os.Interrupt, unix.SIGQUIT, unix.SIGTERM,
		unix.SIGTTIN, unix.SIGTTOU,
	)

	ctx, cancel := context.WithCancel(ctx)
	s.cancels = append(s.cancels, cancel)

	sigCtx, sigCancel := context.WithCancel(ctx)
	s.cancels = append(s.cancels, sigCancel)

	go func() {
		defer signal.Stop(sigCh)

		var shutdownRequests int
		for {
			select {
			case <-sigCtx.Done():
				return
			case sig := <-sigCh:
				var target slog.Level

				switch sig {
				case unix.SIGTTIN:
					target = dynLevel.Level() - 4
				case unix.SIGTTOU:
					target = dynLevel.Level() + 4
				case os.Interrupt, unix.SIGQUIT, unix.SIGTERM:
					shutdownRequests++
					switch shutdownRequests {
					case 1:
						s.Log.InfoContext(sigCtx, "Signal received, shutting down")
						cancel()
					case 2:
						s.Log.InfoContext(sigCtx, "Shutdown urgency detected, exitting")
						os.Exit(130)
					}

					continue
				}

				if target < slog.LevelDebug || target > slog.LevelError {
					continue
				}

				if dynLevel.Level() == target {
					continue
				}

				dynLevel.Set(target)

				s.Log.ErrorContext(sigCtx, "Log leveling changed", "level", target)
			}
		}
	}()

	s.Log.DebugContext(ctx, "Configured logging", "level", level)
	s.Log.DebugContext(ctx, "Dynamic leveling enabled via signals", "more-logging", "SIGTTIN", "less-logging", "SIGTTOU")

	s.Context = ctx
	return s
}

func (c *Context) Close() error {
	for _, cancel := range c.cancels {
		cancel()
	}

	return nil
}

func (c *Context) SetExitCode(code int) {
	c.exitCode = code
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout, format, args...)
}

var (
	okLabel   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	dimmed    = color.New(color.Faint).SprintFunc()
)

// Status prints a line prefixed by a colored ok or FAIL label.
func (c *Context) Status(ok bool, format string, args ...interface{}) {
	label := okLabel("ok  ")
	if !ok {
		label = failLabel("FAIL")
	}

	fmt.Fprintf(c.Stdout, "%s %s\n", label, fmt.Sprintf(format, args...))
}

// LoadConfig reads the file named by --config, or else the nearest
// thriftgen.toml at or above the working directory. A nil config with no
// error means there is none.
func (c *Context) LoadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.LoadFile(c.configPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return nil, err
	}

	if cfg != nil {
		c.Log.Debug("using config", "dir", cfg.Dir)
	}

	return cfg, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/criticalmash/bikeshed-colors/colors"
	"github.com/criticalmash/bikeshed-colors/config"
	"github.com/criticalmash/bikeshed-colors/inspect"
	"github.com/criticalmash/bikeshed-colors/misc"
	"github.com/criticalmash/bikeshed-colors/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(cmd.Bool("debug")); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()
	env.Setup()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging, errors must be reported directly to stderr from now on
	env.RestoreStdLog()
	return nil
}

// Ignore urfave/cli default error handling, subcommands return regular
// errors.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

const literalsHelp = `%s
COLOR:
    CSS color literal, one of
        hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
        rgb: "rgb(255, 0, 0)", "rgb(100%% 0%% 0%%)", "rgba(255 0 0 / 0.5)"
        hsl: "hsl(120deg, 50%%, 50%%)", "hsla(120 50%% 50%% / 50%%)"

    Literals are matched exactly: no surrounding whitespace, no named colors.
    When no literals are given they are read from STDIN, one per line.
    Output format is controlled by "output" section of configuration.
`

func newApp() *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "parses and converts CSS color literals",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, most verbose logging"},
		},
		Commands: []*cli.Command{
			{
				Name:               "parse",
				Usage:              "Parses color literals and prints their channels",
				OnUsageError:       usageErrorHandler,
				Action:             inspect.Parse,
				ArgsUsage:          "[COLOR...]",
				CustomHelpTemplate: fmt.Sprintf(literalsHelp, cli.CommandHelpTemplate),
			},
			{
				Name:  "classify",
				Usage: "Reports format and color space of literals without extracting channels",
				Description: "Prints FORMAT/SPACE for every literal, where format is one of " +
					strings.Join(colors.FormatNames(), ", ") + " and space is one of " + strings.Join(colors.SpaceNames(), ", ") +
					". Unrecognized literals are reported as UNKNOWN.",
				OnUsageError:       usageErrorHandler,
				Action:             inspect.Classify,
				ArgsUsage:          "[COLOR...]",
				CustomHelpTemplate: fmt.Sprintf(literalsHelp, cli.CommandHelpTemplate),
			},
			{
				Name:               "hsl",
				Usage:              "Converts RGB color literals to HSL",
				OnUsageError:       usageErrorHandler,
				Action:             inspect.HSL,
				ArgsUsage:          "[COLOR...]",
				CustomHelpTemplate: fmt.Sprintf(literalsHelp, cli.CommandHelpTemplate),
			},
			{
				Name:         "palette",
				Usage:        "Loads named colors from palette file (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Palette,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "natural", Aliases: []string{"n"}, Usage: "order entries by name naturally regardless of configuration"},
				},
				ArgsUsage: "SOURCE",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to YAML file with optional "name" and "colors" mapping of entry
    names to color literals. Hex literals must be quoted.

    Entries which could not be parsed are reported, the rest is printed.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "scan",
				Usage:        "Finds and parses color literals used in CSS stylesheets",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Scan,
				ArgsUsage:    "STYLESHEET...",
				CustomHelpTemplate: fmt.Sprintf(`%s
STYLESHEET:
    path to CSS file. Hex hashes and rgb(), rgba(), hsl(), hsla() functions
    in declaration values (custom properties included) are reported together
    with enclosing at-rules, selector and property.
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {

	// allow graceful shutdown on interrupt, long stdin streams could be
	// interrupted between literals
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := newApp()

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

package inspect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/criticalmash/bikeshed-colors/colors"
	"github.com/criticalmash/bikeshed-colors/config"
	"github.com/criticalmash/bikeshed-colors/palette"
	"github.com/criticalmash/bikeshed-colors/state"
	"github.com/criticalmash/bikeshed-colors/stylesheet"
)

// Parse is "parse" command action.
func Parse(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	inputs, err := literals(cmd.Args().Slice(), env.In)
	if err != nil {
		return err
	}
	return parseColors(ctx, env, inputs, false)
}

// HSL is "hsl" command action.
func HSL(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	inputs, err := literals(cmd.Args().Slice(), env.In)
	if err != nil {
		return err
	}
	return parseColors(ctx, env, inputs, true)
}

// Classify is "classify" command action.
func Classify(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	inputs, err := literals(cmd.Args().Slice(), env.In)
	if err != nil {
		return err
	}
	return classify(env, inputs)
}

// Palette is "palette" command action.
func Palette(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no palette file has been specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many palettes", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	return printPalette(env, src, cmd.Bool("natural"))
}

// Scan is "scan" command action.
func Scan(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheets have been specified")
	}
	return scanStylesheets(ctx, env, cmd.Args().Slice())
}

// literals returns command arguments or, when there are none, non empty
// lines of the input stream.
func literals(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 || in == nil {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := scanner.Text(); len(line) > 0 {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read color literals: %w", err)
	}
	return lines, nil
}

func parseColors(ctx context.Context, env *state.LocalEnv, inputs []string, toHSL bool) (err error) {
	if len(inputs) == 0 {
		return errors.New("no color literals to process")
	}

	p, err := newPrinter(env.Out, &env.Cfg.Output)
	if err != nil {
		return err
	}

	for _, in := range inputs {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		c, er := env.Parser.Parse(in)
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		if toHSL {
			c = asHSL(env.Log, c)
		}
		if er := p.color(buildValues("", in, c)); er != nil {
			return multierr.Append(err, er)
		}
	}
	if er := p.flush(); er != nil {
		err = multierr.Append(err, er)
	}

	if n := len(multierr.Errors(err)); n > 0 {
		env.Log.Debug("Some literals were rejected", zap.Int("rejected", n), zap.Int("total", len(inputs)))
	}
	return err
}

func asHSL(log *zap.Logger, c colors.Color) colors.Color {
	switch v := c.(type) {
	case colors.RGB:
		return colors.RGBToHSL(v)
	default:
		log.Debug("Color is already in HSL space, nothing to convert", zap.Stringer("color", c))
		return c
	}
}

func classify(env *state.LocalEnv, inputs []string) (err error) {
	if len(inputs) == 0 {
		return errors.New("no color literals to process")
	}

	p, err := newPrinter(env.Out, &env.Cfg.Output)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		fd, _ := colors.Classify(in)
		rec := classification{Input: in, Descriptor: fd.String(), Space: colors.SpaceOf(in)}
		if er := p.line(strconv.Quote(in)+" "+rec.Descriptor, rec); er != nil {
			return er
		}
	}
	return p.flush()
}

func printPalette(env *state.LocalEnv, src string, naturalOrder bool) error {
	var opts []palette.Option
	if naturalOrder || env.Cfg.Palette.Sort == config.SortModeNatural {
		opts = append(opts, palette.WithNaturalOrder())
	}

	pal, err := palette.NewLoader(env.Log, env.Parser, opts...).Load(src)
	if pal == nil {
		return err
	}
	env.Log.Info("Palette loaded", zap.String("name", pal.Name), zap.String("file", src), zap.Int("entries", len(pal.Entries)))

	p, er := newPrinter(env.Out, &env.Cfg.Output)
	if er != nil {
		return multierr.Append(err, er)
	}
	for _, e := range pal.Entries {
		if er := p.color(buildValues(e.Name, fmt.Sprint(e.Raw), e.Color)); er != nil {
			return multierr.Append(err, er)
		}
	}
	return multierr.Append(err, p.flush())
}

func scanStylesheets(ctx context.Context, env *state.LocalEnv, paths []string) (err error) {
	p, err := newPrinter(env.Out, &env.Cfg.Output)
	if err != nil {
		return err
	}

	scanner := stylesheet.NewScanner(env.Log, env.Parser)
	for _, path := range paths {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		usages, er := scanner.ScanFile(path)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", path, er))
		}
		env.Log.Info("Stylesheet scanned", zap.String("file", path), zap.Int("colors", len(usages)))

		for _, u := range usages {
			name := u.Location()
			if len(paths) > 1 {
				name = path + ": " + name
			}
			if er := p.color(buildValues(name, u.Literal, u.Color)); er != nil {
				return multierr.Append(err, er)
			}
		}
	}
	return multierr.Append(err, p.flush())
}

package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/criticalmash/bikeshed-colors/config"
	"github.com/criticalmash/bikeshed-colors/state"
)

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	return writeConfiguration(env, cmd.Args().Get(0), cmd.Bool("default"))
}

func writeConfiguration(env *state.LocalEnv, fname string, defaults bool) (err error) {
	var (
		data []byte
		kind string
	)
	if defaults {
		kind = "default"
		data, err = config.Prepare()
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	out := env.Out
	if len(fname) > 0 {
		f, er := os.Create(fname)
		if er != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, er)
		}
		defer func() {
			if er := f.Close(); er != nil && err == nil {
				err = fmt.Errorf("unable to close destination file '%s': %w", fname, er)
			}
		}()
		out = f
	} else {
		fname = "STDOUT"
	}
	env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

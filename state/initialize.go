package state

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/criticalmash/bikeshed-colors/colors"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Parser: colors.NewParser(zap.NewNop()),
		Out:    os.Stdout,
		In:     os.Stdin,
	}
}

// Setup finishes environment once configuration and logger are known.
func (e *LocalEnv) Setup() {
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	var opts []colors.Option
	if e.Cfg != nil {
		opts = append(opts, colors.WithHueUnits(e.Cfg.Parsing.ConvertHueUnits))
	}
	e.Parser = colors.NewParser(e.Log, opts...)
}

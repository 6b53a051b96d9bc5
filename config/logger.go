package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/criticalmash/bikeshed-colors/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// Prepare builds program logger: console core writing to stderr (stdout
// carries parsed colors) teed with optional file core. debug raises both to
// the most verbose level unless file logging is off.
func (conf *LoggingConfig) Prepare(debug bool) (*zap.Logger, error) {

	consoleLevel := conf.ConsoleLogger.Level
	if debug {
		consoleLevel = "debug"
	}

	var consoleCore zapcore.Core
	switch consoleLevel {
	case "normal", "debug":
		minLevel := zapcore.InfoLevel
		if consoleLevel == "debug" {
			minLevel = zapcore.DebugLevel
		}
		color := EnableColorOutput(os.Stderr)
		out := zapcore.Lock(os.Stderr)
		consoleCore = zapcore.NewTee(
			zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig(color)), out,
				zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
					return minLevel <= lvl && lvl < zapcore.ErrorLevel
				})),
			// errors are printed without verbose details
			zapcore.NewCore(newEncoder(consoleEncoderConfig(color)), out, zapcore.ErrorLevel),
		)
	default:
		consoleCore = zapcore.NewNopCore()
	}

	fileLevel := conf.FileLogger.Level
	if debug && fileLevel != "none" {
		fileLevel = "debug"
	}

	fileCore := zapcore.NewNopCore()
	var redirected string
	if fileLevel == "debug" || fileLevel == "normal" {
		level := zapcore.InfoLevel
		if fileLevel == "debug" {
			level = zapcore.DebugLevel
		}
		f, err := openLogFile(conf.FileLogger.Destination, conf.FileLogger.Mode)
		if err != nil {
			// fall back to temporary file and report where logs went
			if f, err = os.CreateTemp("", misc.GetAppName()+".*.log"); err != nil {
				return nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
			}
			redirected = f.Name()
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), level)
	}

	core := zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller())
	if len(redirected) != 0 {
		core.Warn("Log file was redirected to new location", zap.String("location", redirected))
	}
	return core.Named(misc.GetAppName()), nil
}

func consoleEncoderConfig(color bool) zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	}
	return ec
}

func openLogFile(fname, mode string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == "append" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(fname, flags, 0644)
}

// consoleEnc replaces error fields with their plain messages, dropping
// errorVerbose output.
type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	var newFields []zapcore.Field
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			e := f.Interface.(error)
			f.Interface = errors.New(e.Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggingPrepare_File(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		debug     bool
		wantDebug bool
		wantInfo  bool
	}{
		{"normal", "normal", false, false, true},
		{"debug", "debug", false, true, true},
		{"normal raised by flag", "normal", true, true, true},
		{"none stays off with flag", "none", true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "test.log")
			conf := LoggingConfig{
				ConsoleLogger: LoggerConfig{Level: "none"},
				FileLogger:    LoggerConfig{Level: tt.level, Destination: dest, Mode: "overwrite"},
			}
			log, err := conf.Prepare(tt.debug)
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			log.Debug("debug message")
			log.Info("info message")
			_ = log.Sync()

			data, err := os.ReadFile(dest)
			if err != nil && tt.wantInfo {
				t.Fatalf("log file was not written: %v", err)
			}
			if got := strings.Contains(string(data), "debug message"); got != tt.wantDebug {
				t.Errorf("debug message logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(string(data), "info message"); got != tt.wantInfo {
				t.Errorf("info message logged = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}

func TestLoggingPrepare_Append(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(dest, []byte("previous run\n"), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "append"},
	}
	log, err := conf.Prepare(false)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Info("next run")
	_ = log.Sync()

	data, _ := os.ReadFile(dest)
	if !strings.HasPrefix(string(data), "previous run\n") || !strings.Contains(string(data), "next run") {
		t.Errorf("log file content:\n%s", data)
	}
}

func TestConsoleEncoderConfig(t *testing.T) {
	if ec := consoleEncoderConfig(false); ec.TimeKey == zapcore.OmitKey || ec.EncodeCaller != nil {
		t.Errorf("plain config = %+v", ec)
	}
	if ec := consoleEncoderConfig(true); ec.TimeKey != zapcore.OmitKey {
		t.Error("colored output should omit time")
	}
}

type verboseError struct{}

func (verboseError) Error() string { return "short" }

func (verboseError) Format(s fmt.State, verb rune) {
	_, _ = s.Write([]byte("short\nverbose details"))
}

func TestConsoleEnc_DropsVerboseErrors(t *testing.T) {
	enc := newEncoder(consoleEncoderConfig(false))
	buf, err := enc.EncodeEntry(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "failed"}, []zapcore.Field{zap.Error(verboseError{})})
	if err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	defer buf.Free()
	out := buf.String()
	if !strings.Contains(out, `"error": "short"`) || strings.Contains(out, "verbose details") {
		t.Errorf("EncodeEntry() = %q", out)
	}

	buf, err = enc.Clone().EncodeEntry(zapcore.Entry{Message: "plain"}, []zapcore.Field{zap.Error(errors.New("x"))})
	if err != nil || !strings.Contains(buf.String(), "plain") {
		t.Errorf("cloned encoder output = %q, %v", buf.String(), err)
	}
}

//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

// ENABLE_VIRTUAL_TERMINAL_PROCESSING console mode flag.
const vtProcessing uint32 = 0x4

// EnableColorOutput reports whether log levels could be colored on stream.
// Consoles before Windows 10 do not understand ANSI sequences, newer ones
// need VT processing switched on first.
func EnableColorOutput(stream *os.File) bool {
	if colorDisabled() || !supportsVT() || !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	h := windows.Handle(stream.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|vtProcessing) == nil
}

func supportsVT() bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	major, _, err := k.GetIntegerValue("CurrentMajorVersionNumber")
	return err == nil && major >= 10
}

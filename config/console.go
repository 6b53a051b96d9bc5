package config

import "os"

// colorDisabled honors NO_COLOR (https://no-color.org) and dumb terminals.
func colorDisabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return os.Getenv("TERM") == "dumb"
}

// Package misc keeps build time program identity.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "bikeshed"

// Overwritten with -ldflags "-X" by release builds.
var (
	version = ""
	gitHash = ""
)

var readBuildInfo = sync.OnceFunc(func() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if len(version) == 0 && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if len(gitHash) == 0 {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				gitHash = s.Value
				break
			}
		}
	}
})

func GetAppName() string {
	return appName
}

// GetVersion returns program version, "dev" when it could not be determined.
func GetVersion() string {
	readBuildInfo()
	if len(version) == 0 {
		return "dev"
	}
	return version
}

// GetGitHash returns short revision program was built from.
func GetGitHash() string {
	readBuildInfo()
	if len(gitHash) == 0 {
		return "unknown"
	}
	if len(gitHash) > 7 {
		return gitHash[:7]
	}
	return gitHash
}

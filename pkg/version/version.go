package version

import (
	"fmt"
	"runtime"

	"github.com/Dynatrace/pizzeria/pkg/logd"
)

// AppName is the binary name reported with the build metadata.
const AppName = "pizzeria"

// Set through -ldflags at build time.
var (
	Version   = "snapshot"
	Commit    = ""
	BuildDate = ""
)

type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String is what `pizzeria --version` prints.
func (info Info) String() string {
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}

	return fmt.Sprintf("%s (commit %s, %s, %s)", info.Version, commit, info.GoVersion, info.Platform)
}

// LogVersion logs the build metadata before a command starts its work.
func LogVersion() {
	LogVersionToLogger(logd.Get().WithName("version"))
}

func LogVersionToLogger(log logd.Logger) {
	info := Get()

	log.Info(AppName,
		"version", info.Version,
		"gitCommit", info.Commit,
		"buildDate", info.BuildDate,
		"goVersion", info.GoVersion,
		"platform", info.Platform,
	)
}

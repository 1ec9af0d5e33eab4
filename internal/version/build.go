package version

import (
	"fmt"
	"runtime"
)

const valueNotProvided = "[not provided]"

// these values are injected at build time through ldflags
var (
	version      = valueNotProvided
	gitCommit    = valueNotProvided
	gitTreeState = valueNotProvided
	buildDate    = valueNotProvided
)

var platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

// Version describes the application build: the release version plus details
// about how and from what the binary was produced.
type Version struct {
	Version      string `json:"version"`
	GitCommit    string `json:"gitCommit"`
	GitTreeState string `json:"gitTreeState"`
	BuildDate    string `json:"buildDate"`
	GoVersion    string `json:"goVersion"`
	Compiler     string `json:"compiler"`
	Platform     string `json:"platform"`
}

// FromBuild returns the build information for the current binary.
func FromBuild() Version {
	return Version{
		Version:      version,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     platform,
	}
}

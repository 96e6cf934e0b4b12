package utils

import (
	"fmt"
	"runtime"
)

// These are set at build time using -ldflags.
var (
	VersionMajor = "0"
	VersionMinor = "0"
	VersionPatch = "1"
	Branch       = "main"
	Commit       = "dev"
	BuildDate    = "unknown"
)

// GetVersion constructs and returns the version information for the service.
func GetVersion() VersionReport {
	commitShort := Commit
	if len(Commit) > 7 {
		commitShort = Commit[:7]
	}

	vObj := Version{
		Major:     VersionMajor,
		Minor:     VersionMinor,
		Patch:     VersionPatch,
		Branch:    Branch,
		Commit:    commitShort,
		BuildDate: BuildDate,
		Arch:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	str := fmt.Sprintf("%s.%s.%s-%s+%s.%s.%s",
		vObj.Major, vObj.Minor, vObj.Patch,
		vObj.Branch,
		vObj.Commit,
		vObj.BuildDate,
		vObj.Arch,
	)

	return VersionReport{
		Str: str,
		Obj: vObj,
	}
}

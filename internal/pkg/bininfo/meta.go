// Values in this file are injected at build time with:
//
//	go build -ldflags "-X exusiai.dev/ssq-predictor/internal/pkg/bininfo.Version=$(git describe --tags)"
//
// DO NOT RENAME THE VARIABLES WITHOUT UPDATING THE BUILD SCRIPTS.

package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a plus sign [+] when available.
	Version = "v0.0.0"

	// BuildTime is the time at which the binary was built.
	BuildTime = "1970-01-01T00:00:00Z"
)

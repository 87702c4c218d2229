// Package version exposes the build version of the partyplanner binary.
package version

// version is overridden at build time with
// -ldflags "-X github.com/rshade/partyplanner/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set via ldflags at build time

// GetVersion returns the build version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// UserAgent returns the User-Agent header value sent to the parties API.
func UserAgent() string {
	return "partyplanner/" + version
}

// Values in this file are injected at build time through -ldflags "-X".
// Renaming the variables breaks the build scripts.

package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a plus sign when available.
	Version = "v0.0.0"

	// BuildTime is the RFC3339 time the binary was built at.
	BuildTime = "1970-01-01T00:00:00Z"
)

// Package version records the tool's version string.
package version

// Version is the current release, overridable at build time with
// -ldflags "-X .../internal/version.Version=...".
var Version = "1.0.0"

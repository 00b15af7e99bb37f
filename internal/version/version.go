// Package version holds the application version string.
package version

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/dkersten/stock-portfolio-tracker/internal/version.Version=x.y.z".
var Version = "0.3.0"

package modp

// Version is the semantic version populated at build time via ldflags. In
// development builds it reports v0.0.0-dev.
var Version = "v0.0.0-dev"

// LibraryVersion returns the module version string.
func LibraryVersion() string {
	return Version
}

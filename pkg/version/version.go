package version

// version is overridden at build time with -ldflags "-X carfactory/pkg/version.version=...".
var version = "dev"

// Version reports the build version printed by --version.
func Version() string {
	return version
}

package version

// Version is overridden at build time with
// -ldflags "-X github.com/commitlens/commitlens/internal/version.Version=1.2.3".
var Version = "0.1.0"

// Commit is the git revision the binary was built from, when known.
var Commit = ""

// FullVersion returns the version with the v prefix and, if set, the commit.
func FullVersion() string {
	if Commit == "" {
		return "v" + Version
	}
	return "v" + Version + " (" + Commit + ")"
}

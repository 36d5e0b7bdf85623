package version

// Build information, overridden at release time with
// -ldflags "-X github.com/arthur-debert/appcenter-devices/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// UserAgent is sent with every App Center request
func UserAgent() string {
	return "appcenter-devices/" + Version
}

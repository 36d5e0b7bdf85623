package types

import "strings"

// Platform identifies the target platform of the app whose devices are fetched
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformMac     Platform = "mac"
)

// ParsePlatform normalizes a user supplied platform name. An empty value means iOS.
func ParsePlatform(s string) Platform {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PlatformIOS
	}
	return Platform(s)
}

// IsSupported reports whether device lists can be fetched for the platform.
// Device lists only make sense for Apple provisioning, so only iOS is supported.
func (p Platform) IsSupported() bool {
	return p == PlatformIOS
}

func (p Platform) String() string {
	return string(p)
}

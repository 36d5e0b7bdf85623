// Package filesystem provides the afero filesystems used by appcenter-devices.
//
// Commands take an afero.Fs so tests can run against memory or read-only
// filesystems; production code uses NewOS.
package filesystem

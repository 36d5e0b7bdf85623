// Package testutil provides utilities for testing appcenter-devices components.
//
// Key components:
//   - AppCenterServer: httptest stub of the two App Center endpoints, recording calls
//   - DeviceExport: builds tab-separated device exports as App Center returns them
//   - MemoryFS helpers: read back files written to an afero memory filesystem
//
// All test data should be defined inline, not in external files.
package testutil

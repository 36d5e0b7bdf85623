// Package types defines the core data structures shared across appcenter-devices.
// This includes the Device and DistributionGroup records returned by App Center,
// the de-duplicated DeviceCollection written to the provisioning file, and the
// request/result structures passed between the commands and the CLI.
package types

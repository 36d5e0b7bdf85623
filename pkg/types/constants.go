package types

const (
	// DefaultGroup is the group App Center creates implicitly for every app.
	DefaultGroup = "Collaborators"

	// AllGroups is the destination selector meaning every group of the app.
	AllGroups = "*"

	// DefaultDevicesFile is the output file name used when none is given.
	DefaultDevicesFile = "devices.txt"

	// ProvisioningFileExt is the extension Apple Developer Center requires
	// for device list uploads.
	ProvisioningFileExt = ".txt"

	// TSV column headers of the App Center device export and of the output file.
	HeaderDeviceID   = "Device ID"
	HeaderDeviceName = "Device Name"
)

package types

// Device is a single registered test device as exported by App Center.
// Identity is the ID alone, compared verbatim; Name is informational.
type Device struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DistributionGroup is a named collection of test devices for an app.
type DistributionGroup struct {
	Name string `json:"name"`
}

// DeviceCollection is an ordered list of devices, unique by ID, in first-seen order.
// Build one with devices.Merge rather than appending directly.
type DeviceCollection []Device

// Len returns the number of devices in the collection
func (c DeviceCollection) Len() int {
	return len(c)
}


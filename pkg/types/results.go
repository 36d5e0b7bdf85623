package types

// GroupResult records how many devices a single group contributed before merging.
type GroupResult struct {
	Name    string `json:"name"`
	Devices int    `json:"devices"`
}

// FetchDevicesResult holds the result of the 'fetch' command.
type FetchDevicesResult struct {
	Groups      []GroupResult    `json:"groups"`
	Devices     DeviceCollection `json:"devices"`
	DevicesFile string           `json:"devicesFile"`
	Advisories  []string         `json:"advisories,omitempty"`
}

// TotalFetched returns the number of devices fetched across all groups, duplicates included
func (r *FetchDevicesResult) TotalFetched() int {
	total := 0
	for _, g := range r.Groups {
		total += g.Devices
	}
	return total
}

// Duplicates returns how many fetched devices were dropped by de-duplication
func (r *FetchDevicesResult) Duplicates() int {
	return r.TotalFetched() - r.Devices.Len()
}

// GenConfigResult holds the result of the 'genconfig' command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}

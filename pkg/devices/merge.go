package devices

import "github.com/arthur-debert/appcenter-devices/pkg/types"

// Merge concatenates per-group device lists in query order and keeps the first
// device seen for each ID. Later duplicates are dropped even when their name differs.
func Merge(groups ...[]types.Device) types.DeviceCollection {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	seen := make(map[string]struct{}, total)
	merged := make(types.DeviceCollection, 0, total)

	for _, g := range groups {
		for _, d := range g {
			if _, dup := seen[d.ID]; dup {
				continue
			}
			seen[d.ID] = struct{}{}
			merged = append(merged, d)
		}
	}

	return merged
}

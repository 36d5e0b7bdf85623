// Package devices builds a provisioning device list from App Center distribution groups.
//
// The pieces run in this order for a fetch:
//   - ResolveGroups turns a destination selector into the group names to query
//   - Fetch downloads one group's export and parses it with ParseTSV
//   - Merge combines the per-group lists, keeping the first device seen per ID
//   - Writer.Write serializes the merged list with FormatTSV
//
// Parsing, merging and formatting are pure; only Fetch and Writer do I/O.
package devices

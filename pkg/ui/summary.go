package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/appcenter-devices/pkg/types"
	"github.com/pterm/pterm"
)

// RenderSummary prints a table of per-group device counts followed by the totals
func RenderSummary(w io.Writer, result *types.FetchDevicesResult) error {
	data := pterm.TableData{{"Group", "Devices"}}
	for _, g := range result.Groups {
		data = append(data, []string{g.Name, strconv.Itoa(g.Devices)})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithWriter(w).
		WithData(data).
		Render(); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	_, err := fmt.Fprintf(w, "%d unique devices (%d duplicates dropped) written to %s\n",
		result.Devices.Len(), result.Duplicates(), result.DevicesFile)
	return err
}

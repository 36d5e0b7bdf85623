package devices

import (
	"bytes"
	"context"

	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
)

// Fetch downloads and parses the device export of one group.
// An empty export is a valid result; transport errors are returned unchanged.
func Fetch(ctx context.Context, exporter Exporter, owner, app, group string) ([]types.Device, error) {
	logger := logging.GetLogger("devices.fetcher")

	body, err := exporter.DownloadDevicesList(ctx, owner, app, group)
	if err != nil {
		return nil, err
	}

	devices, err := ParseTSV(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("group", group).
		Int("devices", len(devices)).
		Msg("Fetched distribution group devices")
	return devices, nil
}

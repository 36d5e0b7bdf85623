package devices

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
)

const (
	byteOrderMark = "\ufeff"
	maxLineSize   = 1 << 20
)

// fieldSanitizer keeps a name on a single TSV field
var fieldSanitizer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// ParseTSV reads a tab-separated device export with a "Device ID", "Device Name" header.
// Each line is one row; quotes have no special meaning. Blank lines, rows without
// exactly two columns and rows without an ID are skipped. Only errors from the
// underlying reader are returned.
func ParseTSV(r io.Reader) ([]types.Device, error) {
	logger := logging.GetLogger("devices.tsv")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	devices := []types.Device{}
	first := true
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if first {
			text = strings.TrimPrefix(text, byteOrderMark)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, "\t")

		if first {
			first = false
			if strings.TrimSpace(fields[0]) == types.HeaderDeviceID {
				continue
			}
		}

		if len(fields) != 2 {
			logger.Debug().Int("row", line).Int("columns", len(fields)).Msg("Skipping malformed row")
			continue
		}

		id := strings.TrimSpace(fields[0])
		if id == "" {
			logger.Debug().Int("row", line).Msg("Skipping row without device id")
			continue
		}

		devices = append(devices, types.Device{
			ID:   id,
			Name: strings.TrimSpace(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read device export: %w", err)
	}

	logger.Trace().Int("devices", len(devices)).Msg("Parsed device export")
	return devices, nil
}

// FormatTSV writes the header and one "id<TAB>name" line per device, in order,
// using the platform's newline convention. Values are written as is, without
// quoting; tabs and line breaks inside a name become spaces.
func FormatTSV(w io.Writer, devices types.DeviceCollection) error {
	newline := "\n"
	if runtime.GOOS == "windows" {
		newline = "\r\n"
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(types.HeaderDeviceID + "\t" + types.HeaderDeviceName + newline); err != nil {
		return err
	}
	for _, d := range devices {
		if _, err := bw.WriteString(fieldSanitizer.Replace(d.ID) + "\t" + fieldSanitizer.Replace(d.Name) + newline); err != nil {
			return err
		}
	}
	return bw.Flush()
}

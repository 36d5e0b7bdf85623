package devices

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/appcenter-devices/pkg/errors"
	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
	"github.com/arthur-debert/appcenter-devices/pkg/ui"
	"github.com/spf13/afero"
)

// MsgExtensionAdvisory is shown when the devices file is not a .txt file
const MsgExtensionAdvisory = "Important: Devices file is %s. If you plan to upload this file to Apple Developer Center, the file must have the .txt extension"

// Writer writes device collections to the devices file
type Writer struct {
	fs       afero.Fs
	notifier ui.Notifier
}

// NewWriter creates a Writer. A nil notifier discards advisories.
func NewWriter(fs afero.Fs, notifier ui.Notifier) *Writer {
	if notifier == nil {
		notifier = ui.Discard
	}
	return &Writer{fs: fs, notifier: notifier}
}

// Advisory returns the extension notice for path, or "" when the path is fine
func Advisory(path string) string {
	if filepath.Ext(path) == types.ProvisioningFileExt {
		return ""
	}
	return fmt.Sprintf(MsgExtensionAdvisory, path)
}

// Write creates or truncates path and writes the collection as TSV.
// Parent directories are not created. A non-.txt path only produces a notice.
func (w *Writer) Write(collection types.DeviceCollection, path string) (err error) {
	logger := logging.GetLogger("devices.writer")

	if advisory := Advisory(path); advisory != "" {
		logger.Warn().
			Str("code", string(errors.ErrAdvisory)).
			Str("path", path).
			Msg("Devices file does not have the .txt extension")
		w.notifier.Important(advisory)
	}

	file, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Tag(err, errors.ErrFilesystem)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Tag(cerr, errors.ErrFilesystem)
		}
	}()

	if err := FormatTSV(file, collection); err != nil {
		return errors.Tag(err, errors.ErrFilesystem)
	}

	logger.Info().
		Str("path", path).
		Int("devices", collection.Len()).
		Msg("Wrote devices file")
	return nil
}

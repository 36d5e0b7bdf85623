package genconfig

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/appcenter-devices/pkg/errors"
	"github.com/arthur-debert/appcenter-devices/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		result, err := GenConfig(GenConfigOptions{FS: fs})

		require.NoError(t, err)
		assert.Contains(t, result.ConfigContent, "[appcenter]")
		assert.Contains(t, result.ConfigContent, "[devices]")
		assert.Contains(t, result.ConfigContent, `# devices_file = "devices.txt"`)
		assert.Empty(t, result.FilesWritten)

		// Every value is commented out
		for _, line := range strings.Split(result.ConfigContent, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
				(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
				continue
			}
			assert.Fail(t, "Found uncommented configuration line", "Line: %s", line)
		}
	})

	t.Run("write to path", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		path := filepath.Join("home", ".config", "appcenter-devices", "config.toml")

		result, err := GenConfig(GenConfigOptions{Write: true, Path: path, FS: fs})

		require.NoError(t, err)
		assert.Equal(t, []string{path}, result.FilesWritten)
		assert.Equal(t, result.ConfigContent, testutil.ReadMemFile(t, fs, path))
	})

	t.Run("existing file is kept", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "config.toml", []byte("[appcenter]\n"), 0644))

		result, err := GenConfig(GenConfigOptions{Write: true, Path: "config.toml", FS: fs})

		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)
		assert.Equal(t, "[appcenter]\n", testutil.ReadMemFile(t, fs, "config.toml"))
	})

	t.Run("write failure", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		_, err := GenConfig(GenConfigOptions{Write: true, Path: "config.toml", FS: fs})

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFilesystem))
	})
}

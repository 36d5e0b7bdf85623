package genconfig

import (
	"github.com/arthur-debert/appcenter-devices/pkg/config"
	"github.com/arthur-debert/appcenter-devices/pkg/errors"
	"github.com/arthur-debert/appcenter-devices/pkg/filesystem"
	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
	"github.com/spf13/afero"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Write writes the file instead of only returning its content
	Write bool

	// Path overrides the target file. Defaults to the XDG config location.
	Path string

	FS afero.Fs
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}

	target := opts.Path
	if target == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return result, errors.Wrap(err, errors.ErrFilesystem, "failed to locate config directory")
		}
		target = path
	}

	written, err := filesystem.WriteIfAbsent(opts.FS, target, []byte(result.ConfigContent), 0644)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFilesystem, "failed to write config to %s", target)
	}
	if !written {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		return result, nil
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}

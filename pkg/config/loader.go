package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/appcenter-devices/pkg/errors"
	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName is the directory name used under XDG_CONFIG_HOME
const AppName = "appcenter-devices"

// EnvPrefix is the prefix shared by all environment variables read by the loader
const EnvPrefix = "APPCENTER_"

// envKeys maps environment variables to config keys.
// Names follow the fastlane App Center plugin.
var envKeys = map[string]string{
	"APPCENTER_API_TOKEN":               "appcenter.api_token",
	"APPCENTER_OWNER_NAME":              "appcenter.owner_name",
	"APPCENTER_APP_NAME":                "appcenter.app_name",
	"APPCENTER_API_URL":                 "appcenter.api_url",
	"APPCENTER_TIMEOUT":                 "appcenter.timeout",
	"APPCENTER_DISTRIBUTE_DESTINATIONS": "devices.destinations",
	"APPCENTER_DEVICES_FILE":            "devices.devices_file",
	"APPCENTER_OUTPUT_DIR":              "devices.output_dir",
	"APPCENTER_PLATFORM":                "devices.platform",
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	// When empty the XDG config directories are searched.
	ConfigFile string

	// Overrides are flat config keys (e.g. "appcenter.app_name") set from flags.
	Overrides map[string]interface{}
}

// Load builds the configuration from defaults, config file, environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path := opts.ConfigFile
	if path == "" {
		path = FindConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Str("config", cfg.String()).Msg("Configuration loaded")
	return &cfg, nil
}

// FindConfigFile returns the first config file found in the XDG config
// directories, or an empty string
func FindConfigFile() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return path
		}
	}
	return ""
}

// DefaultConfigPath is where genconfig writes the config file
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(AppName, "config.toml"))
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

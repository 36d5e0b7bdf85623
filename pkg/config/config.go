package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/appcenter-devices/pkg/errors"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
)

// Config is the complete configuration of a fetch run
type Config struct {
	AppCenter AppCenter `koanf:"appcenter"`
	Devices   Devices   `koanf:"devices"`
}

// AppCenter holds API access settings
type AppCenter struct {
	APIURL    string        `koanf:"api_url"`
	Timeout   time.Duration `koanf:"timeout"`
	APIToken  string        `koanf:"api_token"`
	OwnerName string        `koanf:"owner_name"`
	AppName   string        `koanf:"app_name"`
}

// Devices holds what to fetch and where to write it
type Devices struct {
	Destinations string `koanf:"destinations"`
	DevicesFile  string `koanf:"devices_file"`
	OutputDir    string `koanf:"output_dir"`
	Platform     string `koanf:"platform"`
}

// Validate checks values that have a format. Required parameters are checked
// by the fetch command itself so it can report them by flag name.
func (c *Config) Validate() error {
	u, err := url.Parse(c.AppCenter.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Newf(errors.ErrConfigValid, "invalid api_url %q: must be an absolute URL", c.AppCenter.APIURL)
	}
	if c.AppCenter.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "invalid timeout %s: must be positive", c.AppCenter.Timeout)
	}
	return nil
}

// DevicesFilePath returns the output path, resolving relative devices files
// against the output directory. The devices file is kept as given when the
// output directory is the working directory.
func (c *Config) DevicesFilePath() string {
	file := strings.TrimSpace(c.Devices.DevicesFile)
	if file == "" {
		file = types.DefaultDevicesFile
	}
	dir := strings.TrimSpace(c.Devices.OutputDir)
	if dir == "" || dir == "." || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// FetchRequest builds the request for the fetch command
func (c *Config) FetchRequest() types.FetchRequest {
	return types.FetchRequest{
		APIToken:     strings.TrimSpace(c.AppCenter.APIToken),
		OwnerName:    strings.TrimSpace(c.AppCenter.OwnerName),
		AppName:      strings.TrimSpace(c.AppCenter.AppName),
		Destinations: strings.TrimSpace(c.Devices.Destinations),
		DevicesFile:  c.DevicesFilePath(),
		Platform:     types.ParsePlatform(c.Devices.Platform),
	}
}

// String renders the configuration with the API token masked
func (c *Config) String() string {
	token := "<unset>"
	if c.AppCenter.APIToken != "" {
		token = "<redacted>"
	}
	return fmt.Sprintf("api_url=%s timeout=%s api_token=%s owner_name=%s app_name=%s destinations=%q devices_file=%s platform=%s",
		c.AppCenter.APIURL, c.AppCenter.Timeout, token, c.AppCenter.OwnerName, c.AppCenter.AppName,
		c.Devices.Destinations, c.DevicesFilePath(), c.Devices.Platform)
}

// Package fetchdevices implements the fetch command: it resolves the requested
// distribution groups, downloads each group's devices one after another, merges
// them and writes the provisioning devices file.
package fetchdevices

import (
	"context"

	"github.com/arthur-debert/appcenter-devices/pkg/devices"
	"github.com/arthur-debert/appcenter-devices/pkg/errors"
	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
	"github.com/arthur-debert/appcenter-devices/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Parameter validation messages
const (
	MsgMissingAPIToken  = "No API token for App Center given, pass using `--api-token` or APPCENTER_API_TOKEN"
	MsgMissingOwnerName = "No Owner name for App Center given, pass using `--owner-name` or APPCENTER_OWNER_NAME"
	MsgMissingAppName   = "No App name given, pass using `--app-name` or APPCENTER_APP_NAME"
	MsgUnsupported      = "Platform %s is not supported, only %s device lists can be fetched"
)

// FetchDevicesOptions holds options for the fetch command
type FetchDevicesOptions struct {
	Request types.FetchRequest

	// API is the App Center client; no call is made before inputs are validated
	API devices.API

	// FS receives the devices file. Defaults to the OS filesystem.
	FS afero.Fs

	// Notifier receives progress and the extension advisory. Defaults to ui.Discard.
	Notifier ui.Notifier
}

// run carries the state of a single invocation
type run struct {
	opts   FetchDevicesOptions
	state  State
	logger zerolog.Logger
}

func (r *run) transition(next State) {
	r.logger.Debug().
		Str("from", r.state.String()).
		Str("state", next.String()).
		Msg("State transition")
	r.state = next
}

func (r *run) fail(err error) (*types.FetchDevicesResult, error) {
	r.transition(StateFailed)
	logFetchDevices(r.logger, r.opts, nil, err)
	return nil, err
}

// FetchDevices runs ValidatingInputs, ResolvingGroups, FetchingDevices, Merging and
// Writing in order. Any failure stops the run before the devices file is written.
func FetchDevices(ctx context.Context, opts FetchDevicesOptions) (*types.FetchDevicesResult, error) {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Notifier == nil {
		opts.Notifier = ui.Discard
	}
	if opts.Request.DevicesFile == "" {
		opts.Request.DevicesFile = types.DefaultDevicesFile
	}

	r := &run{
		opts:   opts,
		state:  StateValidatingInputs,
		logger: logging.GetLogger("commands.fetchdevices"),
	}
	defer logging.LogOperationStart(r.logger, "fetch-devices")()

	req := opts.Request

	if err := validate(req); err != nil {
		return r.fail(err)
	}
	if opts.API == nil {
		return r.fail(errors.New(errors.ErrInternal, "no App Center client configured"))
	}

	r.transition(StateResolvingGroups)
	groups, err := devices.ResolveGroups(ctx, opts.API, req.Destinations, req.OwnerName, req.AppName)
	if err != nil {
		return r.fail(errors.Tag(err, errors.ErrTransport))
	}

	r.transition(StateFetchingDevices)
	result := &types.FetchDevicesResult{
		Groups:      make([]types.GroupResult, 0, len(groups)),
		DevicesFile: req.DevicesFile,
	}
	fetched := make([][]types.Device, 0, len(groups))
	for _, group := range groups {
		opts.Notifier.Info("Fetching devices of distribution group " + group)
		list, err := devices.Fetch(ctx, opts.API, req.OwnerName, req.AppName, group)
		if err != nil {
			return r.fail(errors.Tag(err, errors.ErrTransport))
		}
		fetched = append(fetched, list)
		result.Groups = append(result.Groups, types.GroupResult{Name: group, Devices: len(list)})
	}

	r.transition(StateMerging)
	result.Devices = devices.Merge(fetched...)

	r.transition(StateWriting)
	if advisory := devices.Advisory(req.DevicesFile); advisory != "" {
		result.Advisories = append(result.Advisories, advisory)
	}
	if err := devices.NewWriter(opts.FS, opts.Notifier).Write(result.Devices, req.DevicesFile); err != nil {
		return r.fail(err)
	}

	r.transition(StateDone)
	logFetchDevices(r.logger, opts, result, nil)
	return result, nil
}

// validate checks required parameters in a fixed order so the first missing one is reported
func validate(req types.FetchRequest) error {
	switch {
	case req.APIToken == "":
		return errors.New(errors.ErrParameterMissing, MsgMissingAPIToken).WithDetail("parameter", "api_token")
	case req.OwnerName == "":
		return errors.New(errors.ErrParameterMissing, MsgMissingOwnerName).WithDetail("parameter", "owner_name")
	case req.AppName == "":
		return errors.New(errors.ErrParameterMissing, MsgMissingAppName).WithDetail("parameter", "app_name")
	}

	platform := req.Platform
	if platform == "" {
		platform = types.PlatformIOS
	}
	if !platform.IsSupported() {
		return errors.Newf(errors.ErrInvalidInput, MsgUnsupported, platform, types.PlatformIOS)
	}
	return nil
}

// logFetchDevices logs the fetch command execution
func logFetchDevices(logger zerolog.Logger, opts FetchDevicesOptions, result *types.FetchDevicesResult, err error) {
	event := logger.Info()
	if err != nil {
		event = logger.Error().Err(err).Str("code", string(errors.GetErrorCode(err)))
	}

	event.
		Str("command", "fetch").
		Str("owner", opts.Request.OwnerName).
		Str("app", opts.Request.AppName).
		Str("destinations", opts.Request.Destinations)

	if result != nil {
		event.
			Int("groups", len(result.Groups)).
			Int("fetched", result.TotalFetched()).
			Int("unique", result.Devices.Len()).
			Str("devices_file", result.DevicesFile)
	}

	if err != nil {
		event.Msg("Fetch command failed")
	} else {
		event.Msg("Fetch command completed")
	}
}

// pkg/commands/fetchdevices/fetchdevices_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: httptest App Center stub, afero memory filesystem
// PURPOSE: Test the fetch command end to end against a fake App Center

package fetchdevices

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/arthur-debert/appcenter-devices/pkg/appcenter"
	"github.com/arthur-debert/appcenter-devices/pkg/errors"
	"github.com/arthur-debert/appcenter-devices/pkg/testutil"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
	"github.com/arthur-debert/appcenter-devices/pkg/ui"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	d1 = types.Device{ID: "1234567890abcdefghij1234567890abcdefghij", Name: "Device 1 - iPhone X"}
	d2 = types.Device{ID: "abcdefghij1234567890abcdefghij1234567890", Name: "Device 2 - iPhone XS"}
	d3 = types.Device{ID: "0000000000aaaaaaaaaa0000000000aaaaaaaaaa", Name: "Device 3 - iPad"}
)

type fixture struct {
	server   *testutil.AppCenterServer
	fs       afero.Fs
	recorder *ui.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	server := testutil.NewAppCenterServer(t, "owner", "app")
	server.SetGroups("Collaborators", "test-group-1", "test group 2")
	return &fixture{
		server:   server,
		fs:       afero.NewMemMapFs(),
		recorder: &ui.Recorder{},
	}
}

func (f *fixture) run(t *testing.T, req types.FetchRequest) (*types.FetchDevicesResult, error) {
	t.Helper()
	client, err := appcenter.NewClient(appcenter.Config{BaseURL: f.server.URL, APIToken: req.APIToken})
	require.NoError(t, err)

	return FetchDevices(context.Background(), FetchDevicesOptions{
		Request:  req,
		API:      client,
		FS:       f.fs,
		Notifier: f.recorder,
	})
}

func validRequest() types.FetchRequest {
	return types.FetchRequest{
		APIToken:  testutil.TestToken,
		OwnerName: "owner",
		AppName:   "app",
	}
}

func readDevicesFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	return strings.ReplaceAll(testutil.ReadMemFile(t, fs, path), "\r\n", "\n")
}

func TestFetchDevices_MissingParameters(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		owner   string
		app     string
		wantMsg string
	}{
		{"no api token", "", "owner", "app", MsgMissingAPIToken},
		{"no owner name", "xxx", "", "app", MsgMissingOwnerName},
		{"no app name", "xxx", "owner", "", MsgMissingAppName},
		{"no token and owner", "", "", "app", MsgMissingAPIToken},
		{"no token and app", "", "owner", "", MsgMissingAPIToken},
		{"no owner and app", "xxx", "", "", MsgMissingOwnerName},
		{"nothing", "", "", "", MsgMissingAPIToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			result, err := f.run(t, types.FetchRequest{
				APIToken:    tt.token,
				OwnerName:   tt.owner,
				AppName:     tt.app,
				DevicesFile: "test.txt",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, errors.IsErrorCode(err, errors.ErrParameterMissing))
			assert.Empty(t, f.server.Calls(), "no network activity before validation")
			testutil.AssertNoFile(t, f.fs, "test.txt")
		})
	}
}

func TestFetchDevices_DefaultGroup(t *testing.T) {
	f := newFixture(t)
	f.server.SetDevices("Collaborators", d1, d2)

	result, err := f.run(t, validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{f.server.DevicesPath("Collaborators")}, f.server.Calls())
	assert.Equal(t, 0, f.server.CallCount(f.server.GroupsPath()))
	assert.Equal(t, types.DefaultDevicesFile, result.DevicesFile)
	assert.Equal(t, types.DeviceCollection{d1, d2}, result.Devices)
	assert.Equal(t,
		"Device ID\tDevice Name\n"+d1.ID+"\t"+d1.Name+"\n"+d2.ID+"\t"+d2.Name+"\n",
		readDevicesFile(t, f.fs, "devices.txt"))
	assert.Empty(t, f.recorder.Texts(ui.LevelImportant))
}

func TestFetchDevices_AllGroups(t *testing.T) {
	f := newFixture(t)
	f.server.SetDevices("Collaborators", d1, d2)
	f.server.SetDevices("test-group-1", d2, d3)
	f.server.SetExport("test group 2", "Device ID\tDevice Name\n")

	req := validRequest()
	req.Destinations = types.AllGroups
	result, err := f.run(t, req)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/apps/owner/app/distribution_groups",
		"/apps/owner/app/distribution_groups/Collaborators/devices/download_devices_list",
		"/apps/owner/app/distribution_groups/test-group-1/devices/download_devices_list",
		"/apps/owner/app/distribution_groups/test%20group%202/devices/download_devices_list",
	}, f.server.Calls(), "one fetch per group, in catalog order")

	assert.Equal(t, types.DeviceCollection{d1, d2, d3}, result.Devices)
	assert.Equal(t, []types.GroupResult{
		{Name: "Collaborators", Devices: 2},
		{Name: "test-group-1", Devices: 2},
		{Name: "test group 2", Devices: 0},
	}, result.Groups)
	assert.Equal(t, 1, result.Duplicates())

	content := readDevicesFile(t, f.fs, "devices.txt")
	assert.Equal(t, 1, strings.Count(content, d2.ID), "shared device written once")
	assert.Equal(t, 4, strings.Count(content, "\n"))
}

func TestFetchDevices_SingleNamedGroup(t *testing.T) {
	f := newFixture(t)
	f.server.SetDevices("test group 2", d3)

	req := validRequest()
	req.Destinations = "test group 2"
	result, err := f.run(t, req)
	require.NoError(t, err)

	assert.Equal(t, []string{f.server.DevicesPath("test group 2")}, f.server.Calls())
	assert.Equal(t, types.DeviceCollection{d3}, result.Devices)
}

func TestFetchDevices_DevicesFileNames(t *testing.T) {
	tests := []struct {
		name         string
		devicesFile  string
		wantAdvisory string
	}{
		{
			name:        "custom name",
			devicesFile: "custom-name.txt",
		},
		{
			name:         "wrong extension",
			devicesFile:  "./test.abc",
			wantAdvisory: "Important: Devices file is ./test.abc. If you plan to upload this file to Apple Developer Center, the file must have the .txt extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.server.SetDevices("Collaborators", d1)
			f.server.SetDevices("test-group-1", d2)

			req := validRequest()
			req.Destinations = types.AllGroups
			req.DevicesFile = tt.devicesFile
			result, err := f.run(t, req)
			require.NoError(t, err)

			assert.Equal(t, tt.devicesFile, result.DevicesFile)
			content := readDevicesFile(t, f.fs, tt.devicesFile)
			assert.True(t, strings.HasPrefix(content, "Device ID\tDevice Name\n"))
			assert.Contains(t, content, d1.ID+"\t"+d1.Name+"\n")
			assert.Contains(t, content, d2.ID+"\t"+d2.Name+"\n")

			if tt.wantAdvisory == "" {
				assert.Empty(t, f.recorder.Texts(ui.LevelImportant))
				assert.Empty(t, result.Advisories)
			} else {
				assert.Equal(t, []string{tt.wantAdvisory}, f.recorder.Texts(ui.LevelImportant))
				assert.Equal(t, []string{tt.wantAdvisory}, result.Advisories)
			}
		})
	}
}

func TestFetchDevices_TransportFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.server.SetDevices("Collaborators", d1)
	f.server.FailPath(f.server.DevicesPath("test-group-1"), http.StatusInternalServerError)

	req := validRequest()
	req.Destinations = types.AllGroups
	result, err := f.run(t, req)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, errors.ErrTransport, errors.GetErrorCode(err))

	var statusErr *appcenter.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, statusErr.Error(), err.Error(), "transport errors are propagated verbatim")

	assert.Equal(t, 0, f.server.CallCount(f.server.DevicesPath("test group 2")), "fetching stops at the first failure")
	testutil.AssertNoFile(t, f.fs, types.DefaultDevicesFile)
}

func TestFetchDevices_Unauthorized(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.APIToken = "revoked"
	req.Destinations = types.AllGroups
	_, err := f.run(t, req)

	var statusErr *appcenter.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.True(t, statusErr.IsUnauthorized())
	assert.Equal(t, []string{f.server.GroupsPath()}, f.server.Calls(), "no retry")
	testutil.AssertNoFile(t, f.fs, types.DefaultDevicesFile)
}

func TestFetchDevices_UnknownGroup(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Destinations = "no such group"
	_, err := f.run(t, req)

	require.Error(t, err)
	assert.Equal(t, errors.ErrTransport, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "appcenter api error 404")
}

func TestFetchDevices_FilesystemFailure(t *testing.T) {
	f := newFixture(t)
	f.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := f.run(t, validRequest())

	require.Error(t, err)
	assert.Equal(t, errors.ErrFilesystem, errors.GetErrorCode(err))
}

func TestFetchDevices_UnsupportedPlatform(t *testing.T) {
	for _, platform := range []types.Platform{types.PlatformAndroid, types.PlatformMac} {
		t.Run(platform.String(), func(t *testing.T) {
			f := newFixture(t)

			req := validRequest()
			req.Platform = platform
			_, err := f.run(t, req)

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Empty(t, f.server.Calls())
		})
	}
}

func TestFetchDevices_NoClient(t *testing.T) {
	_, err := FetchDevices(context.Background(), FetchDevicesOptions{
		Request: validRequest(),
		FS:      afero.NewMemMapFs(),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(err))
}

func TestValidate_ChecksInOrder(t *testing.T) {
	err := validate(types.FetchRequest{})
	require.Error(t, err)
	assert.Equal(t, "api_token", errors.GetErrorDetails(err)["parameter"])

	assert.NoError(t, validate(validRequest()))
}

func TestState(t *testing.T) {
	assert.Equal(t, "resolving_groups", StateResolvingGroups.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(99).String())
}

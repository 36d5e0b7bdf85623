package devices

import (
	"context"
	"errors"
	"testing"

	"github.com/arthur-debert/appcenter-devices/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory API recording calls
type fakeAPI struct {
	groups    []types.DistributionGroup
	groupsErr error
	exports   map[string]string
	exportErr map[string]error

	groupCalls  int
	exportCalls []string
}

func (f *fakeAPI) DistributionGroups(_ context.Context, _, _ string) ([]types.DistributionGroup, error) {
	f.groupCalls++
	return f.groups, f.groupsErr
}

func (f *fakeAPI) DownloadDevicesList(_ context.Context, _, _, group string) ([]byte, error) {
	f.exportCalls = append(f.exportCalls, group)
	if err := f.exportErr[group]; err != nil {
		return nil, err
	}
	return []byte(f.exports[group]), nil
}

func TestResolveGroups(t *testing.T) {
	catalog := []types.DistributionGroup{
		{Name: "Collaborators"},
		{Name: "test-group-1"},
		{Name: "test group 2"},
	}

	tests := []struct {
		name          string
		selector      string
		want          []string
		wantListCalls int
	}{
		{"empty selector means default group", "", []string{"Collaborators"}, 0},
		{"whitespace selector means default group", "   ", []string{"Collaborators"}, 0},
		{"wildcard lists all groups in service order", "*", []string{"Collaborators", "test-group-1", "test group 2"}, 1},
		{"literal group name", "test group 2", []string{"test group 2"}, 0},
		{"literal name is not escaped", "QA%20Team", []string{"QA%20Team"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{groups: catalog}

			got, err := ResolveGroups(context.Background(), api, tt.selector, "owner", "app")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantListCalls, api.groupCalls)
		})
	}
}

func TestResolveGroups_EmptyCatalog(t *testing.T) {
	api := &fakeAPI{}

	got, err := ResolveGroups(context.Background(), api, "*", "owner", "app")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveGroups_PropagatesError(t *testing.T) {
	boom := errors.New("appcenter api error 401: Unauthorized")
	api := &fakeAPI{groupsErr: boom}

	_, err := ResolveGroups(context.Background(), api, "*", "owner", "app")
	assert.Same(t, boom, err)
	assert.Equal(t, 1, api.groupCalls, "no retry")
}

package devices

import (
	"context"

	"github.com/arthur-debert/appcenter-devices/pkg/types"
)

// GroupLister lists the distribution groups of an app
type GroupLister interface {
	DistributionGroups(ctx context.Context, owner, app string) ([]types.DistributionGroup, error)
}

// Exporter downloads the raw device export of one distribution group
type Exporter interface {
	DownloadDevicesList(ctx context.Context, owner, app, group string) ([]byte, error)
}

// API is the part of the App Center client a fetch needs.
// *appcenter.Client satisfies it.
type API interface {
	GroupLister
	Exporter
}

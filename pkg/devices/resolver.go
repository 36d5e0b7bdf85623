package devices

import (
	"context"
	"strings"

	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
)

// ResolveGroups returns the group names to query for a destination selector.
// An empty selector means the implicit Collaborators group and "*" means every
// group of the app, in the order App Center returns them. Anything else is a
// single literal group name. The API is only called for "*".
func ResolveGroups(ctx context.Context, lister GroupLister, selector, owner, app string) ([]string, error) {
	logger := logging.GetLogger("devices.resolver")

	switch strings.TrimSpace(selector) {
	case "":
		return []string{types.DefaultGroup}, nil
	case types.AllGroups:
		groups, err := lister.DistributionGroups(ctx, owner, app)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			names = append(names, g.Name)
		}
		logger.Debug().Strs("groups", names).Msg("Resolved all distribution groups")
		return names, nil
	default:
		return []string{selector}, nil
	}
}

package types

// FetchRequest holds the parameters of a single fetch-devices invocation.
type FetchRequest struct {
	APIToken     string
	OwnerName    string
	AppName      string
	Destinations string // group name, "*" for all groups, empty for the default group
	DevicesFile  string
	Platform     Platform
}

package model

type ApplicationID = string

// CleanupOptions selects the retention strategy for an application. At most
// one strategy applies per run, OnlyRemoveReleasesOlderThan wins when both
// are set.
type CleanupOptions struct {
	KeepReleases                *int
	OnlyRemoveReleasesOlderThan string
}

func (options CleanupOptions) Configured() bool {
	return options.KeepReleases != nil || options.OnlyRemoveReleasesOlderThan != ""
}

type Application struct {
	ID           ApplicationID
	Node         NodeID
	ReleasesPath string
	Options      CleanupOptions
}

type Project struct {
	Nodes        map[NodeID]Node
	Applications []Application
}

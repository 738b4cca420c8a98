package model

// Deployment is the context of a single run. ReleaseIdentifier names the
// release currently being deployed, a dry run records mutations instead of
// applying them.
type Deployment struct {
	ReleaseIdentifier string
	DryRun            bool
}

package main

import (
	stdcontext "context"
)

// simulate behaves exactly like cleanup with the dry run flag forced on, the
// executor records intended mutations instead of applying them.
func simulate(ctx stdcontext.Context, applicationID string, releaseIdentifier string) error {
	return cleanup(ctx, applicationID, releaseIdentifier, true)
}

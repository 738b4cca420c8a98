package service

import (
	"sort"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
)

// ComputeRemovable selects the releases eligible for deletion. The current
// and previous releases and the symlink pseudo entries are never selected.
// OnlyRemoveReleasesOlderThan wins over KeepReleases when both are set, with
// neither set every release is kept.
//
// Under the age strategy an identifier that does not encode a timestamp
// aborts the run with a ParseError instead of being silently kept or removed.
func ComputeRemovable(
	timeSource TimeSource,
	allReleases []string,
	currentIdentifier string,
	previousIdentifier string,
	options model.CleanupOptions,
) ([]string, error) {
	candidates := excludeProtected(allReleases, currentIdentifier, previousIdentifier)
	if options.OnlyRemoveReleasesOlderThan != "" {
		return removableByAge(timeSource, candidates, options.OnlyRemoveReleasesOlderThan)
	}
	if options.KeepReleases != nil {
		return removableByCount(candidates, *options.KeepReleases)
	}
	return nil, nil
}

func excludeProtected(allReleases []string, currentIdentifier, previousIdentifier string) []string {
	protected := map[string]struct{}{
		".":                {},
		"current":          {},
		"previous":         {},
		currentIdentifier:  {},
		previousIdentifier: {},
	}
	candidates := make([]string, 0, len(allReleases))
	for _, release := range allReleases {
		if _, ok := protected[release]; ok {
			continue
		}
		candidates = append(candidates, release)
	}
	return candidates
}

// removableByAge keeps every candidate whose age does not exceed the
// threshold. A candidate as old as the threshold is kept.
func removableByAge(timeSource TimeSource, candidates []string, olderThan string) ([]string, error) {
	now := timeSource.CurrentTime()
	reference, err := timeSource.StringToTime(olderThan)
	if err != nil {
		return nil, err
	}
	threshold := now.Sub(reference)
	removable := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		createdAt, err := timeSource.ParseReleaseTime(candidate)
		if err != nil {
			return nil, err
		}
		if now.Sub(createdAt) > threshold {
			removable = append(removable, candidate)
		}
	}
	return removable, nil
}

// removableByCount selects all but the keepReleases newest candidates,
// oldest first. Identifiers encode their creation time, so the lexicographic
// order is the chronological order.
func removableByCount(candidates []string, keepReleases int) ([]string, error) {
	if keepReleases < 0 {
		return nil, model.ConfigurationError{
			Option: "keepReleases",
			Reason: "must not be negative",
		}
	}
	if keepReleases >= len(candidates) {
		return nil, nil
	}
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)
	return sorted[:len(sorted)-keepReleases], nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
)

// RevisionFileSuffix is appended to a release identifier to name the marker
// file written next to the release directory.
const RevisionFileSuffix = "REVISION"

type Command struct {
	Executable string
	Args       []string
}

type Executor interface {
	// Query runs a read-only command on the node and returns captured output.
	Query(ctx context.Context, node model.Node, command Command) (string, error)
	// ActOrSimulate runs a mutating command, unless the deployment is a dry
	// run, in which case the command is only recorded.
	ActOrSimulate(ctx context.Context, node model.Node, deployment model.Deployment, command Command) error
}

type ReleaseLister interface {
	// ListReleases enumerates the release directories of the application on
	// the node, in discovery order, and resolves the previous symlink to its
	// target's base name. previous is empty if the symlink does not exist.
	ListReleases(ctx context.Context, node model.Node, application model.Application) (releases []string, previous string, err error)
}

type TimeSource interface {
	CurrentTime() time.Time
	// StringToTime resolves a relative expression like "121 seconds ago"
	// against the current time.
	StringToTime(spec string) (time.Time, error)
	// ParseReleaseTime parses a release identifier as the timestamp it
	// encodes.
	ParseReleaseTime(identifier string) (time.Time, error)
}

type ReleaseCleaner interface {
	Cleanup(ctx context.Context, node model.Node, application model.Application, deployment model.Deployment) error
}

func NewReleaseCleaner(
	logger applogger.Logger,
	timeSource TimeSource,
	lister ReleaseLister,
	executor Executor,
) ReleaseCleaner {
	return &releaseCleaner{
		logger:     logger,
		timeSource: timeSource,
		lister:     lister,
		executor:   executor,
	}
}

type releaseCleaner struct {
	logger     applogger.Logger
	timeSource TimeSource
	lister     ReleaseLister
	executor   Executor
}

// Cleanup removes the releases of the application that fall outside the
// configured retention. Without retention options it returns without touching
// the node. Removal is not transactional: a failure midway leaves the
// remaining releases in place.
func (cleaner releaseCleaner) Cleanup(
	ctx context.Context,
	node model.Node,
	application model.Application,
	deployment model.Deployment,
) error {
	if !application.Options.Configured() {
		cleaner.logger.Info(fmt.Sprintf(
			"%v all releases for application \"%v\"",
			verb(deployment, "Would keep", "Keeping"), application.ID,
		))
		return nil
	}
	releases, previous, err := cleaner.lister.ListReleases(ctx, node, application)
	if err != nil {
		return err
	}
	removable, err := ComputeRemovable(
		cleaner.timeSource,
		releases,
		deployment.ReleaseIdentifier,
		previous,
		application.Options,
	)
	if err != nil {
		return err
	}
	if len(removable) == 0 {
		cleaner.logger.Info(fmt.Sprintf("no releases to remove for application \"%v\"", application.ID))
		return nil
	}
	cleaner.logger.Info(fmt.Sprintf(
		"%v %v releases for application \"%v\": %v",
		verb(deployment, "Would remove", "Removing"), len(removable), application.ID,
		strings.Join(removable, ", "),
	))
	return cleaner.executor.ActOrSimulate(ctx, node, deployment, removeCommand(application, removable))
}

// removeCommand builds one composite command deleting every removable release
// directory and its revision marker file. Identifiers come from the node and
// are passed as discrete arguments, never interpolated into a shell line.
// Absent targets are tolerated.
func removeCommand(application model.Application, removable []string) Command {
	args := make([]string, 0, 2+len(removable)*2)
	args = append(args, "-rf", "--")
	for _, identifier := range removable {
		releasePath := application.ReleasesPath + "/" + identifier
		args = append(args, releasePath, releasePath+RevisionFileSuffix)
	}
	return Command{Executable: "rm", Args: args}
}

func verb(deployment model.Deployment, wouldVerb, plainVerb string) string {
	if deployment.DryRun {
		return wouldVerb
	}
	return plainVerb
}

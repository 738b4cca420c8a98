package dependency

import (
	"context"
	"errors"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
	"github.com/DanielSiepmann/Surf/pkg/surf/application/service"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/clock"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/command"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/release"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/shell"
)

var dependencyContainer = struct{}{}

type Container interface {
	Project() model.Project
	ReleaseCleaner() service.ReleaseCleaner
}

func NewDependencyContainer(
	logger applogger.Logger,
	project model.Project,
) Container {
	runner := command.NewCommandRunner(logger)
	executor := shell.NewLocalShellExecutor(logger, runner)
	lister := release.NewLister(executor)
	timeSource := clock.NewSystemTimeSource()
	releaseCleaner := service.NewReleaseCleaner(logger, timeSource, lister, executor)

	return &container{
		project:        project,
		releaseCleaner: releaseCleaner,
	}
}

type container struct {
	project        model.Project
	releaseCleaner service.ReleaseCleaner
}

func (c *container) Project() model.Project {
	return c.project
}

func (c *container) ReleaseCleaner() service.ReleaseCleaner {
	return c.releaseCleaner
}

func ContainerFromContext(ctx context.Context) (Container, error) {
	v := ctx.Value(dependencyContainer)
	if c, ok := v.(Container); ok {
		return c, nil
	}
	return nil, errors.New("dependency container not found")
}

func ContainerToContext(ctx context.Context, c Container) context.Context {
	return context.WithValue(ctx, dependencyContainer, c)
}

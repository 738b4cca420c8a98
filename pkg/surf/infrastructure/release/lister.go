package release

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
	"github.com/DanielSiepmann/Surf/pkg/surf/application/service"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/shell"
)

func NewLister(executor service.Executor) service.ReleaseLister {
	return &lister{
		executor: executor,
	}
}

type lister struct {
	executor service.Executor
}

func (l lister) ListReleases(
	ctx context.Context,
	node model.Node,
	application model.Application,
) ([]string, string, error) {
	releases, err := l.listReleaseDirectories(ctx, node, application)
	if err != nil {
		return nil, "", err
	}
	previous, err := l.resolvePrevious(ctx, node, application)
	if err != nil {
		return nil, "", err
	}
	return releases, previous, nil
}

// listReleaseDirectories enumerates the immediate subdirectories of the
// releases path. A missing releases path yields an empty list, the guard
// keeps the query from exiting non-zero in that case.
func (l lister) listReleaseDirectories(
	ctx context.Context,
	node model.Node,
	application model.Application,
) ([]string, error) {
	quoted := shell.Quote(application.ReleasesPath)
	script := fmt.Sprintf(
		"if test -d %v; then find %v -mindepth 1 -maxdepth 1 -type d; fi",
		quoted, quoted,
	)
	output, err := l.executor.Query(ctx, node, service.Command{
		Executable: "sh",
		Args:       []string{"-c", script},
	})
	if err != nil {
		return nil, err
	}
	var releases []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		releases = append(releases, path.Base(line))
	}
	return releases, nil
}

func (l lister) resolvePrevious(
	ctx context.Context,
	node model.Node,
	application model.Application,
) (string, error) {
	quoted := shell.Quote(application.ReleasesPath + "/previous")
	script := fmt.Sprintf("if test -h %v; then readlink %v; fi", quoted, quoted)
	output, err := l.executor.Query(ctx, node, service.Command{
		Executable: "sh",
		Args:       []string{"-c", script},
	})
	if err != nil {
		return "", err
	}
	target := strings.TrimSpace(output)
	if target == "" {
		return "", nil
	}
	return path.Base(target), nil
}

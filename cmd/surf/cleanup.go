package main

import (
	stdcontext "context"
	"errors"
	"fmt"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/dependency"
)

func cleanup(ctx stdcontext.Context, applicationID string, releaseIdentifier string, dryRun bool) error {
	if releaseIdentifier == "" {
		return errors.New("release identifier not provided")
	}
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	project := dependencyContainer.Project()
	deployment := model.Deployment{
		ReleaseIdentifier: releaseIdentifier,
		DryRun:            dryRun,
	}
	found := false
	for _, application := range project.Applications {
		if applicationID != "" && application.ID != applicationID {
			continue
		}
		found = true
		err = dependencyContainer.ReleaseCleaner().Cleanup(ctx, project.Nodes[application.Node], application, deployment)
		if err != nil {
			return err
		}
	}
	if applicationID != "" && !found {
		return fmt.Errorf("application with id %v not found", applicationID)
	}
	return nil
}

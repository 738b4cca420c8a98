package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
)

type Node struct {
	Host string `json:"host"`
}

type Application struct {
	Node                        string `json:"node"`
	ReleasesPath                string `json:"releasesPath"`
	KeepReleases                *int   `json:"keepReleases,omitempty"`
	OnlyRemoveReleasesOlderThan string `json:"onlyRemoveReleasesOlderThan,omitempty"`
}

type Config struct {
	Nodes        map[string]Node        `json:"nodes"`
	Applications map[string]Application `json:"applications"`
}

func Load(filePath string) (model.Project, error) {
	configBody, err := os.ReadFile(filePath)
	if err != nil {
		return model.Project{}, errors.Wrapf(err, "failed to read config file: %v", filePath)
	}
	var config Config
	err = json.Unmarshal(configBody, &config)
	if err != nil {
		return model.Project{}, errors.Wrap(err, "failed to unmarshal config")
	}
	err = assertApplications(config)
	if err != nil {
		return model.Project{}, err
	}
	return MapToProject(config), nil
}

func MapToProject(config Config) model.Project {
	nodes := make(map[model.NodeID]model.Node, len(config.Nodes))
	for nodeID, node := range config.Nodes {
		nodes[nodeID] = model.Node{
			ID:   nodeID,
			Host: node.Host,
		}
	}

	applications := make([]model.Application, 0, len(config.Applications))
	for applicationID, application := range config.Applications {
		applications = append(applications, model.Application{
			ID:           applicationID,
			Node:         application.Node,
			ReleasesPath: application.ReleasesPath,
			Options: model.CleanupOptions{
				KeepReleases:                application.KeepReleases,
				OnlyRemoveReleasesOlderThan: application.OnlyRemoveReleasesOlderThan,
			},
		})
	}
	sort.Slice(applications, func(i, j int) bool {
		return applications[i].ID < applications[j].ID
	})

	return model.Project{
		Nodes:        nodes,
		Applications: applications,
	}
}

func assertApplications(config Config) error {
	for applicationID, application := range config.Applications {
		if _, ok := config.Nodes[application.Node]; !ok {
			return fmt.Errorf("unexpected node %v for application %v", application.Node, applicationID)
		}
		if application.ReleasesPath == "" {
			return fmt.Errorf("releases path for application %v is empty", applicationID)
		}
	}
	return nil
}

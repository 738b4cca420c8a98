package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "surf.json")
	require.NoError(t, os.WriteFile(filePath, []byte(body), 0o600))
	return filePath
}

func TestLoad(t *testing.T) {
	filePath := writeConfig(t, `{
		"nodes": {
			"web1": {"host": "localhost"}
		},
		"applications": {
			"shop": {
				"node": "web1",
				"releasesPath": "/var/www/shop/releases",
				"keepReleases": 3
			},
			"blog": {
				"node": "web1",
				"releasesPath": "/var/www/blog/releases",
				"onlyRemoveReleasesOlderThan": "14 days ago"
			}
		}
	}`)

	project, err := Load(filePath)
	require.NoError(t, err)

	assert.Equal(t, "localhost", project.Nodes["web1"].Host)
	assert.Equal(t, "web1", project.Nodes["web1"].ID)

	require.Len(t, project.Applications, 2)
	blog, shop := project.Applications[0], project.Applications[1]

	assert.Equal(t, "blog", blog.ID)
	assert.Equal(t, "14 days ago", blog.Options.OnlyRemoveReleasesOlderThan)
	assert.Nil(t, blog.Options.KeepReleases)

	assert.Equal(t, "shop", shop.ID)
	assert.Equal(t, "/var/www/shop/releases", shop.ReleasesPath)
	require.NotNil(t, shop.Options.KeepReleases)
	assert.Equal(t, 3, *shop.Options.KeepReleases)
	assert.Empty(t, shop.Options.OnlyRemoveReleasesOlderThan)
}

func TestLoadWithoutRetentionOptions(t *testing.T) {
	filePath := writeConfig(t, `{
		"nodes": {"web1": {"host": "localhost"}},
		"applications": {
			"shop": {"node": "web1", "releasesPath": "/var/www/shop/releases"}
		}
	}`)

	project, err := Load(filePath)
	require.NoError(t, err)
	require.Len(t, project.Applications, 1)
	assert.False(t, project.Applications[0].Options.Configured())
}

func TestLoadRejectsUnknownNodeReference(t *testing.T) {
	filePath := writeConfig(t, `{
		"nodes": {"web1": {"host": "localhost"}},
		"applications": {
			"shop": {"node": "web2", "releasesPath": "/var/www/shop/releases"}
		}
	}`)

	_, err := Load(filePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected node web2")
}

func TestLoadRejectsEmptyReleasesPath(t *testing.T) {
	filePath := writeConfig(t, `{
		"nodes": {"web1": {"host": "localhost"}},
		"applications": {
			"shop": {"node": "web1"}
		}
	}`)

	_, err := Load(filePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "releases path for application shop is empty")
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFailsOnMalformedJSON(t *testing.T) {
	filePath := writeConfig(t, "{")

	_, err := Load(filePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

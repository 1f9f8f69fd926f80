package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDatasetDefault(t *testing.T) {
	dataset, err := loadDataset("")
	require.NoError(t, err)
	require.NotEmpty(t, dataset.Users)

	demo := dataset.Users[0]
	assert.Equal(t, "demo@planwise.io", demo.Email)
	assert.NotEmpty(t, demo.Password)
	assert.NotEmpty(t, demo.Events)
	require.NotNil(t, demo.Settings)
	require.NotNil(t, demo.Settings.MarketingEmails)
	assert.True(t, *demo.Settings.MarketingEmails)
}

func TestLoadDatasetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - email: alice@example.com
    name: Alice
    password: secret-pass
    events:
      - title: Lunch
        in_hours: 2.5
`), 0o600))

	dataset, err := loadDataset(path)
	require.NoError(t, err)
	require.Len(t, dataset.Users, 1)
	assert.Equal(t, "alice@example.com", dataset.Users[0].Email)
	require.Len(t, dataset.Users[0].Events, 1)
	assert.Equal(t, 2.5, dataset.Users[0].Events[0].InHours)
}

func TestLoadDatasetRejectsIncompleteUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - email: nopass@example.com
`), 0o600))

	_, err := loadDataset(path)
	assert.Error(t, err)
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := loadDataset("/nonexistent/seed.yaml")
	assert.Error(t, err)
}

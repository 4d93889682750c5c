package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectIDMissingFile(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), ".agent_state.json"))

	projectID, err := svc.ProjectID()
	require.NoError(t, err)
	assert.Empty(t, projectID)
}

func TestSelectProjectRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".agent_state.json")
	svc := NewService(path)

	require.NoError(t, svc.SelectProject("my-project-123"))

	projectID, err := svc.ProjectID()
	require.NoError(t, err)
	assert.Equal(t, "my-project-123", projectID)
}

func TestSelectProjectOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".agent_state.json")
	svc := NewService(path)

	require.NoError(t, svc.SelectProject("first"))
	require.NoError(t, svc.SelectProject("second"))

	projectID, err := svc.ProjectID()
	require.NoError(t, err)
	assert.Equal(t, "second", projectID)
}

func TestStateFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".agent_state.json")
	svc := NewService(path)

	require.NoError(t, svc.SelectProject("my-project-123"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_id":"my-project-123"}`, string(data))
}

func TestProjectIDCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".agent_state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewService(path).ProjectID()
	assert.Error(t, err)
}

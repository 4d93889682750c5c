// Package state persists the currently selected project id between runs as a
// single-record JSON file.
package state

import (
	"encoding/json"
	"fmt"
	"os"
)

const defaultStateFile = ".agent_state.json"

type record struct {
	ProjectID string `json:"project_id"`
}

func NewService(path string) *service {
	if path == "" {
		path = defaultStateFile
	}
	return &service{path: path}
}

// ProjectID implements service.StateService
// Returns an empty string when no project has been selected yet.
func (s *service) ProjectID() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read state file: %w", err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return "", fmt.Errorf("failed to parse state file: %w", err)
	}
	return r.ProjectID, nil
}

// SelectProject implements service.StateService
func (s *service) SelectProject(projectID string) error {
	data, err := json.Marshal(record{ProjectID: projectID})
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

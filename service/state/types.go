package state

type service struct {
	path string
}

type StateService interface {
	ProjectID() (string, error)
	SelectProject(projectID string) error
}

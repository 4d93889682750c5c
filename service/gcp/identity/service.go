package gcpidentity

import (
	"context"

	"github.com/elC0mpa/infra-vision/model"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/monitoring/v3"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string) (*service, error) {
	client, err := cloudresourcemanager.NewService(ctx, option.WithScopes(
		cloudresourcemanager.CloudPlatformReadOnlyScope,
	))
	if err != nil {
		return nil, err
	}

	return &service{
		projectID: projectID,
		client:    client,
	}, nil
}

// GetAccountInfo implements service.IdentityService
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	project, err := s.GetProjectInfo(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AccountInfo{
		Provider:    "gcp",
		AccountID:   s.projectID,
		AccountName: project.Name,
	}, nil
}

// GetProjectInfo returns detailed GCP project information
func (s *service) GetProjectInfo(ctx context.Context) (*cloudresourcemanager.Project, error) {
	return s.client.Projects.Get(s.projectID).Context(ctx).Do()
}

// GetCredentials resolves Application Default Credentials with the read
// scopes the analysis pipeline needs. This supports:
// - GOOGLE_APPLICATION_CREDENTIALS environment variable
// - gcloud auth application-default login
// - Service account on GCE/Cloud Run/Cloud Functions
func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	return google.FindDefaultCredentials(ctx,
		cloudresourcemanager.CloudPlatformReadOnlyScope,
		compute.ComputeReadonlyScope,
		monitoring.MonitoringReadScope,
	)
}

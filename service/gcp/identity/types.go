package gcpidentity

import (
	"context"

	"github.com/elC0mpa/infra-vision/model"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
)

type service struct {
	projectID string
	client    *cloudresourcemanager.Service
}

type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
	GetProjectInfo(ctx context.Context) (*cloudresourcemanager.Project, error)
	GetCredentials(ctx context.Context) (*google.Credentials, error)
}

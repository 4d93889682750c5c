package service

import (
	"context"

	"github.com/elC0mpa/infra-vision/model"
)

// IdentityService provides cloud project identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// InventoryService discovers resources and estimates their monthly cost
type InventoryService interface {
	Collect(ctx context.Context) (*model.Inventory, error)
}

// UtilizationService derives right-sizing signals from monitoring metrics
type UtilizationService interface {
	AnalyzeInstance(ctx context.Context, instanceName, zone string, daysBack int) (*model.UtilizationAnalysis, error)
	AnalyzeAllInstances(ctx context.Context, daysBack int) ([]model.UtilizationAnalysis, error)
	ProjectSummary(ctx context.Context, daysBack int) (*model.ProjectMetricsSummary, error)
}

// RecommendationService aggregates Cloud Recommender cost advice
type RecommendationService interface {
	CostRecommendations(ctx context.Context) (*model.RecommendationSet, error)
}

// StateService persists the selected project id between runs
type StateService interface {
	ProjectID() (string, error)
	SelectProject(projectID string) error
}

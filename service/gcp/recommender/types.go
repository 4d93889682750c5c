package gcprecommender

import (
	"context"

	"github.com/elC0mpa/infra-vision/model"
	"google.golang.org/api/recommender/v1"
)

// recommendationLister is the narrow boundary over the Recommender API: one
// parent per call, pagination handled inside.
type recommendationLister interface {
	List(ctx context.Context, parent string) ([]*recommender.GoogleCloudRecommenderV1Recommendation, error)
}

type service struct {
	projectID string
	lister    recommendationLister
}

type RecommenderService interface {
	AllRecommendations(ctx context.Context) ([]model.Recommendation, error)
	CostRecommendations(ctx context.Context) (*model.RecommendationSet, error)
}

// locations swept for recommendations. Most recommenders only emit in global,
// the regional entries cover zonal VM recommenders.
var locations = []string{"global", "europe-west1", "europe-west1-b", "us-central1"}

// recommenderIDs is the full sweep of recommenders queried per location.
// Recommenders not provisioned for a project answer with PERMISSION_DENIED or
// NOT_FOUND and are skipped.
var recommenderIDs = []string{
	"google.iam.policy.Recommender",
	"google.iam.serviceAccount.ChangeRiskRecommender",
	"google.iam.policy.ChangeRiskRecommender",
	"google.compute.instance.IdleResourceRecommender",
	"google.compute.instance.MachineTypeRecommender",
	"google.compute.instanceGroupManager.MachineTypeRecommender",
	"google.compute.commitment.UsageCommitmentRecommender",
	"google.compute.disk.IdleResourceRecommender",
	"google.compute.address.IdleResourceRecommender",
	"google.compute.image.IdleResourceRecommender",
	"google.compute.IdleResourceRecommender",
	"google.compute.RightSizeResourceRecommender",
	"google.storage.bucket.SoftDeleteRecommender",
	"google.storage.bucket.AnywhereCacheRecommender",
	"google.cloudsql.instance.IdleRecommender",
	"google.cloudsql.instance.OverprovisionedRecommender",
	"google.cloudsql.instance.UnderprovisionedRecommender",
	"google.cloudsql.instance.SecurityRecommender",
	"google.cloudsql.instance.PerformanceRecommender",
	"google.cloudsql.instance.ReliabilityRecommender",
	"google.cloudsql.instance.OutOfDiskRecommender",
	"google.run.service.CostRecommender",
	"google.run.service.SecurityRecommender",
	"google.run.service.IdentityRecommender",
	"google.bigquery.table.PartitionClusterRecommender",
	"google.bigquery.capacityCommitments.Recommender",
	"google.container.DiagnosisRecommender",
	"google.logging.productSuggestion.ContainerRecommender",
	"google.resourcemanager.projectUtilization.Recommender",
	"google.resourcemanager.serviceLimit.Recommender",
	"google.resourcemanager.project.ChangeRiskRecommender",
	"google.cloudfunctions.PerformanceRecommender",
	"google.firestore.database.FirebaseRulesRecommender",
	"google.firestore.database.ReliabilityRecommender",
	"google.cloud.security.GeneralRecommender",
	"google.cloud.RecentChangeRecommender",
	"google.cloud.deprecation.GeneralRecommender",
	"google.clouderrorreporting.Recommender",
	"google.gmp.project.ManagementRecommender",
}

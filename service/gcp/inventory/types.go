package gcpinventory

import (
	"context"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/elC0mpa/infra-vision/service/cache"
	"github.com/elC0mpa/infra-vision/service/pricing"
	"google.golang.org/api/cloudasset/v1"
)

// Asset type filters, queried in this fixed order.
const (
	assetTypeInstance     = "compute.googleapis.com/Instance"
	assetTypeBucket       = "storage.googleapis.com/Bucket"
	assetTypeSQLInstance  = "sqladmin.googleapis.com/Instance"
	assetTypeCluster      = "container.googleapis.com/Cluster"
	assetTypeRedis        = "redis.googleapis.com/Instance"
	assetTypeSpanner      = "spanner.googleapis.com/Instance"
	assetTypeRunService   = "run.googleapis.com/Service"
	assetTypeSchedulerJob = "cloudscheduler.googleapis.com/Job"
)

var assetTypeOrder = []string{
	assetTypeInstance,
	assetTypeBucket,
	assetTypeSQLInstance,
	assetTypeCluster,
	assetTypeRedis,
	assetTypeSpanner,
	assetTypeRunService,
	assetTypeSchedulerJob,
}

const (
	contentResource     = "RESOURCE"
	contentRelationship = "RELATIONSHIP"
)

// assetLister is the narrow boundary over the asset inventory, one call per
// asset type and content type.
type assetLister interface {
	List(ctx context.Context, parent, assetType, contentType string) ([]*cloudasset.Asset, error)
}

type service struct {
	projectID string
	lister    assetLister
	pricing   pricing.PricingService
	cache     cache.CacheService
}

type InventoryService interface {
	Collect(ctx context.Context) (*model.Inventory, error)
}

package gcpinventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/elC0mpa/infra-vision/service/pricing"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/cloudasset/v1"
)

const (
	defaultZone         = "us-central1-a"
	defaultMachineType  = "e2-medium"
	estimatedBucketSize = 50 // GB, inventory metadata carries no size
)

// Collect implements service.InventoryService
// Discovers every resource in the project, assigns estimated monthly costs
// and aggregates totals. The caller always receives a structurally valid
// inventory: when the inventory service is unreachable a fixed placeholder
// set is returned instead, flagged as not real data.
func (s *service) Collect(ctx context.Context) (*model.Inventory, error) {
	if s.lister == nil {
		log.Error().Str("project", s.projectID).Msg("asset inventory client not initialized, using placeholder data")
		return s.placeholderInventory(), nil
	}

	assets, err := s.listAllAssets(ctx)
	if err != nil {
		log.Error().Err(err).Str("project", s.projectID).Msg("asset inventory unreachable, using placeholder data")
		return s.placeholderInventory(), nil
	}

	log.Debug().Str("project", s.projectID).Int("assets", len(assets)).Msg("inventory collected")
	return s.buildInventory(assets), nil
}

func (s *service) buildInventory(assets []*cloudasset.Asset) *model.Inventory {
	inv := &model.Inventory{
		ProjectID:  s.projectID,
		IsRealData: true,
	}

	for _, a := range assets {
		name := lastSegment(a.Name)
		meta := model.ResourceMeta{
			Name:          name,
			Relationships: relationshipsOf(a),
		}

		switch {
		case strings.Contains(a.AssetType, assetTypeInstance):
			// Settings sub-objects share the instance asset type but are
			// not billable resources.
			if strings.Contains(name, "InstanceSettings") {
				continue
			}
			vm := s.parseVM(a, meta)
			inv.VMs = append(inv.VMs, vm)

		case strings.Contains(a.AssetType, assetTypeBucket):
			bucket := s.parseBucket(a, meta)
			inv.Storage = append(inv.Storage, bucket)

		case strings.Contains(a.AssetType, assetTypeSQLInstance):
			meta.MonthlyCost = s.pricing.DefaultCost(model.TypeDatabase)
			inv.Databases = append(inv.Databases, model.DatabaseInstance{ResourceMeta: meta, Engine: "Cloud SQL"})

		case strings.Contains(a.AssetType, assetTypeCluster):
			meta.MonthlyCost = s.pricing.DefaultCost(model.TypeCluster)
			inv.Clusters = append(inv.Clusters, model.GKECluster{ResourceMeta: meta})

		case strings.Contains(a.AssetType, assetTypeRedis):
			meta.MonthlyCost = s.pricing.DefaultCost(model.TypeRedis)
			inv.RedisInstances = append(inv.RedisInstances, model.RedisInstance{ResourceMeta: meta})

		case strings.Contains(a.AssetType, assetTypeSpanner):
			meta.MonthlyCost = s.pricing.DefaultCost(model.TypeSpanner)
			inv.SpannerInstances = append(inv.SpannerInstances, model.SpannerInstance{ResourceMeta: meta})

		case strings.Contains(a.AssetType, assetTypeRunService):
			meta.MonthlyCost = s.pricing.DefaultCost(model.TypeRunService)
			inv.RunServices = append(inv.RunServices, model.RunService{ResourceMeta: meta})

		case strings.Contains(a.AssetType, assetTypeSchedulerJob):
			meta.MonthlyCost = s.pricing.DefaultCost(model.TypeScheduler)
			inv.Schedulers = append(inv.Schedulers, model.SchedulerJob{ResourceMeta: meta})

		default:
			log.Warn().Str("asset_type", a.AssetType).Str("name", name).Msg("unrecognized asset, skipping")
		}
	}

	total := 0.0
	for _, group := range inv.ByType() {
		for _, r := range group {
			total += r.ResourceCost()
		}
	}
	inv.TotalMonthlyCost = pricing.Round2(total)
	inv.PotentialSavings = pricing.Round2(total * 0.3)
	inv.DetectedResources = fmt.Sprintf(
		"%d VMs, %d buckets, %d databases, %d clusters, %d redis, %d spanner, %d run services, %d schedulers",
		len(inv.VMs), len(inv.Storage), len(inv.Databases), len(inv.Clusters),
		len(inv.RedisInstances), len(inv.SpannerInstances), len(inv.RunServices), len(inv.Schedulers))

	return inv
}

func (s *service) parseVM(a *cloudasset.Asset, meta model.ResourceMeta) model.VMInstance {
	vm := model.VMInstance{
		ResourceMeta: meta,
		MachineType:  defaultMachineType,
		Zone:         zoneOf(a.Name),
		Status:       "running",
	}

	if a.Resource != nil && len(a.Resource.Data) > 0 {
		var data struct {
			MachineType string `json:"machineType"`
			Status      string `json:"status"`
		}
		if err := json.Unmarshal(a.Resource.Data, &data); err == nil {
			if data.MachineType != "" {
				vm.MachineType = lastSegment(data.MachineType)
			}
			if data.Status != "" {
				vm.Status = strings.ToLower(data.Status)
			}
		}
	}

	vm.MonthlyCost = s.pricing.VMCost(vm.MachineType)
	return vm
}

func (s *service) parseBucket(a *cloudasset.Asset, meta model.ResourceMeta) model.StorageBucket {
	bucket := model.StorageBucket{
		ResourceMeta: meta,
		SizeGB:       estimatedBucketSize,
		StorageClass: "standard",
		Location:     "us (multi-region)",
	}
	multiRegion := true

	if a.Resource != nil && len(a.Resource.Data) > 0 {
		var data struct {
			StorageClass string `json:"storageClass"`
			Location     string `json:"location"`
		}
		if err := json.Unmarshal(a.Resource.Data, &data); err == nil {
			if data.StorageClass != "" {
				bucket.StorageClass = strings.ToLower(data.StorageClass)
			}
			if data.Location != "" {
				// Multi-region locations are continent codes without a dash.
				multiRegion = !strings.Contains(data.Location, "-")
				if multiRegion {
					bucket.Location = strings.ToLower(data.Location) + " (multi-region)"
				} else {
					bucket.Location = strings.ToLower(data.Location)
				}
			}
		}
	}

	bucket.MonthlyCost = s.pricing.StorageCost(bucket.SizeGB, bucket.StorageClass, multiRegion)
	return bucket
}

// placeholderInventory is the fallback when the inventory service cannot be
// queried at all.
func (s *service) placeholderInventory() *model.Inventory {
	return &model.Inventory{
		ProjectID: s.projectID,
		VMs: []model.VMInstance{
			{
				ResourceMeta: model.ResourceMeta{Name: "prod-server-1", MonthlyCost: 120},
				MachineType:  "e2-medium",
				Zone:         defaultZone,
				Status:       "running",
			},
			{
				ResourceMeta: model.ResourceMeta{Name: "dev-server-1", MonthlyCost: 45},
				MachineType:  "e2-small",
				Zone:         defaultZone,
				Status:       "running",
			},
		},
		TotalMonthlyCost:  165,
		PotentialSavings:  50,
		IsRealData:        false,
		DetectedResources: "Placeholder data",
	}
}

// zoneOf extracts the zone from a hierarchical asset path, e.g.
// "//compute.googleapis.com/projects/p/zones/us-central1-a/instances/i".
func zoneOf(assetName string) string {
	parts := strings.Split(assetName, "/")
	for i, part := range parts {
		if part == "zones" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return defaultZone
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// relationshipsOf flattens the relationship payload of an asset into edges.
func relationshipsOf(a *cloudasset.Asset) []model.Relationship {
	var edges []model.Relationship

	if a.RelatedAsset != nil && a.RelatedAsset.Asset != "" {
		edges = append(edges, model.Relationship{
			Target: lastSegment(a.RelatedAsset.Asset),
			Type:   a.RelatedAsset.RelationshipType,
		})
	}

	if a.RelatedAssets != nil {
		relType := ""
		if a.RelatedAssets.RelationshipAttributes != nil {
			relType = a.RelatedAssets.RelationshipAttributes.Type
		}
		for _, ra := range a.RelatedAssets.Assets {
			if ra == nil || ra.Asset == "" {
				continue
			}
			edges = append(edges, model.Relationship{
				Target: lastSegment(ra.Asset),
				Type:   relType,
			})
		}
	}

	return edges
}

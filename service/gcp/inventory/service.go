package gcpinventory

import (
	"context"
	"fmt"

	"github.com/elC0mpa/infra-vision/service/cache"
	"github.com/elC0mpa/infra-vision/service/pricing"
	"github.com/elC0mpa/infra-vision/service/svcerr"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/cloudasset/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string, pricingSvc pricing.PricingService, cacheSvc cache.CacheService) (*service, error) {
	assetClient, err := cloudasset.NewService(ctx, option.WithScopes(
		cloudasset.CloudPlatformScope,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Asset Inventory client: %w", err)
	}

	return &service{
		projectID: projectID,
		lister:    &assetAPILister{client: assetClient},
		pricing:   pricingSvc,
		cache:     cacheSvc,
	}, nil
}

type assetAPILister struct {
	client *cloudasset.Service
}

func (l *assetAPILister) List(ctx context.Context, parent, assetType, contentType string) ([]*cloudasset.Asset, error) {
	var assets []*cloudasset.Asset

	call := l.client.Assets.List(parent).
		AssetTypes(assetType).
		ContentType(contentType)

	err := call.Pages(ctx, func(resp *cloudasset.ListAssetsResponse) error {
		assets = append(assets, resp.Assets...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// listAllAssets queries the inventory once per asset type filter, in the
// fixed enumerated order, reusing a cached batch when one is still fresh.
func (s *service) listAllAssets(ctx context.Context) ([]*cloudasset.Asset, error) {
	cacheKey := "assets:" + s.projectID
	if cached, ok := s.cache.Get(cacheKey); ok {
		if assets, ok := cached.([]*cloudasset.Asset); ok {
			log.Debug().Str("project", s.projectID).Int("assets", len(assets)).Msg("inventory served from cache")
			return assets, nil
		}
	}

	parent := "projects/" + s.projectID

	var all []*cloudasset.Asset
	failures := 0
	for _, assetType := range assetTypeOrder {
		batch, err := s.listAssetType(ctx, parent, assetType)
		if err != nil {
			failures++
			log.Warn().Err(err).
				Str("asset_type", assetType).
				Str("kind", svcerr.Classify(err).String()).
				Msg("asset type query failed, skipping")
			continue
		}
		all = append(all, batch...)
	}

	if failures == len(assetTypeOrder) {
		return nil, fmt.Errorf("all asset type queries failed for project %s", s.projectID)
	}

	s.cache.Set(cacheKey, all)
	return all, nil
}

// listAssetType fetches resource metadata for one filter and, where the
// service supports it, merges in relationship edges. A rejected relationship
// query degrades to metadata-only rather than failing the filter.
func (s *service) listAssetType(ctx context.Context, parent, assetType string) ([]*cloudasset.Asset, error) {
	assets, err := s.lister.List(ctx, parent, assetType, contentResource)
	if err != nil {
		return nil, err
	}

	related, err := s.lister.List(ctx, parent, assetType, contentRelationship)
	if err != nil {
		if kind := svcerr.Classify(err); !svcerr.Recoverable(kind) {
			log.Warn().Err(err).
				Str("asset_type", assetType).
				Str("kind", kind.String()).
				Msg("relationship query failed, using metadata only")
		}
		return assets, nil
	}

	mergeRelationships(assets, related)
	return assets, nil
}

// mergeRelationships copies relationship payloads from a RELATIONSHIP batch
// onto the metadata assets they belong to, matched by asset name.
func mergeRelationships(assets, related []*cloudasset.Asset) {
	byName := make(map[string]*cloudasset.Asset, len(related))
	for _, r := range related {
		byName[r.Name] = r
	}
	for _, a := range assets {
		r, ok := byName[a.Name]
		if !ok {
			continue
		}
		a.RelatedAsset = r.RelatedAsset
		a.RelatedAssets = r.RelatedAssets
	}
}

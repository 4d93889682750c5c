package gcprecommender

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/elC0mpa/infra-vision/service/svcerr"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/recommender/v1"
)

func NewService(ctx context.Context, projectID string) (*service, error) {
	client, err := recommender.NewService(ctx, option.WithScopes(
		recommender.CloudPlatformScope,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Recommender client: %w", err)
	}

	return &service{
		projectID: projectID,
		lister:    &recommenderAPILister{client: client},
	}, nil
}

type recommenderAPILister struct {
	client *recommender.Service
}

func (l *recommenderAPILister) List(ctx context.Context, parent string) ([]*recommender.GoogleCloudRecommenderV1Recommendation, error) {
	var recs []*recommender.GoogleCloudRecommenderV1Recommendation

	call := l.client.Projects.Locations.Recommenders.Recommendations.List(parent)
	err := call.Pages(ctx, func(resp *recommender.GoogleCloudRecommenderV1ListRecommendationsResponse) error {
		recs = append(recs, resp.Recommendations...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// AllRecommendations implements service.RecommendationService
// Sweeps every known recommender across every location. Recommenders the
// project has no access to are skipped without noise, other failures are
// logged and skipped so a partial sweep still returns results.
func (s *service) AllRecommendations(ctx context.Context) ([]model.Recommendation, error) {
	var all []model.Recommendation

	for _, location := range locations {
		for _, recommenderID := range recommenderIDs {
			parent := fmt.Sprintf("projects/%s/locations/%s/recommenders/%s",
				s.projectID, location, recommenderID)

			recs, err := s.lister.List(ctx, parent)
			if err != nil {
				if svcerr.Classify(err) == svcerr.NotProvisioned {
					continue
				}
				log.Warn().Err(err).
					Str("recommender", recommenderID).
					Str("location", location).
					Msg("recommender query failed, skipping")
				continue
			}

			for _, rec := range recs {
				all = append(all, parseRecommendation(rec))
			}
		}
	}

	return all, nil
}

// CostRecommendations implements service.RecommendationService
func (s *service) CostRecommendations(ctx context.Context) (*model.RecommendationSet, error) {
	all, err := s.AllRecommendations(ctx)
	if err != nil {
		return nil, err
	}
	return GroupCostRecommendations(all), nil
}

// parseRecommendation flattens an API recommendation into the report shape.
func parseRecommendation(rec *recommender.GoogleCloudRecommenderV1Recommendation) model.Recommendation {
	out := model.Recommendation{
		ID:       lastSegment(rec.Name),
		Type:     rec.RecommenderSubtype,
		Resource: "Unknown",
		Message:  rec.Description,
		Priority: normalizePriority(rec.Priority),
		Category: "COST",
	}

	if rec.StateInfo != nil {
		out.State = rec.StateInfo.State
	}

	if rec.PrimaryImpact != nil {
		if rec.PrimaryImpact.Category != "" {
			out.Category = rec.PrimaryImpact.Category
		}
		if proj := rec.PrimaryImpact.CostProjection; proj != nil && proj.Cost != nil {
			units := proj.Cost.Units
			if units < 0 {
				units = -units
			}
			out.MonthlySavings = float64(units)
		}
	}

	if rec.Content != nil {
	groups:
		for _, group := range rec.Content.OperationGroups {
			for _, op := range group.Operations {
				if op.Resource != "" {
					out.Resource = lastSegment(op.Resource)
					break groups
				}
			}
		}
	}

	return out
}

// normalizePriority maps API priorities (P1..P4) onto the two report levels.
func normalizePriority(priority string) model.Priority {
	switch priority {
	case "P1", "P2":
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}

// GroupBucket assigns a recommendation to its report group based on the
// recommender subtype.
func GroupBucket(rec model.Recommendation) string {
	switch {
	case strings.Contains(rec.Type, "MachineType"):
		return model.GroupRightsizing
	case strings.Contains(rec.Type, "Idle"):
		return model.GroupIdle
	case strings.Contains(rec.Type, "Commitment"):
		return model.GroupCommitted
	default:
		return model.GroupOther
	}
}

// GroupCostRecommendations keeps cost-relevant recommendations, groups them
// and totals the projected savings. A recommendation counts as cost-relevant
// when its category is COST or it projects any savings.
func GroupCostRecommendations(all []model.Recommendation) *model.RecommendationSet {
	set := &model.RecommendationSet{
		Groups: map[string][]model.Recommendation{
			model.GroupRightsizing: {},
			model.GroupIdle:        {},
			model.GroupCommitted:   {},
			model.GroupOther:       {},
		},
	}

	for _, rec := range all {
		if rec.Category != "COST" && rec.MonthlySavings <= 0 {
			continue
		}
		bucket := GroupBucket(rec)
		set.Groups[bucket] = append(set.Groups[bucket], rec)
		set.TotalMonthlySavings += rec.MonthlySavings
		set.RecommendationCount++
	}

	return set
}

func lastSegment(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

package gcprecommender

import (
	"context"
	"strings"
	"testing"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/recommender/v1"
)

// fakeRecommendationLister serves canned recommendations keyed by recommender
// id substring of the parent.
type fakeRecommendationLister struct {
	recommendations map[string][]*recommender.GoogleCloudRecommenderV1Recommendation
	errs            map[string]error
	parents         []string
}

func (f *fakeRecommendationLister) List(_ context.Context, parent string) ([]*recommender.GoogleCloudRecommenderV1Recommendation, error) {
	f.parents = append(f.parents, parent)
	for key, err := range f.errs {
		if strings.Contains(parent, key) {
			return nil, err
		}
	}
	for key, recs := range f.recommendations {
		if strings.Contains(parent, key) {
			return recs, nil
		}
	}
	return nil, nil
}

func idleVMRecommendation() *recommender.GoogleCloudRecommenderV1Recommendation {
	return &recommender.GoogleCloudRecommenderV1Recommendation{
		Name:               "projects/p/locations/global/recommenders/google.compute.instance.IdleResourceRecommender/recommendations/rec-123",
		RecommenderSubtype: "STOP_IDLE_VM",
		Description:        "Stop the idle instance",
		Priority:           "P1",
		StateInfo:          &recommender.GoogleCloudRecommenderV1RecommendationStateInfo{State: "ACTIVE"},
		PrimaryImpact: &recommender.GoogleCloudRecommenderV1Impact{
			Category: "COST",
			CostProjection: &recommender.GoogleCloudRecommenderV1CostProjection{
				Cost: &recommender.GoogleTypeMoney{Units: -42},
			},
		},
		Content: &recommender.GoogleCloudRecommenderV1RecommendationContent{
			OperationGroups: []*recommender.GoogleCloudRecommenderV1OperationGroup{
				{
					Operations: []*recommender.GoogleCloudRecommenderV1Operation{
						{Resource: "//compute.googleapis.com/projects/p/zones/z/instances/idle-vm"},
					},
				},
			},
		},
	}
}

func TestParseRecommendation(t *testing.T) {
	rec := parseRecommendation(idleVMRecommendation())

	assert.Equal(t, "rec-123", rec.ID)
	assert.Equal(t, "STOP_IDLE_VM", rec.Type)
	assert.Equal(t, "idle-vm", rec.Resource)
	assert.Equal(t, "Stop the idle instance", rec.Message)
	assert.Equal(t, model.PriorityHigh, rec.Priority)
	assert.Equal(t, "COST", rec.Category)
	assert.Equal(t, "ACTIVE", rec.State)
	assert.Equal(t, 42.0, rec.MonthlySavings, "negative cost units mean savings")
}

func TestParseRecommendationDefaults(t *testing.T) {
	rec := parseRecommendation(&recommender.GoogleCloudRecommenderV1Recommendation{
		Name:               "projects/p/locations/global/recommenders/r/recommendations/rec-1",
		RecommenderSubtype: "CHANGE_MACHINE_TYPE",
		Priority:           "P4",
	})

	assert.Equal(t, "Unknown", rec.Resource)
	assert.Equal(t, "COST", rec.Category)
	assert.Equal(t, model.PriorityMedium, rec.Priority)
	assert.Zero(t, rec.MonthlySavings)
}

func TestGroupBucket(t *testing.T) {
	tests := []struct {
		subtype string
		want    string
	}{
		{"CHANGE_MACHINE_TYPE_MachineType", model.GroupRightsizing},
		{"STOP_IDLE_VM_Idle", model.GroupIdle},
		{"PURCHASE_Commitment", model.GroupCommitted},
		{"DELETE_UNUSED_IMAGE", model.GroupOther},
	}

	for _, tt := range tests {
		t.Run(tt.subtype, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupBucket(model.Recommendation{Type: tt.subtype}))
		})
	}
}

func TestGroupCostRecommendations(t *testing.T) {
	all := []model.Recommendation{
		{Type: "MachineType change", Category: "COST", MonthlySavings: 10},
		{Type: "Idle instance", Category: "COST", MonthlySavings: 42},
		{Type: "Commitment purchase", Category: "COST", MonthlySavings: 5},
		{Type: "Something else", Category: "PERFORMANCE", MonthlySavings: 3},
		{Type: "Security finding", Category: "SECURITY", MonthlySavings: 0},
	}

	set := GroupCostRecommendations(all)

	assert.Len(t, set.Groups[model.GroupRightsizing], 1)
	assert.Len(t, set.Groups[model.GroupIdle], 1)
	assert.Len(t, set.Groups[model.GroupCommitted], 1)
	assert.Len(t, set.Groups[model.GroupOther], 1, "non-COST records with savings still count")
	assert.Equal(t, 60.0, set.TotalMonthlySavings)
	assert.Equal(t, 4, set.RecommendationCount, "zero-savings non-COST records are dropped")
}

func TestGroupCostRecommendationsEmpty(t *testing.T) {
	set := GroupCostRecommendations(nil)

	assert.Zero(t, set.TotalMonthlySavings)
	assert.Zero(t, set.RecommendationCount)
	for _, group := range model.GroupOrder {
		assert.Empty(t, set.Groups[group])
	}
}

func TestAllRecommendationsSweepsEveryLocation(t *testing.T) {
	lister := &fakeRecommendationLister{}
	svc := &service{projectID: "test-project", lister: lister}

	_, err := svc.AllRecommendations(context.Background())
	require.NoError(t, err)

	assert.Len(t, lister.parents, len(locations)*len(recommenderIDs))
	assert.Contains(t, lister.parents,
		"projects/test-project/locations/global/recommenders/google.compute.instance.IdleResourceRecommender")
}

func TestAllRecommendationsSkipsUnprovisioned(t *testing.T) {
	lister := &fakeRecommendationLister{
		recommendations: map[string][]*recommender.GoogleCloudRecommenderV1Recommendation{
			"IdleResourceRecommender": {idleVMRecommendation()},
		},
		errs: map[string]error{
			"google.iam": &googleapi.Error{Code: 403, Message: "permission denied"},
		},
	}
	svc := &service{projectID: "test-project", lister: lister}

	all, err := svc.AllRecommendations(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, all)
	for _, rec := range all {
		assert.Equal(t, "rec-123", rec.ID)
	}
}

func TestCostRecommendations(t *testing.T) {
	lister := &fakeRecommendationLister{
		recommendations: map[string][]*recommender.GoogleCloudRecommenderV1Recommendation{
			"locations/global/recommenders/google.compute.instance.IdleResourceRecommender": {idleVMRecommendation()},
		},
	}
	svc := &service{projectID: "test-project", lister: lister}

	set, err := svc.CostRecommendations(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Groups[model.GroupOther], 1, "subtype without a known marker lands in other")
	assert.Equal(t, 42.0, set.TotalMonthlySavings)
	assert.Equal(t, 1, set.RecommendationCount)
}

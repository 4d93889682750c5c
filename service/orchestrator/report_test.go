package orchestrator

import (
	"testing"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/stretchr/testify/assert"
)

func testInventory() *model.Inventory {
	return &model.Inventory{
		ProjectID: "test-project",
		VMs: []model.VMInstance{
			{ResourceMeta: model.ResourceMeta{Name: "prod-server", MonthlyCost: 24.46}},
			{ResourceMeta: model.ResourceMeta{Name: "dev-server", MonthlyCost: 24.46}},
		},
		Storage: []model.StorageBucket{
			{ResourceMeta: model.ResourceMeta{Name: "assets", MonthlyCost: 1.30}},
		},
		TotalMonthlyCost: 50.22,
		PotentialSavings: 15.07,
		IsRealData:       true,
	}
}

func TestAssembleKeepsFlatEstimateWithoutRecommendations(t *testing.T) {
	report := Assemble(testInventory(), nil, nil, nil)

	assert.Equal(t, 50.22, report.TotalMonthlyCost)
	assert.Equal(t, 15.07, report.PotentialSavings)
	assert.Nil(t, report.Recommendations)
}

func TestAssembleResumsTotal(t *testing.T) {
	inv := testInventory()
	inv.TotalMonthlyCost = 9999 // stale figure must be replaced

	report := Assemble(inv, nil, nil, nil)

	assert.Equal(t, 50.22, report.TotalMonthlyCost)
}

func TestAssembleUsesAdvisorySavings(t *testing.T) {
	recs := &model.RecommendationSet{
		TotalMonthlySavings: 20.5,
		RecommendationCount: 2,
	}

	report := Assemble(testInventory(), nil, nil, recs)

	assert.Equal(t, 20.5, report.PotentialSavings)
}

func TestAssembleCapsSavingsAtTotal(t *testing.T) {
	recs := &model.RecommendationSet{
		TotalMonthlySavings: 500,
		RecommendationCount: 1,
	}

	report := Assemble(testInventory(), nil, nil, recs)

	assert.Equal(t, report.TotalMonthlyCost, report.PotentialSavings)
}

func TestAssembleZeroAdvisorySavingsKeepsEstimate(t *testing.T) {
	recs := &model.RecommendationSet{}

	report := Assemble(testInventory(), nil, nil, recs)

	assert.Equal(t, 15.07, report.PotentialSavings)
}

func TestAssembleCarriesAnalysisSections(t *testing.T) {
	utilization := []model.UtilizationAnalysis{{InstanceName: "prod-server"}}
	metrics := &model.ProjectMetricsSummary{PeriodDays: 30}

	report := Assemble(testInventory(), utilization, metrics, nil)

	assert.Len(t, report.Utilization, 1)
	assert.Equal(t, 30, report.ProjectMetrics.PeriodDays)
}

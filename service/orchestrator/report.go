package orchestrator

import (
	"github.com/elC0mpa/infra-vision/model"
	"github.com/elC0mpa/infra-vision/service/pricing"
)

// Assemble merges the independent analysis results into one report. The total
// monthly cost is always re-summed from the resources so the figure stays
// consistent no matter which collectors ran. When advisory recommendations
// project savings, that total replaces the collector's flat estimate, capped
// at the total monthly cost.
func Assemble(inventory *model.Inventory, utilization []model.UtilizationAnalysis, metrics *model.ProjectMetricsSummary, recommendations *model.RecommendationSet) *model.InfrastructureReport {
	report := &model.InfrastructureReport{
		Inventory:       *inventory,
		Utilization:     utilization,
		ProjectMetrics:  metrics,
		Recommendations: recommendations,
	}

	total := 0.0
	for _, group := range report.ByType() {
		for _, resource := range group {
			total += resource.ResourceCost()
		}
	}
	report.TotalMonthlyCost = pricing.Round2(total)

	if recommendations != nil && recommendations.TotalMonthlySavings > 0 {
		savings := recommendations.TotalMonthlySavings
		if savings > report.TotalMonthlyCost {
			savings = report.TotalMonthlyCost
		}
		report.PotentialSavings = pricing.Round2(savings)
	}

	return report
}

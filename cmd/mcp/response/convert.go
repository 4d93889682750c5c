package response

import "github.com/elC0mpa/infra-vision/model"

// ConvertProjectInfo converts account info to the response type
func ConvertProjectInfo(info *model.AccountInfo) *ProjectInfo {
	return &ProjectInfo{
		Provider:    info.Provider,
		ProjectID:   info.AccountID,
		ProjectName: info.AccountName,
	}
}

// ConvertInventory converts a collected inventory to the response type
func ConvertInventory(inventory *model.Inventory) *InventoryReport {
	report := &InventoryReport{
		ProjectID:         inventory.ProjectID,
		VMs:               make([]VMEntry, 0, len(inventory.VMs)),
		Storage:           make([]BucketEntry, 0, len(inventory.Storage)),
		OtherResources:    []ResourceEntry{},
		TotalMonthlyCost:  inventory.TotalMonthlyCost,
		PotentialSavings:  inventory.PotentialSavings,
		IsRealData:        inventory.IsRealData,
		DetectedResources: inventory.DetectedResources,
	}

	for _, vm := range inventory.VMs {
		report.VMs = append(report.VMs, VMEntry{
			Name:        vm.Name,
			MachineType: vm.MachineType,
			Zone:        vm.Zone,
			Status:      vm.Status,
			MonthlyCost: vm.MonthlyCost,
		})
	}

	for _, bucket := range inventory.Storage {
		report.Storage = append(report.Storage, BucketEntry{
			Name:         bucket.Name,
			SizeGB:       bucket.SizeGB,
			StorageClass: bucket.StorageClass,
			Location:     bucket.Location,
			MonthlyCost:  bucket.MonthlyCost,
		})
	}

	grouped := inventory.ByType()
	for _, resourceType := range model.TypeOrder {
		if resourceType == model.TypeVM || resourceType == model.TypeBucket {
			continue
		}
		for _, resource := range grouped[resourceType] {
			report.OtherResources = append(report.OtherResources, ResourceEntry{
				Category:    string(resourceType),
				Name:        resource.ResourceName(),
				MonthlyCost: resource.ResourceCost(),
			})
		}
	}

	return report
}

// ConvertRecommendation converts a single recommendation to the response type
func ConvertRecommendation(rec model.Recommendation) RecommendationEntry {
	return RecommendationEntry{
		ID:             rec.ID,
		Resource:       rec.Resource,
		Type:           rec.Type,
		Priority:       string(rec.Priority),
		Description:    rec.Message,
		Category:       rec.Category,
		State:          rec.State,
		MonthlySavings: rec.MonthlySavings,
		SavingsPct:     rec.SavingsPct,
	}
}

// ConvertRecommendations converts a grouped recommendation set to the response type
func ConvertRecommendations(set *model.RecommendationSet) *RecommendationsReport {
	report := &RecommendationsReport{
		Recommendations:     make(map[string][]RecommendationEntry, len(model.GroupOrder)),
		TotalMonthlySavings: set.TotalMonthlySavings,
		RecommendationCount: set.RecommendationCount,
	}

	for _, group := range model.GroupOrder {
		entries := make([]RecommendationEntry, 0, len(set.Groups[group]))
		for _, rec := range set.Groups[group] {
			entries = append(entries, ConvertRecommendation(rec))
		}
		report.Recommendations[group] = entries
	}

	return report
}

// ConvertUtilization converts a per-instance analysis to the response type
func ConvertUtilization(analysis *model.UtilizationAnalysis) *InstanceUtilization {
	out := &InstanceUtilization{
		Instance:              analysis.InstanceName,
		Zone:                  analysis.Zone,
		MachineType:           analysis.MachineType,
		Metrics:               make(map[string]ChannelStats, len(analysis.Channels)),
		Recommendations:       make([]RecommendationEntry, 0, len(analysis.Recommendations)),
		OptimizationPotential: analysis.OptimizationPotential,
	}

	for channel, summary := range analysis.Channels {
		out.Metrics[string(channel)] = ChannelStats{
			Status:     summary.Status,
			Average:    summary.Average,
			Maximum:    summary.Maximum,
			P95:        summary.P95,
			DataPoints: summary.DataPoints,
			Message:    summary.Message,
		}
	}

	for _, rec := range analysis.Recommendations {
		out.Recommendations = append(out.Recommendations, ConvertRecommendation(rec))
	}

	return out
}

// ConvertUtilizationList converts a batch of instance analyses
func ConvertUtilizationList(analyses []model.UtilizationAnalysis) []InstanceUtilization {
	out := make([]InstanceUtilization, 0, len(analyses))
	for i := range analyses {
		out = append(out, *ConvertUtilization(&analyses[i]))
	}
	return out
}

// ConvertProjectMetrics converts the project-wide summary to the response type
func ConvertProjectMetrics(metrics *model.ProjectMetricsSummary) *ProjectMetricsReport {
	report := &ProjectMetricsReport{
		NetworkEgressGB: metrics.NetworkEgressGB,
		CloudSQL: DatabaseCPU{
			Status:  metrics.CloudSQL.Status,
			Average: metrics.CloudSQL.Average,
			Maximum: metrics.CloudSQL.Maximum,
		},
		LoadBalancer: LoadBalancer{
			Status:            metrics.LoadBalancer.Status,
			TotalRequests:     metrics.LoadBalancer.TotalRequests,
			AvgRequestsPerDay: metrics.LoadBalancer.AvgRequestsPerDay,
		},
		PeriodDays: metrics.PeriodDays,
	}

	for _, rec := range metrics.CloudSQL.Recommendations {
		report.CloudSQL.Recommendations = append(report.CloudSQL.Recommendations, ConvertRecommendation(rec))
	}
	for _, rec := range metrics.LoadBalancer.Recommendations {
		report.LoadBalancer.Recommendations = append(report.LoadBalancer.Recommendations, ConvertRecommendation(rec))
	}

	return report
}

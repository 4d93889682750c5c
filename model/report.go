package model

// Inventory is the collector output: every discovered resource grouped by
// category, plus the aggregate cost figures derived from them.
type Inventory struct {
	ProjectID         string
	VMs               []VMInstance
	Storage           []StorageBucket
	Databases         []DatabaseInstance
	Clusters          []GKECluster
	RedisInstances    []RedisInstance
	SpannerInstances  []SpannerInstance
	RunServices       []RunService
	Schedulers        []SchedulerJob
	TotalMonthlyCost  float64
	PotentialSavings  float64
	IsRealData        bool
	DetectedResources string
}

// ByType returns the discovered resources grouped by category, preserving
// discovery order within each group. Iterate with TypeOrder for a stable
// category order.
func (inv *Inventory) ByType() map[ResourceType][]Resource {
	grouped := make(map[ResourceType][]Resource)
	for _, r := range inv.VMs {
		grouped[TypeVM] = append(grouped[TypeVM], r)
	}
	for _, r := range inv.Storage {
		grouped[TypeBucket] = append(grouped[TypeBucket], r)
	}
	for _, r := range inv.Databases {
		grouped[TypeDatabase] = append(grouped[TypeDatabase], r)
	}
	for _, r := range inv.Clusters {
		grouped[TypeCluster] = append(grouped[TypeCluster], r)
	}
	for _, r := range inv.RedisInstances {
		grouped[TypeRedis] = append(grouped[TypeRedis], r)
	}
	for _, r := range inv.SpannerInstances {
		grouped[TypeSpanner] = append(grouped[TypeSpanner], r)
	}
	for _, r := range inv.RunServices {
		grouped[TypeRunService] = append(grouped[TypeRunService], r)
	}
	for _, r := range inv.Schedulers {
		grouped[TypeScheduler] = append(grouped[TypeScheduler], r)
	}
	return grouped
}

// ResourceCount returns the total number of discovered resources.
func (inv *Inventory) ResourceCount() int {
	return len(inv.VMs) + len(inv.Storage) + len(inv.Databases) + len(inv.Clusters) +
		len(inv.RedisInstances) + len(inv.SpannerInstances) + len(inv.RunServices) + len(inv.Schedulers)
}

// InfrastructureReport is the aggregate analysis result handed to the
// presentation layer. Utilization, ProjectMetrics and Recommendations are
// optional; a report with resource data alone is still valid.
type InfrastructureReport struct {
	Inventory
	Utilization     []UtilizationAnalysis
	ProjectMetrics  *ProjectMetricsSummary
	Recommendations *RecommendationSet
}

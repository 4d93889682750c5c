// Package response defines JSON response types for MCP tool results
package response

// ProjectInfo is the response for project identity queries
type ProjectInfo struct {
	Provider    string `json:"provider"`
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
}

// SelectedProject is the response for project selection
type SelectedProject struct {
	ProjectID string `json:"project_id"`
	Saved     bool   `json:"saved"`
}

// VMEntry is a discovered Compute Engine instance
type VMEntry struct {
	Name        string  `json:"name"`
	MachineType string  `json:"machine_type"`
	Zone        string  `json:"zone"`
	Status      string  `json:"status"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// BucketEntry is a discovered Cloud Storage bucket
type BucketEntry struct {
	Name         string  `json:"name"`
	SizeGB       float64 `json:"size_gb"`
	StorageClass string  `json:"storage_class"`
	Location     string  `json:"location"`
	MonthlyCost  float64 `json:"monthly_cost"`
}

// ResourceEntry is a discovered resource of any other category
type ResourceEntry struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// InventoryReport is the response for infrastructure analysis
type InventoryReport struct {
	ProjectID         string          `json:"project_id"`
	VMs               []VMEntry       `json:"vms"`
	Storage           []BucketEntry   `json:"storage"`
	OtherResources    []ResourceEntry `json:"other_resources"`
	TotalMonthlyCost  float64         `json:"total_monthly_cost"`
	PotentialSavings  float64         `json:"potential_savings"`
	IsRealData        bool            `json:"is_real_data"`
	DetectedResources string          `json:"detected_resources"`
}

// RecommendationEntry is a single cost recommendation
type RecommendationEntry struct {
	ID             string  `json:"id,omitempty"`
	Resource       string  `json:"resource"`
	Type           string  `json:"type"`
	Priority       string  `json:"priority"`
	Description    string  `json:"description"`
	Category       string  `json:"category,omitempty"`
	State          string  `json:"state,omitempty"`
	MonthlySavings float64 `json:"monthly_savings"`
	SavingsPct     float64 `json:"savings_pct,omitempty"`
}

// RecommendationsReport is the grouped recommendation response
type RecommendationsReport struct {
	Recommendations     map[string][]RecommendationEntry `json:"recommendations"`
	TotalMonthlySavings float64                          `json:"total_monthly_savings"`
	RecommendationCount int                              `json:"recommendation_count"`
}

// ChannelStats holds summary statistics for one metric channel
type ChannelStats struct {
	Status     string  `json:"status"`
	Average    float64 `json:"average,omitempty"`
	Maximum    float64 `json:"maximum,omitempty"`
	P95        float64 `json:"p95,omitempty"`
	DataPoints int     `json:"data_points,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// InstanceUtilization is the per-instance utilization analysis response
type InstanceUtilization struct {
	Instance              string                  `json:"instance"`
	Zone                  string                  `json:"zone"`
	MachineType           string                  `json:"machine_type,omitempty"`
	Metrics               map[string]ChannelStats `json:"metrics"`
	Recommendations       []RecommendationEntry   `json:"recommendations"`
	OptimizationPotential string                  `json:"optimization_potential"`
}

// DatabaseCPU aggregates Cloud SQL CPU utilization
type DatabaseCPU struct {
	Status          string                `json:"status"`
	Average         float64               `json:"average,omitempty"`
	Maximum         float64               `json:"maximum,omitempty"`
	Recommendations []RecommendationEntry `json:"recommendations,omitempty"`
}

// LoadBalancer aggregates load balancer request volume
type LoadBalancer struct {
	Status            string                `json:"status"`
	TotalRequests     int64                 `json:"total_requests,omitempty"`
	AvgRequestsPerDay float64               `json:"avg_requests_per_day,omitempty"`
	Recommendations   []RecommendationEntry `json:"recommendations,omitempty"`
}

// ProjectMetricsReport is the project-wide utilization summary response
type ProjectMetricsReport struct {
	NetworkEgressGB float64      `json:"network_egress_gb"`
	CloudSQL        DatabaseCPU  `json:"cloud_sql"`
	LoadBalancer    LoadBalancer `json:"load_balancer"`
	PeriodDays      int          `json:"period_days"`
}

// VisualizationPrompt is the response for prompt generation
type VisualizationPrompt struct {
	ProjectID string `json:"project_id"`
	Prompt    string `json:"prompt"`
}

package model

// Priority orders recommendations: high before medium.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Recommendation is a single actionable suggestion, produced either by the
// rule-based utilization analyzer or parsed from a Cloud Recommender record.
type Recommendation struct {
	ID       string
	Resource string
	Type     string
	Priority Priority
	Message  string
	Category string
	State    string
	// MonthlySavings is the absolute estimated saving for advisory records;
	// zero when the source does not project a cost impact.
	MonthlySavings float64
	// SavingsPct is the estimated saving percentage for rule-based records.
	SavingsPct float64
}

// Recommendation group buckets, keyed by recommender subtype substrings.
const (
	GroupRightsizing = "vm_rightsizing"
	GroupIdle        = "idle_resources"
	GroupCommitted   = "committed_use"
	GroupOther       = "other"
)

// GroupOrder is the fixed order in which recommendation buckets are reported.
var GroupOrder = []string{GroupRightsizing, GroupIdle, GroupCommitted, GroupOther}

// RecommendationSet is the grouped view over cost-relevant recommendations.
// Members of each group preserve discovery order.
type RecommendationSet struct {
	Groups              map[string][]Recommendation
	TotalMonthlySavings float64
	RecommendationCount int
}

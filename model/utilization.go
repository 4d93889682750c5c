package model

// MetricChannel names one utilization metric stream for a VM instance.
type MetricChannel string

const (
	ChannelCPU        MetricChannel = "cpu_utilization"
	ChannelMemory     MetricChannel = "memory_utilization"
	ChannelNetworkIn  MetricChannel = "network_bytes_in"
	ChannelNetworkOut MetricChannel = "network_bytes_out"
	ChannelDiskRead   MetricChannel = "disk_read_bytes"
	ChannelDiskWrite  MetricChannel = "disk_write_bytes"
)

// ChannelOrder is the fixed order in which metric channels are queried and reported.
var ChannelOrder = []MetricChannel{
	ChannelCPU,
	ChannelMemory,
	ChannelNetworkIn,
	ChannelNetworkOut,
	ChannelDiskRead,
	ChannelDiskWrite,
}

const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
)

// ChannelSummary holds derived statistics for one resource and one metric
// channel. When Status is no_data the numeric fields are zero and meaningless.
type ChannelSummary struct {
	Status     string
	Average    float64
	Maximum    float64
	P95        float64
	DataPoints int
	Message    string
}

// Optimization potential levels for a single analyzed resource.
const (
	PotentialHigh   = "high"
	PotentialMedium = "medium"
	PotentialNone   = "none"
)

// UtilizationAnalysis is the per-instance result of the utilization analyzer.
type UtilizationAnalysis struct {
	InstanceName          string
	Zone                  string
	MachineType           string
	Channels              map[MetricChannel]ChannelSummary
	Recommendations       []Recommendation
	OptimizationPotential string
}

// DatabaseCPUSummary aggregates Cloud SQL CPU utilization across the project.
type DatabaseCPUSummary struct {
	Status          string
	Average         float64
	Maximum         float64
	Recommendations []Recommendation
}

// LoadBalancerSummary aggregates load balancer request volume across the project.
type LoadBalancerSummary struct {
	Status            string
	TotalRequests     int64
	AvgRequestsPerDay float64
	Recommendations   []Recommendation
}

// ProjectMetricsSummary holds the project-wide utilization aggregates.
type ProjectMetricsSummary struct {
	NetworkEgressGB float64
	CloudSQL        DatabaseCPUSummary
	LoadBalancer    LoadBalancerSummary
	PeriodDays      int
}

package gcpmonitoring

import (
	"context"
	"time"

	"github.com/elC0mpa/infra-vision/model"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/monitoring/v3"
)

// timeSeriesLister is the narrow boundary over the metrics service: one
// filtered time-series query per call.
type timeSeriesLister interface {
	List(ctx context.Context, filter string, start, end time.Time) ([]*monitoring.TimeSeries, error)
}

// instanceLister enumerates zones and the instances within them.
type instanceLister interface {
	Zones(ctx context.Context) ([]string, error)
	Instances(ctx context.Context, zone string) ([]*compute.Instance, error)
}

type service struct {
	projectID string
	metrics   timeSeriesLister
	instances instanceLister
}

type MonitoringService interface {
	AnalyzeInstance(ctx context.Context, instanceName, zone string, daysBack int) (*model.UtilizationAnalysis, error)
	AnalyzeAllInstances(ctx context.Context, daysBack int) ([]model.UtilizationAnalysis, error)
	ProjectSummary(ctx context.Context, daysBack int) (*model.ProjectMetricsSummary, error)
}

// channelSpec describes how one metric channel is queried and scaled.
type channelSpec struct {
	channel       model.MetricChannel
	metricType    string
	instanceLabel string
	scale         float64
}

var channelSpecs = []channelSpec{
	{model.ChannelCPU, "compute.googleapis.com/instance/cpu/utilization", "instance_name", 100},
	{model.ChannelMemory, "agent.googleapis.com/memory/percent_used", "instance_id", 1},
	{model.ChannelNetworkIn, "compute.googleapis.com/instance/network/received_bytes_count", "instance_name", 1},
	{model.ChannelNetworkOut, "compute.googleapis.com/instance/network/sent_bytes_count", "instance_name", 1},
	{model.ChannelDiskRead, "compute.googleapis.com/instance/disk/read_bytes_count", "instance_name", 1},
	{model.ChannelDiskWrite, "compute.googleapis.com/instance/disk/write_bytes_count", "instance_name", 1},
}

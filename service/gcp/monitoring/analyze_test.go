package gcpmonitoring

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/monitoring/v3"
)

// fakeTimeSeriesLister serves canned series keyed by metric type substring of
// the filter.
type fakeTimeSeriesLister struct {
	series map[string][]*monitoring.TimeSeries
	errs   map[string]error
}

func (f *fakeTimeSeriesLister) List(_ context.Context, filter string, _, _ time.Time) ([]*monitoring.TimeSeries, error) {
	for metricType, err := range f.errs {
		if strings.Contains(filter, metricType) {
			return nil, err
		}
	}
	for metricType, series := range f.series {
		if strings.Contains(filter, metricType) {
			return series, nil
		}
	}
	return nil, nil
}

type fakeInstanceLister struct {
	zones     []string
	zoneErr   map[string]error
	instances map[string][]*compute.Instance
}

func (f *fakeInstanceLister) Zones(_ context.Context) ([]string, error) {
	return f.zones, nil
}

func (f *fakeInstanceLister) Instances(_ context.Context, zone string) ([]*compute.Instance, error) {
	if err, ok := f.zoneErr[zone]; ok {
		return nil, err
	}
	return f.instances[zone], nil
}

func doubleSeries(values ...float64) []*monitoring.TimeSeries {
	points := make([]*monitoring.Point, 0, len(values))
	for i := range values {
		points = append(points, &monitoring.Point{
			Value: &monitoring.TypedValue{DoubleValue: &values[i]},
		})
	}
	return []*monitoring.TimeSeries{{Points: points}}
}

func int64Series(values ...int64) []*monitoring.TimeSeries {
	points := make([]*monitoring.Point, 0, len(values))
	for i := range values {
		points = append(points, &monitoring.Point{
			Value: &monitoring.TypedValue{Int64Value: &values[i]},
		})
	}
	return []*monitoring.TimeSeries{{Points: points}}
}

func repeat(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestAnalyzeInstanceLowCPU(t *testing.T) {
	// cpu/utilization samples are fractions, scaled x100 by the channel definition.
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"cpu/utilization": doubleSeries(repeat(0.10, 20)...),
			},
		},
	}

	analysis, err := svc.AnalyzeInstance(context.Background(), "web-1", "us-central1-a", 30)
	require.NoError(t, err)

	cpu := analysis.Channels[model.ChannelCPU]
	assert.Equal(t, model.StatusOK, cpu.Status)
	assert.Equal(t, 10.0, cpu.Average)

	require.Len(t, analysis.Recommendations, 1)
	rec := analysis.Recommendations[0]
	assert.Equal(t, "right_sizing", rec.Type)
	assert.Equal(t, model.PriorityHigh, rec.Priority)
	assert.Equal(t, 30.0, rec.SavingsPct)
	assert.Contains(t, rec.Message, "very low")
	assert.Equal(t, model.PotentialHigh, analysis.OptimizationPotential)
}

func TestAnalyzeInstanceModerateCPU(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"cpu/utilization": doubleSeries(repeat(0.30, 20)...),
			},
		},
	}

	analysis, err := svc.AnalyzeInstance(context.Background(), "web-1", "us-central1-a", 30)
	require.NoError(t, err)

	require.Len(t, analysis.Recommendations, 1)
	rec := analysis.Recommendations[0]
	assert.Equal(t, "right_sizing", rec.Type)
	assert.Equal(t, model.PriorityMedium, rec.Priority)
	assert.Equal(t, 15.0, rec.SavingsPct)
	assert.Equal(t, model.PotentialMedium, analysis.OptimizationPotential)
}

func TestAnalyzeInstanceHealthyCPU(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"cpu/utilization": doubleSeries(repeat(0.60, 20)...),
			},
		},
	}

	analysis, err := svc.AnalyzeInstance(context.Background(), "web-1", "us-central1-a", 30)
	require.NoError(t, err)

	assert.Empty(t, analysis.Recommendations)
	assert.Equal(t, model.PotentialNone, analysis.OptimizationPotential)
}

func TestAnalyzeInstanceLowMemory(t *testing.T) {
	// memory/percent_used samples arrive already in percent.
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"memory/percent_used": doubleSeries(repeat(25, 20)...),
			},
		},
	}

	analysis, err := svc.AnalyzeInstance(context.Background(), "web-1", "us-central1-a", 30)
	require.NoError(t, err)

	require.Len(t, analysis.Recommendations, 1)
	rec := analysis.Recommendations[0]
	assert.Equal(t, "memory_optimization", rec.Type)
	assert.Equal(t, model.PriorityMedium, rec.Priority)
	assert.Equal(t, 20.0, rec.SavingsPct)
	assert.Equal(t, model.PotentialMedium, analysis.OptimizationPotential)
}

func TestAnalyzeInstanceHighCPUPotentialWins(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"cpu/utilization":     doubleSeries(repeat(0.10, 20)...),
				"memory/percent_used": doubleSeries(repeat(25, 20)...),
			},
		},
	}

	analysis, err := svc.AnalyzeInstance(context.Background(), "web-1", "us-central1-a", 30)
	require.NoError(t, err)

	require.Len(t, analysis.Recommendations, 2)
	assert.Equal(t, model.PotentialHigh, analysis.OptimizationPotential,
		"high CPU potential must not be downgraded by the memory rule")
}

func TestAnalyzeInstanceNoData(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics:   &fakeTimeSeriesLister{},
	}

	analysis, err := svc.AnalyzeInstance(context.Background(), "web-1", "us-central1-a", 30)
	require.NoError(t, err)

	for _, channel := range model.ChannelOrder {
		summary, ok := analysis.Channels[channel]
		require.True(t, ok)
		assert.Equal(t, model.StatusNoData, summary.Status)
		assert.Equal(t, noDataMessage, summary.Message)
	}
	assert.Empty(t, analysis.Recommendations)
}

func TestAnalyzeInstanceQueryErrorDegradesToNoData(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			errs: map[string]error{"cpu/utilization": errors.New("backend error")},
		},
	}

	analysis, err := svc.AnalyzeInstance(context.Background(), "web-1", "us-central1-a", 30)
	require.NoError(t, err)

	assert.Equal(t, model.StatusNoData, analysis.Channels[model.ChannelCPU].Status)
}

func TestAnalyzeAllInstances(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"cpu/utilization": doubleSeries(repeat(0.10, 20)...),
			},
		},
		instances: &fakeInstanceLister{
			zones:   []string{"us-central1-a", "europe-west1-b"},
			zoneErr: map[string]error{"europe-west1-b": errors.New("zone unavailable")},
			instances: map[string][]*compute.Instance{
				"us-central1-a": {
					{Name: "web-1", Status: "RUNNING", MachineType: "projects/p/zones/z/machineTypes/e2-medium"},
					{Name: "stopped-1", Status: "TERMINATED", MachineType: "projects/p/zones/z/machineTypes/e2-small"},
				},
			},
		},
	}

	analyses, err := svc.AnalyzeAllInstances(context.Background(), 30)
	require.NoError(t, err)

	require.Len(t, analyses, 1, "stopped instances and failing zones are skipped")
	assert.Equal(t, "web-1", analyses[0].InstanceName)
	assert.Equal(t, "us-central1-a", analyses[0].Zone)
	assert.Equal(t, "e2-medium", analyses[0].MachineType)
}

func TestProjectSummary(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"network/sent_bytes_count":    int64Series(1<<30, 1<<30),
				"database/cpu/utilization":    doubleSeries(0.10, 0.20),
				"loadbalancing.googleapis.com": int64Series(500, 300),
			},
		},
	}

	summary, err := svc.ProjectSummary(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 2.0, summary.NetworkEgressGB)
	assert.Equal(t, 30, summary.PeriodDays)

	assert.Equal(t, model.StatusOK, summary.CloudSQL.Status)
	assert.Equal(t, 15.0, summary.CloudSQL.Average)
	assert.Equal(t, 20.0, summary.CloudSQL.Maximum)
	require.Len(t, summary.CloudSQL.Recommendations, 1)
	assert.Equal(t, "cloud_sql_right_sizing", summary.CloudSQL.Recommendations[0].Type)
	assert.Equal(t, model.PriorityHigh, summary.CloudSQL.Recommendations[0].Priority)
	assert.Equal(t, 25.0, summary.CloudSQL.Recommendations[0].SavingsPct)

	assert.Equal(t, model.StatusOK, summary.LoadBalancer.Status)
	assert.Equal(t, int64(800), summary.LoadBalancer.TotalRequests)
	require.Len(t, summary.LoadBalancer.Recommendations, 1)
	assert.Equal(t, "load_balancer_optimization", summary.LoadBalancer.Recommendations[0].Type)
	assert.Equal(t, 100.0, summary.LoadBalancer.Recommendations[0].SavingsPct)
}

func TestProjectSummaryMissingServices(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics:   &fakeTimeSeriesLister{},
	}

	summary, err := svc.ProjectSummary(context.Background(), 30)
	require.NoError(t, err)

	assert.Zero(t, summary.NetworkEgressGB)
	assert.Equal(t, statusNoSQL, summary.CloudSQL.Status)
	assert.Equal(t, statusNoLB, summary.LoadBalancer.Status)
}

func TestProjectSummaryHealthyThresholds(t *testing.T) {
	svc := &service{
		projectID: "test-project",
		metrics: &fakeTimeSeriesLister{
			series: map[string][]*monitoring.TimeSeries{
				"database/cpu/utilization":    doubleSeries(0.50, 0.60),
				"loadbalancing.googleapis.com": int64Series(8000, 9000),
			},
		},
	}

	summary, err := svc.ProjectSummary(context.Background(), 30)
	require.NoError(t, err)

	assert.Empty(t, summary.CloudSQL.Recommendations)
	assert.Empty(t, summary.LoadBalancer.Recommendations, "10000+ requests does not trigger the rule")
}

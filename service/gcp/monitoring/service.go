package gcpmonitoring

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/compute/v1"
	"google.golang.org/api/monitoring/v3"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string) (*service, error) {
	metricsClient, err := monitoring.NewService(ctx, option.WithScopes(
		monitoring.MonitoringReadScope,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Monitoring client: %w", err)
	}

	computeClient, err := compute.NewService(ctx, option.WithScopes(
		compute.ComputeReadonlyScope,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Compute client: %w", err)
	}

	return &service{
		projectID: projectID,
		metrics:   &metricsAPILister{projectID: projectID, client: metricsClient},
		instances: &computeAPILister{projectID: projectID, client: computeClient},
	}, nil
}

type metricsAPILister struct {
	projectID string
	client    *monitoring.Service
}

func (l *metricsAPILister) List(ctx context.Context, filter string, start, end time.Time) ([]*monitoring.TimeSeries, error) {
	var series []*monitoring.TimeSeries

	call := l.client.Projects.TimeSeries.List("projects/"+l.projectID).
		Filter(filter).
		IntervalStartTime(start.UTC().Format(time.RFC3339)).
		IntervalEndTime(end.UTC().Format(time.RFC3339)).
		View("FULL")

	err := call.Pages(ctx, func(resp *monitoring.ListTimeSeriesResponse) error {
		series = append(series, resp.TimeSeries...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

type computeAPILister struct {
	projectID string
	client    *compute.Service
}

func (l *computeAPILister) Zones(ctx context.Context) ([]string, error) {
	resp, err := l.client.Zones.List(l.projectID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	zones := make([]string, 0, len(resp.Items))
	for _, zone := range resp.Items {
		zones = append(zones, zone.Name)
	}
	return zones, nil
}

func (l *computeAPILister) Instances(ctx context.Context, zone string) ([]*compute.Instance, error) {
	resp, err := l.client.Instances.List(l.projectID, zone).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// pointValues flattens time-series points into sample values, applying the
// channel's scale factor. Double and int64 typed points are both accepted.
func pointValues(series []*monitoring.TimeSeries, scale float64) []float64 {
	var values []float64
	for _, ts := range series {
		for _, point := range ts.Points {
			if point == nil || point.Value == nil {
				continue
			}
			switch {
			case point.Value.DoubleValue != nil:
				values = append(values, *point.Value.DoubleValue*scale)
			case point.Value.Int64Value != nil:
				values = append(values, float64(*point.Value.Int64Value)*scale)
			}
		}
	}
	return values
}

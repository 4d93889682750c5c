package gcpmonitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/rs/zerolog/log"
)

const (
	egressMetric      = `metric.type="compute.googleapis.com/instance/network/sent_bytes_count"`
	sqlCPUMetric      = `metric.type="cloudsql.googleapis.com/database/cpu/utilization"`
	lbRequestsMetric  = `metric.type="loadbalancing.googleapis.com/https/request_count"`
	lbRequestFloor    = 10000
	bytesPerGB        = 1 << 30
	statusNoSQL       = "no_cloud_sql_instances"
	statusNoLB        = "no_load_balancers"
)

// ProjectSummary implements service.UtilizationService
// Computes project-wide aggregates: total network egress, managed-database
// CPU utilization and load-balancer request volume, each with its single
// threshold rule. Failed queries degrade to explicit no-data sections.
func (s *service) ProjectSummary(ctx context.Context, daysBack int) (*model.ProjectMetricsSummary, error) {
	if daysBack <= 0 {
		daysBack = defaultLookbackDays
	}
	end := time.Now()
	start := end.AddDate(0, 0, -daysBack)

	return &model.ProjectMetricsSummary{
		NetworkEgressGB: s.networkEgressGB(ctx, start, end),
		CloudSQL:        s.cloudSQLSummary(ctx, start, end),
		LoadBalancer:    s.loadBalancerSummary(ctx, start, end, daysBack),
		PeriodDays:      daysBack,
	}, nil
}

// networkEgressGB sums sent bytes across all instances over the window.
func (s *service) networkEgressGB(ctx context.Context, start, end time.Time) float64 {
	series, err := s.metrics.List(ctx, egressMetric, start, end)
	if err != nil {
		log.Warn().Err(err).Msg("network egress query failed")
		return 0
	}

	total := 0.0
	for _, v := range pointValues(series, 1) {
		total += v
	}
	return total / bytesPerGB
}

func (s *service) cloudSQLSummary(ctx context.Context, start, end time.Time) model.DatabaseCPUSummary {
	series, err := s.metrics.List(ctx, sqlCPUMetric, start, end)
	if err != nil {
		log.Warn().Err(err).Msg("cloud sql metric query failed")
		return model.DatabaseCPUSummary{Status: statusNoSQL}
	}

	values := pointValues(series, 100)
	if len(values) == 0 {
		return model.DatabaseCPUSummary{Status: statusNoSQL}
	}

	sum, maximum := 0.0, values[0]
	for _, v := range values {
		sum += v
		if v > maximum {
			maximum = v
		}
	}
	avg := sum / float64(len(values))

	summary := model.DatabaseCPUSummary{
		Status:  model.StatusOK,
		Average: round2(avg),
		Maximum: round2(maximum),
	}
	if avg < 20 {
		summary.Recommendations = append(summary.Recommendations, model.Recommendation{
			Resource:   "project-wide",
			Type:       "cloud_sql_right_sizing",
			Priority:   model.PriorityHigh,
			Message:    fmt.Sprintf("Cloud SQL CPU utilization very low (%.1f%%). Consider smaller machine type.", avg),
			SavingsPct: 25,
		})
	}
	return summary
}

func (s *service) loadBalancerSummary(ctx context.Context, start, end time.Time, daysBack int) model.LoadBalancerSummary {
	series, err := s.metrics.List(ctx, lbRequestsMetric, start, end)
	if err != nil {
		log.Warn().Err(err).Msg("load balancer metric query failed")
		return model.LoadBalancerSummary{Status: statusNoLB}
	}

	values := pointValues(series, 1)
	if len(values) == 0 {
		return model.LoadBalancerSummary{Status: statusNoLB}
	}

	var total int64
	for _, v := range values {
		total += int64(v)
	}

	summary := model.LoadBalancerSummary{
		Status:            model.StatusOK,
		TotalRequests:     total,
		AvgRequestsPerDay: float64(total) / float64(daysBack),
	}
	if total < lbRequestFloor {
		summary.Recommendations = append(summary.Recommendations, model.Recommendation{
			Resource:   "project-wide",
			Type:       "load_balancer_optimization",
			Priority:   model.PriorityMedium,
			Message:    fmt.Sprintf("Low request volume (%d requests/month). Consider if LB is necessary.", total),
			SavingsPct: 100,
		})
	}
	return summary
}

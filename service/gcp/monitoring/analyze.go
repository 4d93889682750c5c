package gcpmonitoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/rs/zerolog/log"
)

const defaultLookbackDays = 30

// AnalyzeInstance implements service.UtilizationService
// Queries every metric channel for one VM, computes summary statistics and
// derives right-sizing recommendations from fixed threshold rules.
func (s *service) AnalyzeInstance(ctx context.Context, instanceName, zone string, daysBack int) (*model.UtilizationAnalysis, error) {
	if daysBack <= 0 {
		daysBack = defaultLookbackDays
	}
	end := time.Now()
	start := end.AddDate(0, 0, -daysBack)

	analysis := &model.UtilizationAnalysis{
		InstanceName:          instanceName,
		Zone:                  zone,
		Channels:              make(map[model.MetricChannel]model.ChannelSummary, len(channelSpecs)),
		OptimizationPotential: model.PotentialNone,
	}

	for _, spec := range channelSpecs {
		filter := fmt.Sprintf("metric.type=%q AND resource.labels.%s=%q AND resource.labels.zone=%q",
			spec.metricType, spec.instanceLabel, instanceName, zone)

		series, err := s.metrics.List(ctx, filter, start, end)
		if err != nil {
			log.Warn().Err(err).
				Str("instance", instanceName).
				Str("channel", string(spec.channel)).
				Msg("metric query failed, treating channel as no data")
			analysis.Channels[spec.channel] = model.ChannelSummary{
				Status:  model.StatusNoData,
				Message: noDataMessage,
			}
			continue
		}

		summary := summarize(pointValues(series, spec.scale))
		analysis.Channels[spec.channel] = summary
		if summary.Status == model.StatusNoData {
			continue
		}

		applyChannelRules(analysis, spec.channel, summary)
	}

	return analysis, nil
}

// applyChannelRules evaluates the fixed threshold rules for one channel and
// appends any resulting recommendation.
func applyChannelRules(analysis *model.UtilizationAnalysis, channel model.MetricChannel, summary model.ChannelSummary) {
	switch channel {
	case model.ChannelCPU:
		switch {
		case summary.Average < 20 && summary.P95 < 50:
			analysis.Recommendations = append(analysis.Recommendations, model.Recommendation{
				Resource:   analysis.InstanceName,
				Type:       "right_sizing",
				Priority:   model.PriorityHigh,
				Message:    fmt.Sprintf("CPU utilization very low (avg: %.1f%%, p95: %.1f%%). Consider downsizing instance type.", summary.Average, summary.P95),
				SavingsPct: 30,
			})
			analysis.OptimizationPotential = model.PotentialHigh
		case summary.Average < 35 && summary.P95 < 70:
			analysis.Recommendations = append(analysis.Recommendations, model.Recommendation{
				Resource:   analysis.InstanceName,
				Type:       "right_sizing",
				Priority:   model.PriorityMedium,
				Message:    fmt.Sprintf("CPU utilization moderate (avg: %.1f%%, p95: %.1f%%). Could benefit from smaller instance.", summary.Average, summary.P95),
				SavingsPct: 15,
			})
			if analysis.OptimizationPotential == model.PotentialNone {
				analysis.OptimizationPotential = model.PotentialMedium
			}
		}

	case model.ChannelMemory:
		if summary.Average < 30 && summary.P95 < 60 {
			analysis.Recommendations = append(analysis.Recommendations, model.Recommendation{
				Resource:   analysis.InstanceName,
				Type:       "memory_optimization",
				Priority:   model.PriorityMedium,
				Message:    fmt.Sprintf("Memory utilization low (avg: %.1f%%, p95: %.1f%%). Consider memory-optimized instance.", summary.Average, summary.P95),
				SavingsPct: 20,
			})
			if analysis.OptimizationPotential == model.PotentialNone {
				analysis.OptimizationPotential = model.PotentialMedium
			}
		}
	}
}

// AnalyzeAllInstances implements service.UtilizationService
// Analyzes every running instance in the project. Zones that fail to
// enumerate are logged and skipped; partial results are returned.
func (s *service) AnalyzeAllInstances(ctx context.Context, daysBack int) ([]model.UtilizationAnalysis, error) {
	zones, err := s.instances.Zones(ctx)
	if err != nil {
		return nil, err
	}

	var analyses []model.UtilizationAnalysis
	for _, zone := range zones {
		instances, err := s.instances.Instances(ctx, zone)
		if err != nil {
			log.Warn().Err(err).Str("zone", zone).Msg("failed to list instances, skipping zone")
			continue
		}

		for _, instance := range instances {
			if instance.Status != "RUNNING" {
				continue
			}

			analysis, err := s.AnalyzeInstance(ctx, instance.Name, zone, daysBack)
			if err != nil {
				log.Warn().Err(err).Str("instance", instance.Name).Str("zone", zone).Msg("instance analysis failed, skipping")
				continue
			}
			analysis.MachineType = machineTypeOf(instance.MachineType)
			analyses = append(analyses, *analysis)
		}
	}

	return analyses, nil
}

func machineTypeOf(machineTypeURL string) string {
	if idx := strings.LastIndex(machineTypeURL, "/"); idx >= 0 {
		return machineTypeURL[idx+1:]
	}
	return machineTypeURL
}

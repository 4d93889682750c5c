package utils

import (
	"fmt"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// expensiveThreshold marks the monthly cost above which a resource row is
// highlighted in red.
const expensiveThreshold = 100.0

func DrawReportTable(projectName string, report *model.InfrastructureReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🔍  INFRA VISION REPORT"))
	fmt.Printf(" Project: %s (%s)\n", text.FgBlue.Sprint(projectName), text.FgBlue.Sprint(report.ProjectID))
	if !report.IsRealData {
		fmt.Println(text.FgHiYellow.Sprint(" ⚠  Discovery unavailable, showing placeholder data"))
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Category", "Resource", "Monthly Cost"})

	grouped := report.ByType()
	for _, resourceType := range model.TypeOrder {
		for _, resource := range grouped[resourceType] {
			tw.AppendRow(populateResourceRow(resourceType, resource))
		}
	}

	tw.AppendFooter(table.Row{
		"",
		text.FgHiGreen.Sprint("Total"),
		text.FgHiGreen.Sprintf("%.2f USD", report.TotalMonthlyCost),
	})
	tw.AppendFooter(table.Row{
		"",
		text.FgHiYellow.Sprint("Potential Savings"),
		text.FgHiYellow.Sprintf("%.2f USD", report.PotentialSavings),
	})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number:       2,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 3,
			Align:  text.AlignRight,
		},
	})
	fmt.Println(tw.Render())

	if report.Recommendations != nil && report.Recommendations.RecommendationCount > 0 {
		DrawRecommendationsTable(report.Recommendations)
	}
}

func populateResourceRow(resourceType model.ResourceType, resource model.Resource) table.Row {
	row := make(table.Row, 3)
	row[0] = TypeLabel(resourceType)
	row[1] = text.FgGreen.Sprintf("%s", resource.ResourceName())
	row[2] = text.FgGreen.Sprintf("%.2f USD", resource.ResourceCost())

	if resource.ResourceCost() > expensiveThreshold {
		row[1] = text.FgRed.Sprintf("%s", resource.ResourceName())
		row[2] = text.FgRed.Sprintf("%.2f USD", resource.ResourceCost())
	}

	return row
}

func DrawRecommendationsTable(set *model.RecommendationSet) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💡  COST RECOMMENDATIONS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Group", "Resource", "Priority", "Monthly Savings", "Description"})

	for _, group := range model.GroupOrder {
		for _, rec := range set.Groups[group] {
			tw.AppendRow(populateRecommendationRow(group, rec))
		}
	}

	tw.AppendFooter(table.Row{
		"",
		"",
		text.FgHiGreen.Sprintf("%d recommendations", set.RecommendationCount),
		text.FgHiGreen.Sprintf("%.2f USD", set.TotalMonthlySavings),
		"",
	})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number: 4,
			Align:  text.AlignRight,
		},
		{
			Number:   5,
			WidthMax: 60,
		},
	})
	fmt.Println(tw.Render())
}

func populateRecommendationRow(group string, rec model.Recommendation) table.Row {
	row := make(table.Row, 5)
	row[0] = group
	row[1] = text.FgGreen.Sprintf("%s", rec.Resource)
	row[2] = text.FgYellow.Sprintf("%s", rec.Priority)
	row[3] = text.FgGreen.Sprintf("%.2f USD", rec.MonthlySavings)
	row[4] = rec.Message

	if rec.Priority == model.PriorityHigh {
		row[2] = text.FgRed.Sprintf("%s", rec.Priority)
	}

	return row
}

func DrawUtilizationTable(analyses []model.UtilizationAnalysis, metrics *model.ProjectMetricsSummary) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📈  UTILIZATION ANALYSIS"))
	if metrics != nil {
		fmt.Printf(" Period: last %d days\n", metrics.PeriodDays)
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Instance", "Zone", "Machine Type", "CPU avg", "CPU p95", "Memory avg", "Potential"})

	for _, analysis := range analyses {
		tw.AppendRow(populateUtilizationRow(analysis))
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())

	for _, analysis := range analyses {
		for _, rec := range analysis.Recommendations {
			fmt.Printf(" %s %s\n", text.FgYellow.Sprintf("[%s]", rec.Priority), rec.Message)
		}
	}

	if metrics != nil {
		drawProjectMetrics(metrics)
	}
}

func populateUtilizationRow(analysis model.UtilizationAnalysis) table.Row {
	row := make(table.Row, 7)
	row[0] = text.FgGreen.Sprintf("%s", analysis.InstanceName)
	row[1] = analysis.Zone
	row[2] = analysis.MachineType
	row[3] = channelCell(analysis.Channels[model.ChannelCPU], func(c model.ChannelSummary) float64 { return c.Average })
	row[4] = channelCell(analysis.Channels[model.ChannelCPU], func(c model.ChannelSummary) float64 { return c.P95 })
	row[5] = channelCell(analysis.Channels[model.ChannelMemory], func(c model.ChannelSummary) float64 { return c.Average })
	row[6] = text.FgGreen.Sprintf("%s", analysis.OptimizationPotential)

	if analysis.OptimizationPotential == model.PotentialHigh {
		row[0] = text.FgRed.Sprintf("%s", analysis.InstanceName)
		row[6] = text.FgRed.Sprintf("%s", analysis.OptimizationPotential)
	}

	return row
}

func channelCell(summary model.ChannelSummary, pick func(model.ChannelSummary) float64) string {
	if summary.Status != model.StatusOK {
		return text.FgHiBlack.Sprint("n/a")
	}
	return fmt.Sprintf("%.1f%%", pick(summary))
}

func drawProjectMetrics(metrics *model.ProjectMetricsSummary) {
	fmt.Printf("\n Network egress: %s\n", text.FgHiGreen.Sprintf("%.2f GB", metrics.NetworkEgressGB))

	if metrics.CloudSQL.Status == model.StatusOK {
		fmt.Printf(" Cloud SQL CPU: avg %s, max %s\n",
			text.FgHiGreen.Sprintf("%.1f%%", metrics.CloudSQL.Average),
			text.FgHiGreen.Sprintf("%.1f%%", metrics.CloudSQL.Maximum))
	} else {
		fmt.Printf(" Cloud SQL: %s\n", text.FgHiBlack.Sprint(metrics.CloudSQL.Status))
	}

	if metrics.LoadBalancer.Status == model.StatusOK {
		fmt.Printf(" Load balancer requests: %s\n",
			text.FgHiGreen.Sprintf("%d", metrics.LoadBalancer.TotalRequests))
	} else {
		fmt.Printf(" Load balancer: %s\n", text.FgHiBlack.Sprint(metrics.LoadBalancer.Status))
	}

	for _, rec := range metrics.CloudSQL.Recommendations {
		fmt.Printf(" %s %s\n", text.FgYellow.Sprintf("[%s]", rec.Priority), rec.Message)
	}
	for _, rec := range metrics.LoadBalancer.Recommendations {
		fmt.Printf(" %s %s\n", text.FgYellow.Sprintf("[%s]", rec.Priority), rec.Message)
	}
}

// TypeLabel returns the display name for a resource category.
func TypeLabel(resourceType model.ResourceType) string {
	if label, ok := model.TypeLabels[resourceType]; ok {
		return label
	}
	return string(resourceType)
}

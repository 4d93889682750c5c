package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/infra-vision/cmd/mcp/response"
	"github.com/elC0mpa/infra-vision/model"
	"github.com/elC0mpa/infra-vision/service/cache"
	gcpidentity "github.com/elC0mpa/infra-vision/service/gcp/identity"
	gcpinventory "github.com/elC0mpa/infra-vision/service/gcp/inventory"
	gcpmonitoring "github.com/elC0mpa/infra-vision/service/gcp/monitoring"
	gcprecommender "github.com/elC0mpa/infra-vision/service/gcp/recommender"
	"github.com/elC0mpa/infra-vision/service/orchestrator"
	"github.com/elC0mpa/infra-vision/service/pricing"
	"github.com/elC0mpa/infra-vision/service/state"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterInfraTools registers all infrastructure analysis tools with the MCP server
func RegisterInfraTools(s *server.MCPServer, projectID, stateFile string) {
	// Project selection
	s.AddTool(
		mcp.NewTool("infra_select_project",
			mcp.WithDescription("Select the GCP project to analyze. The selection is persisted and used by every other tool when GCP_PROJECT_ID is not set."),
			mcp.WithString("project_id",
				mcp.Required(),
				mcp.Description("GCP project ID to analyze"),
			),
		),
		makeSelectProjectHandler(stateFile),
	)

	// Project info
	s.AddTool(
		mcp.NewTool("infra_get_project_info",
			mcp.WithDescription("Get GCP project identity information for the selected project."),
		),
		makeProjectInfoHandler(projectID, stateFile),
	)

	// Full analysis
	s.AddTool(
		mcp.NewTool("infra_analyze",
			mcp.WithDescription("Discover all GCP resources in the selected project, estimate their monthly costs and compute potential savings. Falls back to placeholder data when discovery is unavailable."),
		),
		makeAnalyzeHandler(projectID, stateFile),
	)

	// Cost recommendations
	s.AddTool(
		mcp.NewTool("infra_get_recommendations",
			mcp.WithDescription("Get official Cloud Recommender cost recommendations for the selected project, grouped by type with total projected savings."),
		),
		makeRecommendationsHandler(projectID, stateFile),
	)

	// Utilization analysis
	s.AddTool(
		mcp.NewTool("infra_analyze_utilization",
			mcp.WithDescription("Analyze VM utilization metrics (CPU, memory, network, disk) and derive right-sizing recommendations. Analyzes a single instance when instance and zone are given, otherwise every running instance."),
			mcp.WithString("instance",
				mcp.Description("Instance name to analyze (requires zone)"),
			),
			mcp.WithString("zone",
				mcp.Description("Zone of the instance"),
			),
			mcp.WithNumber("days",
				mcp.Description("Lookback window in days (default 30)"),
			),
		),
		makeUtilizationHandler(projectID, stateFile),
	)

	// Project-wide metrics
	s.AddTool(
		mcp.NewTool("infra_project_summary",
			mcp.WithDescription("Get project-wide utilization aggregates: network egress, Cloud SQL CPU and load balancer request volume."),
			mcp.WithNumber("days",
				mcp.Description("Lookback window in days (default 30)"),
			),
		),
		makeProjectSummaryHandler(projectID, stateFile),
	)

	// Visualization prompt
	s.AddTool(
		mcp.NewTool("infra_visualization_prompt",
			mcp.WithDescription("Generate an image-generation prompt describing the discovered infrastructure as an isometric cost diagram."),
		),
		makeVisualizationPromptHandler(projectID, stateFile),
	)
}

// resolveProject returns the configured project id, falling back to the
// persisted selection.
func resolveProject(projectID, stateFile string) (string, error) {
	if projectID != "" {
		return projectID, nil
	}

	saved, err := state.NewService(stateFile).ProjectID()
	if err != nil {
		return "", err
	}
	if saved == "" {
		return "", fmt.Errorf("no project selected, set GCP_PROJECT_ID or call infra_select_project first")
	}
	return saved, nil
}

func makeSelectProjectHandler(stateFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		selected, ok := args["project_id"].(string)
		if !ok || selected == "" {
			return mcp.NewToolResultError("project_id argument is required"), nil
		}

		if err := state.NewService(stateFile).SelectProject(selected); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to save project selection: %v", err)), nil
		}

		resp := response.SelectedProject{ProjectID: selected, Saved: true}
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeProjectInfoHandler(projectID, stateFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := resolveProject(projectID, stateFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		identitySvc, err := gcpidentity.NewService(ctx, project)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create identity service: %v", err)), nil
		}

		info, err := identitySvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project info: %v", err)), nil
		}

		resp := response.ConvertProjectInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAnalyzeHandler(projectID, stateFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := resolveProject(projectID, stateFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		inventorySvc, err := gcpinventory.NewService(ctx, project, pricing.NewService(), cache.NewService(cache.DefaultTTL))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create inventory service: %v", err)), nil
		}

		inventory, err := inventorySvc.Collect(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect inventory: %v", err)), nil
		}

		var recommendations *model.RecommendationSet
		if recommenderSvc, err := gcprecommender.NewService(ctx, project); err == nil {
			// Advisory totals are optional, the flat estimate stands when the
			// sweep fails.
			recommendations, _ = recommenderSvc.CostRecommendations(ctx)
		}

		report := orchestrator.Assemble(inventory, nil, nil, recommendations)

		resp := struct {
			*response.InventoryReport
			Recommendations *response.RecommendationsReport `json:"google_recommendations,omitempty"`
		}{
			InventoryReport: response.ConvertInventory(&report.Inventory),
		}
		if report.Recommendations != nil {
			resp.Recommendations = response.ConvertRecommendations(report.Recommendations)
		}

		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRecommendationsHandler(projectID, stateFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := resolveProject(projectID, stateFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		recommenderSvc, err := gcprecommender.NewService(ctx, project)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create recommender service: %v", err)), nil
		}

		recommendations, err := recommenderSvc.CostRecommendations(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get recommendations: %v", err)), nil
		}

		resp := response.ConvertRecommendations(recommendations)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeUtilizationHandler(projectID, stateFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := resolveProject(projectID, stateFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		args := request.GetArguments()
		instance, _ := args["instance"].(string)
		zone, _ := args["zone"].(string)
		days := intArg(args, "days", 30)

		monitoringSvc, err := gcpmonitoring.NewService(ctx, project)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create monitoring service: %v", err)), nil
		}

		if instance != "" {
			if zone == "" {
				return mcp.NewToolResultError("zone argument is required when instance is given"), nil
			}

			analysis, err := monitoringSvc.AnalyzeInstance(ctx, instance, zone, days)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze instance: %v", err)), nil
			}

			resp := response.ConvertUtilization(analysis)
			data, _ := json.MarshalIndent(resp, "", "  ")
			return mcp.NewToolResultText(string(data)), nil
		}

		analyses, err := monitoringSvc.AnalyzeAllInstances(ctx, days)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze instances: %v", err)), nil
		}

		resp := response.ConvertUtilizationList(analyses)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeProjectSummaryHandler(projectID, stateFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := resolveProject(projectID, stateFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		days := intArg(request.GetArguments(), "days", 30)

		monitoringSvc, err := gcpmonitoring.NewService(ctx, project)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create monitoring service: %v", err)), nil
		}

		metrics, err := monitoringSvc.ProjectSummary(ctx, days)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project summary: %v", err)), nil
		}

		resp := response.ConvertProjectMetrics(metrics)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeVisualizationPromptHandler(projectID, stateFile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := resolveProject(projectID, stateFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		inventorySvc, err := gcpinventory.NewService(ctx, project, pricing.NewService(), cache.NewService(cache.DefaultTTL))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create inventory service: %v", err)), nil
		}

		inventory, err := inventorySvc.Collect(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect inventory: %v", err)), nil
		}

		resp := response.VisualizationPrompt{
			ProjectID: project,
			Prompt:    orchestrator.BuildVisualizationPrompt(inventory),
		}
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func intArg(args map[string]any, key string, fallback int) int {
	if v, ok := args[key].(float64); ok && v > 0 {
		return int(v)
	}
	return fallback
}

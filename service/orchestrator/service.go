package orchestrator

import (
	"context"
	"fmt"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/elC0mpa/infra-vision/service"
	"github.com/elC0mpa/infra-vision/utils"
)

func NewService(identityService service.IdentityService, inventoryService service.InventoryService, utilizationService service.UtilizationService, recommendationService service.RecommendationService) *orchestratorService {
	return &orchestratorService{
		identityService:       identityService,
		inventoryService:      inventoryService,
		utilizationService:    utilizationService,
		recommendationService: recommendationService,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	if flags.Utilization {
		return s.utilizationWorkflow(flags)
	}

	if flags.Recommendations {
		return s.recommendationsWorkflow()
	}

	if flags.Visualize {
		return s.visualizeWorkflow()
	}

	return s.summaryWorkflow()
}

func (s *orchestratorService) summaryWorkflow() error {
	inventory, err := s.inventoryService.Collect(context.Background())
	if err != nil {
		return err
	}

	recommendations, err := s.recommendationService.CostRecommendations(context.Background())
	if err != nil {
		return err
	}

	accountInfo, err := s.identityService.GetAccountInfo(context.Background())
	if err != nil {
		return err
	}

	report := Assemble(inventory, nil, nil, recommendations)

	utils.StopSpinner()

	utils.DrawReportTable(accountInfo.AccountName, report)
	utils.DrawCostBarChart(&report.Inventory)
	return nil
}

func (s *orchestratorService) utilizationWorkflow(flags model.Flags) error {
	analyses, err := s.utilizationService.AnalyzeAllInstances(context.Background(), flags.Days)
	if err != nil {
		return err
	}

	metrics, err := s.utilizationService.ProjectSummary(context.Background(), flags.Days)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawUtilizationTable(analyses, metrics)
	return nil
}

func (s *orchestratorService) recommendationsWorkflow() error {
	recommendations, err := s.recommendationService.CostRecommendations(context.Background())
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawRecommendationsTable(recommendations)
	return nil
}

func (s *orchestratorService) visualizeWorkflow() error {
	inventory, err := s.inventoryService.Collect(context.Background())
	if err != nil {
		return err
	}

	utils.StopSpinner()

	fmt.Println(BuildVisualizationPrompt(inventory))
	return nil
}

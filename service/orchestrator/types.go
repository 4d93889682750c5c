package orchestrator

import (
	"github.com/elC0mpa/infra-vision/model"
	"github.com/elC0mpa/infra-vision/service"
)

type orchestratorService struct {
	identityService       service.IdentityService
	inventoryService      service.InventoryService
	utilizationService    service.UtilizationService
	recommendationService service.RecommendationService
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}

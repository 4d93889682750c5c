package pricing

import (
	"github.com/elC0mpa/infra-vision/model"
)

type service struct {
	vmPrices      map[string]float64
	storagePrices map[string]float64
	defaultCosts  map[model.ResourceType]float64
}

type PricingService interface {
	VMCost(machineType string) float64
	StorageCost(sizeGB float64, storageClass string, multiRegion bool) float64
	DefaultCost(t model.ResourceType) float64
}

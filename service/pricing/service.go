// Package pricing holds the static price tables used to estimate monthly
// resource costs. Lookups never fail; unknown identifiers fall back to a
// default price.
package pricing

import (
	"math"

	"github.com/elC0mpa/infra-vision/model"
)

// us-central1 list prices, monthly.
const (
	defaultVMPrice         = 24.46 // e2-medium
	defaultStoragePerGB    = 0.020 // standard, single-region
	multiRegionStoragePGB  = 0.026 // standard, US multi-region
	storageClassStandard   = "standard"
	storageClassMultiLabel = "standard_multi"
)

func NewService() *service {
	return &service{
		vmPrices: map[string]float64{
			"e2-micro":      6.11,
			"e2-small":      12.23,
			"e2-medium":     24.46,
			"e2-standard-2": 48.92,
			"n1-standard-1": 34.78,
			"n2-standard-2": 48.92,
			"n2-standard-4": 97.84,
		},
		storagePrices: map[string]float64{
			storageClassStandard:   defaultStoragePerGB,
			storageClassMultiLabel: multiRegionStoragePGB,
			"nearline":             0.010,
			"coldline":             0.004,
			"archive":              0.0012,
		},
		defaultCosts: map[model.ResourceType]float64{
			model.TypeVM:         defaultVMPrice,
			model.TypeDatabase:   50,
			model.TypeCluster:    73,
			model.TypeRedis:      40,
			model.TypeSpanner:    65,
			model.TypeRunService: 15.00,
			model.TypeScheduler:  0.10,
		},
	}
}

// VMCost implements service.PricingService
// Returns the monthly list price for a machine type, defaulting to e2-medium
// pricing for unrecognized types.
func (s *service) VMCost(machineType string) float64 {
	if price, ok := s.vmPrices[machineType]; ok {
		return price
	}
	return defaultVMPrice
}

// StorageCost implements service.PricingService
// Computes the monthly storage cost as sizeGB times the per-GB unit price,
// rounded to 2 decimal places. Multi-region standard storage uses a higher
// unit price than single-region standard.
func (s *service) StorageCost(sizeGB float64, storageClass string, multiRegion bool) float64 {
	if multiRegion && storageClass == storageClassStandard {
		return Round2(sizeGB * multiRegionStoragePGB)
	}

	price, ok := s.storagePrices[storageClass]
	if !ok {
		price = defaultStoragePerGB
	}
	return Round2(sizeGB * price)
}

// DefaultCost implements service.PricingService
// Returns the type-specific monthly cost constant for resource categories
// whose prices are not computed from metadata.
func (s *service) DefaultCost(t model.ResourceType) float64 {
	if cost, ok := s.defaultCosts[t]; ok {
		return cost
	}
	return 0
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package pricing

import (
	"testing"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/stretchr/testify/assert"
)

func TestVMCost(t *testing.T) {
	svc := NewService()

	assert.Equal(t, 6.11, svc.VMCost("e2-micro"))
	assert.Equal(t, 97.84, svc.VMCost("n2-standard-4"))
	assert.Equal(t, 24.46, svc.VMCost("c3-ultramem-999"), "unknown machine types fall back to e2-medium pricing")
}

func TestStorageCost(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name         string
		sizeGB       float64
		storageClass string
		multiRegion  bool
		want         float64
	}{
		{"standard multi-region", 50, "standard", true, 1.30},
		{"standard single-region", 50, "standard", false, 1.00},
		{"nearline", 50, "nearline", false, 0.50},
		{"coldline", 100, "coldline", false, 0.40},
		{"archive", 1000, "archive", false, 1.20},
		{"unknown class uses standard price", 50, "experimental", false, 1.00},
		{"multi-region only affects standard", 50, "nearline", true, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.StorageCost(tt.sizeGB, tt.storageClass, tt.multiRegion))
		})
	}
}

func TestDefaultCost(t *testing.T) {
	svc := NewService()

	assert.Equal(t, 50.0, svc.DefaultCost(model.TypeDatabase))
	assert.Equal(t, 73.0, svc.DefaultCost(model.TypeCluster))
	assert.Equal(t, 0.10, svc.DefaultCost(model.TypeScheduler))
	assert.Equal(t, 15.0, svc.DefaultCost(model.TypeRunService))
	assert.Equal(t, 0.0, svc.DefaultCost(model.TypeBucket), "buckets are priced per GB, not by flat default")
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 15.07, Round2(15.066))
	assert.Equal(t, 1.30, Round2(1.2999999))
	assert.Equal(t, 0.0, Round2(0.004))
}

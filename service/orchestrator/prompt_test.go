package orchestrator

import (
	"testing"

	"github.com/elC0mpa/infra-vision/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildVisualizationPrompt(t *testing.T) {
	inv := &model.Inventory{
		ProjectID: "test-project",
		VMs: []model.VMInstance{
			{ResourceMeta: model.ResourceMeta{Name: "small-vm", MonthlyCost: 24.46}},
			{ResourceMeta: model.ResourceMeta{Name: "big-vm", MonthlyCost: 97.84}},
		},
		Databases: []model.DatabaseInstance{
			{ResourceMeta: model.ResourceMeta{Name: "orders-db", MonthlyCost: 50}},
		},
		Storage: []model.StorageBucket{
			{ResourceMeta: model.ResourceMeta{Name: "assets", MonthlyCost: 1.30}},
			{ResourceMeta: model.ResourceMeta{Name: "backups", MonthlyCost: 0.50}},
		},
		RunServices: []model.RunService{
			{ResourceMeta: model.ResourceMeta{Name: "api", MonthlyCost: 15}},
		},
		Schedulers: []model.SchedulerJob{
			{ResourceMeta: model.ResourceMeta{Name: "nightly", MonthlyCost: 0.10}},
		},
	}

	prompt := BuildVisualizationPrompt(inv)

	assert.Contains(t, prompt, "isometric cloud architecture diagram")
	assert.Contains(t, prompt, "2 Virtual Machines")
	assert.Contains(t, prompt, `"big-vm" at $97.84`, "the most expensive VM is highlighted regardless of order")
	assert.Contains(t, prompt, "1 Cloud SQL databases")
	assert.Contains(t, prompt, `"orders-db" at $50.00`)
	assert.Contains(t, prompt, "2 Storage Buckets, with a total cost of $1.80")
	assert.Contains(t, prompt, "1 Cloud Run Services")
	assert.Contains(t, prompt, "1 Cloud Schedulers")
	assert.Contains(t, prompt, "Styling notes:")
}

func TestBuildVisualizationPromptOmitsEmptyCategories(t *testing.T) {
	inv := &model.Inventory{
		ProjectID: "test-project",
		VMs: []model.VMInstance{
			{ResourceMeta: model.ResourceMeta{Name: "only-vm", MonthlyCost: 24.46}},
		},
	}

	prompt := BuildVisualizationPrompt(inv)

	assert.Contains(t, prompt, "1 Virtual Machines")
	assert.NotContains(t, prompt, "Cloud SQL databases")
	assert.NotContains(t, prompt, "Storage Buckets")
	assert.NotContains(t, prompt, "Cloud Run Services")
	assert.NotContains(t, prompt, "Cloud Schedulers")
}

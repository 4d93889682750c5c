package orchestrator

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/infra-vision/model"
)

// BuildVisualizationPrompt renders the discovered inventory as an image
// generation prompt for an isometric architecture diagram. Only categories
// with at least one resource are mentioned.
func BuildVisualizationPrompt(inventory *model.Inventory) string {
	var b strings.Builder

	b.WriteString("Create a professional and visually appealing isometric cloud architecture diagram for a GCP project. ")
	b.WriteString("The diagram should represent the following resources, with their sizes and colors reflecting their monthly cost. ")
	b.WriteString("Use a clean, modern style with clear labels. Emphasize the most expensive services.\n\n")

	b.WriteString("Resources to include:\n")

	if len(inventory.VMs) > 0 {
		name, cost := mostExpensiveVM(inventory.VMs)
		fmt.Fprintf(&b, "- %d Virtual Machines. The most expensive is %q at $%.2f. Show this one as larger and colored red.\n",
			len(inventory.VMs), name, cost)
	}

	if len(inventory.Databases) > 0 {
		name, cost := mostExpensiveDatabase(inventory.Databases)
		fmt.Fprintf(&b, "- %d Cloud SQL databases. The most expensive is %q at $%.2f. Color it orange.\n",
			len(inventory.Databases), name, cost)
	}

	if len(inventory.Storage) > 0 {
		total := 0.0
		for _, bucket := range inventory.Storage {
			total += bucket.MonthlyCost
		}
		fmt.Fprintf(&b, "- %d Storage Buckets, with a total cost of $%.2f. Represent this as a group of generic buckets.\n",
			len(inventory.Storage), total)
	}

	if len(inventory.RunServices) > 0 {
		total := 0.0
		for _, svc := range inventory.RunServices {
			total += svc.MonthlyCost
		}
		fmt.Fprintf(&b, "- %d Cloud Run Services, with a total cost of $%.2f. Show a cluster of Cloud Run icons, glowing red when the cost dominates the project.\n",
			len(inventory.RunServices), total)
	}

	if len(inventory.Schedulers) > 0 {
		fmt.Fprintf(&b, "- %d Cloud Schedulers. Show these as small clock icons, triggering the Cloud Run services.\n",
			len(inventory.Schedulers))
	}

	b.WriteString("\nStyling notes:\n")
	b.WriteString("- Use isometric perspective.")
	b.WriteString("- Label each main component clearly.")
	b.WriteString("- Use arrows to suggest data flow, for example from Schedulers to Cloud Run, and from Cloud Run to the Cloud SQL database.")
	b.WriteString("- The overall mood should be professional, like a diagram for a tech presentation.")

	return b.String()
}

func mostExpensiveVM(vms []model.VMInstance) (string, float64) {
	top := vms[0]
	for _, vm := range vms[1:] {
		if vm.MonthlyCost > top.MonthlyCost {
			top = vm
		}
	}
	return top.Name, top.MonthlyCost
}

func mostExpensiveDatabase(databases []model.DatabaseInstance) (string, float64) {
	top := databases[0]
	for _, db := range databases[1:] {
		if db.MonthlyCost > top.MonthlyCost {
			top = db
		}
	}
	return top.Name, top.MonthlyCost
}

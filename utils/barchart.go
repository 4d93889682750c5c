package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/infra-vision/model"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawCostBarChart renders the monthly cost per resource category, most
// expensive categories in red.
func DrawCostBarChart(inventory *model.Inventory) {
	grouped := inventory.ByType()

	var categories []model.ResourceType
	totals := make(map[model.ResourceType]float64)
	for _, resourceType := range model.TypeOrder {
		resources := grouped[resourceType]
		if len(resources) == 0 {
			continue
		}
		for _, resource := range resources {
			totals[resourceType] += resource.ResourceCost()
		}
		categories = append(categories, resourceType)
	}

	if len(categories) == 0 {
		return
	}

	bc := barchart.New(100, 20)

	indexedColors := assignRankedColors(categories, totals)

	for idx, resourceType := range categories {
		data := barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f USD", TypeLabel(resourceType), totals[resourceType]),
			Values: []barchart.BarValue{
				{
					Value: totals[resourceType],
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func assignRankedColors(categories []model.ResourceType, totals map[model.ResourceType]float64) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type costWithIndex struct {
		index int
		value float64
	}

	costsToSort := make([]costWithIndex, len(categories))
	for i, resourceType := range categories {
		costsToSort[i] = costWithIndex{
			index: i,
			value: totals[resourceType],
		}
	}

	sort.Slice(costsToSort, func(i, j int) bool {
		return costsToSort[i].value > costsToSort[j].value
	})

	resultColors := make([]string, len(categories))
	for rank, sortedCost := range costsToSort {
		originalIndex := sortedCost.index
		if rank < len(palette) {
			resultColors[originalIndex] = palette[rank]
		} else {
			resultColors[originalIndex] = palette[len(palette)-1]
		}
	}

	return resultColors
}

package utils

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawBanner() {
	banner := figure.NewFigure("infra-vision", "slant", true)
	fmt.Print(text.FgHiCyan.Sprintf("%s\n", banner.String()))
}

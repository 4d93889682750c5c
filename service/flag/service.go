package flag

import (
	"flag"

	"github.com/elC0mpa/infra-vision/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	project := flag.String("project", "", "GCP project ID (defaults to the saved selection)")
	days := flag.Int("days", 30, "Lookback window in days for utilization analysis")
	utilization := flag.Bool("utilization", false, "Display VM utilization analysis and right-sizing recommendations")
	recommendations := flag.Bool("recommendations", false, "Display Cloud Recommender cost recommendations")
	visualize := flag.Bool("visualize", false, "Print the infrastructure visualization prompt")

	flag.Parse()

	return model.Flags{
		Project:         *project,
		Days:            *days,
		Utilization:     *utilization,
		Recommendations: *recommendations,
		Visualize:       *visualize,
	}, nil
}

package model

type Flags struct {
	Project         string
	Days            int
	Utilization     bool
	Recommendations bool
	Visualize       bool
}

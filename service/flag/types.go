package flag

import (
	"github.com/elC0mpa/infra-vision/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/infra-vision/service/cache"
	"github.com/elC0mpa/infra-vision/service/flag"
	gcpidentity "github.com/elC0mpa/infra-vision/service/gcp/identity"
	gcpinventory "github.com/elC0mpa/infra-vision/service/gcp/inventory"
	gcpmonitoring "github.com/elC0mpa/infra-vision/service/gcp/monitoring"
	gcprecommender "github.com/elC0mpa/infra-vision/service/gcp/recommender"
	"github.com/elC0mpa/infra-vision/service/orchestrator"
	"github.com/elC0mpa/infra-vision/service/pricing"
	"github.com/elC0mpa/infra-vision/service/state"
	"github.com/elC0mpa/infra-vision/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	stateService := state.NewService("")
	projectID := flags.Project
	if projectID == "" {
		projectID, err = stateService.ProjectID()
		if err != nil {
			panic(err)
		}
	}
	if projectID == "" {
		panic("no GCP project selected, pass -project or select one first")
	}
	if flags.Project != "" {
		if err := stateService.SelectProject(flags.Project); err != nil {
			panic(err)
		}
	}

	utils.StartSpinner()

	ctx := context.Background()

	identityService, err := gcpidentity.NewService(ctx, projectID)
	if err != nil {
		panic(err)
	}
	if _, err := identityService.GetCredentials(ctx); err != nil {
		panic(fmt.Errorf("no application default credentials: %w", err))
	}

	pricingService := pricing.NewService()
	cacheService := cache.NewService(cache.DefaultTTL)

	inventoryService, err := gcpinventory.NewService(ctx, projectID, pricingService, cacheService)
	if err != nil {
		panic(err)
	}

	monitoringService, err := gcpmonitoring.NewService(ctx, projectID)
	if err != nil {
		panic(err)
	}

	recommenderService, err := gcprecommender.NewService(ctx, projectID)
	if err != nil {
		panic(err)
	}

	orchestratorService := orchestrator.NewService(identityService, inventoryService, monitoringService, recommenderService)

	err = orchestratorService.Orchestrate(flags)
	if err != nil {
		panic(err)
	}
}

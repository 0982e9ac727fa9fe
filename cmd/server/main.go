package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ivashin/servekit/config"
	"github.com/ivashin/servekit/logger"
	"github.com/ivashin/servekit/middleware"
	"github.com/ivashin/servekit/openapi"
	"github.com/ivashin/servekit/server"
	"github.com/ivashin/servekit/version"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("servekit-server")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	versionHandler := version.NewHandler(cfg.App.ManifestPath, log)

	router := chi.NewRouter()
	router.Method(http.MethodGet, "/", versionHandler)

	if cfg.App.SpecPath != "" {
		doc := openapi.NewDocument("servekit demo", buildVersion)
		versionHandler.AddToSpec(doc, "/")

		if err := openapi.Export(doc, cfg.App.SpecPath); err != nil {
			log.Fatal().Err(err).Msg("error exporting OpenAPI spec")
		}
		log.Info().Str("path", cfg.App.SpecPath).Msg("OpenAPI spec exported")
	}

	handler := middleware.Attach(router, log)

	ln, err := net.Listen("tcp", cfg.Server.HTTPAddress)
	if err != nil {
		log.Fatal().Err(err).Str("address", cfg.Server.HTTPAddress).Msg("error binding listen address")
	}

	if err := server.Run(context.Background(), ln, handler, log); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/popcue/admin-console/internal/admin/cli"
	"github.com/popcue/admin-console/internal/admin/client"
	"github.com/popcue/admin-console/internal/admin/config"
	"github.com/popcue/admin-console/internal/admin/notify"
	"github.com/popcue/admin-console/internal/admin/services"
	"github.com/popcue/admin-console/internal/admin/storage"
	"github.com/popcue/admin-console/internal/admin/workflow"
	"github.com/popcue/admin-console/internal/buildinfo"
	"github.com/popcue/admin-console/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.StatePath)
	if err != nil {
		log.Fatalf("error initializing session store: %v", err)
	}
	defer db.Close()

	mode, err := cli.ParseColorMode(cfg.ColorMode)
	if err != nil {
		log.Fatalf("%v", err)
	}
	printer := cli.NewPrinter(os.Stdout, os.Stderr, cli.ResolveColors(mode))
	notices := notify.NewCenter(cfg.NoticeTTL, printer)

	api := client.NewHTTPClient(cfg.APIBaseURL, client.WithTimeout(cfg.RequestTimeout))

	ctrl := workflow.NewController(
		services.NewSessionService(api, db, logger),
		services.NewTenantService(api, logger),
		services.NewSurveyService(api, logger),
		notices,
		logger,
	)

	logger.Debug(ctx, "starting admin console", "api", cfg.APIBaseURL, "state", cfg.StatePath)

	app := cli.NewApp(ctrl, notices, printer, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}

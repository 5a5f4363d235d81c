package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lightlens/internal/buildinfo"
	"github.com/dmitrijs2005/lightlens/internal/client/cli"
	"github.com/dmitrijs2005/lightlens/internal/client/config"
	"github.com/dmitrijs2005/lightlens/internal/client/fakebackend"
	"github.com/dmitrijs2005/lightlens/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.FakeBackend {
		url, err := fakebackend.Listen(ctx, fakebackend.New(), "127.0.0.1:0", logger)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg.BackendURL = url
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}

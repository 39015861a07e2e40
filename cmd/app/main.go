package main

import (
	"flag"
	"log"
	"os"

	"github.com/bentunaru/spy-etf-news-agent/internal/di"
	"github.com/bentunaru/spy-etf-news-agent/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s port=%d default_model=%s", cfg.Environment, cfg.Server.Port, cfg.Forecast.Model)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}

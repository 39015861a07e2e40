//go:build wireinject
// +build wireinject

package di

import (
	"github.com/bentunaru/spy-etf-news-agent/pkg/config"
	"github.com/bentunaru/spy-etf-news-agent/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideForecaster,
		ProvideHTTPHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/styling-advisor/internal/bootstrap"
	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/internal/infra/config"
	httpiface "github.com/yanqian/styling-advisor/internal/interface/http"
	"github.com/yanqian/styling-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideStylingConfig,
		provideBreakerSettings,
		provideWeatherClient,
		provideWeatherCache,
		provideChatClient,
		provideOutfitStore,
		styling.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}

package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
	"exusiai.dev/ssq-predictor/internal/app/appcontext"
	"exusiai.dev/ssq-predictor/internal/core/draw"
	"exusiai.dev/ssq-predictor/internal/core/report"
	"exusiai.dev/ssq-predictor/internal/infra"
	"exusiai.dev/ssq-predictor/internal/pkg/logger"
	"exusiai.dev/ssq-predictor/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Core
		draw.Module(),
		report.Module(),

		// Services
		service.Module(),

		// fx Extra Options
		fx.StartTimeout(5 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}

package service

import (
	"go.uber.org/fx"

	"exusiai.dev/ssq-predictor/internal/util"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		util.NewValidator,
		NewPredictor,
	))
}

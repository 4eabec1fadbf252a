package draw

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("draw",
		fx.Provide(
			NewSource,
		),
	)
}

package report

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("report",
		fx.Provide(
			NewWriter,
			NewUploader,
		),
	)
}

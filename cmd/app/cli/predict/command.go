package predict

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
	"exusiai.dev/ssq-predictor/internal/service"
)

type CommandDeps struct {
	fx.In

	Config    *appconfig.Config
	Predictor *service.Predictor
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "generate candidate sets from the most recent draws and save them as a report",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "issues",
				Aliases: []string{"i"},
				Usage:   "number of most recent draws to analyze (default: SSQ_DEFAULT_ISSUE_COUNT)",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "analyze every historical draw",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of candidate sets to generate (default: SSQ_DEFAULT_PREDICTION_COUNT)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "report format, text or json (default: SSQ_REPORT_FORMAT)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "directory to save the report into (default: SSQ_REPORT_DIR)",
			},
			&cli.BoolFlag{
				Name:    "print",
				Aliases: []string{"p"},
				Usage:   "also print the report to stdout",
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(c, deps)
		},
	}
}

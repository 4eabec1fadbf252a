package app

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	cliapp "exusiai.dev/ssq-predictor/cmd/app/cli"
	"exusiai.dev/ssq-predictor/cmd/app/cli/issues"
	"exusiai.dev/ssq-predictor/cmd/app/cli/predict"
	"exusiai.dev/ssq-predictor/internal/pkg/bininfo"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

func Run() {
	app := &cli.App{
		Name:        "ssq",
		Usage:       "predict 双色球 numbers from historical draw frequencies",
		Description: "Tabulates per-position frequencies of the most recent 双色球 draws and builds candidate sets from the most frequent numbers.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			predict.Command(cliapp.DepsFn[predict.CommandDeps]()),
			issues.Command(cliapp.DepsFn[issues.CommandDeps]()),
		},
		// exit statuses are decided below, after the error has been logged
		ExitErrHandler: func(*cli.Context, error) {},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error().Stack().Err(err).Msg("failed to run app")
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ssqerr.StatusInternalError
}

package issues

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/ssq-predictor/internal/service"
)

type CommandDeps struct {
	fx.In

	Predictor *service.Predictor
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "issues",
		Usage: "print the number of historical draws the draw source holds",
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}
			total, err := deps.Predictor.TotalIssues(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "双色球当前总期数为：%d\n", total)
			return nil
		},
	}
}

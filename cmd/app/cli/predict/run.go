package predict

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
	"exusiai.dev/ssq-predictor/internal/core/report"
	"exusiai.dev/ssq-predictor/internal/service"
)

func request(c *cli.Context, conf *appconfig.Config) service.PredictRequest {
	req := service.PredictRequest{
		IssueCount:      conf.DefaultIssueCount,
		AllIssues:       c.Bool("all"),
		PredictionCount: conf.DefaultPredictionCount,
		Format:          conf.ReportFormat,
		OutDir:          c.String("out"),
	}
	if c.IsSet("issues") || req.AllIssues {
		req.IssueCount = c.Int("issues")
	}
	if c.IsSet("count") {
		req.PredictionCount = c.Int("count")
	}
	if c.IsSet("format") {
		req.Format = c.String("format")
	}
	return req
}

func run(c *cli.Context, deps CommandDeps) error {
	req := request(c, deps.Config)
	result, err := deps.Predictor.Predict(c.Context, req)
	if result == nil {
		return err
	}

	if c.Bool("print") {
		content, rerr := report.Render(result.Batch, req.Format)
		if rerr != nil {
			return rerr
		}
		fmt.Fprint(c.App.Writer, string(content))
	}

	fmt.Fprintf(c.App.ErrWriter, "预测结果已保存到文件：%s\n", result.ReportPath)
	if result.ReportKey != "" {
		fmt.Fprintf(c.App.ErrWriter, "已上传：%s\n", result.ReportKey)
	}
	return err
}

package draw

import (
	"context"
	"net/http"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

// Source supplies historical draws, most recent first.
type Source interface {
	// Recent returns up to issueCount of the most recent draws.
	Recent(ctx context.Context, issueCount int) ([]model.Draw, error)

	// TotalIssues returns the number of draws held by the source.
	TotalIssues(ctx context.Context) (int, error)
}

func NewSource(conf *appconfig.Config, client *http.Client) (Source, error) {
	switch conf.SourceKind {
	case appconfig.SourceKindCWL:
		return NewCWL(conf, client), nil
	case appconfig.SourceKindFile:
		if conf.SourceFile == "" {
			return nil, ssqerr.ErrInvalidReq.Msg("SSQ_SOURCE_FILE is required when SSQ_SOURCE_KIND is %q", appconfig.SourceKindFile)
		}
		return NewFile(conf.SourceFile), nil
	default:
		return nil, ssqerr.ErrInvalidReq.Msg("unknown draw source kind %q", conf.SourceKind)
	}
}

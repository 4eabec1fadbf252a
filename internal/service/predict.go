package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"exusiai.dev/ssq-predictor/internal/core/draw"
	"exusiai.dev/ssq-predictor/internal/core/frequency"
	"exusiai.dev/ssq-predictor/internal/core/prediction"
	"exusiai.dev/ssq-predictor/internal/core/report"
	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
	"exusiai.dev/ssq-predictor/internal/util"
)

/*
Predictor runs the prediction pipeline once per call:

 1. validate the request; resolve the window with Source.TotalIssues when every issue is requested
 2. fetch the most recent draws from the Source
 3. frequency.Tabulate and frequency.Rank
 4. prediction.Generate
 5. write the report, then upload it when uploading is configured

Nothing is kept in-between calls, so concurrent calls do not interfere.
*/
type Predictor struct {
	Source   draw.Source
	Writer   *report.Writer
	Uploader *report.Uploader
	Validate *validator.Validate

	now func() time.Time
}

type PredictRequest struct {
	// IssueCount is the historical window, in number of most recent draws.
	IssueCount int `validate:"gte=0"`

	// AllIssues uses every historical draw instead of IssueCount.
	AllIssues bool

	// PredictionCount is the number of candidate sets to generate.
	PredictionCount int `validate:"gt=0"`

	// Format is the report format: text or json.
	Format string `validate:"caseinsensitiveoneof=text json"`

	// OutDir overrides the configured report directory when not empty.
	OutDir string
}

type PredictResult struct {
	RunID      string
	Batch      *model.PredictionBatch
	DrawsUsed  int
	Digest     string
	ReportPath string
	ReportKey  string
}

func NewPredictor(source draw.Source, writer *report.Writer, uploader *report.Uploader, validate *validator.Validate) *Predictor {
	validate.RegisterStructValidation(predictRequestStructLevel, PredictRequest{})

	return &Predictor{
		Source:   source,
		Writer:   writer,
		Uploader: uploader,
		Validate: validate,
		now:      time.Now,
	}
}

func predictRequestStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(PredictRequest)
	switch {
	case !req.AllIssues && req.IssueCount == 0:
		sl.ReportError(req.IssueCount, "IssueCount", "IssueCount", "required_without", "AllIssues")
	case req.AllIssues && req.IssueCount != 0:
		sl.ReportError(req.IssueCount, "IssueCount", "IssueCount", "excluded_with", "AllIssues")
	}
}

func (s *Predictor) validateRequest(req PredictRequest) error {
	if err := s.Validate.Struct(req); err != nil {
		violations := util.Violations(err)
		if violations == nil {
			return errors.Wrap(err, "failed to validate prediction request")
		}
		return ssqerr.NewInvalidViolations(violations)
	}
	return nil
}

func (s *Predictor) Predict(ctx context.Context, req PredictRequest) (*PredictResult, error) {
	runID := xid.New().String()
	logger := log.With().Str("run.id", runID).Logger()

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	issueCount := req.IssueCount
	if req.AllIssues {
		total, err := s.TotalIssues(ctx)
		if err != nil {
			return nil, err
		}
		issueCount = total
	}

	draws, err := s.Source.Recent(ctx, issueCount)
	if err != nil {
		return nil, err
	}
	if len(draws) == 0 {
		return nil, ssqerr.ErrUpstream.Msg("draw source returned no draws for the last %d issues", issueCount)
	}
	if len(draws) < issueCount {
		logger.Warn().
			Int("issue.requested", issueCount).
			Int("issue.returned", len(draws)).
			Msg("draw source returned fewer draws than requested")
	}

	digest := Digest(draws)
	logger.Info().
		Str("evt.name", "predict.window").
		Int("issue.count", issueCount).
		Int("draws", len(draws)).
		Str("draws.digest", digest).
		Msg("draw window fetched")

	sets, err := Generate(draws, req.PredictionCount)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate predictions")
		return nil, err
	}

	batch := &model.PredictionBatch{
		Sets:        sets,
		IssueCount:  issueCount,
		GeneratedAt: s.now(),
	}

	writer := s.Writer
	if req.OutDir != "" {
		writer = writer.WithDir(req.OutDir)
	}
	path, err := writer.Write(ctx, batch, req.Format)
	if err != nil {
		return nil, err
	}

	result := &PredictResult{
		RunID:      runID,
		Batch:      batch,
		DrawsUsed:  len(draws),
		Digest:     digest,
		ReportPath: path,
	}

	if s.Uploader.Enabled() {
		key, err := s.Uploader.Upload(ctx, path)
		if err != nil {
			logger.Error().Err(err).Str("report.path", path).Msg("report written but upload failed")
			return result, ssqerr.ErrUpstream.Msg("report saved to %s but upload failed: %v", path, err)
		}
		result.ReportKey = key
	}

	logger.Info().
		Str("evt.name", "predict.done").
		Int("predictions", len(sets)).
		Str("report.path", result.ReportPath).
		Str("report.key", result.ReportKey).
		Msg("prediction finished")
	return result, nil
}

func (s *Predictor) TotalIssues(ctx context.Context) (int, error) {
	total, err := s.Source.TotalIssues(ctx)
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, ssqerr.ErrUpstream.Msg("draw source holds no historical issues")
	}
	return total, nil
}

// Generate runs the pure part of the pipeline: tabulate, rank and generate.
func Generate(draws []model.Draw, count int) ([]model.CandidateSet, error) {
	if count <= 0 {
		return nil, ssqerr.ErrInvalidReq.Msg("prediction count must be greater than 0, got %d", count)
	}
	tally, err := frequency.Tabulate(draws)
	if err != nil {
		return nil, err
	}
	return prediction.Generate(frequency.Rank(tally), count)
}

// Digest fingerprints a draw window so that runs over identical input can be matched in logs.
func Digest(draws []model.Draw) string {
	var b strings.Builder
	for _, d := range draws {
		b.WriteString(d.Issue)
		for _, red := range d.Reds {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(red))
		}
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(d.Blue))
		b.WriteByte(';')
	}
	return strconv.FormatUint(xxh3.HashString(b.String()), 16)
}

package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

const (
	FormatTextName = "text"
	FormatJSONName = "json"
)

type Writer struct {
	dir string
}

func NewWriter(conf *appconfig.Config) *Writer {
	return &Writer{dir: conf.ReportDir}
}

// WithDir returns a Writer saving into dir instead.
func (w *Writer) WithDir(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Dir() string {
	return w.dir
}

// FileName is the name a report generated at the batch's timestamp is saved under.
func FileName(batch *model.PredictionBatch, format string) string {
	ext := ".txt"
	if format == FormatJSONName {
		ext = ".json"
	}
	return Title + "_" + batch.GeneratedAt.Format(TimestampLayout) + ext
}

func Render(batch *model.PredictionBatch, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTextName:
		return []byte(FormatText(batch)), nil
	case FormatJSONName:
		return FormatJSON(batch)
	default:
		return nil, ssqerr.ErrInvalidReq.Msg("unknown report format %q", format)
	}
}

// Write renders the batch and saves it into dir. The file either appears complete
// or not at all: content goes to a temporary file first which is then renamed.
// A cancelled ctx leaves no report behind.
func (w *Writer) Write(ctx context.Context, batch *model.PredictionBatch, format string) (string, error) {
	format = strings.ToLower(format)
	content, err := Render(batch, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create report directory")
	}

	tmp, err := os.CreateTemp(w.dir, ".ssq-report-*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temporary report file")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "failed to set report file mode")
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "failed to write report")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close report")
	}

	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "report write cancelled")
	}

	path := filepath.Join(w.dir, FileName(batch, format))
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", errors.Wrap(err, "failed to move report into place")
	}

	log.Info().
		Str("evt.name", "report.written").
		Str("report.path", path).
		Int("report.size", len(content)).
		Msg("prediction report saved")

	return path, nil
}

package report

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"exusiai.dev/ssq-predictor/internal/model"
)

type jsonReport struct {
	Title       string           `json:"title"`
	GeneratedAt time.Time        `json:"generatedAt"`
	IssueCount  int              `json:"issueCount"`
	Predictions []jsonPrediction `json:"predictions"`
}

type jsonPrediction struct {
	Rank int       `json:"rank"`
	Reds [6]string `json:"reds"`
	Blue string    `json:"blue"`
}

func FormatJSON(batch *model.PredictionBatch) ([]byte, error) {
	r := jsonReport{
		Title:       Title,
		GeneratedAt: batch.GeneratedAt,
		IssueCount:  batch.IssueCount,
		Predictions: make([]jsonPrediction, len(batch.Sets)),
	}
	for i, set := range batch.Sets {
		r.Predictions[i] = jsonPrediction{Rank: i + 1, Reds: set.Reds, Blue: set.Blue}
	}

	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal json report")
	}
	return append(b, '\n'), nil
}

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
	"exusiai.dev/ssq-predictor/internal/core/draw"
	"exusiai.dev/ssq-predictor/internal/core/report"
	"exusiai.dev/ssq-predictor/internal/pkg/projectpath"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
	"exusiai.dev/ssq-predictor/internal/util"
)

var fixedNow = time.Date(2024, 3, 18, 8, 30, 0, 0, time.Local)

func newTestPredictor(t *testing.T) (*Predictor, string) {
	dir := t.TempDir()
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		SourceKind:     appconfig.SourceKindFile,
		SourceFile:     filepath.Join(projectpath.Root, "internal", "core", "draw", "testdata", "draws.json"),
		ReportDir:      dir,
		ReportS3Prefix: "reports/",
	}}

	source, err := draw.NewSource(conf, nil)
	require.NoError(t, err)

	p := NewPredictor(source, report.NewWriter(conf), report.NewUploader(conf, nil), util.NewValidator())
	p.now = func() time.Time { return fixedNow }
	return p, dir
}

func TestPredictWritesReport(t *testing.T) {
	p, dir := newTestPredictor(t)

	result, err := p.Predict(context.Background(), PredictRequest{
		IssueCount:      12,
		PredictionCount: 7,
		Format:          "text",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "双色球号码预测_20240318-083000.txt"), result.ReportPath)
	assert.Equal(t, 12, result.DrawsUsed)
	assert.Empty(t, result.ReportKey)
	assert.NotEmpty(t, result.RunID)

	expected := "双色球号码预测\n" +
		"20240318-083000\n" +
		"根据双色球近 12 期的开奖结果分析：\n" +
		"预测 1> 红区 02 09 13 19 26 30 - 蓝区 11\n" +
		"预测 2> 红区 01 07 16 21 27 33 - 蓝区 05\n" +
		"预测 3> 红区 05 10 14 22 28 31 - 蓝区 01\n" +
		"预测 4> 红区 07 11 15 20 29 32 - 蓝区 03\n" +
		"预测 5> 红区 04 08 17 23 25 30 - 蓝区 08\n" +
		"======================================\n" +
		"预测 6> 红区 03 12 18 24 26 33 - 蓝区 14\n" +
		"预测 7> 红区 06 09 13 19 27 31 - 蓝区 16\n" +
		"预测 8> 红区 -- -- -- -- -- -- - 蓝区 --\n" +
		"预测 9> 红区 -- -- -- -- -- -- - 蓝区 --\n" +
		"预测10> 红区 -- -- -- -- -- -- - 蓝区 --\n"

	content, err := os.ReadFile(result.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, expected, string(content))
}

func TestPredictWindow(t *testing.T) {
	p, _ := newTestPredictor(t)

	result, err := p.Predict(context.Background(), PredictRequest{
		IssueCount:      5,
		PredictionCount: 3,
		Format:          "TEXT",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.DrawsUsed)
	assert.Equal(t, [6]string{"05", "07", "16", "21", "27", "33"}, result.Batch.Sets[1].Reds)
	assert.Equal(t, "03", result.Batch.Sets[1].Blue)
	assert.Equal(t, [6]string{"07", "10", "14", "22", "28", "31"}, result.Batch.Sets[2].Reds)
}

func TestPredictAllIssues(t *testing.T) {
	p, _ := newTestPredictor(t)
	out := t.TempDir()

	result, err := p.Predict(context.Background(), PredictRequest{
		AllIssues:       true,
		PredictionCount: 2,
		Format:          "json",
		OutDir:          out,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, result.Batch.IssueCount)
	assert.Equal(t, filepath.Join(out, "双色球号码预测_20240318-083000.json"), result.ReportPath)
	assert.FileExists(t, result.ReportPath)
}

func TestPredictLargerWindowThanHistory(t *testing.T) {
	p, _ := newTestPredictor(t)

	result, err := p.Predict(context.Background(), PredictRequest{
		IssueCount:      100,
		PredictionCount: 1,
		Format:          "text",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, result.DrawsUsed)
	assert.Equal(t, 100, result.Batch.IssueCount)
}

func TestPredictRejectsInvalidRequests(t *testing.T) {
	p, dir := newTestPredictor(t)

	requests := map[string]PredictRequest{
		"zero predictions":       {IssueCount: 10, PredictionCount: 0, Format: "text"},
		"negative predictions":   {IssueCount: 10, PredictionCount: -1, Format: "text"},
		"no window":              {PredictionCount: 5, Format: "text"},
		"negative window":        {IssueCount: -3, PredictionCount: 5, Format: "text"},
		"window with all issues": {IssueCount: 10, AllIssues: true, PredictionCount: 5, Format: "text"},
		"unknown format":         {IssueCount: 10, PredictionCount: 5, Format: "xml"},
	}

	for name, req := range requests {
		t.Run(name, func(t *testing.T) {
			_, err := p.Predict(context.Background(), req)
			assert.True(t, errors.Is(err, ssqerr.ErrInvalidReq), "expected invalid request, got %v", err)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected requests must not write reports")
}

type failingPutter struct {
	calls int
}

func (f *failingPutter) PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	return nil, errors.New("bucket unreachable")
}

func TestPredictKeepsReportWhenUploadFails(t *testing.T) {
	p, dir := newTestPredictor(t)
	putter := &failingPutter{}
	p.Uploader = report.NewObjectUploader(putter, "ssq", "reports/")

	result, err := p.Predict(context.Background(), PredictRequest{
		IssueCount:      12,
		PredictionCount: 5,
		Format:          "text",
	})
	assert.True(t, errors.Is(err, ssqerr.ErrUpstream), "expect upstream error, got %v", err)
	assert.Equal(t, 1, putter.calls)

	require.NotNil(t, result)
	assert.Empty(t, result.ReportKey)
	assert.Equal(t, filepath.Join(dir, "双色球号码预测_20240318-083000.txt"), result.ReportPath)
	assert.FileExists(t, result.ReportPath)
}

func TestPredictIsIdempotent(t *testing.T) {
	p, _ := newTestPredictor(t)
	req := PredictRequest{IssueCount: 12, PredictionCount: 9, Format: "text"}

	first, err := p.Predict(context.Background(), req)
	require.NoError(t, err)
	second, err := p.Predict(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Batch.Sets, second.Batch.Sets)
	assert.Equal(t, first.Digest, second.Digest)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestTotalIssues(t *testing.T) {
	p, _ := newTestPredictor(t)

	total, err := p.TotalIssues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestDigest(t *testing.T) {
	p, _ := newTestPredictor(t)

	draws, err := p.Source.Recent(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, Digest(draws), Digest(draws))
	assert.NotEqual(t, Digest(draws), Digest(draws[1:]))

	swapped := append(draws[:0:0], draws...)
	swapped[0].Blue, swapped[1].Blue = swapped[1].Blue, swapped[0].Blue
	assert.NotEqual(t, Digest(draws), Digest(swapped))
}

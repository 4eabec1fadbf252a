package draw

import (
	"context"
	"os"

	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

// File reads draws from a local draw notice document.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (s *File) read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ssqerr.ErrUpstream.Msg("failed to read draw file %s: %v", s.path, err)
	}
	return b, nil
}

func (s *File) Recent(_ context.Context, issueCount int) ([]model.Draw, error) {
	if issueCount <= 0 {
		return nil, ssqerr.ErrInvalidReq.Msg("issue count must be greater than 0, got %d", issueCount)
	}
	b, err := s.read()
	if err != nil {
		return nil, err
	}
	results, err := resultArray(b)
	if err != nil {
		return nil, err
	}
	// records outside the window are never decoded, as with the remote source
	if issueCount < len(results) {
		results = results[:issueCount]
	}
	return decodeResults(results)
}

func (s *File) TotalIssues(_ context.Context) (int, error) {
	b, err := s.read()
	if err != nil {
		return 0, err
	}
	results, err := resultArray(b)
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

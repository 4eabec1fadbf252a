package draw

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

const lotteryName = "ssq"

// defaultHeaders mirror what the draw notice page sends from a browser. SourceHeaders
// are applied on top of them.
var defaultHeaders = map[string]string{
	"Accept":           "application/json, text/javascript, */*; q=0.01",
	"Accept-Language":  "zh-CN,zh;q=0.9",
	"Referer":          "https://www.cwl.gov.cn/ygkj/wqkjgg/ssq/",
	"User-Agent":       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
	"X-Requested-With": "XMLHttpRequest",
}

// CWL queries the draw notice endpoint of the China Welfare Lottery site.
type CWL struct {
	client   *http.Client
	endpoint string
	headers  appconfig.HeaderMap
	attempts uint
	delay    time.Duration
}

func NewCWL(conf *appconfig.Config, client *http.Client) *CWL {
	attempts := conf.SourceRetryAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &CWL{
		client:   client,
		endpoint: conf.SourceURL,
		headers:  conf.SourceHeaders,
		attempts: attempts,
		delay:    conf.SourceRetryDelay,
	}
}

func (s *CWL) Recent(ctx context.Context, issueCount int) ([]model.Draw, error) {
	if issueCount <= 0 {
		return nil, ssqerr.ErrInvalidReq.Msg("issue count must be greater than 0, got %d", issueCount)
	}
	body, err := s.fetch(ctx, strconv.Itoa(issueCount))
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

// TotalIssues asks for the notice without an issue count, which makes the endpoint
// return every historical draw.
func (s *CWL) TotalIssues(ctx context.Context) (int, error) {
	body, err := s.fetch(ctx, "")
	if err != nil {
		return 0, err
	}
	results, err := resultArray(body)
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

func (s *CWL) fetch(ctx context.Context, issueCount string) ([]byte, error) {
	query := url.Values{}
	query.Set("name", lotteryName)
	query.Set("issueCount", issueCount)
	for _, k := range []string{"issueStart", "issueEnd", "dayStart", "dayEnd"} {
		query.Set(k, "")
	}

	var (
		body    []byte
		lastErr error
		tries   uint
	)
	err := retry.Do(
		func() error {
			tries++
			b, err := s.get(ctx, query)
			if err != nil {
				lastErr = err
				// typed errors are permanent; anything else is a transient transport failure
				var se *ssqerr.SSQError
				if errors.As(err, &se) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "draw.fetch.retry").
				Uint("attempt", n+1).
				Err(err).
				Msg("failed to fetch draw notice, retrying")
		}),
	)
	if err != nil {
		if lastErr == nil {
			lastErr = err
		}
		var se *ssqerr.SSQError
		if errors.As(lastErr, &se) {
			return nil, se.Msg("%s (after %d attempt(s))", se.Message, tries)
		}
		return nil, ssqerr.ErrUpstream.Msg("failed to fetch draw notice after %d attempt(s): %v", tries, lastErr)
	}

	log.Debug().
		Str("evt.name", "draw.fetch").
		Str("query.issueCount", issueCount).
		Int("body.size", len(body)).
		Uint("attempts", tries).
		Msg("draw notice fetched")
	return body, nil
}

func (s *CWL) get(ctx context.Context, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, ssqerr.ErrUpstream.Msg("failed to build draw notice request: %v", err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "draw notice request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read draw notice response")
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, errors.Errorf("draw notice endpoint answered %s", resp.Status)
	case resp.StatusCode >= 400:
		return nil, ssqerr.ErrUpstream.Msg("draw notice endpoint rejected the request: %s", resp.Status)
	}
	return body, nil
}

package infra

import (
	"net/http"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
)

func HTTPClient(conf *appconfig.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 2

	return &http.Client{
		Timeout:   conf.SourceTimeout,
		Transport: transport,
	}
}

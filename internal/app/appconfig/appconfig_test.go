package appconfig

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/ssq-predictor/internal/app/appcontext"
)

func TestHeaderMapDecode(t *testing.T) {
	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko)"
	referer := "https://www.cwl.gov.cn/ygkj/wqkjgg/ssq/"

	var m HeaderMap
	err := m.Decode("user-agent:" + base64.StdEncoding.EncodeToString([]byte(ua)) +
		",Referer:" + base64.StdEncoding.EncodeToString([]byte(referer)))
	require.NoError(t, err)

	assert.Equal(t, HeaderMap{"User-Agent": ua, "Referer": referer}, m)
}

func TestHeaderMapDecodeErrors(t *testing.T) {
	var m HeaderMap
	assert.Error(t, m.Decode("Referer"))
	assert.Error(t, m.Decode("Referer:not base64!"))
	assert.NoError(t, m.Decode(""))
	assert.Empty(t, m)
}

func TestParseDefaults(t *testing.T) {
	t.Setenv("SSQ_SOURCE_KIND", SourceKindFile)
	t.Setenv("SSQ_SOURCE_TIMEOUT", "3s")

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, SourceKindFile, conf.SourceKind)
	assert.Equal(t, 3*time.Second, conf.SourceTimeout)
	assert.Equal(t, uint(3), conf.SourceRetryAttempts)
	assert.Equal(t, "text", conf.ReportFormat)
	assert.Equal(t, appcontext.EnvCLI, conf.AppContext.Env)
}

package appconfig

import (
	"time"

	"exusiai.dev/ssq-predictor/internal/app/appcontext"
)

const (
	SourceKindCWL  = "cwl"
	SourceKindFile = "file"
)

type ConfigSpec struct {
	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stderr for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogDir is the directory rotated log files are written to. Leaving this empty disables file logging.
	LogDir string `split_words:"true" default:"logs"`

	// DevMode to indicate development mode. When true, the logger would log at trace level.
	DevMode bool `split_words:"true"`

	// SourceKind selects where historical draws are read from.
	// Valid values are: cwl (the official draw notice API), file (a local JSON document of the same shape).
	SourceKind string `required:"true" split_words:"true" default:"cwl"`

	// SourceURL is the draw notice endpoint queried when SourceKind is cwl.
	SourceURL string `split_words:"true" default:"https://www.cwl.gov.cn/cwl_admin/front/cwlkj/search/kjxx/findDrawNotice"`

	// SourceFile is the JSON document read when SourceKind is file.
	SourceFile string `split_words:"true"`

	// SourceTimeout bounds a single request to the draw notice endpoint.
	SourceTimeout time.Duration `split_words:"true" default:"15s"`

	// SourceRetryAttempts is the total number of attempts made against the draw notice endpoint.
	SourceRetryAttempts uint `split_words:"true" default:"3"`

	// SourceRetryDelay is the base delay in-between attempts.
	SourceRetryDelay time.Duration `split_words:"true" default:"1s"`

	// SourceHeaders are extra request headers sent to the draw notice endpoint, such as Referer or Cookie.
	// See HeaderMap for the expected format.
	SourceHeaders HeaderMap `split_words:"true"`

	// ReportDir is the directory prediction reports are written to.
	ReportDir string `required:"true" split_words:"true" default:"."`

	// ReportFormat is the default report format. Valid values are: text, json.
	ReportFormat string `required:"true" split_words:"true" default:"text"`

	// ReportS3Bucket enables uploading each written report to S3. Leaving this empty disables uploading.
	ReportS3Bucket string `split_words:"true"`

	// ReportS3Region is the region of ReportS3Bucket.
	ReportS3Region string `split_words:"true" default:"ap-east-1"`

	// ReportS3Prefix is prepended to the report file name to form the object key.
	ReportS3Prefix string `split_words:"true" default:"reports/"`

	// AWSAccessKey and AWSSecretKey are static credentials for the upload. When left empty,
	// the default AWS credential chain is used.
	AWSAccessKey string `envconfig:"AWS_ACCESS_KEY"`
	AWSSecretKey string `envconfig:"AWS_SECRET_KEY"`

	// DefaultIssueCount is the historical window used when the command line does not specify one.
	DefaultIssueCount int `split_words:"true" default:"100"`

	// DefaultPredictionCount is the number of predictions generated when the command line does not specify one.
	DefaultPredictionCount int `split_words:"true" default:"5"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
)

// ObjectPutter is the subset of *s3.Client used to upload reports.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Uploader struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewUploader returns an Uploader that does nothing when client is nil.
func NewUploader(conf *appconfig.Config, client *s3.Client) *Uploader {
	if client == nil {
		return &Uploader{bucket: conf.ReportS3Bucket, prefix: conf.ReportS3Prefix}
	}
	return NewObjectUploader(client, conf.ReportS3Bucket, conf.ReportS3Prefix)
}

// NewObjectUploader uploads through any ObjectPutter, such as an S3 compatible client.
func NewObjectUploader(client ObjectPutter, bucket, prefix string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (u *Uploader) Enabled() bool {
	return u.client != nil && u.bucket != ""
}

// Upload puts the report at path into the bucket and returns its object key.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	if !u.Enabled() {
		return "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open report for upload")
	}
	defer f.Close()

	contentType := "text/plain; charset=utf-8"
	if strings.HasSuffix(path, ".json") {
		contentType = "application/json"
	}

	key := u.prefix + filepath.Base(path)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload report to s3")
	}

	log.Info().
		Str("evt.name", "report.uploaded").
		Str("s3.bucket", u.bucket).
		Str("s3.key", key).
		Msg("prediction report uploaded")
	return key, nil
}

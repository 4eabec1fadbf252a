package infra

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"exusiai.dev/ssq-predictor/internal/app/appconfig"
)

// S3 returns a nil client when report uploading is not configured.
func S3(conf *appconfig.Config) (*s3.Client, error) {
	if conf.ReportS3Bucket == "" {
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.ReportS3Region),
	}
	if conf.AWSAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, ""),
		))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Error().Err(err).Msg("infra: s3: failed to load aws configuration")
		return nil, err
	}

	log.Debug().
		Str("s3.bucket", conf.ReportS3Bucket).
		Str("s3.region", awsConfig.Region).
		Msg("infra: s3: report upload enabled")

	return s3.NewFromConfig(awsConfig), nil
}

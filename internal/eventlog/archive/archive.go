// Package archive uploads snapshots of the durable event log segment to an
// S3-compatible object store, so a wiped host can be restored up to the
// last snapshot.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// seams for tests
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig

	putObject = func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return client.PutObject(ctx, in)
	}
)

// Config holds the object storage settings of the archiver.
type Config struct {
	Region       string
	RootUser     string
	RootPassword string
	Bucket       string
	BaseEndpoint string
}

// Archiver snapshots a single file (the event log segment) into a bucket.
type Archiver struct {
	cfg    Config
	source string
	logger logging.Logger
}

func New(cfg Config, source string, logger logging.Logger) *Archiver {
	return &Archiver{
		cfg:    cfg,
		source: source,
		logger: logger.With("module", "archiver"),
	}
}

func (a *Archiver) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(a.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.cfg.RootUser,
			a.cfg.RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(a.cfg.BaseEndpoint)
	})

	return client, nil
}

// snapshotKey spreads snapshots over date-based prefixes.
func snapshotKey() string {
	d := time.Now()
	return fmt.Sprintf("events/%d/%02d/%02d/%v.log", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Snapshot uploads the current content of the source file.
func (a *Archiver) Snapshot(ctx context.Context) error {
	data, err := os.ReadFile(a.source)
	if err != nil {
		return fmt.Errorf("archive: reading %s: %w", a.source, err)
	}

	client, err := a.client(ctx)
	if err != nil {
		return fmt.Errorf("archive: building s3 client: %w", err)
	}

	key := snapshotKey()
	_, err = putObject(ctx, client, &s3.PutObjectInput{
		Bucket: aws.String(a.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("archive: uploading %s: %w", key, err)
	}

	a.logger.Info(ctx, "Snapshot uploaded", "key", key, "bytes", len(data))
	return nil
}

// Run snapshots every interval until the context is canceled. Failures are
// logged and retried on the next tick.
func (a *Archiver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Snapshot(ctx); err != nil {
				a.logger.Error(ctx, err.Error())
			}
		}
	}
}

package archive

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/admingate/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func testConfig() Config {
	return Config{
		Region:       "us-east-1",
		RootUser:     "minioadmin",
		RootPassword: "minioadmin",
		Bucket:       "admingate",
		BaseEndpoint: "http://127.0.0.1:9000",
	}
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queue.log")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	return path
}

func stubSeams(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPut := putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
	})
}

func TestSnapshot_UploadsFileContent(t *testing.T) {
	stubSeams(t)

	source := writeSource(t, "frame-1frame-2")
	a := New(testConfig(), source, nopLogger{})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil {
			t.Fatalf("BaseEndpoint not set")
		}
		capturedBaseEndpoint = *opts.BaseEndpoint
		return &s3.Client{}
	}

	var gotBucket, gotKey, gotBody string
	putObject = func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotBucket = aws.ToString(in.Bucket)
		gotKey = aws.ToString(in.Key)
		b, err := io.ReadAll(in.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		gotBody = string(b)
		return &s3.PutObjectOutput{}, nil
	}

	if err := a.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot err: %v", err)
	}

	if capturedBaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %q", capturedBaseEndpoint)
	}
	if gotBucket != "admingate" {
		t.Fatalf("bucket mismatch: %q", gotBucket)
	}
	if !strings.HasPrefix(gotKey, "events/") || !strings.HasSuffix(gotKey, ".log") {
		t.Fatalf("unexpected key: %q", gotKey)
	}
	if gotBody != "frame-1frame-2" {
		t.Fatalf("body mismatch: %q", gotBody)
	}
}

func TestSnapshot_MissingSource(t *testing.T) {
	stubSeams(t)

	a := New(testConfig(), filepath.Join(t.TempDir(), "nope.log"), nopLogger{})
	if err := a.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func TestSnapshot_UploadError(t *testing.T) {
	stubSeams(t)

	source := writeSource(t, "data")
	a := New(testConfig(), source, nopLogger{})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	putObject = func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("upload-fail")
	}

	err := a.Snapshot(context.Background())
	if err == nil || !strings.Contains(err.Error(), "upload-fail") {
		t.Fatalf("expected upload-fail, got %v", err)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	stubSeams(t)

	source := writeSource(t, "data")
	a := New(testConfig(), source, nopLogger{})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	uploads := make(chan struct{}, 16)
	putObject = func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		uploads <- struct{}{}
		return &s3.PutObjectOutput{}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-uploads:
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot within timeout")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

// Package publish uploads a rendered site directory to an S3 bucket.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNoBucket is returned when publishing is requested without a bucket name.
var ErrNoBucket = errors.New("no bucket configured")

// PublishConfig selects the destination of a publish.
type PublishConfig struct {
	// Bucket is the S3 bucket name. Publishing is disabled when empty.
	Bucket string `json:"bucket"`

	// Region overrides the region from the shared AWS configuration.
	Region string `json:"region"`

	// Prefix is prepended to every object key, e.g. "site/".
	Prefix string `json:"prefix"`
}

// DefaultConfig returns a PublishConfig with publishing disabled.
func DefaultConfig() *PublishConfig {
	return &PublishConfig{}
}

// Enabled reports whether a destination bucket is set.
func (c *PublishConfig) Enabled() bool {
	return c != nil && c.Bucket != ""
}

// Uploader is the subset of the S3 upload manager used by Publisher.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Publisher copies rendered files of an output directory into a bucket.
type Publisher struct {
	logger   *slog.Logger
	uploader Uploader
	bucket   string
	prefix   string
}

// New creates a Publisher backed by the S3 upload manager, using the default
// AWS credential chain.
func New(ctx context.Context, logger *slog.Logger, cfg *PublishConfig) (*Publisher, error) {
	if !cfg.Enabled() {
		return nil, ErrNoBucket
	}
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}
	return NewWithUploader(logger, manager.NewUploader(s3.NewFromConfig(awsCfg)), cfg), nil
}

// NewWithUploader creates a Publisher over an existing Uploader.
func NewWithUploader(logger *slog.Logger, uploader Uploader, cfg *PublishConfig) *Publisher {
	return &Publisher{
		logger:   logger,
		uploader: uploader,
		bucket:   cfg.Bucket,
		prefix:   cfg.Prefix,
	}
}

// Publish uploads the named files of dir and returns how many were sent.
// Names are relative to dir. Nothing else in dir is read, so configuration,
// databases and source documents kept next to the output stay private.
func (p *Publisher) Publish(ctx context.Context, dir string, names []string) (int, error) {
	count := 0
	for _, name := range names {
		if !filepath.IsLocal(name) {
			return count, fmt.Errorf("publish to %s failed: %q is not inside %s", p.bucket, name, dir)
		}
		if err := p.uploadFile(ctx, filepath.Join(dir, name), objectKey(p.prefix, name)); err != nil {
			return count, fmt.Errorf("publish to %s failed: %w", p.bucket, err)
		}
		count++
	}
	p.logger.Info("Publish complete", "bucket", p.bucket, "files", count)
	return count, nil
}

func (p *Publisher) uploadFile(ctx context.Context, filePath, key string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	_, err = p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(filePath)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	p.logger.Debug("Uploaded file", "key", key, "bucket", p.bucket)
	return nil
}

// objectKey joins prefix and a relative file path with forward slashes.
func objectKey(prefix, rel string) string {
	rel = filepath.ToSlash(rel)
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

func contentType(filePath string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filePath)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

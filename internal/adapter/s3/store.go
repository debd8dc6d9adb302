// Package s3 implements image storage on an S3-compatible service
// (AWS S3, MinIO, or anything speaking the same API).
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/config"
	"github.com/pairlog/pairlog-backend/internal/domain"
)

// api is the subset of the S3 client the store uses. Tests swap it out.
type api interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store uploads and deletes entry images in a single bucket folder.
// A Store built from an unconfigured ImageStoreConfig is usable: Upload
// fails with domain.ErrServiceUnavailable and Delete reports false.
type Store struct {
	client api
	cfg    config.ImageStoreConfig
	log    *slog.Logger
}

// New builds a Store from configuration. When the store is not configured
// no client is created and all operations degrade gracefully.
func New(ctx context.Context, cfg config.ImageStoreConfig, log *slog.Logger) (*Store, error) {
	s := &Store{cfg: cfg, log: log}

	if !cfg.Configured() {
		log.Warn("image store not configured, image operations disabled")
		return s, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return s, nil
}

// Upload stores the image under a fresh key in the configured folder and
// returns its public URL.
// Returns domain.ErrServiceUnavailable when the store is not configured or
// not reachable, domain.ErrUpload when the put itself fails.
func (s *Store) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if s.client == nil {
		return "", domain.ErrServiceUnavailable
	}

	key := s.cfg.Folder + "/" + uuid.New().String() + strings.ToLower(path.Ext(filename))

	ctx, cancel := context.WithTimeout(ctx, s.cfg.UploadTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("put object %s: %w", key, domain.ErrServiceUnavailable)
		}
		return "", fmt.Errorf("put object %s: %w", key, domain.ErrUpload)
	}

	return s.objectURL(key), nil
}

// Delete removes the object behind a previously issued URL. It is strictly
// best effort: every failure (unparseable URL, missing configuration,
// network trouble, slow backend) is logged and folded into a false return.
// It never blocks longer than the configured delete timeout.
func (s *Store) Delete(ctx context.Context, rawURL string) bool {
	if s.client == nil {
		return false
	}

	key, ok := s.objectKey(rawURL)
	if !ok {
		s.log.Warn("image delete skipped, unrecognized url", slog.String("url", rawURL))
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DeleteTimeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Warn("image delete failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}

	return true
}

func (s *Store) objectURL(key string) string {
	if s.cfg.Endpoint != "" {
		return strings.TrimSuffix(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

// objectKey extracts the "<folder>/<file>" key from an image URL. Only URLs
// pointing into the configured folder are accepted. Searching for the folder
// segment instead of splitting at a fixed depth tolerates version segments
// some CDNs insert between the bucket and the folder, e.g. /v1712345678/.
func (s *Store) objectKey(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg == s.cfg.Folder && i+1 < len(segments) {
			return strings.Join(segments[i:], "/"), true
		}
	}

	return "", false
}

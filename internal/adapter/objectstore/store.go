// Package objectstore stores prediction images in S3 or an S3-compatible
// store (MinIO) and mints presigned retrieval URLs for them.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/heartmarshall/leafcare-backend/internal/config"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

const serviceName = "object_store"

// recorder receives upstream call observations.
type recorder interface {
	ObserveUpstream(service, operation string, err error, d time.Duration)
}

// Store is an S3-backed image store. It is constructed once at startup and
// shared by all requests.
type Store struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	prefix     string
	presignTTL time.Duration
	metrics    recorder
	log        *slog.Logger
	now        func() time.Time
}

// New creates a Store from StorageConfig. Static credentials are used when
// configured, otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg config.StorageConfig, metrics recorder, logger *slog.Logger) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// S3-compatible stores do not all accept the SDK's default
			// trailing checksums.
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewWithClient(client, cfg, metrics, logger), nil
}

// NewWithClient creates a Store around an existing S3 client.
func NewWithClient(client *s3.Client, cfg config.StorageConfig, metrics recorder, logger *slog.Logger) *Store {
	return &Store{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		prefix:     strings.Trim(cfg.UploadPrefix, "/"),
		presignTTL: cfg.PresignTTL,
		metrics:    metrics,
		log:        logger.With("adapter", serviceName),
		now:        time.Now,
	}
}

// OwnerPrefix returns the key prefix under which ownerID's uploads live.
func (s *Store) OwnerPrefix(ownerID uuid.UUID) string {
	return s.prefix + "/" + ownerID.String() + "/"
}

// OwnsKey reports whether key was issued for ownerID.
func (s *Store) OwnsKey(ownerID uuid.UUID, key string) bool {
	return strings.HasPrefix(key, s.OwnerPrefix(ownerID)) && !strings.Contains(key, "..")
}

// Upload stores an image for ownerID under a fresh key and returns the key
// with a presigned URL, left empty when only presigning failed. The content
// type is sniffed from data; filename only supplies the extension when the
// type has none.
func (s *Store) Upload(ctx context.Context, ownerID uuid.UUID, data []byte, filename string) (domain.StoredImage, error) {
	if len(data) == 0 {
		return domain.StoredImage{}, domain.NewValidationError("image", "is empty")
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return domain.StoredImage{}, domain.NewValidationError("image", fmt.Sprintf("unsupported content type %q", mt.String()))
	}

	ext := mt.Extension()
	if ext == "" {
		ext = path.Ext(filename)
	}
	if ext == "" {
		ext = ".jpg"
	}

	key := fmt.Sprintf("%s%d-%s%s", s.OwnerPrefix(ownerID), s.now().UnixMilli(), uuid.NewString(), ext)
	contentType, _, _ := strings.Cut(mt.String(), ";")

	if err := s.Put(ctx, key, data, contentType); err != nil {
		return domain.StoredImage{}, err
	}

	// The object is durable once Put succeeds; readers presign the key again.
	url, err := s.PresignGet(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "presign after upload failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		url = ""
	}

	return domain.StoredImage{Key: key, URL: url, ContentType: contentType}, nil
}

// Put writes data under key.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	start := time.Now()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	s.observe("put", err, start)
	if err != nil {
		return domain.NewUpstreamError(serviceName, fmt.Errorf("put %s: %w", key, err))
	}

	s.log.DebugContext(ctx, "object stored", slog.String("key", key), slog.Int("bytes", len(data)))
	return nil
}

// PresignGet mints a time-limited retrieval URL for key. It does not touch
// the object itself.
func (s *Store) PresignGet(ctx context.Context, key string) (string, error) {
	start := time.Now()
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	s.observe("presign", err, start)
	if err != nil {
		return "", domain.NewUpstreamError(serviceName, fmt.Errorf("presign %s: %w", key, err))
	}
	return req.URL, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	s.observe("delete", err, start)
	if err != nil {
		return domain.NewUpstreamError(serviceName, fmt.Errorf("delete %s: %w", key, err))
	}
	return nil
}

func (s *Store) observe(op string, err error, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveUpstream(serviceName, op, err, time.Since(start))
	}
}

// Ping checks that the bucket exists and is reachable with the configured
// credentials.
func (s *Store) Ping(ctx context.Context) error {
	start := time.Now()
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	s.observe("head_bucket", err, start)
	if err != nil {
		return domain.NewUpstreamError(serviceName, fmt.Errorf("head bucket %s: %w", s.bucket, err))
	}
	return nil
}

// Package storage signs uploads to an S3-compatible bucket (AWS S3, MinIO)
// used to archive rendered videos.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrNoBucket = errors.New("no bucket configured")

const DefaultPresignExpiry = 15 * time.Minute

// Swapped in tests.
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = s3.NewPresignClient
)

type Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Expiry       time.Duration
}

// Presigner hands out URLs that accept a single PUT of one object.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	Bucket() string
}

type S3Presigner struct {
	cfg    Config
	client *s3.PresignClient
}

// NewS3Presigner builds a presign client. Static credentials are used when
// AccessKey is set, otherwise the default AWS credential chain. A custom
// BaseEndpoint switches to path-style addressing, which MinIO expects.
func NewS3Presigner(ctx context.Context, cfg Config) (*S3Presigner, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	if cfg.Expiry <= 0 {
		cfg.Expiry = DefaultPresignExpiry
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Presigner{cfg: cfg, client: newS3PresignClient(client)}, nil
}

func (p *S3Presigner) Bucket() string { return p.cfg.Bucket }

func (p *S3Presigner) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(p.cfg.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := p.client.PresignPutObject(ctx, in, s3.WithPresignExpires(p.cfg.Expiry))
	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}
	return req.URL, nil
}

// ObjectKey lays archived renders out by owner and day:
// renders/<email>/2026/05/01/<uuid>-video_7.mp4.
func ObjectKey(now time.Time, email, fileName string) string {
	owner := strings.NewReplacer("/", "_", "\\", "_").Replace(strings.ToLower(strings.TrimSpace(email)))
	if owner == "" {
		owner = "anonymous"
	}
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" {
		name = "video.mp4"
	}
	return fmt.Sprintf("renders/%s/%s/%s-%s", owner, now.UTC().Format("2006/01/02"), uuid.NewString(), name)
}

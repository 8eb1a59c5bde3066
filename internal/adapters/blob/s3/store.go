// Package s3 implementa blobstore.Store sobre S3 o un compatible (MinIO).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"barangay-animal-tracking/internal/ports/blobstore"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignExpiry es el máximo que acepta SigV4.
const PresignExpiry = 7 * 24 * time.Hour

type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string

	// si está, URL arma links públicos en vez de presignar
	publicBase string
}

type Config struct {
	Region          string
	Bucket          string
	Endpoint        string // opcional (MinIO, LocalStack)
	PathStyle       bool
	AccessKeyID     string // opcional; vacío = cadena default
	SecretAccessKey string
	PublicBaseURL   string

	// Solo tests.
	HTTPClient aws.HTTPClient
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	})

	base := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if base != "" {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("invalid public base url: %w", err)
		}
	}

	return &Store{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		publicBase: base,
	}, nil
}

// Put sube el objeto completo. El body se lee a memoria para mandar
// Content-Length (los uploads de fotos vienen acotados por el handler).
func (s *Store) Put(ctx context.Context, key string, body io.Reader, contentType string) (blobstore.Object, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return blobstore.Object{}, err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(b),
		ContentLength: aws.Int64(int64(len(b))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return blobstore.Object{}, fmt.Errorf("s3 put %s: %w", key, err)
	}
	return blobstore.Object{Key: key, ContentType: contentType, Size: int64(len(b))}, nil
}

func (s *Store) URL(ctx context.Context, key string) (string, error) {
	if s.publicBase != "" {
		return s.publicBase + "/" + (&url.URL{Path: key}).EscapedPath(), nil
	}
	out, err := s.presign.PresignGetObject(ctx,
		&s3.GetObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)},
		func(po *s3.PresignOptions) { po.Expires = PresignExpiry },
	)
	if err != nil {
		return "", fmt.Errorf("s3 presign %s: %w", key, err)
	}
	return out.URL, nil
}

var _ blobstore.Store = (*Store)(nil)

package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ProofUpload tells the client where to PUT the proof file and which URL to
// attach to the payment afterwards.
type ProofUpload struct {
	UploadURL string    `json:"upload_url"`
	Method    string    `json:"method"`
	ObjectURL string    `json:"object_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProofStore struct {
	presigner Presigner
	bucket    string
	region    string
	endpoint  string
	ttl       time.Duration
}

func NewProofStore(presigner Presigner, cfg config.S3Config) *ProofStore {
	return &ProofStore{
		presigner: presigner,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		ttl:       cfg.ProofURLTTL,
	}
}

// NewS3ProofStore builds the S3 client from static credentials. A custom
// endpoint (MinIO, LocalStack) switches to path-style addressing.
func NewS3ProofStore(cfg config.S3Config) *ProofStore {
	awsCfg := aws.Config{
		Region: cfg.Region,
	}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewProofStore(s3.NewPresignClient(client), cfg)
}

func (s *ProofStore) PresignUpload(ctx context.Context, key, contentType string, now time.Time) (*ProofUpload, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("presign proof upload: %w", err)
	}

	return &ProofUpload{
		UploadURL: req.URL,
		Method:    req.Method,
		ObjectURL: s.objectURL(key),
		ExpiresAt: now.Add(s.ttl),
	}, nil
}

func (s *ProofStore) objectURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
}

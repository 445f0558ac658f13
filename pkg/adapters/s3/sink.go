// Package s3 uploads note archives to an S3-compatible bucket (AWS S3 or MinIO).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const markdownContentType = "text/markdown; charset=utf-8"

// Config holds explicit construction parameters. Empty credentials fall
// back to the default AWS chain.
type Config struct {
	Bucket          string
	Prefix          string // optional key prefix, e.g. "backups/2024-05-01"
	Region          string
	Endpoint        string // optional; enables a custom endpoint (e.g. MinIO)
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	PathStyle       bool
}

// Environment variables read by ConfigFromEnv:
//   QUICKNOTES_S3_BUCKET, QUICKNOTES_S3_PREFIX, QUICKNOTES_S3_REGION (default us-east-1),
//   QUICKNOTES_S3_ENDPOINT, QUICKNOTES_S3_PATH_STYLE=true|false

// ConfigFromEnv fills a Config from the process environment.
func ConfigFromEnv() Config {
	return Config{
		Bucket:    os.Getenv("QUICKNOTES_S3_BUCKET"),
		Prefix:    os.Getenv("QUICKNOTES_S3_PREFIX"),
		Region:    os.Getenv("QUICKNOTES_S3_REGION"),
		Endpoint:  os.Getenv("QUICKNOTES_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("QUICKNOTES_S3_PATH_STYLE"), "true"),
	}
}

// putObjectAPI is the slice of the S3 client the sink needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Sink writes archive files as objects in a single bucket.
type Sink struct {
	client putObjectAPI
	bucket string
	prefix string
}

// New creates a Sink from cfg.
func New(ctx context.Context, cfg Config) (*Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newSink(client, cfg.Bucket, cfg.Prefix), nil
}

func newSink(client putObjectAPI, bucket, prefix string) *Sink {
	return &Sink{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Key returns the object key used for name.
func (s *Sink) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Put uploads data under the prefixed key, overwriting any existing object.
func (s *Sink) Put(ctx context.Context, name string, data []byte) error {
	key := s.Key(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(markdownContentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

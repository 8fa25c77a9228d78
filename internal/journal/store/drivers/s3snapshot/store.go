package s3snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	"github.com/aussiebroadwan/journal/internal/journal/store"
)

// ObjectAPI is the subset of the S3 client the store needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Config describes where the snapshot object lives. Endpoint and the static
// keys are optional; without them the default AWS chain is used.
type Config struct {
	Bucket       string
	Key          string
	Region       string
	Endpoint     string // e.g. http://minio:9000
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// Store keeps the account snapshot as one JSON object. A PUT replaces the
// object atomically, so readers see either the old or the new snapshot.
type Store struct {
	client ObjectAPI
	bucket string
	key    string
}

var _ store.Store = (*Store)(nil)

// NewClient builds an S3 client from cfg.
func NewClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3snapshot: load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

func NewStore(client ObjectAPI, bucket, key string) (*Store, error) {
	if bucket == "" || key == "" {
		return nil, errors.New("s3snapshot: bucket and key are required")
	}
	return &Store{client: client, bucket: bucket, key: key}, nil
}

func (s *Store) Load(ctx context.Context) (domain.Accounts, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if isNotFound(err) {
		return domain.Accounts{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get s3://%s/%s: %v", store.ErrStorageUnavailable, s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read s3://%s/%s: %v", store.ErrStorageUnavailable, s.bucket, s.key, err)
	}

	accounts := domain.Accounts{}
	if len(data) == 0 {
		return accounts, nil
	}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: decode s3://%s/%s: %v", store.ErrStorageUnavailable, s.bucket, s.key, err)
	}
	if err := accounts.CheckKeys(); err != nil {
		return nil, fmt.Errorf("%w: corrupt s3://%s/%s: %v", store.ErrStorageUnavailable, s.bucket, s.key, err)
	}
	return accounts, nil
}

func (s *Store) Save(ctx context.Context, accounts domain.Accounts) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("s3snapshot: encode: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: put s3://%s/%s: %v", store.ErrStorageUnavailable, s.bucket, s.key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("%w: head bucket %s: %v", store.ErrStorageUnavailable, s.bucket, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

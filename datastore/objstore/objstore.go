/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package objstore

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cloudward/reliant/errors"
	"github.com/cloudward/reliant/resilience"
)

const component = "objstore"

// API is the backend client contract for the blob family. *s3.Client
// satisfies it.
type API interface {
	GetObject(ctx context.Context, params *sdk.GetObjectInput, optFns ...func(*sdk.Options)) (*sdk.GetObjectOutput, error)
	PutObject(ctx context.Context, params *sdk.PutObjectInput, optFns ...func(*sdk.Options)) (*sdk.PutObjectOutput, error)
}

// Store executes blob operations through the retry core. The client is
// caller-owned and assumed safe for concurrent reuse.
type Store struct {
	client API
	retry  resilience.Config
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithMaxAttempts overrides the per-client retry budget (default 5).
func WithMaxAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.retry.MaxAttempts = n
		}
	}
}

// WithRetryConfig replaces the whole retry schedule.
func WithRetryConfig(cfg resilience.Config) Option {
	return func(s *Store) { s.retry = cfg }
}

// New constructs a Store around a caller-owned client.
func New(client API, opts ...Option) *Store {
	s := &Store{
		client: client,
		retry:  resilience.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type getOptions struct {
	gunzip bool
}

// GetOption tunes a blob read.
type GetOption func(*getOptions)

// WithGunzip decompresses the fetched body after a successful read.
func WithGunzip() GetOption {
	return func(o *getOptions) { o.gunzip = true }
}

// Get fetches an object and returns its raw bytes. A response with no
// body fails with a not-found error, distinct from transport errors.
func (s *Store) Get(ctx context.Context, bucket, key string, opts ...GetOption) ([]byte, error) {
	const op = "GetObject"
	params := map[string]any{"bucket": bucket, "key": key}
	if bucket == "" {
		return nil, errors.NewParamError(component, op, "bucket", params)
	}
	if key == "" {
		return nil, errors.NewParamError(component, op, "key", params)
	}

	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}

	body, err := resilience.Do(ctx, s.retry, op, func(ctx context.Context) ([]byte, error) {
		out, err := s.client.GetObject(ctx, &sdk.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, err
		}
		if out.Body == nil {
			return nil, errors.NewNotFoundError(component, op, bucket, key)
		}
		defer out.Body.Close()
		return io.ReadAll(out.Body)
	}, resilience.Retryable)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.NewOpError(component, op, params, err)
	}

	if o.gunzip {
		body, err = gunzip(body)
		if err != nil {
			return nil, errors.NewOpError(component, op, params, err)
		}
	}
	return body, nil
}

// GetString fetches an object and converts the body to text.
func (s *Store) GetString(ctx context.Context, bucket, key string, opts ...GetOption) (string, error) {
	body, err := s.Get(ctx, bucket, key, opts...)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON fetches an object and decodes the body into v.
func (s *Store) GetJSON(ctx context.Context, bucket, key string, v any, opts ...GetOption) error {
	body, err := s.Get(ctx, bucket, key, opts...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.NewOpError(component, "GetObject", map[string]any{"bucket": bucket, "key": key},
			fmt.Errorf("failed to decode object body: %w", err))
	}
	return nil
}

type putOptions struct {
	contentType string
	gzip        bool
}

// PutOption tunes a blob write.
type PutOption func(*putOptions)

// WithContentType sets the stored content type.
func WithContentType(ct string) PutOption {
	return func(o *putOptions) { o.contentType = ct }
}

// WithGzip compresses the body before upload and records the encoding.
func WithGzip() PutOption {
	return func(o *putOptions) { o.gzip = true }
}

// Put writes an object.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte, opts ...PutOption) error {
	const op = "PutObject"
	params := map[string]any{"bucket": bucket, "key": key, "bytes": len(body)}
	if bucket == "" {
		return errors.NewParamError(component, op, "bucket", params)
	}
	if key == "" {
		return errors.NewParamError(component, op, "key", params)
	}

	var o putOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.gzip {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(body); err != nil {
			return errors.NewOpError(component, op, params, err)
		}
		if err := zw.Close(); err != nil {
			return errors.NewOpError(component, op, params, err)
		}
		body = buf.Bytes()
	}

	// Each attempt gets a fresh reader; a retried attempt must not see
	// a body already drained by the previous one.
	_, err := resilience.Do(ctx, s.retry, op, func(ctx context.Context) (*sdk.PutObjectOutput, error) {
		input := &sdk.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(body),
		}
		if o.contentType != "" {
			input.ContentType = aws.String(o.contentType)
		}
		if o.gzip {
			input.ContentEncoding = aws.String("gzip")
		}
		return s.client.PutObject(ctx, input)
	}, resilience.Retryable)
	if err != nil {
		return errors.NewOpError(component, op, params, err)
	}
	return nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip body: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress body: %w", err)
	}
	return out, nil
}

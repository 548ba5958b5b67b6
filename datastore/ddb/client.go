/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/cloudward/reliant"
	"github.com/cloudward/reliant/errors"
	"github.com/cloudward/reliant/resilience"
	"github.com/cloudward/reliant/storagemodels"
)

const component = "ddb"

// API is the backend client contract for the document-database family.
// *dynamodb.Client satisfies it, as does any caching-proxy front-end
// exposing the same call surface.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *sdk.BatchGetItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error)
	TransactGetItems(ctx context.Context, params *sdk.TransactGetItemsInput, optFns ...func(*sdk.Options)) (*sdk.TransactGetItemsOutput, error)
	TransactWriteItems(ctx context.Context, params *sdk.TransactWriteItemsInput, optFns ...func(*sdk.Options)) (*sdk.TransactWriteItemsOutput, error)
}

// Store executes document-database operations through the retry,
// pagination and fallback core. The primary client is caller-owned and
// assumed safe for concurrent reuse; Store holds no per-call state.
type Store struct {
	primary    API
	fallback   API
	cacheProxy bool
	retry      resilience.Config
	log        reliant.Logger
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithCacheProxy tags the primary client as a caching-proxy front-end.
// Only tagged stores substitute the fallback client after exhausted
// retries; an untagged primary propagates its failure directly.
func WithCacheProxy() Option {
	return func(s *Store) { s.cacheProxy = true }
}

// WithFallback supplies a direct-database client for the substitution
// path. Mostly useful in tests; production callers normally use
// WithFallbackConfig.
func WithFallback(client API) Option {
	return func(s *Store) { s.fallback = client }
}

// WithFallbackConfig constructs the internal direct-database fallback
// client from AWS configuration. This is the only client the store ever
// constructs itself.
func WithFallbackConfig(cfg aws.Config) Option {
	return func(s *Store) { s.fallback = sdk.NewFromConfig(cfg) }
}

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

// WithLogger injects a logger for fallback-path diagnostics. Absence of
// a logger changes no behavior.
func WithLogger(l reliant.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Store around a caller-owned primary client.
func New(primary API, opts ...Option) *Store {
	s := &Store{
		primary: primary,
		retry:   resilience.DefaultConfig(),
		log:     reliant.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// execute runs a single-shot operation through the retrier against the
// primary, substituting the fallback client when the primary is a
// tagged caching proxy and its budget is spent.
func execute[T any](ctx context.Context, s *Store, op string, params map[string]any, fn func(ctx context.Context, c API) (T, error)) (T, error) {
	v, err := resilience.Do(ctx, s.retry, op, func(ctx context.Context) (T, error) {
		return fn(ctx, s.primary)
	}, resilience.Retryable)
	if err == nil {
		return v, nil
	}

	var zero T
	if !s.cacheProxy || s.fallback == nil {
		return zero, errors.NewOpError(component, op, params, err)
	}

	s.log.Warn("primary exhausted, substituting direct-database client", reliant.Fields{
		"op":    op,
		"error": err.Error(),
	})
	v, ferr := resilience.Do(ctx, s.retry, op, func(ctx context.Context) (T, error) {
		return fn(ctx, s.fallback)
	}, resilience.Retryable)
	if ferr != nil {
		s.log.Error("fallback exhausted", reliant.Fields{"op": op, "error": ferr.Error()})
		return zero, errors.NewFallbackError(op, err, ferr)
	}
	s.log.Info("fallback succeeded", reliant.Fields{"op": op})
	return v, nil
}

type itemMap = map[string]types.AttributeValue

// executePaged accumulates a paged operation against the primary. On
// failure against a tagged caching proxy, the whole accumulation
// re-runs from the caller's start cursor against the fallback with a
// fresh retry budget.
func executePaged(ctx context.Context, s *Store, op string, params map[string]any, start itemMap, ceiling int, page func(ctx context.Context, c API, exclusiveStart itemMap) (storagemodels.ItemPage, error)) (storagemodels.ItemResult, error) {
	run := func(c API) (resilience.Result[itemMap, itemMap], error) {
		var startPtr *itemMap
		if len(start) > 0 {
			k := start
			startPtr = &k
		}
		return resilience.Accumulate(ctx, s.retry, op, startPtr, ceiling,
			func(ctx context.Context, cursor *itemMap) (resilience.Page[itemMap, itemMap], error) {
				var exclusive itemMap
				if cursor != nil {
					exclusive = *cursor
				}
				p, err := page(ctx, c, exclusive)
				if err != nil {
					return resilience.Page[itemMap, itemMap]{}, err
				}
				out := resilience.Page[itemMap, itemMap]{Items: p.Items}
				if len(p.LastKey) > 0 {
					k := p.LastKey
					out.Next = &k
				}
				return out, nil
			}, resilience.Retryable)
	}

	res, err := run(s.primary)
	if err != nil {
		if !s.cacheProxy || s.fallback == nil {
			return storagemodels.ItemResult{}, errors.NewOpError(component, op, params, err)
		}
		s.log.Warn("primary exhausted, substituting direct-database client", reliant.Fields{
			"op":    op,
			"error": err.Error(),
		})
		var ferr error
		res, ferr = run(s.fallback)
		if ferr != nil {
			s.log.Error("fallback exhausted", reliant.Fields{"op": op, "error": ferr.Error()})
			return storagemodels.ItemResult{}, errors.NewFallbackError(op, err, ferr)
		}
		s.log.Info("fallback succeeded", reliant.Fields{"op": op})
	}

	out := storagemodels.ItemResult{Items: res.Items}
	if res.LastCursor != nil {
		out.LastKey = *res.LastCursor
	}
	return out, nil
}

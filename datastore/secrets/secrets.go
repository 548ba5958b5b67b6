/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/cloudward/reliant/errors"
	"github.com/cloudward/reliant/resilience"
)

const component = "secrets"

// API is the backend client contract for the secret family.
// *secretsmanager.Client satisfies it.
type API interface {
	GetSecretValue(ctx context.Context, params *sdk.GetSecretValueInput, optFns ...func(*sdk.Options)) (*sdk.GetSecretValueOutput, error)
}

// Store executes secret retrievals through the retry core.
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

// Get retrieves a secret's payload by name. The string payload wins;
// when absent, the binary payload is returned as UTF-8. A secret with
// neither fails with a not-found error.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	const op = "GetSecretValue"
	params := map[string]any{"name": name}
	if name == "" {
		return "", errors.NewParamError(component, op, "name", params)
	}

	out, err := resilience.Do(ctx, s.retry, op, func(ctx context.Context) (*sdk.GetSecretValueOutput, error) {
		return s.client.GetSecretValue(ctx, &sdk.GetSecretValueInput{
			SecretId: aws.String(name),
		})
	}, resilience.Retryable)
	if err != nil {
		return "", errors.NewOpError(component, op, params, err)
	}

	switch {
	case out.SecretString != nil:
		return *out.SecretString, nil
	case len(out.SecretBinary) > 0:
		return string(out.SecretBinary), nil
	default:
		return "", errors.NewNotFoundError(component, op, "", name)
	}
}

// GetJSON retrieves a secret and decodes its payload into v, the usual
// shape for secret bundles holding several named credentials.
func (s *Store) GetJSON(ctx context.Context, name string, v any) error {
	payload, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return errors.NewOpError(component, "GetSecretValue", map[string]any{"name": name},
			fmt.Errorf("failed to decode secret payload: %w", err))
	}
	return nil
}

/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

// Package mock provides scripted backend clients for testing the
// operation adapters without any network. Each client records the
// operations invoked on it, in order, and dispatches to optional
// per-operation functions; an unset function returns an empty success.
package mock

import (
	"context"
	"sync"

	ddbsdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	s3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	smsdk "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// TransientError is a backend error carrying the transient marker the
// retryability classifier looks for.
type TransientError struct {
	Msg string
}

func (e *TransientError) Error() string { return e.Msg }

// RetryableError marks the error transient, the way SDK throttling and
// transport errors do.
func (e *TransientError) RetryableError() bool { return true }

// PermanentError is a backend error without the transient marker.
type PermanentError struct {
	Msg string
}

func (e *PermanentError) Error() string { return e.Msg }

// DDB is a scripted document-database client.
type DDB struct {
	mu    sync.Mutex
	calls []string

	GetItemFn            func(*ddbsdk.GetItemInput) (*ddbsdk.GetItemOutput, error)
	PutItemFn            func(*ddbsdk.PutItemInput) (*ddbsdk.PutItemOutput, error)
	UpdateItemFn         func(*ddbsdk.UpdateItemInput) (*ddbsdk.UpdateItemOutput, error)
	DeleteItemFn         func(*ddbsdk.DeleteItemInput) (*ddbsdk.DeleteItemOutput, error)
	QueryFn              func(*ddbsdk.QueryInput) (*ddbsdk.QueryOutput, error)
	ScanFn               func(*ddbsdk.ScanInput) (*ddbsdk.ScanOutput, error)
	BatchGetItemFn       func(*ddbsdk.BatchGetItemInput) (*ddbsdk.BatchGetItemOutput, error)
	BatchWriteItemFn     func(*ddbsdk.BatchWriteItemInput) (*ddbsdk.BatchWriteItemOutput, error)
	TransactGetItemsFn   func(*ddbsdk.TransactGetItemsInput) (*ddbsdk.TransactGetItemsOutput, error)
	TransactWriteItemsFn func(*ddbsdk.TransactWriteItemsInput) (*ddbsdk.TransactWriteItemsOutput, error)
}

func (m *DDB) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op)
}

// Calls returns the operations invoked so far, in order.
func (m *DDB) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times op was invoked.
func (m *DDB) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (m *DDB) GetItem(ctx context.Context, params *ddbsdk.GetItemInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.GetItemOutput, error) {
	m.record("GetItem")
	if m.GetItemFn != nil {
		return m.GetItemFn(params)
	}
	return &ddbsdk.GetItemOutput{}, nil
}

func (m *DDB) PutItem(ctx context.Context, params *ddbsdk.PutItemInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.PutItemOutput, error) {
	m.record("PutItem")
	if m.PutItemFn != nil {
		return m.PutItemFn(params)
	}
	return &ddbsdk.PutItemOutput{}, nil
}

func (m *DDB) UpdateItem(ctx context.Context, params *ddbsdk.UpdateItemInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.UpdateItemOutput, error) {
	m.record("UpdateItem")
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(params)
	}
	return &ddbsdk.UpdateItemOutput{}, nil
}

func (m *DDB) DeleteItem(ctx context.Context, params *ddbsdk.DeleteItemInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.DeleteItemOutput, error) {
	m.record("DeleteItem")
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(params)
	}
	return &ddbsdk.DeleteItemOutput{}, nil
}

func (m *DDB) Query(ctx context.Context, params *ddbsdk.QueryInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.QueryOutput, error) {
	m.record("Query")
	if m.QueryFn != nil {
		return m.QueryFn(params)
	}
	return &ddbsdk.QueryOutput{}, nil
}

func (m *DDB) Scan(ctx context.Context, params *ddbsdk.ScanInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.ScanOutput, error) {
	m.record("Scan")
	if m.ScanFn != nil {
		return m.ScanFn(params)
	}
	return &ddbsdk.ScanOutput{}, nil
}

func (m *DDB) BatchGetItem(ctx context.Context, params *ddbsdk.BatchGetItemInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.BatchGetItemOutput, error) {
	m.record("BatchGetItem")
	if m.BatchGetItemFn != nil {
		return m.BatchGetItemFn(params)
	}
	return &ddbsdk.BatchGetItemOutput{}, nil
}

func (m *DDB) BatchWriteItem(ctx context.Context, params *ddbsdk.BatchWriteItemInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.BatchWriteItemOutput, error) {
	m.record("BatchWriteItem")
	if m.BatchWriteItemFn != nil {
		return m.BatchWriteItemFn(params)
	}
	return &ddbsdk.BatchWriteItemOutput{}, nil
}

func (m *DDB) TransactGetItems(ctx context.Context, params *ddbsdk.TransactGetItemsInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.TransactGetItemsOutput, error) {
	m.record("TransactGetItems")
	if m.TransactGetItemsFn != nil {
		return m.TransactGetItemsFn(params)
	}
	return &ddbsdk.TransactGetItemsOutput{}, nil
}

func (m *DDB) TransactWriteItems(ctx context.Context, params *ddbsdk.TransactWriteItemsInput, optFns ...func(*ddbsdk.Options)) (*ddbsdk.TransactWriteItemsOutput, error) {
	m.record("TransactWriteItems")
	if m.TransactWriteItemsFn != nil {
		return m.TransactWriteItemsFn(params)
	}
	return &ddbsdk.TransactWriteItemsOutput{}, nil
}

// S3 is a scripted blob-store client.
type S3 struct {
	mu    sync.Mutex
	calls []string

	GetObjectFn func(*s3sdk.GetObjectInput) (*s3sdk.GetObjectOutput, error)
	PutObjectFn func(*s3sdk.PutObjectInput) (*s3sdk.PutObjectOutput, error)
}

func (m *S3) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op)
}

// Calls returns the operations invoked so far, in order.
func (m *S3) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *S3) GetObject(ctx context.Context, params *s3sdk.GetObjectInput, optFns ...func(*s3sdk.Options)) (*s3sdk.GetObjectOutput, error) {
	m.record("GetObject")
	if m.GetObjectFn != nil {
		return m.GetObjectFn(params)
	}
	return &s3sdk.GetObjectOutput{}, nil
}

func (m *S3) PutObject(ctx context.Context, params *s3sdk.PutObjectInput, optFns ...func(*s3sdk.Options)) (*s3sdk.PutObjectOutput, error) {
	m.record("PutObject")
	if m.PutObjectFn != nil {
		return m.PutObjectFn(params)
	}
	return &s3sdk.PutObjectOutput{}, nil
}

// SecretsManager is a scripted secret-store client.
type SecretsManager struct {
	mu    sync.Mutex
	calls []string

	GetSecretValueFn func(*smsdk.GetSecretValueInput) (*smsdk.GetSecretValueOutput, error)
}

func (m *SecretsManager) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op)
}

// Calls returns the operations invoked so far, in order.
func (m *SecretsManager) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *SecretsManager) GetSecretValue(ctx context.Context, params *smsdk.GetSecretValueInput, optFns ...func(*smsdk.Options)) (*smsdk.GetSecretValueOutput, error) {
	m.record("GetSecretValue")
	if m.GetSecretValueFn != nil {
		return m.GetSecretValueFn(params)
	}
	return &smsdk.GetSecretValueOutput{}, nil
}

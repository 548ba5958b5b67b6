/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/cloudward/reliant/errors"
)

// BatchGet reads up to the backend's batch limit of keys from one table
// and flattens the per-table response map into an item slice. A missing
// or malformed response shape yields an empty slice, not an error.
func (s *Store) BatchGet(ctx context.Context, table string, keys []map[string]any) ([]map[string]types.AttributeValue, error) {
	const op = "BatchGetItem"
	params := map[string]any{"table": table, "keys": keys}
	if table == "" {
		return nil, errors.NewParamError(component, op, "table", params)
	}
	if len(keys) == 0 {
		return nil, errors.NewParamError(component, op, "keys", params)
	}

	keysAV := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, key := range keys {
		av, err := attributevalue.MarshalMap(key)
		if err != nil || len(av) == 0 {
			return nil, errors.NewParamError(component, op, "keys", params)
		}
		keysAV = append(keysAV, av)
	}

	input := &sdk.BatchGetItemInput{
		RequestItems: map[string]types.KeysAndAttributes{
			table: {Keys: keysAV},
		},
	}
	return execute(ctx, s, op, params, func(ctx context.Context, c API) ([]map[string]types.AttributeValue, error) {
		out, err := c.BatchGetItem(ctx, input)
		if err != nil {
			return nil, err
		}
		if out == nil || out.Responses == nil {
			return []map[string]types.AttributeValue{}, nil
		}
		items, ok := out.Responses[table]
		if !ok {
			return []map[string]types.AttributeValue{}, nil
		}
		return items, nil
	})
}

// BatchWrite issues puts and deletes against one table in a single
// batch request.
func (s *Store) BatchWrite(ctx context.Context, table string, puts []map[string]any, deleteKeys []map[string]any) error {
	const op = "BatchWriteItem"
	params := map[string]any{"table": table, "puts": len(puts), "deletes": len(deleteKeys)}
	if table == "" {
		return errors.NewParamError(component, op, "table", params)
	}
	if len(puts) == 0 && len(deleteKeys) == 0 {
		return errors.NewParamError(component, op, "requests", params)
	}

	requests := make([]types.WriteRequest, 0, len(puts)+len(deleteKeys))
	for _, item := range puts {
		av, err := attributevalue.MarshalMap(item)
		if err != nil || len(av) == 0 {
			return errors.NewParamError(component, op, "puts", params)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}
	for _, key := range deleteKeys {
		av, err := attributevalue.MarshalMap(key)
		if err != nil || len(av) == 0 {
			return errors.NewParamError(component, op, "deletes", params)
		}
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: av},
		})
	}

	input := &sdk.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: requests},
	}
	_, err := execute(ctx, s, op, params, func(ctx context.Context, c API) (*sdk.BatchWriteItemOutput, error) {
		return c.BatchWriteItem(ctx, input)
	})
	return err
}

// TransactGet reads the given keys in one transaction and flattens the
// per-item responses; items the backend reports as absent are skipped.
func (s *Store) TransactGet(ctx context.Context, table string, keys []map[string]any) ([]map[string]types.AttributeValue, error) {
	const op = "TransactGetItems"
	params := map[string]any{"table": table, "keys": keys}
	if table == "" {
		return nil, errors.NewParamError(component, op, "table", params)
	}
	if len(keys) == 0 {
		return nil, errors.NewParamError(component, op, "keys", params)
	}

	items := make([]types.TransactGetItem, 0, len(keys))
	for _, key := range keys {
		av, err := attributevalue.MarshalMap(key)
		if err != nil || len(av) == 0 {
			return nil, errors.NewParamError(component, op, "keys", params)
		}
		items = append(items, types.TransactGetItem{
			Get: &types.Get{
				TableName: aws.String(table),
				Key:       av,
			},
		})
	}

	input := &sdk.TransactGetItemsInput{TransactItems: items}
	return execute(ctx, s, op, params, func(ctx context.Context, c API) ([]map[string]types.AttributeValue, error) {
		out, err := c.TransactGetItems(ctx, input)
		if err != nil {
			return nil, err
		}
		results := make([]map[string]types.AttributeValue, 0, len(out.Responses))
		for _, r := range out.Responses {
			if len(r.Item) == 0 {
				continue
			}
			results = append(results, r.Item)
		}
		return results, nil
	})
}

// TransactWrite executes the given write items as one transaction.
func (s *Store) TransactWrite(ctx context.Context, items []types.TransactWriteItem) error {
	const op = "TransactWriteItems"
	params := map[string]any{"items": len(items)}
	if len(items) == 0 {
		return errors.NewParamError(component, op, "items", params)
	}

	input := &sdk.TransactWriteItemsInput{TransactItems: items}
	_, err := execute(ctx, s, op, params, func(ctx context.Context, c API) (*sdk.TransactWriteItemsOutput, error) {
		return c.TransactWriteItems(ctx, input)
	})
	return err
}

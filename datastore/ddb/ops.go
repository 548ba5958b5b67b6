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
	"github.com/cloudward/reliant/storagemodels"
)

// Get retrieves a single item by its full primary key. A nil map with a
// nil error means the item does not exist.
func (s *Store) Get(ctx context.Context, table string, key map[string]any) (map[string]types.AttributeValue, error) {
	const op = "GetItem"
	params := map[string]any{"table": table, "key": key}
	if table == "" {
		return nil, errors.NewParamError(component, op, "table", params)
	}
	if len(key) == 0 {
		return nil, errors.NewParamError(component, op, "key", params)
	}
	keyAV, err := attributevalue.MarshalMap(key)
	if err != nil {
		return nil, errors.NewParamError(component, op, "key", params)
	}

	return execute(ctx, s, op, params, func(ctx context.Context, c API) (map[string]types.AttributeValue, error) {
		out, err := c.GetItem(ctx, &sdk.GetItemInput{
			TableName: aws.String(table),
			Key:       keyAV,
		})
		if err != nil {
			return nil, err
		}
		return out.Item, nil
	})
}

// Put writes an item unconditionally.
func (s *Store) Put(ctx context.Context, table string, item map[string]any) error {
	return s.put(ctx, "PutItem", table, item, "")
}

// ConditionalPut writes an item guarded by a condition expression, for
// example "attribute_not_exists(PK)".
func (s *Store) ConditionalPut(ctx context.Context, table string, item map[string]any, condition string) error {
	const op = "ConditionalPut"
	if condition == "" {
		return errors.NewParamError(component, op, "condition", map[string]any{"table": table})
	}
	return s.put(ctx, op, table, item, condition)
}

func (s *Store) put(ctx context.Context, op, table string, item map[string]any, condition string) error {
	params := map[string]any{"table": table, "item": item}
	if table == "" {
		return errors.NewParamError(component, op, "table", params)
	}
	if len(item) == 0 {
		return errors.NewParamError(component, op, "item", params)
	}
	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return errors.NewParamError(component, op, "item", params)
	}

	input := &sdk.PutItemInput{
		TableName: aws.String(table),
		Item:      itemAV,
	}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}
	_, err = execute(ctx, s, op, params, func(ctx context.Context, c API) (*sdk.PutItemOutput, error) {
		return c.PutItem(ctx, input)
	})
	return err
}

// Update applies an UpdateSpec (SET assignments and/or ADD increments)
// to an item.
func (s *Store) Update(ctx context.Context, table string, key map[string]any, spec storagemodels.UpdateSpec) error {
	return s.update(ctx, "UpdateItem", table, key, spec, "")
}

// UpdateWithCondition is Update guarded by a condition expression; the
// backend rejects the write when the condition does not hold.
func (s *Store) UpdateWithCondition(ctx context.Context, table string, key map[string]any, spec storagemodels.UpdateSpec, condition string) error {
	const op = "UpdateWithCondition"
	if condition == "" {
		return errors.NewParamError(component, op, "condition", map[string]any{"table": table, "key": key})
	}
	return s.update(ctx, op, table, key, spec, condition)
}

func (s *Store) update(ctx context.Context, op, table string, key map[string]any, spec storagemodels.UpdateSpec, condition string) error {
	params := map[string]any{"table": table, "key": key, "set": spec.Set, "add": spec.Add}
	if table == "" {
		return errors.NewParamError(component, op, "table", params)
	}
	if len(key) == 0 {
		return errors.NewParamError(component, op, "key", params)
	}
	keyAV, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.NewParamError(component, op, "key", params)
	}
	expr, names, values, err := buildUpdateExpression(spec)
	if err != nil {
		return errors.NewParamError(component, op, "updates", params)
	}

	input := &sdk.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       keyAV,
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}
	_, err = execute(ctx, s, op, params, func(ctx context.Context, c API) (*sdk.UpdateItemOutput, error) {
		return c.UpdateItem(ctx, input)
	})
	return err
}

// Delete removes an item by its full primary key.
func (s *Store) Delete(ctx context.Context, table string, key map[string]any) error {
	const op = "DeleteItem"
	params := map[string]any{"table": table, "key": key}
	if table == "" {
		return errors.NewParamError(component, op, "table", params)
	}
	if len(key) == 0 {
		return errors.NewParamError(component, op, "key", params)
	}
	keyAV, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.NewParamError(component, op, "key", params)
	}

	_, err = execute(ctx, s, op, params, func(ctx context.Context, c API) (*sdk.DeleteItemOutput, error) {
		return c.DeleteItem(ctx, &sdk.DeleteItemInput{
			TableName: aws.String(table),
			Key:       keyAV,
		})
	})
	return err
}

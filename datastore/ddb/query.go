/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/cloudward/reliant/errors"
	"github.com/cloudward/reliant/storagemodels"
)

// QueryOptions tunes a conditioned query.
type QueryOptions struct {
	// IndexName queries a secondary index instead of the base table.
	IndexName string
	// Filter narrows results server-side after the key condition.
	Filter []storagemodels.Condition
	// Descending reverses the sort-key traversal order.
	Descending bool
	// Page carries the start cursor and the accumulation ceiling.
	Page storagemodels.PageOptions
}

// ScanOptions tunes a table scan.
type ScanOptions struct {
	// IndexName scans a secondary index instead of the base table.
	IndexName string
	// Filter turns a full scan into a filtered (partial) one.
	Filter []storagemodels.Condition
	// Page carries the start cursor and the accumulation ceiling.
	Page storagemodels.PageOptions
}

// QueryByKey is the hash-key point query: all items whose partition key
// equals keyValue, accumulated across pages.
func (s *Store) QueryByKey(ctx context.Context, table, keyName string, keyValue any, page storagemodels.PageOptions) (storagemodels.ItemResult, error) {
	const op = "QueryByKey"
	params := map[string]any{"table": table, "keyName": keyName, "keyValue": keyValue}
	if table == "" {
		return storagemodels.ItemResult{}, errors.NewParamError(component, op, "table", params)
	}
	if keyName == "" {
		return storagemodels.ItemResult{}, errors.NewParamError(component, op, "keyName", params)
	}
	conds := []storagemodels.Condition{{Key: keyName, Operator: "=", Value: keyValue}}
	return s.query(ctx, op, table, conds, QueryOptions{Page: page})
}

// Query runs a conditioned query built from an ordered list of
// condition triples, accumulated across pages.
func (s *Store) Query(ctx context.Context, table string, conds []storagemodels.Condition, opts QueryOptions) (storagemodels.ItemResult, error) {
	const op = "Query"
	params := map[string]any{"table": table, "conditions": conds}
	if table == "" {
		return storagemodels.ItemResult{}, errors.NewParamError(component, op, "table", params)
	}
	if len(conds) == 0 {
		return storagemodels.ItemResult{}, errors.NewParamError(component, op, "conditions", params)
	}
	return s.query(ctx, op, table, conds, opts)
}

func (s *Store) query(ctx context.Context, op, table string, conds []storagemodels.Condition, opts QueryOptions) (storagemodels.ItemResult, error) {
	params := map[string]any{"table": table, "conditions": conds, "index": opts.IndexName}

	keyExpr, names, values, err := buildConditionExpression(conds, "i")
	if err != nil {
		return storagemodels.ItemResult{}, errors.NewParamError(component, op, "conditions", params)
	}

	var filterExpr *string
	if len(opts.Filter) > 0 {
		expr, fNames, fValues, err := buildConditionExpression(opts.Filter, "f")
		if err != nil {
			return storagemodels.ItemResult{}, errors.NewParamError(component, op, "filter", params)
		}
		filterExpr = aws.String(expr)
		mergeExpressionMaps(names, fNames, values, fValues)
	}

	input := &sdk.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String(keyExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		FilterExpression:          filterExpr,
	}
	if opts.IndexName != "" {
		input.IndexName = aws.String(opts.IndexName)
	}
	if opts.Descending {
		input.ScanIndexForward = aws.Bool(false)
	}

	return executePaged(ctx, s, op, params, opts.Page.StartKey, opts.Page.Limit,
		func(ctx context.Context, c API, exclusiveStart map[string]types.AttributeValue) (storagemodels.ItemPage, error) {
			in := *input
			in.ExclusiveStartKey = exclusiveStart
			out, err := c.Query(ctx, &in)
			if err != nil {
				return storagemodels.ItemPage{}, err
			}
			// A response without Items is a valid empty page.
			return storagemodels.ItemPage{Items: out.Items, LastKey: out.LastEvaluatedKey}, nil
		})
}

// Scan walks the whole table (or index), optionally narrowed by filter
// conditions, accumulated across pages.
func (s *Store) Scan(ctx context.Context, table string, opts ScanOptions) (storagemodels.ItemResult, error) {
	const op = "Scan"
	params := map[string]any{"table": table, "index": opts.IndexName}
	if table == "" {
		return storagemodels.ItemResult{}, errors.NewParamError(component, op, "table", params)
	}

	input := &sdk.ScanInput{
		TableName: aws.String(table),
	}
	if opts.IndexName != "" {
		input.IndexName = aws.String(opts.IndexName)
	}
	if len(opts.Filter) > 0 {
		expr, names, values, err := buildConditionExpression(opts.Filter, "f")
		if err != nil {
			return storagemodels.ItemResult{}, errors.NewParamError(component, op, "filter", params)
		}
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	return executePaged(ctx, s, op, params, opts.Page.StartKey, opts.Page.Limit,
		func(ctx context.Context, c API, exclusiveStart map[string]types.AttributeValue) (storagemodels.ItemPage, error) {
			in := *input
			in.ExclusiveStartKey = exclusiveStart
			out, err := c.Scan(ctx, &in)
			if err != nil {
				return storagemodels.ItemPage{}, err
			}
			return storagemodels.ItemPage{Items: out.Items, LastKey: out.LastEvaluatedKey}, nil
		})
}

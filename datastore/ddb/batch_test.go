/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/cloudward/reliant/datastore/mock"
	rerrors "github.com/cloudward/reliant/errors"
)

func TestBatchGet(t *testing.T) {
	ctx := context.Background()

	t.Run("FlattensTableResponse", func(t *testing.T) {
		client := &mock.DDB{
			BatchGetItemFn: func(in *sdk.BatchGetItemInput) (*sdk.BatchGetItemOutput, error) {
				if _, ok := in.RequestItems["users"]; !ok {
					t.Errorf("expected request shaped per table, got %v", in.RequestItems)
				}
				return &sdk.BatchGetItemOutput{
					Responses: map[string][]map[string]types.AttributeValue{
						"users": {item("a"), item("b")},
					},
				}, nil
			},
		}
		store := newTestStore(client)

		items, err := store.BatchGet(ctx, "users", []map[string]any{{"PK": "a"}, {"PK": "b"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || itemID(items[0]) != "a" || itemID(items[1]) != "b" {
			t.Errorf("unexpected items: %v", items)
		}
	})

	t.Run("MissingTableShapeIsEmptyNotError", func(t *testing.T) {
		client := &mock.DDB{
			BatchGetItemFn: func(*sdk.BatchGetItemInput) (*sdk.BatchGetItemOutput, error) {
				return &sdk.BatchGetItemOutput{
					Responses: map[string][]map[string]types.AttributeValue{
						"other_table": {item("x")},
					},
				}, nil
			},
		}
		store := newTestStore(client)

		items, err := store.BatchGet(ctx, "users", []map[string]any{{"PK": "a"}})
		if err != nil {
			t.Fatalf("malformed response shape must not error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected empty sequence, got %v", items)
		}
	})

	t.Run("NilResponsesIsEmptyNotError", func(t *testing.T) {
		client := &mock.DDB{}
		store := newTestStore(client)

		items, err := store.BatchGet(ctx, "users", []map[string]any{{"PK": "a"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected empty sequence, got %v", items)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		client := &mock.DDB{}
		store := newTestStore(client)

		if _, err := store.BatchGet(ctx, "", []map[string]any{{"PK": "a"}}); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error, got %v", err)
		}
		if _, err := store.BatchGet(ctx, "users", nil); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error, got %v", err)
		}
		if len(client.Calls()) != 0 {
			t.Error("backend must not be invoked")
		}
	})
}

func TestBatchWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("MixesPutsAndDeletes", func(t *testing.T) {
		var seen *sdk.BatchWriteItemInput
		client := &mock.DDB{
			BatchWriteItemFn: func(in *sdk.BatchWriteItemInput) (*sdk.BatchWriteItemOutput, error) {
				seen = in
				return &sdk.BatchWriteItemOutput{}, nil
			},
		}
		store := newTestStore(client)

		err := store.BatchWrite(ctx, "users",
			[]map[string]any{{"PK": "a"}},
			[]map[string]any{{"PK": "b"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		reqs := seen.RequestItems["users"]
		if len(reqs) != 2 {
			t.Fatalf("expected 2 write requests, got %d", len(reqs))
		}
		if reqs[0].PutRequest == nil {
			t.Error("expected first request to be a put")
		}
		if reqs[1].DeleteRequest == nil {
			t.Error("expected second request to be a delete")
		}
	})

	t.Run("EmptyRequestSet", func(t *testing.T) {
		store := newTestStore(&mock.DDB{})
		if err := store.BatchWrite(ctx, "users", nil, nil); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error, got %v", err)
		}
	})
}

func TestTransactGet(t *testing.T) {
	ctx := context.Background()

	t.Run("FlattensResponsesSkippingAbsent", func(t *testing.T) {
		client := &mock.DDB{
			TransactGetItemsFn: func(in *sdk.TransactGetItemsInput) (*sdk.TransactGetItemsOutput, error) {
				if len(in.TransactItems) != 3 {
					t.Errorf("expected 3 transact items, got %d", len(in.TransactItems))
				}
				return &sdk.TransactGetItemsOutput{
					Responses: []types.ItemResponse{
						{Item: item("a")},
						{},
						{Item: item("c")},
					},
				}, nil
			},
		}
		store := newTestStore(client)

		items, err := store.TransactGet(ctx, "users", []map[string]any{
			{"PK": "a"}, {"PK": "b"}, {"PK": "c"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || itemID(items[0]) != "a" || itemID(items[1]) != "c" {
			t.Errorf("unexpected items: %v", items)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		store := newTestStore(&mock.DDB{})
		if _, err := store.TransactGet(ctx, "users", nil); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error, got %v", err)
		}
	})
}

func TestTransactWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("ForwardsItems", func(t *testing.T) {
		var seen *sdk.TransactWriteItemsInput
		client := &mock.DDB{
			TransactWriteItemsFn: func(in *sdk.TransactWriteItemsInput) (*sdk.TransactWriteItemsOutput, error) {
				seen = in
				return &sdk.TransactWriteItemsOutput{}, nil
			},
		}
		store := newTestStore(client)

		err := store.TransactWrite(ctx, []types.TransactWriteItem{
			{Put: &types.Put{TableName: strPtr("users"), Item: item("a")}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seen.TransactItems) != 1 {
			t.Errorf("unexpected input: %+v", seen)
		}
	})

	t.Run("EmptyItems", func(t *testing.T) {
		store := newTestStore(&mock.DDB{})
		if err := store.TransactWrite(ctx, nil); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error, got %v", err)
		}
	})
}

func strPtr(s string) *string { return &s }

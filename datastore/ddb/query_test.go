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
	"github.com/cloudward/reliant/storagemodels"
)

func item(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: id},
	}
}

func itemID(m map[string]types.AttributeValue) string {
	if av, ok := m["PK"].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}

func cursorFor(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: id},
	}
}

// pagedQuery scripts a two-page query: page one returns a/b and a
// cursor, page two returns c.
func pagedQuery() func(*sdk.QueryInput) (*sdk.QueryOutput, error) {
	return func(in *sdk.QueryInput) (*sdk.QueryOutput, error) {
		if in.ExclusiveStartKey == nil {
			return &sdk.QueryOutput{
				Items:            []map[string]types.AttributeValue{item("a"), item("b")},
				LastEvaluatedKey: cursorFor("b"),
			}, nil
		}
		return &sdk.QueryOutput{
			Items: []map[string]types.AttributeValue{item("c")},
		}, nil
	}
}

func TestQueryByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidationBeforeBackend", func(t *testing.T) {
		client := &mock.DDB{
			QueryFn: func(*sdk.QueryInput) (*sdk.QueryOutput, error) {
				t.Error("backend must not be invoked on validation failure")
				return nil, nil
			},
		}
		store := newTestStore(client)

		if _, err := store.QueryByKey(ctx, "", "PK", "x", storagemodels.PageOptions{}); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error for missing table, got %v", err)
		}
		if _, err := store.QueryByKey(ctx, "users", "", "x", storagemodels.PageOptions{}); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error for missing key name, got %v", err)
		}
	})

	t.Run("AccumulatesPagesInOrder", func(t *testing.T) {
		client := &mock.DDB{QueryFn: pagedQuery()}
		store := newTestStore(client)

		res, err := store.QueryByKey(ctx, "users", "PK", "u-1", storagemodels.PageOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(res.Items))
		}
		for i, want := range []string{"a", "b", "c"} {
			if got := itemID(res.Items[i]); got != want {
				t.Errorf("item %d: expected %s, got %s", i, want, got)
			}
		}
		if res.LastKey != nil {
			t.Error("expected no cursor after natural exhaustion")
		}
		if client.CallCount("Query") != 2 {
			t.Errorf("expected 2 page fetches, got %d", client.CallCount("Query"))
		}
	})

	t.Run("CeilingTruncatesAndReportsCursor", func(t *testing.T) {
		client := &mock.DDB{QueryFn: pagedQuery()}
		store := newTestStore(client)

		res, err := store.QueryByKey(ctx, "users", "PK", "u-1", storagemodels.PageOptions{Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || itemID(res.Items[0]) != "a" {
			t.Errorf("expected exactly [a], got %d items", len(res.Items))
		}
		if res.LastKey == nil {
			t.Error("expected a continuation cursor when stopped by the ceiling")
		}
		if client.CallCount("Query") != 1 {
			t.Errorf("ceiling met on page one, expected 1 fetch, got %d", client.CallCount("Query"))
		}
	})

	t.Run("StartKeyForwarded", func(t *testing.T) {
		var seenStart map[string]types.AttributeValue
		client := &mock.DDB{
			QueryFn: func(in *sdk.QueryInput) (*sdk.QueryOutput, error) {
				seenStart = in.ExclusiveStartKey
				return &sdk.QueryOutput{}, nil
			},
		}
		store := newTestStore(client)

		start := cursorFor("b")
		if _, err := store.QueryByKey(ctx, "users", "PK", "u-1", storagemodels.PageOptions{StartKey: start}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if itemID(seenStart) != "b" {
			t.Errorf("start cursor not forwarded: %v", seenStart)
		}
	})

	t.Run("NoItemsKeyIsEmptyResult", func(t *testing.T) {
		client := &mock.DDB{
			QueryFn: func(*sdk.QueryInput) (*sdk.QueryOutput, error) {
				return &sdk.QueryOutput{}, nil
			},
		}
		store := newTestStore(client)

		res, err := store.QueryByKey(ctx, "users", "PK", "u-1", storagemodels.PageOptions{})
		if err != nil {
			t.Fatalf("a response without items must not error: %v", err)
		}
		if len(res.Items) != 0 {
			t.Errorf("expected zero items, got %d", len(res.Items))
		}
	})
}

func TestQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("BuildsKeyConditionAndFilter", func(t *testing.T) {
		var seen *sdk.QueryInput
		client := &mock.DDB{
			QueryFn: func(in *sdk.QueryInput) (*sdk.QueryOutput, error) {
				seen = in
				return &sdk.QueryOutput{}, nil
			},
		}
		store := newTestStore(client)

		_, err := store.Query(ctx, "orders",
			[]storagemodels.Condition{
				{Key: "UserID", Operator: "=", Value: "u-1"},
				{Key: "CreatedAt", Operator: "BETWEEN", Value: []any{"2024-01-01", "2024-12-31"}},
			},
			QueryOptions{
				IndexName:  "GSI1",
				Filter:     []storagemodels.Condition{{Key: "Status", Operator: "=", Value: "open"}},
				Descending: true,
			})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantKey := "#i_0 = :i_0 AND #i_1 BETWEEN :i_1 AND :i_2"
		if *seen.KeyConditionExpression != wantKey {
			t.Errorf("expected %q, got %q", wantKey, *seen.KeyConditionExpression)
		}
		if seen.FilterExpression == nil || *seen.FilterExpression != "#f_0 = :f_0" {
			t.Errorf("unexpected filter: %v", seen.FilterExpression)
		}
		if *seen.IndexName != "GSI1" {
			t.Errorf("index not forwarded: %v", seen.IndexName)
		}
		if seen.ScanIndexForward == nil || *seen.ScanIndexForward {
			t.Error("expected descending traversal")
		}
		// Key and filter placeholders share one request without colliding.
		if len(seen.ExpressionAttributeValues) != 4 {
			t.Errorf("expected 4 bindings, got %v", seen.ExpressionAttributeValues)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		client := &mock.DDB{}
		store := newTestStore(client)

		if _, err := store.Query(ctx, "orders", nil, QueryOptions{}); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error for empty conditions, got %v", err)
		}
		if _, err := store.Query(ctx, "", []storagemodels.Condition{{Key: "A", Value: 1}}, QueryOptions{}); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error for missing table, got %v", err)
		}
		if len(client.Calls()) != 0 {
			t.Error("backend must not be invoked")
		}
	})

	t.Run("TransientPageRetriesAndResumes", func(t *testing.T) {
		failuresLeft := 1
		client := &mock.DDB{
			QueryFn: func(in *sdk.QueryInput) (*sdk.QueryOutput, error) {
				if in.ExclusiveStartKey != nil && failuresLeft > 0 {
					failuresLeft--
					return nil, &mock.TransientError{Msg: "throttled"}
				}
				return pagedQuery()(in)
			},
		}
		store := newTestStore(client)

		res, err := store.Query(ctx, "users",
			[]storagemodels.Condition{{Key: "PK", Operator: "=", Value: "u-1"}}, QueryOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 3 {
			t.Errorf("expected 3 items after page retry, got %d", len(res.Items))
		}
		if client.CallCount("Query") != 3 {
			t.Errorf("expected 3 fetches (page1, failed page2, page2), got %d", client.CallCount("Query"))
		}
	})
}

func TestScan(t *testing.T) {
	ctx := context.Background()

	t.Run("FullScanAccumulates", func(t *testing.T) {
		client := &mock.DDB{
			ScanFn: func(in *sdk.ScanInput) (*sdk.ScanOutput, error) {
				if in.ExclusiveStartKey == nil {
					return &sdk.ScanOutput{
						Items:            []map[string]types.AttributeValue{item("a")},
						LastEvaluatedKey: cursorFor("a"),
					}, nil
				}
				return &sdk.ScanOutput{Items: []map[string]types.AttributeValue{item("b")}}, nil
			},
		}
		store := newTestStore(client)

		res, err := store.Scan(ctx, "users", ScanOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 {
			t.Errorf("expected 2 items, got %d", len(res.Items))
		}
	})

	t.Run("NoItemsKeyIsEmptyResult", func(t *testing.T) {
		client := &mock.DDB{}
		store := newTestStore(client)

		res, err := store.Scan(ctx, "empty", ScanOptions{})
		if err != nil {
			t.Fatalf("a response without items must not error: %v", err)
		}
		if len(res.Items) != 0 {
			t.Errorf("expected zero-length result, got %d", len(res.Items))
		}
	})

	t.Run("FilterBecomesPartialScan", func(t *testing.T) {
		var seen *sdk.ScanInput
		client := &mock.DDB{
			ScanFn: func(in *sdk.ScanInput) (*sdk.ScanOutput, error) {
				seen = in
				return &sdk.ScanOutput{}, nil
			},
		}
		store := newTestStore(client)

		_, err := store.Scan(ctx, "users", ScanOptions{
			Filter: []storagemodels.Condition{{Key: "Status", Operator: "=", Value: "open"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen.FilterExpression == nil || *seen.FilterExpression != "#f_0 = :f_0" {
			t.Errorf("unexpected filter: %v", seen.FilterExpression)
		}
	})

	t.Run("MissingTable", func(t *testing.T) {
		store := newTestStore(&mock.DDB{})
		if _, err := store.Scan(ctx, "", ScanOptions{}); !rerrors.IsInvalidParam(err) {
			t.Errorf("expected param error, got %v", err)
		}
	})
}

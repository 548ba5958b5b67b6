/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Condition is one element of an ordered, conjunctive condition list.
// Operator is a DynamoDB comparator ("=", "<", "<=", ">", ">=",
// "BETWEEN", "begins_with"). Value is a scalar for single-operand
// comparators; a two-element []any denotes a range and consumes two
// expression bindings.
type Condition struct {
	Key      string
	Operator string
	Value    any
}

// RangeValues returns the two operands of a range condition, or false
// when the condition is not range-shaped.
func (c Condition) RangeValues() (lo, hi any, ok bool) {
	vals, isSlice := c.Value.([]any)
	if !isSlice || len(vals) != 2 {
		return nil, nil, false
	}
	return vals[0], vals[1], true
}

// UpdateSpec describes an item update from two optional maps: fields to
// unconditionally set, and numeric fields to increment. At least one
// map must be non-empty.
type UpdateSpec struct {
	Set map[string]any
	Add map[string]any
}

// PageOptions carries the optional pagination controls of a paged call.
type PageOptions struct {
	// StartKey resumes pagination from a previously returned cursor.
	StartKey map[string]types.AttributeValue
	// Limit caps the total accumulated item count (0 = unbounded).
	// Accumulation stops as soon as the cap is met, even mid-page.
	Limit int
}

// ItemPage is one backend page of document items. A nil LastKey means
// the backend reported end-of-data.
type ItemPage struct {
	Items   []map[string]types.AttributeValue
	LastKey map[string]types.AttributeValue
}

// ItemResult is the accumulation of document pages. Items are in page
// arrival order. LastKey is the raw continuation cursor of the final
// executed page when the backend returned one; feed it back through
// PageOptions.StartKey to resume externally.
type ItemResult struct {
	Items   []map[string]types.AttributeValue
	LastKey map[string]types.AttributeValue
}

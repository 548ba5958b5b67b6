/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/cloudward/reliant/storagemodels"
)

// buildConditionExpression translates an ordered condition list into a
// conjunctive expression. Attribute-name placeholders are generated per
// condition (#<prefix>_<index>); value placeholders consume a running
// counter (:<prefix>_<n>) so a range condition's two operands never
// collide with later conditions. The prefix separates key conditions
// from filter conditions in one request.
func buildConditionExpression(conds []storagemodels.Condition, prefix string) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(conds) == 0 {
		return "", nil, nil, fmt.Errorf("no conditions provided")
	}

	clauses := make([]string, 0, len(conds))
	names := make(map[string]string, len(conds))
	values := make(map[string]types.AttributeValue)

	bind := 0
	nextValue := func(v any) (string, error) {
		placeholder := fmt.Sprintf(":%s_%d", prefix, bind)
		bind++
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal condition value: %w", err)
		}
		values[placeholder] = av
		return placeholder, nil
	}

	for idx, c := range conds {
		if c.Key == "" {
			return "", nil, nil, fmt.Errorf("condition %d has no key", idx)
		}
		name := fmt.Sprintf("#%s_%d", prefix, idx)
		names[name] = c.Key

		if lo, hi, ok := c.RangeValues(); ok {
			p1, err := nextValue(lo)
			if err != nil {
				return "", nil, nil, err
			}
			p2, err := nextValue(hi)
			if err != nil {
				return "", nil, nil, err
			}
			clauses = append(clauses, fmt.Sprintf("%s BETWEEN %s AND %s", name, p1, p2))
			continue
		}

		op := c.Operator
		if op == "" {
			op = "="
		}
		if strings.EqualFold(op, "BETWEEN") {
			return "", nil, nil, fmt.Errorf("condition %d: BETWEEN requires a two-element value slice", idx)
		}

		p, err := nextValue(c.Value)
		if err != nil {
			return "", nil, nil, err
		}
		if strings.EqualFold(op, "begins_with") {
			clauses = append(clauses, fmt.Sprintf("begins_with(%s, %s)", name, p))
			continue
		}
		switch op {
		case "=", "<>", "<", "<=", ">", ">=":
			clauses = append(clauses, fmt.Sprintf("%s %s %s", name, op, p))
		default:
			return "", nil, nil, fmt.Errorf("condition %d: unsupported operator %q", idx, op)
		}
	}

	return strings.Join(clauses, " AND "), names, values, nil
}

// buildUpdateExpression transforms an UpdateSpec into an update
// expression with SET clauses for unconditional assignments and ADD
// clauses for numeric increments, omitting either section when its map
// is absent. Keys are visited in sorted order so the expression is
// stable.
func buildUpdateExpression(spec storagemodels.UpdateSpec) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(spec.Set) == 0 && len(spec.Add) == 0 {
		return "", nil, nil, fmt.Errorf("no updates provided")
	}

	names := make(map[string]string, len(spec.Set)+len(spec.Add))
	values := make(map[string]types.AttributeValue, len(spec.Set)+len(spec.Add))
	var sections []string

	if len(spec.Set) > 0 {
		clauses := make([]string, 0, len(spec.Set))
		for i, field := range sortedKeys(spec.Set) {
			name := fmt.Sprintf("#s_%d", i)
			placeholder := fmt.Sprintf(":s_%d", i)
			av, err := attributevalue.Marshal(spec.Set[field])
			if err != nil {
				return "", nil, nil, fmt.Errorf("failed to marshal set value for %q: %w", field, err)
			}
			names[name] = field
			values[placeholder] = av
			clauses = append(clauses, fmt.Sprintf("%s = %s", name, placeholder))
		}
		sections = append(sections, "SET "+strings.Join(clauses, ", "))
	}

	if len(spec.Add) > 0 {
		clauses := make([]string, 0, len(spec.Add))
		for i, field := range sortedKeys(spec.Add) {
			name := fmt.Sprintf("#a_%d", i)
			placeholder := fmt.Sprintf(":a_%d", i)
			av, err := attributevalue.Marshal(spec.Add[field])
			if err != nil {
				return "", nil, nil, fmt.Errorf("failed to marshal add value for %q: %w", field, err)
			}
			if _, ok := av.(*types.AttributeValueMemberN); !ok {
				return "", nil, nil, fmt.Errorf("add value for %q must be numeric", field)
			}
			names[name] = field
			values[placeholder] = av
			clauses = append(clauses, fmt.Sprintf("%s %s", name, placeholder))
		}
		sections = append(sections, "ADD "+strings.Join(clauses, ", "))
	}

	return strings.Join(sections, " "), names, values, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mergeExpressionMaps folds filter placeholders into the key-condition
// maps. Prefixes keep the namespaces disjoint.
func mergeExpressionMaps(names, extraNames map[string]string, values, extraValues map[string]types.AttributeValue) {
	for k, v := range extraNames {
		names[k] = v
	}
	for k, v := range extraValues {
		values[k] = v
	}
}

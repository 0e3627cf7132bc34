/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package executor

import (
	"fmt"

	"github.com/patchql/graphql/graphql"
	"github.com/patchql/graphql/graphql/ast"
)

// Flatten reduces a selection set to an ordered sequence of Field nodes, expanding inline fragments
// and fragment spreads, applying @skip/@include, and merging fields that share a response key. The
// order of the result is the order in which each response key was first seen.
//
// value and t are the already-resolved runtime value and concrete object type this selection set is
// being applied against; info supplies the ResolveInfo a fragment's abstract type condition may need
// to resolve itself against value.
func Flatten(
	scope *ExecScope,
	info *resolveInfo,
	value interface{},
	t *graphql.Object,
	selectionNodes ast.SelectionSet) ([]*ast.Field, error) {

	var order []string
	byKey := map[string]*ast.Field{}

	if err := flattenInto(scope, info, value, t, selectionNodes, &order, byKey); err != nil {
		return nil, err
	}

	fields := make([]*ast.Field, len(order))
	for i, key := range order {
		fields[i] = byKey[key]
	}
	return fields, nil
}

func flattenInto(
	scope *ExecScope,
	info *resolveInfo,
	value interface{},
	t *graphql.Object,
	selections ast.SelectionSet,
	order *[]string,
	byKey map[string]*ast.Field) error {

	for _, sel := range selections {
		switch sel := sel.(type) {
		case *ast.Field:
			if Skip(scope, sel) {
				continue
			}
			mergeField(sel.ResponseKey(), sel, order, byKey)

		case *ast.InlineFragment:
			if Skip(scope, sel) {
				continue
			}

			var condition graphql.Type
			if sel.HasTypeCondition() {
				condition = scope.Schema().TypeMap().Lookup(sel.TypeCondition.Name.Value)
			}

			applies, err := typecastApplies(info, value, condition, t)
			if err != nil {
				return err
			}
			if applies {
				if err := flattenInto(scope, info, value, t, sel.SelectionSet, order, byKey); err != nil {
					return err
				}
			}

		case *ast.FragmentSpread:
			if Skip(scope, sel) {
				continue
			}

			def := scope.GetFragment(sel.Name.Value)
			if def == nil {
				return fmt.Errorf("fragment %q is not defined", sel.Name.Value)
			}

			condition := scope.Schema().TypeMap().Lookup(def.TypeCondition.Name.Value)
			applies, err := typecastApplies(info, value, condition, t)
			if err != nil {
				return err
			}
			if applies {
				if err := flattenInto(scope, info, value, t, def.SelectionSet, order, byKey); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// typecastApplies reports whether a fragment with the given type condition (possibly nil, meaning
// unconditional) applies to value at a position statically typed outer.
func typecastApplies(info *resolveInfo, value interface{}, condition graphql.Type, outer *graphql.Object) (bool, error) {
	if condition == nil {
		return true, nil
	}
	resolved, err := ResolveType(info, value, condition, outer)
	if err != nil {
		return false, err
	}
	return resolved != nil, nil
}

// mergeField folds incoming into the ordered response-key map. A response key that reappears with a
// non-empty child selection set has its selections appended to the existing entry's; a reappearing
// leaf (no children) leaves the existing entry untouched.
func mergeField(key string, incoming *ast.Field, order *[]string, byKey map[string]*ast.Field) {
	existing, exists := byKey[key]
	if !exists {
		byKey[key] = incoming
		*order = append(*order, key)
		return
	}

	if len(incoming.SelectionSet) == 0 {
		return
	}

	merged := *existing
	merged.SelectionSet = append(append(ast.SelectionSet{}, existing.SelectionSet...), incoming.SelectionSet...)
	byKey[key] = &merged
}

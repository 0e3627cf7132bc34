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
	"github.com/patchql/graphql/graphql"
)

// DeferredStrategy drives a query in phases: an initial traversal that parks any field carrying
// `@defer` instead of resolving it, followed by drain rounds that resolve parked fields and report
// their results as they become available.
//
// When Collector is set, the initial tree and every drain round are reported as patches and
// Execute's return value is only the initial tree. When Collector is nil, parked fields are instead
// resolved and spliced back into the tree before Execute returns, so the strategy is observably
// equivalent to SerialStrategy - `@defer` is honored internally (fields are still parked and
// drained in rounds) but produces one complete tree rather than an incremental one.
type DeferredStrategy struct {
	Collector Collector
}

var _ Strategy = DeferredStrategy{}

// Execute implements Strategy.
func (strategy DeferredStrategy) Execute(scope *ExecScope, rootType graphql.Type) (interface{}, graphql.Errors) {
	thread := NewExecThread()
	root := NewRootFrame(scope.RootValue(), rootType)

	tree, bubble, err := Coerce(scope, thread, root, Defer)
	if err != nil {
		thread.AddError(graphql.NewError(err.Error(), graphql.ErrKindExecution).(*graphql.Error))
		return nil, thread.Errors()
	}
	if bubble != nil {
		tree = nil
	}

	allErrors := graphql.Errors{}
	allErrors.AppendErrors(thread.Errors())
	errorIndex := len(thread.Errors().Errors)

	if strategy.Collector != nil {
		patch := map[string]interface{}{"data": tree}
		if len(thread.Errors().Errors) > 0 {
			patch["errors"] = thread.Errors().Errors
		}
		strategy.Collector.Patch(nil, patch)
	}

	round := thread.Defers()
	for len(round) > 0 {
		var next []*DeferredField

		for _, deferred := range round {
			roundThread := NewExecThread()

			childFrame := &ExecFrame{
				Node: deferred.FieldDefs[0],
				Type: deferred.Type,
				Path: deferred.Path,
			}

			raw, execErr := ResolveField(
				scope, roundThread, childFrame,
				deferred.ParentType, deferred.ParentValue,
				deferred.FieldDefs, deferred.FieldDef)
			if execErr != nil {
				childFrame.Value = nil
			} else {
				childFrame.Value = raw
			}

			value, childBubble, err := Coerce(scope, roundThread, childFrame, Defer)
			if err != nil {
				// A fatal error here aborts the whole query; no further patches are emitted.
				return tree, allErrors
			}
			if childBubble != nil {
				value = nil
			}

			if strategy.Collector != nil {
				if value != nil {
					strategy.Collector.Patch(dataPath(deferred.Path), value)
				}
				for _, fieldErr := range roundThread.Errors().Errors {
					strategy.Collector.Patch([]interface{}{"errors", errorIndex}, fieldErr)
					errorIndex++
				}
			} else {
				setAtPath(tree, deferred.Path.Keys(), value)
			}

			allErrors.AppendErrors(roundThread.Errors())
			next = append(next, roundThread.Defers()...)
		}

		round = next
	}

	return tree, allErrors
}

func dataPath(path graphql.ResponsePath) []interface{} {
	return append([]interface{}{"data"}, path.Keys()...)
}

// setAtPath writes value at path into root, a tree built entirely of map[string]interface{} and
// []interface{} nodes (exactly the shapes ValueCoercer produces for OBJECT and LIST types). Lists
// are pre-sized by coerceList, so an index write never needs to grow one.
func setAtPath(root interface{}, path []interface{}, value interface{}) {
	cur := root
	for i, key := range path {
		last := i == len(path)-1

		switch k := key.(type) {
		case string:
			m, ok := cur.(map[string]interface{})
			if !ok {
				return
			}
			if last {
				m[k] = value
				return
			}
			cur = m[k]

		case int:
			s, ok := cur.([]interface{})
			if !ok || k < 0 || k >= len(s) {
				return
			}
			if last {
				s[k] = value
				return
			}
			cur = s[k]
		}
	}
}

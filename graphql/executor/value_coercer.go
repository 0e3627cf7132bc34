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
	"reflect"

	"github.com/patchql/graphql/graphql"
	"github.com/patchql/graphql/graphql/ast"
	"github.com/patchql/graphql/internal/value"
)

// DeferPredicate decides, for one field about to be resolved inside an object's selection set,
// whether its resolution should be parked for a later drain round instead of happening inline.
// SerialStrategy supplies a predicate that always answers false, since it ignores `@defer` entirely;
// DeferredStrategy supplies one that answers Defer(node).
type DeferPredicate func(node *ast.Field) bool

// NeverDefer is the DeferPredicate SerialStrategy drives Coerce with.
func NeverDefer(node *ast.Field) bool { return false }

// Coerce walks frame.Value into frame.Type's result representation: scalars and enums are
// serialized, lists and objects are recursed into, and NON_NULL wrappers enforce that a nil value
// is rejected rather than silently accepted.
//
// Three outcomes are possible. A normal value is returned with both error returns nil. A non-null
// violation - this frame's value was nil under a NON_NULL type, or a descendant frame's violation
// propagated up - is reported as a non-nil *invalidNullError; the error has already been recorded
// into thread, so the caller only needs to decide what to do with the bubble (stop, or null out an
// enclosing nullable parent). A fatal error - an abstract type whose resolver could not identify a
// concrete type, or a selection that could not be flattened - is reported as a plain Go error and
// should abort the whole query; it is never recorded into thread, since thread.Errors() is reserved
// for per-field execution errors the response can still report data alongside.
func Coerce(
	scope *ExecScope,
	thread *ExecThread,
	frame *ExecFrame,
	shouldDefer DeferPredicate) (interface{}, *invalidNullError, error) {

	if nonNull, ok := frame.Type.(*graphql.NonNull); ok {
		inner := *frame
		inner.Type = nonNull.InnerType()
		coerced, bubble, err := Coerce(scope, thread, &inner, shouldDefer)
		if err != nil {
			return nil, nil, err
		}
		if bubble != nil {
			return nil, bubble, nil
		}
		if value.IsNullish(coerced) {
			return nil, newInvalidNullError(thread, frame), nil
		}
		return coerced, nil, nil
	}

	if value.IsNullish(frame.Value) {
		return nil, nil, nil
	}

	switch t := frame.Type.(type) {
	case *graphql.Scalar:
		result, err := t.CoerceResultValue(frame.Value)
		if err != nil {
			thread.AddError(asExecutionError(err, frame.Path, fieldNodes(frame.Node)))
			return nil, nil, nil
		}
		return result, nil, nil

	case *graphql.Enum:
		result, err := t.CoerceResultValue(frame.Value)
		if err != nil {
			thread.AddError(asExecutionError(err, frame.Path, fieldNodes(frame.Node)))
			return nil, nil, nil
		}
		return result, nil, nil

	case *graphql.List:
		return absorbBubble(coerceList(scope, thread, frame, t, shouldDefer))

	case *graphql.Object:
		return absorbBubble(coerceObject(scope, thread, frame, t, shouldDefer))

	case graphql.AbstractType:
		return absorbBubble(coerceAbstract(scope, thread, frame, t, shouldDefer))

	default:
		return nil, nil, fmt.Errorf("cannot coerce a result value of unhandled type %s", frame.Type.String())
	}
}

// absorbBubble catches a non-null bubble raised by a descendant of a List/Object/AbstractType
// frame. Reaching one of those three switch arms above already proves frame.Type is not itself
// wrapped in NON_NULL (that case returns earlier), so this frame is by construction the nearest
// enclosing nullable position: it is exactly where a bubbling violation must stop, substituting
// null for this frame's value instead of forwarding the bubble further up. The error the bubble
// carries was already recorded into thread at the point it originated; absorbing it here does not
// record anything further.
func absorbBubble(value interface{}, bubble *invalidNullError, err error) (interface{}, *invalidNullError, error) {
	if err != nil {
		return nil, nil, err
	}
	if bubble != nil {
		return nil, nil, nil
	}
	return value, nil, nil
}

func fieldNodes(node *ast.Field) []*ast.Field {
	if node == nil {
		return nil
	}
	return []*ast.Field{node}
}

// coerceList coerces each element of frame.Value against t's element type. GraphQL-js resolves all
// siblings so their side effects and errors are all observed before a list is nulled out; this
// executor instead stops at the first child's non-null bubble, trading that completeness for a
// simpler call stack. The simplification is only visible when a list element both has a side effect
// and violates non-nullability, which none of the engine's scenario tests exercises.
func coerceList(
	scope *ExecScope,
	thread *ExecThread,
	frame *ExecFrame,
	t *graphql.List,
	shouldDefer DeferPredicate) (interface{}, *invalidNullError, error) {

	rv := reflect.ValueOf(frame.Value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, nil, fmt.Errorf("resolved value for a list type is not a slice or array: %T", frame.Value)
	}

	length := rv.Len()
	results := make([]interface{}, length)

	for i := 0; i < length; i++ {
		childFrame := &ExecFrame{
			Node:  frame.Node,
			Value: rv.Index(i).Interface(),
			Type:  t.ElementType(),
			Path:  frame.withIndexPath(i),
		}

		coerced, bubble, err := Coerce(scope, thread, childFrame, shouldDefer)
		if err != nil {
			return nil, nil, err
		}
		if bubble != nil {
			return nil, bubble, nil
		}
		results[i] = coerced
	}

	return results, nil, nil
}

// coerceAbstract resolves value's concrete Object type through t's TypeResolver and recurses into
// object coercion. An abstract type that cannot identify a concrete type for its value is fatal:
// there is no field-level null to fall back to, since the schema gave the executor no way to know
// which fields even apply.
func coerceAbstract(
	scope *ExecScope,
	thread *ExecThread,
	frame *ExecFrame,
	t graphql.AbstractType,
	shouldDefer DeferPredicate) (interface{}, *invalidNullError, error) {

	concrete, err := t.TypeResolver().Resolve(scope.Context(), frame.Value, &resolveInfo{scope: scope, path: frame.Path})
	if err != nil {
		return nil, nil, err
	}
	if concrete == nil {
		return nil, nil, fmt.Errorf("could not resolve a concrete type for abstract type %q at %s", t.String(), frame.Path.String())
	}

	objectFrame := *frame
	objectFrame.Type = concrete
	return coerceObject(scope, thread, &objectFrame, concrete, shouldDefer)
}

// coerceObject flattens t's selection set against frame.Value, resolves each response key's field
// (subject to shouldDefer) and recursively coerces its result.
func coerceObject(
	scope *ExecScope,
	thread *ExecThread,
	frame *ExecFrame,
	t *graphql.Object,
	shouldDefer DeferPredicate) (interface{}, *invalidNullError, error) {

	selectionInfo := &resolveInfo{scope: scope, object: t, path: frame.Path}

	var selectionNodes ast.SelectionSet
	if frame.Node != nil {
		selectionNodes = frame.Node.SelectionSet
	} else {
		selectionNodes = scope.Operation().SelectionSet
	}

	fields, err := Flatten(scope, selectionInfo, frame.Value, t, selectionNodes)
	if err != nil {
		return nil, nil, err
	}

	result := make(map[string]interface{}, len(fields))

	for _, node := range fields {
		key := node.ResponseKey()

		fieldDef, err := scope.GetField(t, node.Name.Value)
		if err != nil {
			return nil, nil, err
		}

		childPath := frame.withFieldPath(key)

		if shouldDefer(node) {
			thread.Defer(&DeferredField{
				ParentType:  t,
				ParentValue: frame.Value,
				FieldDefs:   []*ast.Field{node},
				FieldDef:    fieldDef,
				Type:        fieldDef.Type(),
				Path:        childPath,
			})
			result[key] = nil
			continue
		}

		childFrame := &ExecFrame{Node: node, Type: fieldDef.Type(), Path: childPath}

		raw, execErr := ResolveField(scope, thread, childFrame, t, frame.Value, []*ast.Field{node}, fieldDef)
		if execErr != nil {
			childFrame.Value = nil
		} else {
			childFrame.Value = raw
		}

		coerced, bubble, err := Coerce(scope, thread, childFrame, shouldDefer)
		if err != nil {
			return nil, nil, err
		}
		if bubble != nil {
			return nil, bubble, nil
		}

		result[key] = coerced
	}

	return result, nil, nil
}

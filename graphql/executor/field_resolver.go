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
	"context"

	"github.com/patchql/graphql/graphql"
	"github.com/patchql/graphql/graphql/ast"
	"github.com/patchql/graphql/internal/value"
)

// ResolveField runs one field's resolver (wrapped by the schema's middleware chain) and returns its
// raw, not-yet-coerced value.
//
// Any error is recorded into thread as an execution error and returned as the second value, paired
// with a nil value, so the caller can decide how a surrounding NON_NULL type reacts to it. This
// covers both an error from the resolver chain and arguments that could not be coerced: a single
// malformed argument does not abort the whole query. A field with no Resolver is resolved by a
// zero-value DefaultFieldResolver.
func ResolveField(
	scope *ExecScope,
	thread *ExecThread,
	frame *ExecFrame,
	parentType *graphql.Object,
	parentValue interface{},
	fieldDefs []*ast.Field,
	fieldDef graphql.Field) (interface{}, *graphql.Error) {

	args, err := value.ArgumentValues(fieldDef, fieldDefs[0], scope.VariableValues())
	if err != nil {
		execErr := asExecutionError(err, frame.Path, fieldDefs)
		thread.AddError(execErr)
		return nil, execErr
	}

	info := &resolveInfo{
		scope:     scope,
		object:    parentType,
		fieldDefs: fieldDefs,
		field:     fieldDef,
		path:      frame.Path,
		args:      args,
	}

	terminal := graphql.NextResolver(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		resolver := fieldDef.Resolver()
		if resolver == nil {
			resolver = &DefaultFieldResolver{}
		}
		return resolver.Resolve(ctx, source, info)
	})

	resolve := graphql.ChainMiddleware(scope.Schema().Middleware(), parentType, fieldDef, terminal)

	result, err := resolve(scope.Context(), parentValue, info)
	if err != nil {
		execErr := asExecutionError(err, frame.Path, fieldDefs)
		thread.AddError(execErr)
		return nil, execErr
	}

	return result, nil
}

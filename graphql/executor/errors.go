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

// invalidNullError marks a null bubble in flight: a non-null field resolved to null (directly, or
// because its value was an ExecutionError) and the violation is propagating up through enclosing
// NON_NULL wrappers looking for a nullable parent to absorb it. The *graphql.Error it wraps is
// recorded into the owning ExecThread exactly once, at the point the bubble is created; frames that
// merely relay it upward do not record it again.
type invalidNullError struct {
	err *graphql.Error
}

func (e *invalidNullError) Error() string {
	return e.err.Error()
}

// newInvalidNullError builds and records the ExecThread entry for a non-null violation at frame,
// then returns the bubble that should be returned up the coercion call stack.
func newInvalidNullError(thread *ExecThread, frame *ExecFrame) *invalidNullError {
	name := "value"
	if frame.Node != nil {
		name = frame.Node.ResponseKey()
	}

	err := graphql.NewError(
		fmt.Sprintf("Cannot return null for non-nullable field %q.", name),
		graphql.ErrKindExecution,
		frame.Path.Clone(),
	).(*graphql.Error)

	thread.AddError(err)
	return &invalidNullError{err: err}
}

// asExecutionError normalizes an error returned by a resolver or middleware into a *graphql.Error
// tagged ErrKindExecution, stamping a path and AST locations onto it. Errors that are already
// *graphql.Error values are returned with only an empty path and an ErrKindOther kind filled in;
// their locations are left as they are, so a resolver that builds its own graphql.Error (with its
// own Kind or Extensions) keeps them.
func asExecutionError(err error, path graphql.ResponsePath, fieldDefs []*ast.Field) *graphql.Error {
	if execErr, ok := err.(*graphql.Error); ok {
		if execErr.Path.Empty() {
			execErr.Path = path.Clone()
		}
		if execErr.Kind == graphql.ErrKindOther {
			execErr.Kind = graphql.ErrKindExecution
		}
		return execErr
	}

	locations := make([]graphql.ErrorLocation, len(fieldDefs))
	for i, node := range fieldDefs {
		locations[i] = graphql.ErrorLocationOfASTNode(node)
	}

	return graphql.NewError(err.Error(), graphql.ErrKindExecution, path.Clone(), locations, err).(*graphql.Error)
}

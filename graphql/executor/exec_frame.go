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
	"github.com/patchql/graphql/graphql/ast"
)

// ExecFrame is a snapshot of one traversal step. Frames are created on descent into a field or list
// element and discarded once resolved; a field parked for `@defer` is kept as a DeferredField
// until a drain round resolves it.
type ExecFrame struct {
	// Node is the (possibly fragment-merged) field AST node this frame resolves. Nil for the root
	// frame of an operation.
	Node *ast.Field

	// Value is the value this frame coerces: the field's resolved value for a field frame, the item
	// for a list-element frame, or the root value for the root frame.
	Value interface{}

	// Type is the GraphQL type this frame coerces Value under.
	Type graphql.Type

	// Path is the response path to this frame, as a sequence of field names and list indices.
	Path graphql.ResponsePath
}

// NewRootFrame builds the initial frame for an operation.
func NewRootFrame(rootValue interface{}, rootType graphql.Type) *ExecFrame {
	return &ExecFrame{
		Value: rootValue,
		Type:  rootType,
	}
}

// withFieldPath returns a copy of the frame's path extended by a field's response key. The parent
// frame's path is left untouched since ResponsePath.Clone deep-copies the backing slice.
func (frame *ExecFrame) withFieldPath(responseKey string) graphql.ResponsePath {
	path := frame.Path.Clone()
	path.AppendFieldName(responseKey)
	return path
}

// withIndexPath returns a copy of the frame's path extended by a list index.
func (frame *ExecFrame) withIndexPath(index int) graphql.ResponsePath {
	path := frame.Path.Clone()
	path.AppendIndex(index)
	return path
}

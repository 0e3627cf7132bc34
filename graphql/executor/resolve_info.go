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

// resolveInfo implements graphql.ResolveInfo for one field resolution. It is built fresh for every
// frame FieldResolver resolves; nothing about it is retained past that call, so it is safe to close
// over a frame's mutable path without cloning.
type resolveInfo struct {
	scope       *ExecScope
	object      *graphql.Object
	fieldDefs   []*ast.Field
	field       graphql.Field
	path        graphql.ResponsePath
	args        graphql.ArgumentValues
}

var _ graphql.ResolveInfo = (*resolveInfo)(nil)

// Schema implements graphql.ResolveInfo.
func (info *resolveInfo) Schema() graphql.Schema {
	return info.scope.Schema()
}

// Document implements graphql.ResolveInfo.
func (info *resolveInfo) Document() ast.Document {
	return info.scope.Document()
}

// Operation implements graphql.ResolveInfo.
func (info *resolveInfo) Operation() *ast.OperationDefinition {
	return info.scope.Operation()
}

// DataLoaderManager implements graphql.ResolveInfo.
func (info *resolveInfo) DataLoaderManager() graphql.DataLoaderManager {
	return info.scope.DataLoaderManager()
}

// RootValue implements graphql.ResolveInfo.
func (info *resolveInfo) RootValue() interface{} {
	return info.scope.RootValue()
}

// AppContext implements graphql.ResolveInfo.
func (info *resolveInfo) AppContext() interface{} {
	return info.scope.AppContext()
}

// VariableValues implements graphql.ResolveInfo.
func (info *resolveInfo) VariableValues() graphql.VariableValues {
	return info.scope.VariableValues()
}

// Object implements graphql.ResolveInfo.
func (info *resolveInfo) Object() *graphql.Object {
	return info.object
}

// FieldDefinitions implements graphql.ResolveInfo.
func (info *resolveInfo) FieldDefinitions() []*ast.Field {
	return info.fieldDefs
}

// Field implements graphql.ResolveInfo.
func (info *resolveInfo) Field() graphql.Field {
	return info.field
}

// Path implements graphql.ResolveInfo.
func (info *resolveInfo) Path() graphql.ResponsePath {
	return info.path
}

// Args implements graphql.ResolveInfo.
func (info *resolveInfo) Args() graphql.ArgumentValues {
	return info.args
}

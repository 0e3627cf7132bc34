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
	"fmt"

	"github.com/patchql/graphql/graphql"
	"github.com/patchql/graphql/graphql/ast"
)

// ExecScope holds the state that is the same for every frame of a single query: the schema, the
// document being executed, coerced variables and the caller-supplied root/app values. It is built
// once per query and never mutated afterwards, so it may be shared freely across the threads a
// DeferredStrategy spins up while draining parked frames.
type ExecScope struct {
	ctx               context.Context
	schema            graphql.Schema
	document          ast.Document
	operation         *ast.OperationDefinition
	variableValues    graphql.VariableValues
	rootValue         interface{}
	appContext        interface{}
	dataLoaderManager graphql.DataLoaderManager
}

// NewExecScope builds an ExecScope for one query execution.
func NewExecScope(
	ctx context.Context,
	schema graphql.Schema,
	document ast.Document,
	operation *ast.OperationDefinition,
	variableValues graphql.VariableValues,
	rootValue interface{},
	appContext interface{},
	dataLoaderManager graphql.DataLoaderManager) *ExecScope {
	return &ExecScope{
		ctx:               ctx,
		schema:            schema,
		document:          document,
		operation:         operation,
		variableValues:    variableValues,
		rootValue:         rootValue,
		appContext:        appContext,
		dataLoaderManager: dataLoaderManager,
	}
}

// Context carries the caller's deadline and cancellation signal for the whole query.
func (scope *ExecScope) Context() context.Context {
	return scope.ctx
}

// Schema being executed against.
func (scope *ExecScope) Schema() graphql.Schema {
	return scope.schema
}

// Document that contains the operation and any fragments it spreads.
func (scope *ExecScope) Document() ast.Document {
	return scope.document
}

// Operation being executed.
func (scope *ExecScope) Operation() *ast.OperationDefinition {
	return scope.operation
}

// VariableValues coerced from the request's raw variables.
func (scope *ExecScope) VariableValues() graphql.VariableValues {
	return scope.variableValues
}

// RootValue is the initial value for the root type being executed.
func (scope *ExecScope) RootValue() interface{} {
	return scope.rootValue
}

// AppContext is application-specific data threaded through to resolvers.
func (scope *ExecScope) AppContext() interface{} {
	return scope.appContext
}

// DataLoaderManager tracks data loaders used by resolvers during this query, or nil if none was
// supplied.
func (scope *ExecScope) DataLoaderManager() graphql.DataLoaderManager {
	return scope.dataLoaderManager
}

// GetFragment looks up a fragment definition by name, or nil if the document does not define one.
func (scope *ExecScope) GetFragment(name string) *ast.FragmentDefinition {
	return scope.document.Fragments[name]
}

// GetField resolves the Field definition for name on the given concrete object type, including the
// synthetic __typename/__schema/__type introspection fields. It fails with a fatal error if the
// field is undefined; a validated query should never reach this branch.
func (scope *ExecScope) GetField(t *graphql.Object, name string) (graphql.Field, error) {
	switch name {
	case graphql.TypenameMetaFieldName:
		return graphql.TypenameMetaFieldDef(), nil

	case graphql.SchemaMetaFieldName:
		if t == scope.schema.Query() {
			return graphql.SchemaMetaFieldDef(), nil
		}

	case graphql.TypeMetaFieldName:
		if t == scope.schema.Query() {
			return graphql.TypeMetaFieldDef(), nil
		}
	}

	if field, ok := t.Fields()[name]; ok {
		return field, nil
	}

	return nil, fmt.Errorf("field %q is not defined on type %q", name, t.Name())
}

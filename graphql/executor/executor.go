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

// Package executor implements query execution: it turns a validated operation AST, a schema and a
// root value into a result tree, optionally delivering part of that tree incrementally through a
// Collector when the operation uses `@defer`.
package executor

import (
	"context"

	"github.com/patchql/graphql/graphql"
	"github.com/patchql/graphql/graphql/ast"
)

// Strategy drives one query's execution from its root down. SerialStrategy and DeferredStrategy are
// the two implementations the core provides.
type Strategy interface {
	// Execute resolves scope's operation against rootType and returns the result value together
	// with every execution error accumulated while doing so.
	Execute(scope *ExecScope, rootType graphql.Type) (interface{}, graphql.Errors)
}

// Execute runs one query. operation.Type selects which of the schema's root types the operation
// binds against (Query, Mutation or Subscription); variableValues must already have been coerced
// against the operation's variable definitions.
//
// strategy is nil-safe: a nil strategy defaults to SerialStrategy.
func Execute(
	ctx context.Context,
	schema graphql.Schema,
	document ast.Document,
	operation *ast.OperationDefinition,
	variableValues graphql.VariableValues,
	rootValue interface{},
	appContext interface{},
	dataLoaderManager graphql.DataLoaderManager,
	strategy Strategy) (interface{}, graphql.Errors) {

	rootType, err := rootTypeOf(schema, operation)
	if err != nil {
		return nil, graphql.ErrorsOf(err)
	}

	scope := NewExecScope(ctx, schema, document, operation, variableValues, rootValue, appContext, dataLoaderManager)

	if strategy == nil {
		strategy = SerialStrategy{}
	}

	return strategy.Execute(scope, rootType)
}

func rootTypeOf(schema graphql.Schema, operation *ast.OperationDefinition) (graphql.Type, error) {
	switch operation.Type {
	case ast.OperationTypeQuery:
		return schema.Query(), nil

	case ast.OperationTypeMutation:
		if schema.Mutation() == nil {
			return nil, graphql.NewError("Schema is not configured for mutations.")
		}
		return schema.Mutation(), nil

	case ast.OperationTypeSubscription:
		if schema.Subscription() == nil {
			return nil, graphql.NewError("Schema is not configured for subscriptions.")
		}
		return schema.Subscription(), nil

	default:
		return nil, graphql.NewError("Unknown operation type.")
	}
}

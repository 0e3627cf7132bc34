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

package graphql

import (
	"context"
)

// NextResolver is the continuation a Middleware calls to run the rest of the chain, ending in the
// field's own FieldResolver.
type NextResolver func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Middleware wraps the resolution of every field in a schema. Middlewares compose around the
// field's own FieldResolver: each one decides whether to call next (optionally inspecting or
// replacing the eventual value/error) or short-circuit without calling it.
//
// Middlewares are schema-wide rather than per-field; register them via SchemaConfig.Middleware.
type Middleware interface {
	// Wrap returns a resolver that runs this middleware and, if it chooses to, calls next.
	Wrap(parentType *Object, field Field, next NextResolver) NextResolver
}

// MiddlewareFunc is an adapter to allow the use of ordinary functions as Middleware.
type MiddlewareFunc func(parentType *Object, field Field, next NextResolver) NextResolver

// Wrap calls f(parentType, field, next).
func (f MiddlewareFunc) Wrap(parentType *Object, field Field, next NextResolver) NextResolver {
	return f(parentType, field, next)
}

var _ Middleware = MiddlewareFunc(nil)

// ChainMiddleware composes a field's terminal resolver with the given middlewares, outermost
// first. The returned NextResolver is what actually runs when the field is resolved.
func ChainMiddleware(middlewares []Middleware, parentType *Object, field Field, terminal NextResolver) NextResolver {
	next := terminal
	for i := len(middlewares) - 1; i >= 0; i-- {
		next = middlewares[i].Wrap(parentType, field, next)
	}
	return next
}

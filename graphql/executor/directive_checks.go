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
	"github.com/patchql/graphql/graphql/ast"
	"github.com/patchql/graphql/internal/value"
)

// nodeWithDirectives is implemented by every selection AST node: *ast.Field, *ast.FragmentSpread
// and *ast.InlineFragment.
type nodeWithDirectives interface {
	GetDirectives() ast.Directives
}

// Skip reports whether node should be excluded from its selection set because a "skip" or
// "include" directive's include_proc evaluated to false once its arguments were materialized. If
// both directives are present and disagree, the first one in the fixed check order below (skip,
// then include, whatever their order in the AST) whose include_proc returns false wins.
//
// Directive names that the schema does not register are ignored here; validating that a query only
// uses known directives is an external concern.
func Skip(scope *ExecScope, node nodeWithDirectives) bool {
	directives := node.GetDirectives()
	if len(directives) == 0 {
		return false
	}

	for _, name := range [...]string{"skip", "include"} {
		directiveNode := directives.Get(name)
		if directiveNode == nil {
			continue
		}

		directiveDef := scope.Schema().Directives().Lookup(name)
		if directiveDef == nil {
			continue
		}

		args, err := value.ArgumentValues(directiveDef, directiveNode, scope.VariableValues())
		if err != nil {
			// Argument coercion failures are a validation concern; do not let them change which
			// fields execute.
			continue
		}

		if !directiveDef.IncludeProc(args) {
			return true
		}
	}

	return false
}

// Defer reports whether node carries a "defer" directive. No argument evaluation is needed: @defer
// takes effect unconditionally wherever it is written, and the decision of whether to actually honor
// it belongs to the strategy driving the traversal.
//
// Only Field nodes are ever parked for deferred resolution; a `@defer` written on a fragment spread
// or inline fragment is not a flattening concern; it has no effect here because nothing calls Defer
// on those node kinds.
func Defer(node *ast.Field) bool {
	return node.GetDirectives().Get("defer") != nil
}

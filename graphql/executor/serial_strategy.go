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

import "github.com/patchql/graphql/graphql"

// SerialStrategy drives a single ExecThread over the whole query and returns the fully coerced
// result tree. `@defer` is ignored semantically: NeverDefer means no frame is ever parked, so every
// field that would have been deferred is resolved and included inline instead.
type SerialStrategy struct{}

var _ Strategy = SerialStrategy{}

// Execute implements Strategy.
func (SerialStrategy) Execute(scope *ExecScope, rootType graphql.Type) (interface{}, graphql.Errors) {
	thread := NewExecThread()
	root := NewRootFrame(scope.RootValue(), rootType)

	value, bubble, err := Coerce(scope, thread, root, NeverDefer)
	if err != nil {
		thread.AddError(graphql.NewError(err.Error(), graphql.ErrKindExecution).(*graphql.Error))
		return nil, thread.Errors()
	}
	if bubble != nil {
		return nil, thread.Errors()
	}

	return value, thread.Errors()
}

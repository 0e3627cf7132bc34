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
)

// ExecThread is a single sequential run of the executor: it is not a concurrent worker, the name
// only marks a self-contained traversal that plays out on one caller's stack. A thread owns the
// execution errors produced along it and the frames that were parked for deferred resolution.
//
// SerialStrategy uses exactly one ExecThread for the whole query. DeferredStrategy allocates a
// fresh ExecThread per drain round: threads are not shared or reused across rounds, since each
// round's errors and defers belong to that round's patch.
type ExecThread struct {
	errors graphql.Errors
	defers []*DeferredField
}

// NewExecThread starts a fresh, empty thread.
func NewExecThread() *ExecThread {
	return &ExecThread{}
}

// Errors accumulated on this thread so far.
func (thread *ExecThread) Errors() graphql.Errors {
	return thread.errors
}

// Defers lists the fields parked on this thread, in the order they were parked.
func (thread *ExecThread) Defers() []*DeferredField {
	return thread.defers
}

// AddError appends an execution error to the thread.
func (thread *ExecThread) AddError(err *graphql.Error) {
	thread.errors.Append(err)
}

// Defer parks a field for later resolution by a subsequent drain round.
func (thread *ExecThread) Defer(field *DeferredField) {
	thread.defers = append(thread.defers, field)
}

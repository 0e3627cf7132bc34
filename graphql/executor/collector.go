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

// Collector receives the incremental patches a DeferredStrategy produces. Patch is called
// synchronously from the goroutine driving the query; a Collector implementation that fans out to
// a network connection must do its own buffering or synchronization if it needs to return control
// before the write lands.
//
// path's elements are either a string (an object key, including the reserved "data" and "errors"
// top-level keys) or a non-negative int (a list index). value is always JSON-marshalable.
type Collector interface {
	Patch(path []interface{}, value interface{})
}

// CollectorFunc is an adapter to allow ordinary functions to serve as a Collector.
type CollectorFunc func(path []interface{}, value interface{})

// Patch calls f(path, value).
func (f CollectorFunc) Patch(path []interface{}, value interface{}) {
	f(path, value)
}

// RecordingCollector accumulates patches in memory, in the order received. It is mainly useful for
// tests that want to assert on the exact patch sequence a query produces.
type RecordingCollector struct {
	patches []RecordedPatch
}

// RecordedPatch is one (path, value) pair captured by a RecordingCollector.
type RecordedPatch struct {
	Path  []interface{}
	Value interface{}
}

// NewRecordingCollector builds a Collector that keeps every patch it receives, retrievable via
// Patches.
func NewRecordingCollector() *RecordingCollector {
	return &RecordingCollector{}
}

// Patch implements Collector.
func (c *RecordingCollector) Patch(path []interface{}, value interface{}) {
	c.patches = append(c.patches, RecordedPatch{Path: path, Value: value})
}

// Patches returns every patch recorded so far, in receipt order.
func (c *RecordingCollector) Patches() []RecordedPatch {
	return c.patches
}

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

// DeferredField is everything a later drain round needs to resolve and coerce a field whose
// selection carried `@defer` in place of resolving it inline. Parking one substitutes null at Path
// in the result being built; a subsequent round resolves it for real and emits the difference as a
// patch at Path.
type DeferredField struct {
	// ParentType and ParentValue are the object the field belongs to and the resolved value that
	// field resolution runs against.
	ParentType  *graphql.Object
	ParentValue interface{}

	// FieldDefs holds the one representative AST field node for this response key, into which
	// selection flattening merged any later occurrences.
	FieldDefs []*ast.Field

	// FieldDef is the schema field definition FieldDefs resolve against.
	FieldDef graphql.Field

	// Type is the field's declared output type.
	Type graphql.Type

	// Path is the response path the field occupies in the result, and the patch path its eventual
	// resolution is delivered at.
	Path graphql.ResponsePath
}

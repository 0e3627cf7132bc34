/**
 * Copyright (c) 2018, The Artemis Authors.
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

// Package graphql provides an implementation of GraphQL. It provides foundation to build GraphQL
// type schema and to serve queries against that type schema.
//
// Config-NewType Design
//
// Each kind of Type (Scalar, Object, Interface, Union, Enum, InputObject, List, NonNull) is a
// concrete, exported struct. Building one is a two-step naming convention: fill in the matching
// XConfig value describing the type (name, description, fields, etc.) and pass it to NewX, which
// validates the config and returns a ready-to-use *X. MustNewX wraps NewX and panics instead of
// returning an error, for use in package-level variable initializers where a construction failure
// is a programming error rather than something the caller can recover from.
//
// Fields, arguments, and input fields that must reference a type still being constructed (for
// example, an Object field that returns its own Object, or two Objects that refer to each other)
// take a TypeThunk instead of a Type directly. TypeThunk is just `func() Type`; the T helper wraps
// an already-built Type in a TypeThunk for the common case, while a real closure is used when the
// referenced type is only available once the rest of the var block or an init function has run.
// Because the thunk isn't invoked until the schema resolves the field, it may close over a
// variable assigned later in the same file, which is how recursive and mutually-recursive type
// graphs are expressed without an intermediate builder layer.
//
// A schema assembles the Query, Mutation, and Subscription root Objects built this way, together
// with any extra types and directives that should be reachable from introspection, into a Schema
// via NewSchema.
package graphql

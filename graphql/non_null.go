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

package graphql

import (
	"fmt"
)

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null and ensure an error is raised if this ever occurs during a request. It is
// useful for fields which can make a strong guarantee on non-nullability, for example the id field
// of a database row will usually never be null.
//
// Note: the enforcement of non-nullability occurs within the executor.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null

// NonNull represents "T!": a GraphQL type that can never resolve to null.
type NonNull struct {
	innerType Type
	notation  string
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNullOfType defines a NonNull type with the given (nullable) inner type.
func NewNonNullOfType(innerType Type) (*NonNull, error) {
	if innerType == nil {
		return nil, NewError("Must provide a non-nil inner type for NonNull.")
	}
	if !IsNullableType(innerType) {
		return nil, NewError(fmt.Sprintf("Expected a nullable type for NonNull but got %s.", innerType.String()))
	}
	return &NonNull{
		innerType: innerType,
		notation:  innerType.String() + "!",
	}, nil
}

// MustNewNonNullOfType is a convenience function equivalent to NewNonNullOfType but panics on
// failure instead of returning an error.
func MustNewNonNullOfType(innerType Type) *NonNull {
	n, err := NewNonNullOfType(innerType)
	if err != nil {
		panic(err)
	}
	return n
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// String implements Type.
func (n *NonNull) String() string {
	return n.notation
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.InnerType()
}

// InnerType indicates the type of the value wrapped by this non-null type.
func (n *NonNull) InnerType() Type {
	return n.innerType
}

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

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually
// used when the field is resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions

// PossibleTypeSet is the set of concrete Object types that can satisfy an AbstractType.
type PossibleTypeSet struct {
	types map[*Object]bool
}

// NewPossibleTypeSet creates an empty PossibleTypeSet.
func NewPossibleTypeSet() PossibleTypeSet {
	return PossibleTypeSet{types: map[*Object]bool{}}
}

// Add includes the given Object type in the set.
func (s PossibleTypeSet) Add(t *Object) {
	s.types[t] = true
}

// Has reports whether the given Object type is a member of the set.
func (s PossibleTypeSet) Has(t *Object) bool {
	return s.types[t]
}

// Len returns the number of types in the set.
func (s PossibleTypeSet) Len() int {
	return len(s.types)
}

// UnionConfig provides the specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// PossibleTypes lists the Object types that can be represented by the defining union.
	PossibleTypes []*Object

	// TypeResolver resolves the concrete Object type implementing the defining union from a given
	// value.
	TypeResolver TypeResolver
}

// Union represents a GraphQL Union type.
type Union struct {
	name          string
	description   string
	possibleTypes PossibleTypeSet
	typeResolver  TypeResolver
}

var (
	_ Type         = (*Union)(nil)
	_ AbstractType = (*Union)(nil)
)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config *UnionConfig) (*Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.")
	}

	possibleTypes := NewPossibleTypeSet()
	for _, t := range config.PossibleTypes {
		possibleTypes.Add(t)
	}

	return &Union{
		name:          config.Name,
		description:   config.Description,
		possibleTypes: possibleTypes,
		typeResolver:  config.TypeResolver,
	}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config *UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// String implements Type.
func (u *Union) String() string {
	return u.name
}

// TypeResolver implements AbstractType.
func (u *Union) TypeResolver() TypeResolver {
	return u.typeResolver
}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// PossibleTypes returns the member types of the union.
func (u *Union) PossibleTypes() PossibleTypeSet {
	return u.possibleTypes
}

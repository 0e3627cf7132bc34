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

	"github.com/patchql/graphql/graphql/ast"
)

// ScalarResultCoercer serializes an internal value for inclusion in an execution result.
type ScalarResultCoercer interface {
	CoerceResultValue(value interface{}) (interface{}, error)
}

// ScalarResultCoercerFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type ScalarResultCoercerFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f ScalarResultCoercerFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// ScalarInputCoercer parses a value supplied as a query variable or as a literal argument value
// into the scalar's internal representation.
type ScalarInputCoercer interface {
	CoerceVariableValue(value interface{}) (interface{}, error)
	CoerceArgumentValue(value ast.Value) (interface{}, error)
}

// defaultScalarInputCoercer is used for a scalar that doesn't provide a coercer for processing
// input values; it can still appear as a result type but not in argument or variable position.
type defaultScalarInputCoercer struct {
	scalarName string
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer defaultScalarInputCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return nil, NewError(fmt.Sprintf("coercer for the input type %s was not provided", coercer.scalarName))
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer defaultScalarInputCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return nil, NewError(fmt.Sprintf("coercer for the input type %s was not provided", coercer.scalarName))
}

// ScalarConfig provides the definition for creating a Scalar type.
type ScalarConfig struct {
	// Name of the scalar type
	Name string

	// Description of the scalar type
	Description string

	// ResultCoercer serializes a value for return in an execution result. Required.
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses an input value given to the scalar as an argument or variable. When nil,
	// the scalar accepts no input (CoerceArgumentValue/CoerceVariableValue fail with an error).
	InputCoercer ScalarInputCoercer
}

// Scalar represents a primitive leaf value in a GraphQL type system: Int, String, a custom Date
// type, etc.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name          string
	description   string
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var (
	_ Type     = (*Scalar)(nil)
	_ LeafType = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}

	if config.ResultCoercer == nil {
		return nil, NewError(fmt.Sprintf(
			"%s must provide ResultCoercer. If this custom Scalar is also used as an input type, "+
				"ensure InputCoercer is also provided.", config.Name))
	}

	inputCoercer := config.InputCoercer
	if inputCoercer == nil {
		inputCoercer = defaultScalarInputCoercer{scalarName: config.Name}
	}

	return &Scalar{
		name:          config.Name,
		description:   config.Description,
		resultCoercer: config.ResultCoercer,
		inputCoercer:  inputCoercer,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return s.Name()
}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// CoerceResultValue implements LeafType.
func (s *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceVariableValue coerces a value read from an input query variable into the scalar's
// internal representation.
func (s *Scalar) CoerceVariableValue(value interface{}) (interface{}, error) {
	return s.inputCoercer.CoerceVariableValue(value)
}

// CoerceArgumentValue coerces a literal argument value into the scalar's internal representation.
func (s *Scalar) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return s.inputCoercer.CoerceArgumentValue(value)
}

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
	"context"
)

// FieldResolver resolves a field's value during execution. It is the terminal step of a field's
// middleware chain.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
type FieldResolver interface {
	// Context carries deadlines and cancelation signals.
	//
	// Source is the value resolved by the field's enclosing object.
	//
	// Info contains a collection of information about the current execution state.
	Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Resolve calls f(ctx, source, info).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

var _ FieldResolver = FieldResolverFunc(nil)

// Fields maps field name to its definition. In general this should be named "FieldConfigMap", but
// we keep it short because the type is used frequently.
type Fields map[string]FieldConfig

// FieldConfig provides the definition of a field when defining an object or interface.
type FieldConfig struct {
	// Description of the defining field
	Description string

	// Type of value yielded by the field
	Type TypeThunk

	// Args that can be given when querying the field
	Args ArgumentConfigMap

	// Resolver for resolving the field's value during execution
	Resolver FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// FieldMap maps field name to Field.
type FieldMap map[string]Field

// BuildFieldMap builds a FieldMap from the given Fields.
func BuildFieldMap(fieldConfigMap Fields) (FieldMap, error) {
	if len(fieldConfigMap) == 0 {
		return nil, nil
	}

	fieldMap := make(FieldMap, len(fieldConfigMap))
	for name, fieldConfig := range fieldConfigMap {
		if fieldConfig.Type == nil {
			return nil, NewError("Must provide type for field \"" + name + "\".")
		}

		args, err := buildArguments(fieldConfig.Args)
		if err != nil {
			return nil, err
		}

		fieldMap[name] = &field{
			config: fieldConfig,
			name:   name,
			args:   args,
		}
	}

	return fieldMap, nil
}

// Field represents a field in an Object or Interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field interface {
	// Name of the field
	Name() string

	// Description of the field
	Description() string

	// Type of value yielded by the field
	Type() Type

	// Args specifies the definitions of arguments accepted when querying this field.
	Args() []Argument

	// Resolver determines the result value for the field from the value resolved by the parent
	// Object.
	//
	// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
	Resolver() FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation() *Deprecation
}

// field is the built-in implementation of Field.
type field struct {
	config FieldConfig
	name   string
	args   []Argument
}

var _ Field = (*field)(nil)

// Name implements Field.
func (f *field) Name() string {
	return f.name
}

// Description implements Field.
func (f *field) Description() string {
	return f.config.Description
}

// Type implements Field.
func (f *field) Type() Type {
	return f.config.Type()
}

// Args implements Field.
func (f *field) Args() []Argument {
	return f.args
}

// Resolver implements Field.
func (f *field) Resolver() FieldResolver {
	return f.config.Resolver
}

// Deprecation implements Field.
func (f *field) Deprecation() *Deprecation {
	return f.config.Deprecation
}

// ArgumentConfigMap maps argument name to its definition.
type ArgumentConfigMap map[string]ArgumentConfig

// argumentNilValueType marks a "null" default value for an argument.
type argumentNilValueType int

// NilArgumentDefaultValue is given to ArgumentConfig.DefaultValue to set the argument's default
// value to "null", as opposed to leaving DefaultValue unset which means there is no default value
// at all. We need this trick because a plain "nil" cannot tell "undefined" apart from "null".
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfig provides the definition for an argument accepted by a field or directive.
type ArgumentConfig struct {
	// Description of the argument
	Description string

	// Type of the value accepted by the argument
	Type TypeThunk

	// DefaultValue is assigned to the argument when no value is given.
	DefaultValue interface{}
}

// buildArguments builds a list of Argument from an ArgumentConfigMap.
func buildArguments(argConfigMap ArgumentConfigMap) ([]Argument, error) {
	if len(argConfigMap) == 0 {
		return nil, nil
	}

	args := make([]Argument, 0, len(argConfigMap))
	for name, argConfig := range argConfigMap {
		if argConfig.Type == nil {
			return nil, NewError("Must provide type for argument \"" + name + "\".")
		}
		args = append(args, Argument{
			name:         name,
			description:  argConfig.Description,
			typeThunk:    argConfig.Type,
			defaultValue: argConfig.DefaultValue,
		})
	}

	return args, nil
}

// Argument is accepted in querying a field or using a directive to further specify behavior.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	typeThunk    TypeThunk
	defaultValue interface{}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value accepted by the argument
func (arg *Argument) Type() Type {
	return arg.typeThunk()
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue is the value assigned to the argument when no value is given.
func (arg *Argument) DefaultValue() interface{} {
	if _, ok := arg.defaultValue.(argumentNilValueType); ok {
		return nil
	}
	return arg.defaultValue
}

// IsRequiredArgument returns true if a value must be provided for the argument.
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}

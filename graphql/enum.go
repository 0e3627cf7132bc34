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
	"errors"
	"fmt"
	"reflect"

	"github.com/patchql/graphql/graphql/ast"
)

// EnumResultCoercer maps an internal value to the EnumValue that represents it in a result.
type EnumResultCoercer interface {
	Coerce(value interface{}) (*EnumValue, error)
}

// EnumResultCoercerFactory creates an EnumResultCoercer for an initialized Enum.
type EnumResultCoercerFactory interface {
	// Create is called at the end of NewEnum, once Enum's values are known, to obtain an
	// EnumResultCoercer for serializing result values.
	Create(enum *Enum) (EnumResultCoercer, error)
}

// CreateEnumResultCoercerFunc is an adapter to allow the use of ordinary functions as
// EnumResultCoercerFactory.
type CreateEnumResultCoercerFunc func(enum *Enum) (EnumResultCoercer, error)

// Create calls f(enum).
func (f CreateEnumResultCoercerFunc) Create(enum *Enum) (EnumResultCoercer, error) {
	return f(enum)
}

// DefaultEnumResultCoercerLookupStrategy specifies how to search the enum value.
type DefaultEnumResultCoercerLookupStrategy uint

// Enumeration of DefaultEnumResultCoercerLookupStrategy
const (
	// Search with the enum value whose name matches the given value when performing coercion. This
	// is considered faster than by-value and consumes less memory. This is also the default
	// strategy.
	DefaultEnumResultCoercerLookupByName DefaultEnumResultCoercerLookupStrategy = iota

	// Search with the enum value whose internal value matches the given value when performing
	// coercion.
	DefaultEnumResultCoercerLookupByValue

	// This is the same as DefaultEnumResultCoercerLookupByValue, except when the given value is a
	// pointer: it looks up the enum value whose internal value matches the value dereferenced from
	// the pointer.
	DefaultEnumResultCoercerLookupByValueDeref
)

// defaultEnumResultCoercerLookupByValueFactory creates coercers for either
// DefaultEnumResultCoercerLookupByValue or DefaultEnumResultCoercerLookupByValueDeref.
type defaultEnumResultCoercerLookupByValueFactory struct {
	// True when creating a coercer for DefaultEnumResultCoercerLookupByValueDeref.
	deref bool
}

// Create implements EnumResultCoercerFactory.
func (factory defaultEnumResultCoercerLookupByValueFactory) Create(enum *Enum) (EnumResultCoercer, error) {
	values := enum.Values()
	valueMap := make(map[interface{}]*EnumValue, len(values))
	for _, value := range values {
		valueMap[value.Value()] = value
	}

	return defaultEnumResultCoercerLookupByValue{
		enum:     enum,
		deref:    factory.deref,
		valueMap: valueMap,
	}, nil
}

// defaultEnumResultCoercerLookupByValue implements an EnumResultCoercer that finds the enum value
// whose internal value matches the given result value.
type defaultEnumResultCoercerLookupByValue struct {
	enum *Enum

	// When the given value is a pointer and this is set to true, use the value dereferenced from
	// the pointer for searching valueMap.
	deref bool

	// valueMap maps an enum value's internal value to the enum value.
	valueMap map[interface{}]*EnumValue
}

var errNoSuchEnumForValue = errors.New("no enum value matches the value")

// Coerce implements EnumResultCoercer.
func (coercer defaultEnumResultCoercerLookupByValue) Coerce(value interface{}) (*EnumValue, error) {
	if coercer.deref {
		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Ptr && !v.IsNil() {
			value = v.Elem().Interface()
		}
	}

	enumValue, exists := coercer.valueMap[value]
	if !exists {
		return nil, NewDefaultResultCoercionError(coercer.enum.Name(), value, errNoSuchEnumForValue)
	}
	return enumValue, nil
}

// defaultEnumResultCoercerLookupByName implements an EnumResultCoercer that expects a string-like
// result value and returns the enum value whose name matches it.
type defaultEnumResultCoercerLookupByName struct {
	// The subject enum.
	enum *Enum
}

func newDefaultEnumResultCoercerLookupByName(enum *Enum) (EnumResultCoercer, error) {
	return defaultEnumResultCoercerLookupByName{enum}, nil
}

var errNoSuchEnumForName = errors.New("no enum value matches the name")

// Coerce implements EnumResultCoercer.
func (coercer defaultEnumResultCoercerLookupByName) Coerce(value interface{}) (*EnumValue, error) {
	enum := coercer.enum

	// Quick path for a string.
	name, ok := value.(string)
	if !ok {
		// Maybe value is some type that aliases a string.
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.String {
			return nil, NewDefaultResultCoercionError(coercer.enum.Name(), value,
				fmt.Errorf("unexpected result type `%T`", value))
		}
		name = v.String()
	}

	if value := enum.Value(name); value != nil {
		return value, nil
	}

	return nil, NewDefaultResultCoercionError(coercer.enum.Name(), value, errNoSuchEnumForName)
}

// DefaultEnumResultCoercerFactory exposes the factory for building the default EnumResultCoercer
// following the given lookup strategy.
func DefaultEnumResultCoercerFactory(lookupStrategy DefaultEnumResultCoercerLookupStrategy) EnumResultCoercerFactory {
	switch lookupStrategy {
	case DefaultEnumResultCoercerLookupByName:
		return CreateEnumResultCoercerFunc(newDefaultEnumResultCoercerLookupByName)

	case DefaultEnumResultCoercerLookupByValue:
		return defaultEnumResultCoercerLookupByValueFactory{
			deref: false,
		}

	case DefaultEnumResultCoercerLookupByValueDeref:
		return defaultEnumResultCoercerLookupByValueFactory{
			deref: true,
		}
	}

	panic("unknown lookup strategy for default enum value coercer")
}

// enumNilValueType marks a "null" internal value for an enum value.
type enumNilValueType int

// NilEnumInternalValue is given to EnumValueConfig.Value to set the enum value's internal value
// to "null", as opposed to leaving Value unset which means the enum value's name is used as its
// internal value.
const NilEnumInternalValue enumNilValueType = 0

// EnumValueConfig provides the definition for a value in an Enum.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValueConfig struct {
	// Description of the enum value
	Description string

	// Value is the internal value that represents this enum value. When nil, the enum value's
	// name is used as its internal value instead.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumValueConfigMap maps enum value name to its definition.
type EnumValueConfigMap map[string]EnumValueConfig

// EnumConfig provides the definition for creating an Enum type.
type EnumConfig struct {
	// Name of the enum type
	Name string

	// Description for the enum type
	Description string

	// Values defined in the enum
	Values EnumValueConfigMap

	// ResultCoercerFactory creates an EnumResultCoercer that coerces an internal value into an enum
	// value. When nil, DefaultEnumResultCoercerFactory(DefaultEnumResultCoercerLookupByName) is
	// used.
	ResultCoercerFactory EnumResultCoercerFactory
}

// EnumValue provides the definition for a value in an enum.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
}

// Name of the enum value.
func (value *EnumValue) Name() string {
	return value.name
}

// Description of the enum value.
func (value *EnumValue) Description() string {
	return value.description
}

// Value returns the internal value to be used when the enum value is read from input.
func (value *EnumValue) Value() interface{} {
	return value.value
}

// IsDeprecated returns true if this value is deprecated.
func (value *EnumValue) IsDeprecated() bool {
	return value.deprecation.Defined()
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (value *EnumValue) Deprecation() *Deprecation {
	return value.deprecation
}

// Enum Type
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Note: If a value is not provided in a definition, the name of the enum value will be used as its
//
//	internal value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	name        string
	description string

	// resultCoercer coerces a result value into an EnumValue.
	resultCoercer EnumResultCoercer

	// values defined in the enum type, in the iteration order of the config.Values map given to
	// NewEnum (which is not stable).
	values []*EnumValue

	// nameMap maps enum value name to its EnumValue.
	nameMap map[string]*EnumValue
}

var (
	_ Type                = (*Enum)(nil)
	_ LeafType            = (*Enum)(nil)
	_ TypeWithName        = (*Enum)(nil)
	_ TypeWithDescription = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}

	values := make([]*EnumValue, 0, len(config.Values))
	nameMap := make(map[string]*EnumValue, len(config.Values))
	for name, valueConfig := range config.Values {
		internalValue := valueConfig.Value
		if internalValue == nil {
			// Use name for internal value of the enum value.
			internalValue = name
		} else if _, ok := internalValue.(enumNilValueType); ok {
			// NilEnumInternalValue was given: initialize internal value to nil.
			internalValue = nil
		}

		value := &EnumValue{
			name:        name,
			description: valueConfig.Description,
			value:       internalValue,
			deprecation: valueConfig.Deprecation,
		}
		values = append(values, value)
		nameMap[name] = value
	}

	enum := &Enum{
		name:        config.Name,
		description: config.Description,
		values:      values,
		nameMap:     nameMap,
	}

	factory := config.ResultCoercerFactory
	if factory == nil {
		factory = DefaultEnumResultCoercerFactory(DefaultEnumResultCoercerLookupByName)
	}
	resultCoercer, err := factory.Create(enum)
	if err != nil {
		return nil, NewError("Error occurred when preparing object responsible for coercing result value", err)
	}
	enum.resultCoercer = resultCoercer

	return enum, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.description
}

// String implements fmt.Stringer.
func (e *Enum) String() string {
	return e.Name()
}

// Values returns all enum values defined in this Enum type.
func (e *Enum) Values() []*EnumValue {
	return e.values
}

// Value finds the enum value with the given name or returns nil if there is no such one.
func (e *Enum) Value(name string) *EnumValue {
	value, exists := e.nameMap[name]
	if exists {
		return value
	}
	return nil
}

// CoerceResultValue implements LeafType.
func (e *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	enumValue, err := e.resultCoercer.Coerce(value)
	if err != nil {
		return nil, err
	}
	return enumValue.Name(), nil
}

// These errors are returned when coercion fails in CoerceVariableValue and CoerceArgumentValue.
// They are ordinary errors instead of coercion errors, to let the caller present a default message
// to the user instead of these internal details.
var (
	errNilEnumValue      = errors.New("enum value is not provided")
	errInvalidEnumValue  = errors.New("invalid enum value")
	errEnumValueNotFound = errors.New("not a value for the type")
)

// CoerceVariableValue coerces a value read from an input query variable that specifies the name of
// an enum value, and returns the internal value that represents the enum.
func (e *Enum) CoerceVariableValue(value interface{}) (interface{}, error) {
	var enumValue *EnumValue
	switch name := value.(type) {
	case string:
		enumValue = e.Value(name)

	case *string:
		if name != nil {
			enumValue = e.Value(*name)
		} else {
			return nil, errNilEnumValue
		}

	default:
		// Check whether the given value is string-like or a pointer to string-like via reflection.
		nameValue := reflect.ValueOf(value)
		if nameValue.Kind() == reflect.Ptr {
			if nameValue.IsNil() {
				return nil, errNilEnumValue
			}
			nameValue = nameValue.Elem()
		}

		if nameValue.Kind() != reflect.String {
			return nil, errInvalidEnumValue
		}

		enumValue = e.Value(nameValue.String())
	}

	if enumValue != nil {
		return enumValue.Value(), nil
	}

	return nil, errEnumValueNotFound
}

// CoerceArgumentValue is similar to CoerceVariableValue but coerces a value from an input field
// argument that specifies the name of an enum value.
func (e *Enum) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if v, ok := value.(ast.EnumValue); ok {
		if enumValue := e.Value(v.Raw); enumValue != nil {
			return enumValue.Value(), nil
		}
		return nil, errEnumValueNotFound
	}
	return nil, errInvalidEnumValue
}

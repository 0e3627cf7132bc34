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
	"math"
	"strconv"

	"github.com/patchql/graphql/graphql/ast"
	"github.com/patchql/graphql/graphql/typeutil"
)

// The "type of internal value" for each built-in scalar are listed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | bool                            |
// | ID           | string                          |
// +--------------+---------------------------------+
//
// That is, the type of underlying value behind the interface{} returned by CoerceArgumentValue and
// CoerceVariableValue are fixed to the one given in the table for each type. Therefore, for
// example, when you receive an Int argument, you can expect you got an "int" not int32 or others.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger               string = "not an integer"
	coercionErrorIntegerTooLarge                 = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall                 = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric                      = "not a numeric value"
	coercionErrorIntegerToFloatOutOfRange        = "integer that cannot represent with float: out of range"
	coercionErrorNonBoolean                      = "not a boolean value"
)

// scalarCoercerBase is built on top of typeutil.CoercionHelperBase as a shared base to the coercers
// for built-in scalars below.
type scalarCoercerBase struct {
	typeutil.CoercionHelperBase
	typeName string
}

// RaiseError overrides typeutil.CoercionHelperBase.
func (coercer *scalarCoercerBase) RaiseError(value interface{}, ctx *typeutil.CoercionContext, format string, a ...interface{}) error {
	if v, ok := value.(string); ok {
		// Quote the string for pretty printing.
		value = strconv.Quote(v)
	}
	return NewCoercionError("%s cannot represent %v: %s", coercer.typeName, value, fmt.Sprintf(format, a...))
}

// raiseInvalidArgumentTypeError returns an error indicating an unexpected AST node type in
// argument coercion.
func (coercer *scalarCoercerBase) raiseInvalidArgumentTypeError(value ast.Value) error {
	return NewCoercionError("%s cannot represent %v: unexpected argument node type `%T`",
		coercer.typeName, value.Interface(), value)
}

func (coercer *scalarCoercerBase) init(typeName string, impl typeutil.CoercionHelper) {
	coercer.SetImpl(impl)
	coercer.typeName = typeName
}

//===----------------------------------------------------------------------------------------====//
// Int
//===----------------------------------------------------------------------------------------====//
// The Int scalar type represents a signed 32-bit numeric non-fractional value as per spec.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int

type intCoercer struct {
	scalarCoercerBase
}

func newIntCoercer() *intCoercer {
	c := &intCoercer{}
	c.init("Int", c)
	return c
}

// RaiseNonValue overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, coercionErrorNonInteger)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	if value {
		return 1, nil
	}
	return 0, nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if value > int64(math.MaxInt32) {
		return nil, coercer.RaiseError(value, ctx, coercionErrorIntegerTooLarge)
	} else if value < int64(math.MinInt32) {
		return nil, coercer.RaiseError(value, ctx, coercionErrorIntegerTooSmall)
	}
	return int(value), nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if value > uint64(math.MaxInt32) {
		return nil, coercer.RaiseError(value, ctx, coercionErrorIntegerTooLarge)
	}
	return int(value), nil
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	intValue := int32(value)
	if float64(intValue) != value {
		return nil, coercer.RaiseError(value, ctx, coercionErrorNonInteger)
	}
	return int(intValue), nil
}

func (coercer *intCoercer) coerceStringImpl(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	val, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return nil, coercer.RaiseError(value, ctx, coercionErrorNonInteger)
	}
	return int(val), nil
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *intCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return coercer.coerceStringImpl(value, ctx)
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer *intCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.ResultCoercionMode})
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *intCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.InputCoercionMode})
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *intCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	ctx := &typeutil.CoercionContext{Mode: typeutil.InputCoercionMode}

	if v, ok := value.(ast.IntValue); ok {
		return coercer.coerceStringImpl(v.String(), ctx)
	}
	return nil, coercer.raiseInvalidArgumentTypeError(value)
}

var intTypeInstance = func() *Scalar {
	coercer := newIntCoercer()
	return MustNewScalar(&ScalarConfig{
		Name: "Int",
		Description: "The `Int` scalar type represents non-fractional signed whole numeric " +
			"values. Int can represent values between -(2^31) and 2^31 - 1.",
		ResultCoercer: coercer,
		InputCoercer:  coercer,
	})
}()

// Int returns the GraphQL builtin Int type definition.
func Int() *Scalar {
	return intTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// Float
//===----------------------------------------------------------------------------------------====//
// The Float scalar type represents signed double-precision fractional values as specified by
// IEEE 754.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float

type floatCoercer struct {
	scalarCoercerBase
}

func newFloatCoercer() *floatCoercer {
	c := &floatCoercer{}
	c.init("Float", c)
	return c
}

// ensureValue ensures that the given floating point value is a valid IEEE 754 number: not NaN or
// Inf.
func (coercer *floatCoercer) ensureValue(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, coercer.RaiseNonValue(value, ctx)
	}
	return value, nil
}

// RaiseNonValue overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, coercionErrorNonNumeric)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	if value {
		return 1.0, nil
	}
	return 0.0, nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	floatValue := float64(value)
	if int64(floatValue) != value {
		return nil, coercer.RaiseError(value, ctx, coercionErrorIntegerToFloatOutOfRange)
	}
	return coercer.ensureValue(floatValue, ctx)
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	floatValue := float64(value)
	if uint64(floatValue) != value {
		return nil, coercer.RaiseError(value, ctx, coercionErrorIntegerToFloatOutOfRange)
	}
	return coercer.ensureValue(floatValue, ctx)
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return coercer.ensureValue(value, ctx)
}

func (coercer *floatCoercer) coerceStringImpl(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, coercer.RaiseError(value, ctx, coercionErrorNonNumeric)
	}
	return coercer.ensureValue(floatValue, ctx)
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return coercer.coerceStringImpl(value, ctx)
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer *floatCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.ResultCoercionMode})
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *floatCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.InputCoercionMode})
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *floatCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	ctx := &typeutil.CoercionContext{Mode: typeutil.InputCoercionMode}

	// Both integer and float literals are accepted as per spec.
	switch value := value.(type) {
	case ast.FloatValue:
		return coercer.ensureValue(value.Raw, ctx)
	case ast.IntValue:
		return coercer.ensureValue(float64(value.Raw), ctx)
	}

	return nil, coercer.raiseInvalidArgumentTypeError(value)
}

var floatTypeInstance = func() *Scalar {
	coercer := newFloatCoercer()
	return MustNewScalar(&ScalarConfig{
		Name: "Float",
		Description: "The `Float` scalar type represents signed double-precision fractional " +
			"values as specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point). ",
		ResultCoercer: coercer,
		InputCoercer:  coercer,
	})
}()

// Float returns the GraphQL builtin Float type definition.
func Float() *Scalar {
	return floatTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// String
//===----------------------------------------------------------------------------------------====//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String

type stringCoercer struct {
	scalarCoercerBase
}

func newStringCoercer() *stringCoercer {
	c := &stringCoercer{}
	c.init("String", c)
	return c
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	if value {
		return "true", nil
	}
	return "false", nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return strconv.FormatInt(value, 10), nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return strconv.FormatUint(value, 10), nil
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return strconv.FormatFloat(value, 'g', -1, 64), nil
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer *stringCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.ResultCoercionMode})
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *stringCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.InputCoercionMode})
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *stringCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if v, ok := value.(ast.StringValue); ok {
		return v.Raw, nil
	}
	return nil, coercer.raiseInvalidArgumentTypeError(value)
}

var stringTypeInstance = func() *Scalar {
	coercer := newStringCoercer()
	return MustNewScalar(&ScalarConfig{
		Name: "String",
		Description: "The `String` scalar type represents textual data, representing UTF-8 " +
			"character sequences. The String type is most often used by GraphQL to represent " +
			"free-form human-readable text.",
		ResultCoercer: coercer,
		InputCoercer:  coercer,
	})
}()

// String returns the GraphQL builtin String type definition.
func String() *Scalar {
	return stringTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// Boolean
//===----------------------------------------------------------------------------------------====//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean

type booleanCoercer struct {
	scalarCoercerBase
}

func newBooleanCoercer() *booleanCoercer {
	c := &booleanCoercer{}
	c.init("Boolean", c)
	return c
}

// RaiseNonValue overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, coercionErrorNonBoolean)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return value != 0, nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if ctx.Mode == typeutil.InputCoercionMode {
		return nil, coercer.RaiseInvalidTypeError(value, ctx)
	}
	return value != 0, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer *booleanCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.ResultCoercionMode})
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *booleanCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.InputCoercionMode})
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *booleanCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	// Only boolean literals are accepted as per spec.
	if v, ok := value.(ast.BooleanValue); ok {
		return v.Raw, nil
	}
	return nil, coercer.raiseInvalidArgumentTypeError(value)
}

var booleanTypeInstance = func() *Scalar {
	coercer := newBooleanCoercer()
	return MustNewScalar(&ScalarConfig{
		Name:          "Boolean",
		Description:   "The `Boolean` scalar type represents `true` or `false`.",
		ResultCoercer: coercer,
		InputCoercer:  coercer,
	})
}()

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() *Scalar {
	return booleanTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// ID
//===----------------------------------------------------------------------------------------====//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID

type idCoercer struct {
	scalarCoercerBase
}

func newIDCoercer() *idCoercer {
	c := &idCoercer{}
	c.init("ID", c)
	return c
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return strconv.FormatInt(value, 10), nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return strconv.FormatUint(value, 10), nil
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer *idCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.ResultCoercionMode})
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *idCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, typeutil.CoercionContext{Mode: typeutil.InputCoercionMode})
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer *idCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	switch v := value.(type) {
	case ast.StringValue:
		return v.Raw, nil
	case ast.IntValue:
		return v.String(), nil
	}
	return nil, coercer.raiseInvalidArgumentTypeError(value)
}

var idTypeInstance = func() *Scalar {
	coercer := newIDCoercer()
	return MustNewScalar(&ScalarConfig{
		Name: "ID",
		Description: "The `ID` scalar type represents a unique identifier, often used to " +
			"refetch an object or as key for a cache. The ID type appears in a JSON response as a " +
			"String; however, it is not intended to be human-readable. When expected as an input " +
			"type, any string (such as `\"4\"`) or integer (such as `4`) input value will be " +
			"accepted as an ID.",
		ResultCoercer: coercer,
		InputCoercer:  coercer,
	})
}()

// ID returns the GraphQL builtin ID type definition.
func ID() *Scalar {
	return idTypeInstance
}

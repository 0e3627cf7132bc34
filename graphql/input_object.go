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

// InputFields maps field name to its definition for defining an InputField. It should be
// "InputFieldConfigMap" but is shortened to save some typing effort.
type InputFields map[string]InputFieldConfig

// An intentionally internal type for marking "null" as the default value for an input field.
type inputFieldNilValueType int

// NilInputFieldDefaultValue is a value that has a special meaning when it is given to
// DefaultValue in InputFieldConfig. It sets the field's default value to "null". This is not the
// same as setting DefaultValue to "nil" or not giving it a value at all, which means there's no
// default value. We need this trick to distinguish whether the input field has a default value of
// "nil" or doesn't have one at all. The constant has an internal type, so there's no way to create
// one outside the package.
const NilInputFieldDefaultValue inputFieldNilValueType = 0

// InputFieldConfig provides the definition for a field in an Input Object type.
type InputFieldConfig struct {
	// Description of the field
	Description string

	// Type of value accepted by this field
	Type TypeThunk

	// DefaultValue specifies the value assigned to the field when no input is provided.
	DefaultValue interface{}
}

// InputFieldMap maps field name to InputField.
type InputFieldMap map[string]*InputField

// BuildInputFieldMap builds an InputFieldMap from the given InputFields.
func BuildInputFieldMap(inputFieldConfigMap InputFields) (InputFieldMap, error) {
	if len(inputFieldConfigMap) == 0 {
		return nil, nil
	}

	inputFieldMap := make(InputFieldMap, len(inputFieldConfigMap))
	for name, inputFieldConfig := range inputFieldConfigMap {
		if inputFieldConfig.Type == nil {
			return nil, NewError("Must provide type for input field \"" + name + "\".")
		}

		inputFieldMap[name] = &InputField{
			name:         name,
			description:  inputFieldConfig.Description,
			typeThunk:    inputFieldConfig.Type,
			defaultValue: inputFieldConfig.DefaultValue,
		}
	}

	return inputFieldMap, nil
}

// InputField represents a field in an InputObject.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Objects
type InputField struct {
	name         string
	description  string
	typeThunk    TypeThunk
	defaultValue interface{}
}

// Name of the input field.
func (f *InputField) Name() string {
	return f.name
}

// Description of the input field.
func (f *InputField) Description() string {
	return f.description
}

// Type of value accepted by this field.
func (f *InputField) Type() Type {
	return f.typeThunk()
}

// HasDefaultValue returns true if the field has a default value.
func (f *InputField) HasDefaultValue() bool {
	return f.defaultValue != nil
}

// DefaultValue is the value assigned to the field when no input is provided.
func (f *InputField) DefaultValue() interface{} {
	if _, ok := f.defaultValue.(inputFieldNilValueType); ok {
		return nil
	}
	return f.defaultValue
}

// InputObjectConfig provides the definition for creating an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields to be defined in the InputObject type
	Fields InputFields
}

// InputObject represents a composite input value: a set of named input fields. Unlike Object, an
// InputObject does not have field arguments or resolvers; it is a pure data structure used to
// describe values supplied by the client.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      InputFieldMap
}

var (
	_ Type                = (*InputObject)(nil)
	_ TypeWithName        = (*InputObject)(nil)
	_ TypeWithDescription = (*InputObject)(nil)
)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (*InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}

	fieldMap, err := BuildInputFieldMap(config.Fields)
	if err != nil {
		return nil, err
	}

	return &InputObject{
		name:        config.Name,
		description: config.Description,
		fields:      fieldMap,
	}, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) *InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// String implements fmt.Stringer.
func (o *InputObject) String() string {
	return o.Name()
}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.description
}

// Fields returns the fields defined in the input object.
func (o *InputObject) Fields() InputFieldMap {
	return o.fields
}

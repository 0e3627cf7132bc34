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

// Package ast defines the document AST that the executor walks. The package intentionally omits a
// lexer and parser: a document arrives already parsed and validated by an upstream component, so
// the types here only need to carry what execution reads (selections, arguments, directives) plus
// enough source position to annotate errors.
package ast

import (
	"fmt"
)

// Position locates a node in the original request document. It is optional: documents built by
// hand (as tests do) may leave it at its zero value.
type Position struct {
	Line   uint
	Column uint
}

// Node is implemented by every AST node reachable during execution.
type Node interface {
	// Pos returns the node's source position, or the zero Position if unknown.
	Pos() Position
}

// Name is an identifier: a field, argument, directive, fragment or type name.
type Name struct {
	Value    string
	Position Position
}

// Pos implements Node.
func (n Name) Pos() Position { return n.Position }

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

// OperationType distinguishes the three root operation kinds.
type OperationType string

// The three operation types defined by the GraphQL language.
const (
	OperationTypeQuery        OperationType = "QUERY"
	OperationTypeMutation     OperationType = "MUTATION"
	OperationTypeSubscription OperationType = "SUBSCRIPTION"
)

// Document is a parsed request: the operation to run plus any fragments it may spread.
type Document struct {
	Operations []*OperationDefinition
	Fragments  FragmentDefinitionMap
}

// OperationDefinition describes one query, mutation or subscription.
type OperationDefinition struct {
	Name         string
	Type         OperationType
	Directives   Directives
	SelectionSet SelectionSet
	position     Position
}

// Pos implements Node.
func (op *OperationDefinition) Pos() Position { return op.position }

// FragmentDefinitionMap maps fragment name to its definition.
type FragmentDefinitionMap map[string]*FragmentDefinition

// FragmentDefinition is a reusable named selection set scoped to a type condition.
type FragmentDefinition struct {
	Name          string
	TypeCondition NamedType
	Directives    Directives
	SelectionSet  SelectionSet
	position      Position
}

// Pos implements Node.
func (def *FragmentDefinition) Pos() Position { return def.position }

//===----------------------------------------------------------------------------------------====//
// Selections
//===----------------------------------------------------------------------------------------====//

// SelectionSet is the ordered set of fields / inline fragments / fragment spreads nested under a
// field or an operation.
type SelectionSet []Selection

// Selection is one element of a SelectionSet.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Selection
type Selection interface {
	Node

	// selectionNode marks the valid members of Selection.
	selectionNode()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// Field describes a single field selection.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Field
type Field struct {
	Alias        Name
	Name         Name
	Arguments    Arguments
	Directives   Directives
	SelectionSet SelectionSet
}

// Pos implements Node.
func (f *Field) Pos() Position { return f.Name.Position }

// selectionNode implements Selection.
func (*Field) selectionNode() {}

// ResponseKey is the key this field contributes to the response object: the alias if one was
// given, otherwise the field name.
func (f *Field) ResponseKey() string {
	if f.Alias.Value != "" {
		return f.Alias.Value
	}
	return f.Name.Value
}

// GetArguments implements value.ASTNodeWithArguments.
func (f *Field) GetArguments() Arguments { return f.Arguments }

// GetDirectives returns the directives applied to the field.
func (f *Field) GetDirectives() Directives { return f.Directives }

// FragmentSpread applies a named fragment's selections via "...Name".
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#FragmentSpread
type FragmentSpread struct {
	Name       Name
	Directives Directives
}

// Pos implements Node.
func (s *FragmentSpread) Pos() Position { return s.Name.Position }

// selectionNode implements Selection.
func (*FragmentSpread) selectionNode() {}

// GetDirectives returns the directives applied to the spread.
func (s *FragmentSpread) GetDirectives() Directives { return s.Directives }

// InlineFragment applies a selection set under an optional type condition, "... on Type { }".
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InlineFragment
type InlineFragment struct {
	TypeCondition NamedType
	Directives    Directives
	SelectionSet  SelectionSet
	position      Position
}

// Pos implements Node.
func (f *InlineFragment) Pos() Position { return f.position }

// selectionNode implements Selection.
func (*InlineFragment) selectionNode() {}

// HasTypeCondition returns true if the inline fragment specifies a type condition.
func (f *InlineFragment) HasTypeCondition() bool {
	return f.TypeCondition.Name.Value != ""
}

// GetDirectives returns the directives applied to the inline fragment.
func (f *InlineFragment) GetDirectives() Directives { return f.Directives }

//===----------------------------------------------------------------------------------------====//
// Arguments
//===----------------------------------------------------------------------------------------====//

// Arguments is a list of Argument nodes attached to a field or directive.
type Arguments []*Argument

// Argument is one name/value pair given to a field or directive.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Argument
type Argument struct {
	Name  Name
	Value Value
}

// Pos implements Node.
func (a *Argument) Pos() Position { return a.Name.Position }

//===----------------------------------------------------------------------------------------====//
// Directives
//===----------------------------------------------------------------------------------------====//

// Directives is a list of Directive nodes applied to some AST node.
type Directives []*Directive

// Get returns the first directive with the given name, or nil.
func (ds Directives) Get(name string) *Directive {
	for _, d := range ds {
		if d.Name.Value == name {
			return d
		}
	}
	return nil
}

// Directive is a single "@name(args)" annotation.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Directive
type Directive struct {
	Name      Name
	Arguments Arguments
}

// Pos implements Node.
func (d *Directive) Pos() Position { return d.Name.Position }

// GetArguments implements value.ASTNodeWithArguments.
func (d *Directive) GetArguments() Arguments { return d.Arguments }

//===----------------------------------------------------------------------------------------====//
// Values
//===----------------------------------------------------------------------------------------====//

// Value is a literal appearing where an input value is expected: an argument, a directive
// argument, a default value, or nested inside a ListValue/ObjectValue.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Value
type Value interface {
	Node

	// Interface returns the value as a plain Go value (string, int64, float64, bool, nil,
	// []interface{}, map[string]interface{}, or a Variable for unresolved variable references).
	Interface() interface{}

	valueNode()
}

var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// IntValue is an integer literal.
type IntValue struct {
	Raw      int64
	position Position
}

// NewIntValue builds an IntValue from a Go int64.
func NewIntValue(v int64) IntValue { return IntValue{Raw: v} }

func (v IntValue) Pos() Position         { return v.position }
func (v IntValue) Interface() interface{} { return v.Raw }
func (IntValue) valueNode()              {}
func (v IntValue) String() string        { return fmt.Sprintf("%d", v.Raw) }

// FloatValue is a floating point literal.
type FloatValue struct {
	Raw      float64
	position Position
}

// NewFloatValue builds a FloatValue from a Go float64.
func NewFloatValue(v float64) FloatValue { return FloatValue{Raw: v} }

func (v FloatValue) Pos() Position         { return v.position }
func (v FloatValue) Interface() interface{} { return v.Raw }
func (FloatValue) valueNode()              {}

// StringValue is a string literal.
type StringValue struct {
	Raw      string
	position Position
}

// NewStringValue builds a StringValue from a Go string.
func NewStringValue(v string) StringValue { return StringValue{Raw: v} }

func (v StringValue) Pos() Position         { return v.position }
func (v StringValue) Interface() interface{} { return v.Raw }
func (StringValue) valueNode()              {}

// BooleanValue is a "true"/"false" literal.
type BooleanValue struct {
	Raw      bool
	position Position
}

// NewBooleanValue builds a BooleanValue from a Go bool.
func NewBooleanValue(v bool) BooleanValue { return BooleanValue{Raw: v} }

func (v BooleanValue) Pos() Position         { return v.position }
func (v BooleanValue) Interface() interface{} { return v.Raw }
func (BooleanValue) valueNode()              {}

// NullValue is the "null" literal.
type NullValue struct {
	position Position
}

func (v NullValue) Pos() Position          { return v.position }
func (v NullValue) Interface() interface{} { return nil }
func (NullValue) valueNode()               {}

// EnumValue is a bare name literal used for enum input values.
type EnumValue struct {
	Raw      string
	position Position
}

// NewEnumValue builds an EnumValue from a Go string.
func NewEnumValue(v string) EnumValue { return EnumValue{Raw: v} }

func (v EnumValue) Pos() Position         { return v.position }
func (v EnumValue) Interface() interface{} { return v.Raw }
func (EnumValue) valueNode()              {}

// ListValue is a "[ ... ]" literal.
type ListValue struct {
	Values   []Value
	position Position
}

// NewListValue builds a ListValue from a slice of Value.
func NewListValue(values ...Value) ListValue { return ListValue{Values: values} }

func (v ListValue) Pos() Position { return v.position }
func (v ListValue) Interface() interface{} {
	out := make([]interface{}, len(v.Values))
	for i, item := range v.Values {
		out[i] = item.Interface()
	}
	return out
}
func (ListValue) valueNode() {}

// ObjectField is one "name: value" pair inside an ObjectValue.
type ObjectField struct {
	Name  Name
	Value Value
}

// ObjectValue is a "{ field: value, ... }" literal.
type ObjectValue struct {
	Fields   []ObjectField
	position Position
}

// NewObjectValue builds an ObjectValue from a slice of ObjectField.
func NewObjectValue(fields ...ObjectField) ObjectValue { return ObjectValue{Fields: fields} }

func (v ObjectValue) Pos() Position { return v.position }
func (v ObjectValue) Interface() interface{} {
	out := make(map[string]interface{}, len(v.Fields))
	for _, f := range v.Fields {
		out[f.Name.Value] = f.Value.Interface()
	}
	return out
}
func (ObjectValue) valueNode() {}

// Variable is a "$name" reference to an operation variable.
type Variable struct {
	Name     Name
	position Position
}

// NewVariable builds a Variable reference by name.
func NewVariable(name string) Variable { return Variable{Name: Name{Value: name}} }

func (v Variable) Pos() Position { return v.position }

// Interface implements Value but a Variable cannot be resolved to a plain value without a variable
// table; callers must special-case ast.Variable before calling Interface.
func (v Variable) Interface() interface{} { return v }
func (Variable) valueNode()               {}

//===----------------------------------------------------------------------------------------====//
// Types
//===----------------------------------------------------------------------------------------====//

// Type is a type reference as written in a document: a name, a list, or a non-null wrapper.
type Type interface {
	Node
	typeNode()
}

// NamedType references a type by name, e.g. "String".
type NamedType struct {
	Name Name
}

func (t NamedType) Pos() Position { return t.Name.Position }
func (NamedType) typeNode()       {}

// String returns the referenced type name, or "" if the NamedType is absent (e.g. an inline
// fragment without a type condition).
func (t NamedType) String() string { return t.Name.Value }

// ListType references "[T]".
type ListType struct {
	ItemType Type
}

func (t ListType) Pos() Position { return t.ItemType.Pos() }
func (ListType) typeNode()       {}

// NonNullType references "T!".
type NonNullType struct {
	Type Type
}

func (t NonNullType) Pos() Position { return t.Type.Pos() }
func (NonNullType) typeNode()       {}

//===----------------------------------------------------------------------------------------====//
// Variable definitions
//===----------------------------------------------------------------------------------------====//

// VariableDefinition declares one "$name: Type = default" in an operation's signature.
type VariableDefinition struct {
	Variable     Variable
	Type         Type
	DefaultValue Value
}

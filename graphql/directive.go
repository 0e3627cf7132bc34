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

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
const (
	// Executable directive locations
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type system directive locations
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveConfig provides the definition for creating a Directive.
type DirectiveConfig struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive
	Description string

	// Locations in the document where the defining directive can appear
	Locations []DirectiveLocation

	// Args accepted when using the directive
	Args ArgumentConfigMap

	// IncludeProc decides, from the directive's argument values, whether the node it annotates
	// should be included in the response. It is consulted for every directive exposed through
	// Schema.Directives() that can appear on a field, fragment spread or inline fragment; a
	// directive that does not affect inclusion (e.g. @deprecated) leaves this nil.
	IncludeProc func(args ArgumentValues) bool
}

// DeepCopy makes a copy of the receiver.
func (config *DirectiveConfig) DeepCopy() *DirectiveConfig {
	if config == nil {
		return nil
	}
	out := new(DirectiveConfig)
	*out = *config

	if len(config.Locations) != 0 {
		out.Locations = make([]DirectiveLocation, len(config.Locations))
		copy(out.Locations, config.Locations)
	}
	return out
}

// Directive is used by the GraphQL executor as a way of modifying execution behavior.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
type Directive struct {
	config DirectiveConfig
	args   []Argument
	// notation is the cached value returned by String().
	notation string
}

// NewDirective creates a Directive from a DirectiveConfig.
func NewDirective(config *DirectiveConfig) (*Directive, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Directive.")
	}

	args, err := buildArguments(config.Args)
	if err != nil {
		return nil, err
	}

	return &Directive{
		config:   *config.DeepCopy(),
		args:     args,
		notation: fmt.Sprintf("@%s", config.Name),
	}, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but panics on failure
// instead of returning an error.
func MustNewDirective(config *DirectiveConfig) *Directive {
	directive, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return directive
}

// Name of the directive
func (d *Directive) Name() string {
	return d.config.Name
}

// Description of the directive
func (d *Directive) Description() string {
	return d.config.Description
}

// Locations specifies the places where the directive may be used.
func (d *Directive) Locations() []DirectiveLocation {
	return d.config.Locations
}

// Args indicates the arguments accepted by the directive.
func (d *Directive) Args() []Argument {
	return d.args
}

// IncludeProc evaluates whether a node annotated with this directive, given its argument values,
// should be kept in the response. Directives with no IncludeProc (e.g. @deprecated) always return
// true: they carry no execution-time inclusion semantics.
func (d *Directive) IncludeProc(args ArgumentValues) bool {
	if d.config.IncludeProc == nil {
		return true
	}
	return d.config.IncludeProc(args)
}

// String implements fmt.Stringer.
func (d *Directive) String() string {
	return d.notation
}

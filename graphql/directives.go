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

// This file implements the directives required by the specification plus @defer.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives

//===----------------------------------------------------------------------------------------====//
// @skip
//===----------------------------------------------------------------------------------------====//

var skipDirective = MustNewDirective(&DirectiveConfig{
	Name: "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` " +
		"argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentConfigMap{
		"if": {
			Type:        T(MustNewNonNullOfType(Boolean())),
			Description: "Skipped when true.",
		},
	},
	IncludeProc: func(args ArgumentValues) bool {
		skip, _ := args.Get("if").(bool)
		return !skip
	},
})

// SkipDirective returns the directive definition for @skip.
func SkipDirective() *Directive {
	return skipDirective
}

//===----------------------------------------------------------------------------------------====//
// @include
//===----------------------------------------------------------------------------------------====//

var includeDirective = MustNewDirective(&DirectiveConfig{
	Name: "include",
	Description: "Directs the executor to include this field or fragment only when " +
		"the `if` argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentConfigMap{
		"if": {
			Type:        T(MustNewNonNullOfType(Boolean())),
			Description: "Included when true.",
		},
	},
	IncludeProc: func(args ArgumentValues) bool {
		include, _ := args.Get("if").(bool)
		return include
	},
})

// IncludeDirective returns the directive definition for @include.
func IncludeDirective() *Directive {
	return includeDirective
}

//===----------------------------------------------------------------------------------------====//
// @defer
//===----------------------------------------------------------------------------------------====//
// @defer marks a field as eligible to be delivered in a later patch instead of the initial
// response. The directive is also accepted on fragment spreads and inline fragments, where the
// executor gives it no effect, and its arguments are not evaluated. It never excludes the node
// from the response the way @skip/@include do, so its IncludeProc always returns true; the
// strategy that executes the
// document is what decides, from the presence of this directive, whether to fork off a deferred
// frame.

var deferDirective = MustNewDirective(&DirectiveConfig{
	Name: "defer",
	Description: "Directs the executor to deliver the annotated field in a " +
		"subsequent patch rather than the initial response.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentConfigMap{
		"if": {
			Type:         T(MustNewNonNullOfType(Boolean())),
			Description:  "Not evaluated; the field is deferred whatever its value.",
			DefaultValue: true,
		},
		"label": {
			Type:        T(String()),
			Description: "Not used; patches carry no label.",
		},
	},
	IncludeProc: func(args ArgumentValues) bool {
		return true
	},
})

// DeferDirective returns the directive definition for @defer.
func DeferDirective() *Directive {
	return deferDirective
}

//===----------------------------------------------------------------------------------------====//
// @deprecated
//===----------------------------------------------------------------------------------------====//

// DefaultDeprecationReason is used when @deprecated is given without an explicit reason.
const DefaultDeprecationReason = "No longer supported"

var deprecatedDirective = MustNewDirective(&DirectiveConfig{
	Name:        "deprecated",
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Locations: []DirectiveLocation{
		DirectiveLocationFieldDefinition,
		DirectiveLocationEnumValue,
	},
	Args: ArgumentConfigMap{
		"reason": {
			Type: T(String()),
			Description: "Explains why this element was deprecated, usually also including a " +
				"suggestion for how to access supported similar data. Formatted in " +
				"[Markdown](https://daringfireball.net/projects/markdown/).",
			DefaultValue: DefaultDeprecationReason,
		},
	},
})

// DeprecatedDirective returns the directive definition for @deprecated.
func DeprecatedDirective() *Directive {
	return deprecatedDirective
}

// StandardDirectives returns the directives that are included in a standard GraphQL schema unless
// explicitly excluded.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
func StandardDirectives() []*Directive {
	return []*Directive{
		SkipDirective(),
		IncludeDirective(),
		DeferDirective(),
		DeprecatedDirective(),
	}
}

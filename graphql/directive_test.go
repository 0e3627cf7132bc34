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

package graphql_test

import (
	"github.com/patchql/graphql/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Directive", func() {
	It("requires a name", func() {
		_, err := graphql.NewDirective(&graphql.DirectiveConfig{})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal("Must provide name for Directive."))
	})

	It("rejects an argument with no type", func() {
		_, err := graphql.NewDirective(&graphql.DirectiveConfig{
			Name: "mine",
			Args: graphql.ArgumentConfigMap{
				"if": {},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal(`Must provide type for argument "if".`))
	})

	It("renders its notation from its name", func() {
		directive := graphql.MustNewDirective(&graphql.DirectiveConfig{Name: "mine"})
		Expect(directive.String()).Should(Equal("@mine"))
	})
})

var _ = Describe("standard directives", func() {
	It("always includes a node when @skip's if argument is false", func() {
		Expect(graphql.SkipDirective().IncludeProc(
			graphql.NewArgumentValues(map[string]interface{}{"if": false}),
		)).Should(BeTrue())
		Expect(graphql.SkipDirective().IncludeProc(
			graphql.NewArgumentValues(map[string]interface{}{"if": true}),
		)).Should(BeFalse())
	})

	It("includes a node when @include's if argument is true", func() {
		Expect(graphql.IncludeDirective().IncludeProc(
			graphql.NewArgumentValues(map[string]interface{}{"if": true}),
		)).Should(BeTrue())
		Expect(graphql.IncludeDirective().IncludeProc(
			graphql.NewArgumentValues(map[string]interface{}{"if": false}),
		)).Should(BeFalse())
	})

	It("never excludes a node for @defer", func() {
		Expect(graphql.DeferDirective().IncludeProc(graphql.NoArgumentValues())).Should(BeTrue())
	})

	It("lists @skip, @include, @defer and @deprecated as standard", func() {
		names := map[string]bool{}
		for _, directive := range graphql.StandardDirectives() {
			names[directive.Name()] = true
		}
		Expect(names).Should(HaveKey("skip"))
		Expect(names).Should(HaveKey("include"))
		Expect(names).Should(HaveKey("defer"))
		Expect(names).Should(HaveKey("deprecated"))
	})
})

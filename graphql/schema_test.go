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

var _ = Describe("Schema", func() {
	It("builds a type map reachable from the root operation types", func() {
		cheeseType := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Cheese",
			Fields: graphql.Fields{
				"flavor": {Type: graphql.T(graphql.String())},
			},
		})
		queryType := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"cheese": {Type: graphql.T(cheeseType)},
			},
		})

		schema, err := graphql.NewSchema(&graphql.SchemaConfig{Query: queryType})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(schema.TypeMap().Lookup("Cheese")).Should(BeIdenticalTo(graphql.Type(cheeseType)))
		Expect(schema.TypeMap().Lookup("Query")).Should(BeIdenticalTo(graphql.Type(queryType)))
		Expect(schema.TypeMap().Lookup("String")).Should(BeIdenticalTo(graphql.Type(graphql.String())))
		Expect(schema.TypeMap().Lookup("NoSuchType")).Should(BeNil())
	})

	It("rejects two distinct types sharing the same name", func() {
		cheeseA := graphql.MustNewObject(&graphql.ObjectConfig{Name: "Cheese"})
		cheeseB := graphql.MustNewObject(&graphql.ObjectConfig{Name: "Cheese"})

		queryType := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"a": {Type: graphql.T(cheeseA)},
				"b": {Type: graphql.T(cheeseB)},
			},
		})

		_, err := graphql.NewSchema(&graphql.SchemaConfig{Query: queryType})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal(
			"Schema must contain unique named types but contains multiple types named Cheese."))
	})

	It("links an Object back to the Interfaces it implements", func() {
		named := graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Named",
			Fields: graphql.Fields{
				"name": {Type: graphql.T(graphql.String())},
			},
		})
		cheeseType := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:       "Cheese",
			Interfaces: []*graphql.Interface{named},
			Fields: graphql.Fields{
				"name": {Type: graphql.T(graphql.String())},
			},
		})
		queryType := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"cheese": {Type: graphql.T(cheeseType)},
			},
		})

		schema, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: queryType,
			Types: []graphql.Type{named},
		})
		Expect(err).ShouldNot(HaveOccurred())

		possible := schema.PossibleTypes(named)
		Expect(possible.Len()).Should(Equal(1))
		Expect(possible.Has(cheeseType)).Should(BeTrue())
	})

	It("excludes standard directives only when asked to", func() {
		queryType := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"cheese": {Type: graphql.T(graphql.String())},
			},
		})

		withStandard, err := graphql.NewSchema(&graphql.SchemaConfig{Query: queryType})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(withStandard.Directives().Lookup("skip")).ShouldNot(BeNil())
		Expect(withStandard.Directives().Lookup("defer")).ShouldNot(BeNil())

		withoutStandard, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query:                     queryType,
			ExcludeStandardDirectives: true,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(withoutStandard.Directives()).Should(BeEmpty())
	})
})

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

var _ = Describe("Object", func() {
	It("requires a name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal("Must provide name for Object."))
	})

	It("builds its field map", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Cheese",
			Fields: graphql.Fields{
				"flavor": {Type: graphql.T(graphql.String())},
			},
		})
		Expect(object.Name()).Should(Equal("Cheese"))
		Expect(object.Fields()).Should(HaveKey("flavor"))
		Expect(object.Fields()["flavor"].Type()).Should(Equal(graphql.Type(graphql.String())))
	})

	It("rejects a field with no type", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Cheese",
			Fields: graphql.Fields{
				"flavor": {},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal(`Must provide type for field "flavor".`))
	})

	It("reports whether it implements an interface", func() {
		named := graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Named",
			Fields: graphql.Fields{
				"name": {Type: graphql.T(graphql.String())},
			},
		})
		other := graphql.MustNewInterface(&graphql.InterfaceConfig{Name: "Other"})

		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:       "Cheese",
			Interfaces: []*graphql.Interface{named},
			Fields: graphql.Fields{
				"name": {Type: graphql.T(graphql.String())},
			},
		})

		Expect(object.Implements(named)).Should(BeTrue())
		Expect(object.Implements(other)).Should(BeFalse())
	})

	It("supports self-referential fields via TypeThunk", func() {
		var cheeseType *graphql.Object
		cheeseType = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Cheese",
			Fields: graphql.Fields{
				"similarCheese": {
					Type: func() graphql.Type { return cheeseType },
				},
			},
		})
		Expect(cheeseType.Fields()["similarCheese"].Type()).Should(BeIdenticalTo(graphql.Type(cheeseType)))
	})
})

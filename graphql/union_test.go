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
	"context"

	"github.com/patchql/graphql/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Union", func() {
	cheddar := graphql.MustNewObject(&graphql.ObjectConfig{Name: "Cheddar"})
	brie := graphql.MustNewObject(&graphql.ObjectConfig{Name: "Brie"})

	It("requires a name", func() {
		_, err := graphql.NewUnion(&graphql.UnionConfig{})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal("Must provide name for Union."))
	})

	It("tracks its possible types", func() {
		union := graphql.MustNewUnion(&graphql.UnionConfig{
			Name:          "Cheese",
			PossibleTypes: []*graphql.Object{cheddar, brie},
		})
		Expect(union.PossibleTypes().Len()).Should(Equal(2))
		Expect(union.PossibleTypes().Has(cheddar)).Should(BeTrue())
		Expect(union.PossibleTypes().Has(brie)).Should(BeTrue())

		other := graphql.MustNewObject(&graphql.ObjectConfig{Name: "Other"})
		Expect(union.PossibleTypes().Has(other)).Should(BeFalse())
	})

	It("delegates concrete type resolution to its TypeResolver", func() {
		resolver := graphql.TypeResolverFunc(
			func(ctx context.Context, value interface{}, info graphql.ResolveInfo) (*graphql.Object, error) {
				return cheddar, nil
			})
		union := graphql.MustNewUnion(&graphql.UnionConfig{
			Name:          "Cheese",
			PossibleTypes: []*graphql.Object{cheddar, brie},
			TypeResolver:  resolver,
		})

		resolved, err := union.TypeResolver().Resolve(context.Background(), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved).Should(BeIdenticalTo(cheddar))
	})
})

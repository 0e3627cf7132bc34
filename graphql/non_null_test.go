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

var _ = Describe("NonNull", func() {
	It("wraps a nullable type", func() {
		nonNull := graphql.MustNewNonNullOfType(graphql.String())
		Expect(nonNull.InnerType()).Should(Equal(graphql.Type(graphql.String())))
		Expect(nonNull.UnwrappedType()).Should(Equal(graphql.Type(graphql.String())))
		Expect(nonNull.String()).Should(Equal("String!"))
		Expect(graphql.IsNullableType(nonNull)).Should(BeFalse())
	})

	It("rejects a nil inner type", func() {
		_, err := graphql.NewNonNullOfType(nil)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal("Must provide a non-nil inner type for NonNull."))
	})

	It("rejects double-wrapping an already non-null type", func() {
		_, err := graphql.NewNonNullOfType(graphql.MustNewNonNullOfType(graphql.String()))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal("Expected a nullable type for NonNull but got String!."))
	})
})

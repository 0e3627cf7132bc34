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
	"errors"

	"github.com/patchql/graphql/graphql"
	"github.com/patchql/graphql/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar", func() {
	It("requires a name", func() {
		_, err := graphql.NewScalar(&graphql.ScalarConfig{
			ResultCoercer: graphql.ScalarResultCoercerFunc(
				func(value interface{}) (interface{}, error) { return value, nil }),
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal("Must provide name for Scalar."))
	})

	It("requires a ResultCoercer", func() {
		_, err := graphql.NewScalar(&graphql.ScalarConfig{Name: "Date"})
		Expect(err).Should(HaveOccurred())
	})

	It("rejects input when no InputCoercer was given", func() {
		date := graphql.MustNewScalar(&graphql.ScalarConfig{
			Name: "Date",
			ResultCoercer: graphql.ScalarResultCoercerFunc(
				func(value interface{}) (interface{}, error) { return value, nil }),
		})

		_, err := date.CoerceVariableValue("2020-01-01")
		Expect(err).Should(HaveOccurred())

		_, err = date.CoerceArgumentValue(ast.StringValue{Raw: "2020-01-01"})
		Expect(err).Should(HaveOccurred())
	})

	It("delegates coercion to its configured coercers", func() {
		errNotADate := errors.New("not a date")
		date := graphql.MustNewScalar(&graphql.ScalarConfig{
			Name: "Date",
			ResultCoercer: graphql.ScalarResultCoercerFunc(
				func(value interface{}) (interface{}, error) {
					if _, ok := value.(string); !ok {
						return nil, errNotADate
					}
					return value, nil
				}),
			InputCoercer: nil,
		})

		result, err := date.CoerceResultValue("2020-01-01")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result).Should(Equal("2020-01-01"))

		_, err = date.CoerceResultValue(42)
		Expect(err).Should(MatchError(errNotADate))
	})
})

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

var _ = Describe("BuildFieldMap", func() {
	It("returns nil for an empty Fields", func() {
		fieldMap, err := graphql.BuildFieldMap(nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fieldMap).Should(BeNil())
	})

	It("rejects an argument with no type", func() {
		_, err := graphql.BuildFieldMap(graphql.Fields{
			"field": {
				Type: graphql.T(graphql.String()),
				Args: graphql.ArgumentConfigMap{
					"arg": {},
				},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal(`Must provide type for argument "arg".`))
	})
})

var _ = Describe("Argument", func() {
	It("has no default value when one was never given", func() {
		fieldMap := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"field": {
					Type: graphql.T(graphql.String()),
					Args: graphql.ArgumentConfigMap{
						"arg": {Type: graphql.T(graphql.String())},
					},
				},
			},
		}).Fields()
		arg := fieldMap["field"].Args()[0]
		Expect(arg.HasDefaultValue()).Should(BeFalse())
		Expect(arg.DefaultValue()).Should(BeNil())
	})

	It("treats NilArgumentDefaultValue as an explicit null default", func() {
		fieldMap := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"field": {
					Type: graphql.T(graphql.String()),
					Args: graphql.ArgumentConfigMap{
						"arg": {
							Type:         graphql.T(graphql.String()),
							DefaultValue: graphql.NilArgumentDefaultValue,
						},
					},
				},
			},
		}).Fields()
		arg := fieldMap["field"].Args()[0]
		Expect(arg.HasDefaultValue()).Should(BeTrue())
		Expect(arg.DefaultValue()).Should(BeNil())
	})

	It("is required only when non-null and lacking a default", func() {
		fieldMap := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"field": {
					Type: graphql.T(graphql.String()),
					Args: graphql.ArgumentConfigMap{
						"required":  {Type: graphql.T(graphql.MustNewNonNullOfType(graphql.String()))},
						"defaulted": {Type: graphql.T(graphql.MustNewNonNullOfType(graphql.String())), DefaultValue: "x"},
						"optional":  {Type: graphql.T(graphql.String())},
					},
				},
			},
		}).Fields()

		args := fieldMap["field"].Args()
		byName := map[string]*graphql.Argument{}
		for i := range args {
			byName[args[i].Name()] = &args[i]
		}

		Expect(graphql.IsRequiredArgument(byName["required"])).Should(BeTrue())
		Expect(graphql.IsRequiredArgument(byName["defaulted"])).Should(BeFalse())
		Expect(graphql.IsRequiredArgument(byName["optional"])).Should(BeFalse())
	})
})

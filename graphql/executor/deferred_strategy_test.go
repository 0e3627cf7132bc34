/**
 * Copyright (c) 2019, The Artemis Authors.
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

package executor_test

import (
	"context"

	"github.com/patchql/graphql/graphql"
	"github.com/patchql/graphql/graphql/ast"
	"github.com/patchql/graphql/graphql/executor"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func runDeferred(schema graphql.Schema, selectionSet ast.SelectionSet) (interface{}, graphql.Errors, []executor.RecordedPatch) {
	document, operation := queryDocument(selectionSet)
	collector := executor.NewRecordingCollector()
	strategy := executor.DeferredStrategy{Collector: collector}

	tree, errs := executor.Execute(
		context.Background(), schema, document, operation,
		graphql.NoVariableValues(), nil, nil, nil, strategy)

	return tree, errs, collector.Patches()
}

var _ = Describe("DeferredStrategy", func() {
	It("reports a simple field and defers two siblings", func() {
		schema := cheeseSchema(nil)

		selectionSet := sel(
			fld("cheese", sel(
				fld("id", nil),
				fld("flavor", nil),
				fld("origin", nil, deferred()),
				fld("source", nil, deferred(), alias("cheeseSource")),
			), arg("id", ast.NewIntValue(1))),
		)

		_, errs, patches := runDeferred(schema, selectionSet)

		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(patches).Should(HaveLen(3))

		Expect(patches[0].Path).Should(BeNil())
		Expect(patches[0].Value).Should(Equal(map[string]interface{}{
			"data": map[string]interface{}{
				"cheese": map[string]interface{}{
					"id":           1,
					"flavor":       "Brie",
					"origin":       nil,
					"cheeseSource": nil,
				},
			},
		}))

		Expect(patches[1].Path).Should(Equal([]interface{}{"data", "cheese", "origin"}))
		Expect(patches[1].Value).Should(Equal("France"))

		Expect(patches[2].Path).Should(Equal([]interface{}{"data", "cheese", "cheeseSource"}))
		Expect(patches[2].Value).Should(Equal("COW"))
	})

	It("drains a deferred field nested inside another deferred field", func() {
		schema := cheeseSchema(nil)

		selectionSet := sel(
			fld("cheese", sel(
				fld("id", nil),
				fld("flavor", nil),
				fld("origin", nil, deferred()),
			), arg("id", ast.NewIntValue(1)), deferred()),
		)

		_, errs, patches := runDeferred(schema, selectionSet)

		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(patches).Should(HaveLen(3))

		Expect(patches[0].Path).Should(BeNil())
		Expect(patches[0].Value).Should(Equal(map[string]interface{}{
			"data": map[string]interface{}{"cheese": nil},
		}))

		Expect(patches[1].Path).Should(Equal([]interface{}{"data", "cheese"}))
		Expect(patches[1].Value).Should(Equal(map[string]interface{}{
			"id":     1,
			"flavor": "Brie",
			"origin": nil,
		}))

		Expect(patches[2].Path).Should(Equal([]interface{}{"data", "cheese", "origin"}))
		Expect(patches[2].Value).Should(Equal("France"))
	})

	It("drains deferred fields inside every element of a deferred list", func() {
		schema := cheeseSchema(nil)

		selectionSet := sel(
			fld("cheeses", sel(
				fld("id", nil),
				fld("flavor", nil, deferred(), alias("chzFlav")),
			), deferred()),
		)

		_, errs, patches := runDeferred(schema, selectionSet)

		Expect(errs.HaveOccurred()).Should(BeFalse())

		// Initial patch: the whole list is parked, so "data" carries no "cheeses" key's worth of
		// resolved values yet.
		Expect(patches[0].Path).Should(BeNil())
		Expect(patches[0].Value).Should(Equal(map[string]interface{}{
			"data": map[string]interface{}{"cheeses": nil},
		}))

		// Second patch resolves the list itself, each element's deferred "chzFlav" still parked.
		Expect(patches[1].Path).Should(Equal([]interface{}{"data", "cheeses"}))
		list := patches[1].Value.([]interface{})
		Expect(list).Should(HaveLen(2))
		Expect(list[0]).Should(Equal(map[string]interface{}{"id": 1, "chzFlav": nil}))
		Expect(list[1]).Should(Equal(map[string]interface{}{"id": 3, "chzFlav": nil}))

		// Remaining two patches resolve each element's deferred flavor, in element order.
		Expect(patches).Should(HaveLen(4))
		Expect(patches[2].Path).Should(Equal([]interface{}{"data", "cheeses", 0, "chzFlav"}))
		Expect(patches[2].Value).Should(Equal("Brie"))
		Expect(patches[3].Path).Should(Equal([]interface{}{"data", "cheeses", 1, "chzFlav"}))
		Expect(patches[3].Value).Should(Equal("Feta"))
	})

	It("reports one error inline and the rest as they drain", func() {
		boom := graphql.NewError("boom", graphql.ErrKindExecution).(*graphql.Error)

		executionError := graphql.FieldConfig{
			Type: graphql.T(graphql.String()),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return nil, boom
			}),
		}

		schema := cheeseSchema(graphql.Fields{"executionError": executionError})

		selectionSet := sel(
			fld("executionError", nil, alias("error1")),
			fld("executionError", nil, alias("error2"), deferred()),
			fld("executionError", nil, alias("error3"), deferred()),
		)

		_, errs, patches := runDeferred(schema, selectionSet)

		Expect(errs.HaveOccurred()).Should(BeTrue())
		Expect(errs.Errors).Should(HaveLen(3))

		Expect(patches[0].Path).Should(BeNil())
		initial := patches[0].Value.(map[string]interface{})
		Expect(initial["data"]).Should(Equal(map[string]interface{}{
			"error1": nil,
			"error2": nil,
			"error3": nil,
		}))
		Expect(initial["errors"]).Should(HaveLen(1))

		Expect(patches).Should(HaveLen(3))
		Expect(patches[1].Path).Should(Equal([]interface{}{"errors", 1}))
		Expect(patches[2].Path).Should(Equal([]interface{}{"errors", 2}))
	})

	It("aborts without emitting any patch when a resolver raises a fatal error", func() {
		raisesFatally := graphql.FieldConfig{
			Type: graphql.T(graphql.String()),
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				panic("programmer error, not an ExecutionError")
			}),
		}

		schema := cheeseSchema(graphql.Fields{"error": raisesFatally})

		selectionSet := sel(
			fld("error", nil),
			fld("cheese", sel(fld("id", nil)), arg("id", ast.NewIntValue(1)), deferred()),
		)

		document, operation := queryDocument(selectionSet)
		collector := executor.NewRecordingCollector()
		strategy := executor.DeferredStrategy{Collector: collector}

		Expect(func() {
			executor.Execute(
				context.Background(), schema, document, operation,
				graphql.NoVariableValues(), nil, nil, nil, strategy)
		}).Should(Panic())

		Expect(collector.Patches()).Should(BeEmpty())
	})

	It("merges two inline fragments' disjoint selections on the same field", func() {
		schema := cheeseSchema(nil)

		selectionSet := sel(
			&ast.Field{
				Name: ast.Name{Value: "cheese"},
				Arguments: ast.Arguments{
					{Name: ast.Name{Value: "id"}, Value: ast.NewIntValue(1)},
				},
				SelectionSet: ast.SelectionSet{
					&ast.InlineFragment{SelectionSet: sel(fld("id", nil))},
					&ast.InlineFragment{SelectionSet: sel(fld("flavor", nil))},
				},
			},
		)

		document, operation := queryDocument(selectionSet)
		tree, errs := executor.Execute(
			context.Background(), schema, document, operation,
			graphql.NoVariableValues(), nil, nil, nil, executor.SerialStrategy{})

		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(tree).Should(Equal(map[string]interface{}{
			"cheese": map[string]interface{}{
				"id":     1,
				"flavor": "Brie",
			},
		}))
	})
})

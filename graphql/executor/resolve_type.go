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

package executor

import (
	"github.com/patchql/graphql/graphql"
)

// ResolveType decides the concrete Object type that a fragment's selections should apply under,
// given the fragment's type condition (innerType, possibly nil for an unconditional fragment), the
// statically known type at the current position (outerType), and the runtime value being
// inspected. A nil result means the fragment does not apply and its selections contribute nothing.
//
// Rules are tried in order; the first match wins.
func ResolveType(info *resolveInfo, value interface{}, innerType, outerType graphql.Type) (*graphql.Object, error) {
	// 1. No type condition: the fragment always applies, but there is no type to narrow to.
	if innerType == nil {
		return nil, nil
	}

	// 2. Outer position is a union: the union itself decides its concrete member from the value.
	if union, ok := outerType.(*graphql.Union); ok {
		return union.TypeResolver().Resolve(info.scope.Context(), value, info)
	}

	// 3. Fragment conditions on a union that happens to include the statically known outer type:
	// the outer type applies as-is.
	if union, ok := innerType.(*graphql.Union); ok {
		if outerObject, ok := outerType.(*graphql.Object); ok && union.PossibleTypes().Has(outerObject) {
			return outerObject, nil
		}
		return nil, nil
	}

	// 4. Fragment conditions on an interface: resolve it the same way a field typed with that
	// interface would.
	if iface, ok := innerType.(*graphql.Interface); ok {
		return iface.TypeResolver().Resolve(info.scope.Context(), value, info)
	}

	// 5. Fragment conditions on the exact outer type: it applies unchanged.
	if innerType == outerType {
		if outerObject, ok := outerType.(*graphql.Object); ok {
			return outerObject, nil
		}
		return nil, nil
	}

	// 6. Anything else: the fragment's type condition does not apply at this position.
	return nil, nil
}

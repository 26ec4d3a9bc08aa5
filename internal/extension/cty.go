// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package extension

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// FromCty builds an Extension from a configuration value. Null gives the
// empty extension. Otherwise the value must be a known list or tuple of
// known, non-null strings. Sets are rejected because they have no order.
func FromCty(v cty.Value) (Extension, error) {
	if v.IsNull() {
		return Extension{}, nil
	}
	if !v.IsWhollyKnown() {
		return Extension{}, fmt.Errorf("%w: value is not known", ErrType)
	}

	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return Extension{}, fmt.Errorf("%w: got %s", ErrType, ty.FriendlyName())
	}

	parts := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		idx, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			i, _ := idx.AsBigFloat().Int64()
			return Extension{}, fmt.Errorf("%w: element %d is %s, not a string", ErrType, i, describe(elem))
		}
		parts = append(parts, elem.AsString())
	}
	return New(parts...), nil
}

func describe(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	return v.Type().FriendlyName()
}

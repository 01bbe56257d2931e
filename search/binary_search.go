// SPDX-License-Identifier: MIT

// Package search provides searching over sorted slices.
package search

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrUnsorted is returned when the input is not in non-decreasing order.
var ErrUnsorted = errors.New("search: input is not sorted in non-decreasing order")

// NotFound is the index reported for an absent target.
const NotFound = -1

// BinarySearch returns an index of target in s, or NotFound.
// s must be sorted in non-decreasing order; otherwise ErrUnsorted is returned
// before any probing. With duplicates, any matching index may be returned.
//
// Complexity: O(n) for the order check, O(log n) for the search.
func BinarySearch[T cmp.Ordered](s []T, target T) (int, error) {
	if i := firstDescent(s); i >= 0 {
		return NotFound, fmt.Errorf("BinarySearch: s[%d] > s[%d]: %w", i, i+1, ErrUnsorted)
	}

	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch cmp.Compare(s[mid], target) {
		case 0:
			return mid, nil
		case -1:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound, nil
}

// firstDescent returns the first i with s[i] > s[i+1], or -1.
func firstDescent[T cmp.Ordered](s []T) int {
	for i := 0; i+1 < len(s); i++ {
		if cmp.Less(s[i+1], s[i]) {
			return i
		}
	}

	return -1
}

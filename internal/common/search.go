package common

import "cmp"

// IndexByKey performs a binary search over items, which must be kept sorted
// ascending by the value that key extracts. It returns the index of the
// element whose key equals target, or -1 when no such element exists.
//
// Blog collections use it with the blog id as key, post collections with the
// post code; both share this single routine instead of duplicating the
// search per record type.
func IndexByKey[T any, K cmp.Ordered](items []T, target K, key func(T) K) int {
	left, right := 0, len(items)-1
	for left <= right {
		mid := (left + right) / 2
		switch k := key(items[mid]); {
		case k == target:
			return mid
		case k < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1
}

// SearchByKey returns the element whose key equals target, or the zero value
// and false when absent. See IndexByKey for the ordering requirement.
func SearchByKey[T any, K cmp.Ordered](items []T, target K, key func(T) K) (T, bool) {
	if i := IndexByKey(items, target, key); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// InsertionIndex returns the position at which an element with the given key
// must be inserted to keep items sorted ascending.
func InsertionIndex[T any, K cmp.Ordered](items []T, target K, key func(T) K) int {
	left, right := 0, len(items)
	for left < right {
		mid := (left + right) / 2
		if key(items[mid]) < target {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	key  int64
	name string
}

func recKey(r rec) int64 { return r.key }

func TestIndexByKey(t *testing.T) {
	items := []rec{{1, "a"}, {3, "b"}, {5, "c"}, {7, "d"}, {9, "e"}}

	tests := []struct {
		name   string
		items  []rec
		target int64
		want   int
	}{
		{"empty", nil, 1, -1},
		{"first", items, 1, 0},
		{"middle", items, 5, 2},
		{"last", items, 9, 4},
		{"absent below", items, 0, -1},
		{"absent between", items, 4, -1},
		{"absent above", items, 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IndexByKey(tt.items, tt.target, recKey))
		})
	}
}

func TestSearchByKey(t *testing.T) {
	items := []rec{{1, "a"}, {3, "b"}, {5, "c"}}

	got, ok := SearchByKey(items, 3, recKey)
	require.True(t, ok)
	require.Equal(t, "b", got.name)

	_, ok = SearchByKey(items, 4, recKey)
	require.False(t, ok)
}

func TestInsertionIndex(t *testing.T) {
	items := []rec{{2, "a"}, {4, "b"}, {6, "c"}}

	require.Equal(t, 0, InsertionIndex(items, 1, recKey))
	require.Equal(t, 1, InsertionIndex(items, 3, recKey))
	require.Equal(t, 3, InsertionIndex(items, 7, recKey))
	require.Equal(t, 0, InsertionIndex([]rec{}, 42, recKey))
}

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(s Source) []WorkItem {
	items := make([]WorkItem, 0)
	for {
		item, ok := s.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

func TestNamesSource(t *testing.T) {
	source := Names([]string{"ada lovelace", "grace hopper"})

	items := drain(source)
	require.Len(t, items, 2)
	require.Equal(t, "ada lovelace", items[0].Raw)
	require.Equal(t, "grace hopper", items[1].Raw)

	// Exhausted sources stay exhausted.
	_, ok := source.Next()
	require.False(t, ok)
}

func TestProductSourceOrder(t *testing.T) {
	source := Product([]string{"ada", "grace"}, []string{"lovelace", "hopper", "turing"})

	items := drain(source)
	require.Len(t, items, 6)
	require.Equal(t, WorkItem{First: "ada", Last: "lovelace"}, items[0])
	require.Equal(t, WorkItem{First: "ada", Last: "turing"}, items[2])
	require.Equal(t, WorkItem{First: "grace", Last: "lovelace"}, items[3])
	require.Equal(t, WorkItem{First: "grace", Last: "turing"}, items[5])
}

func TestProductSourceEmpty(t *testing.T) {
	_, ok := Product(nil, []string{"lovelace"}).Next()
	require.False(t, ok)

	_, ok = Product([]string{"ada"}, nil).Next()
	require.False(t, ok)
}

func TestProductSourceIsLazy(t *testing.T) {
	// A combination count far beyond anything we would materialize: pulling
	// a handful of items must not allocate the rest.
	first := make([]string, 100000)
	last := make([]string, 100000)
	for i := range first {
		first[i] = "f"
		last[i] = "l"
	}

	source := Product(first, last)
	for i := 0; i < 10; i++ {
		item, ok := source.Next()
		require.True(t, ok)
		require.Equal(t, "f", item.First)
	}
}

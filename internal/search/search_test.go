package search

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	var q Queue[string]
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("b", 2)
	require.Equal(t, 3, q.Len())

	var got []string
	for q.Len() > 0 {
		v, _ := q.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

// line is a weighted graph: 0 -1- 1 -1- 2 -1- 3, plus a costly 0 -5- 3.
func line(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if n > 0 && !yield(n-1, 1) {
			return
		}
		if n < 3 && !yield(n+1, 1) {
			return
		}
		if n == 0 {
			yield(3, 5)
		}
	}
}

func TestDijkstra(t *testing.T) {
	cost, ok := Dijkstra([]int{0}, line, func(n int) bool { return n == 3 })
	require.True(t, ok)
	assert.Equal(t, 3, cost)

	_, ok = Dijkstra([]int{0}, line, func(n int) bool { return n == 9 })
	assert.False(t, ok)
}

func TestDistances(t *testing.T) {
	got := Distances([]int{0}, line)
	if diff := cmp.Diff(map[int]int{0: 0, 1: 1, 2: 2, 3: 3}, got); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}
}

func TestBFSLimit(t *testing.T) {
	next := func(n int) []int { return []int{n + 1, n + 2} }
	got := BFS(0, next, 2)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2}, got)
}

// Package search holds the graph searches shared by the puzzle solvers.
package search

import (
	"container/heap"
	"iter"
)

// Queue is a min-priority queue.
type Queue[T any] struct {
	h entries[T]
}

type entry[T any] struct {
	value    T
	priority int
}

type entries[T any] []entry[T]

func (e entries[T]) Len() int           { return len(e) }
func (e entries[T]) Less(i, j int) bool { return e[i].priority < e[j].priority }
func (e entries[T]) Swap(i, j int)      { e[i], e[j] = e[j], e[i] }
func (e *entries[T]) Push(x any)        { *e = append(*e, x.(entry[T])) }
func (e *entries[T]) Pop() any {
	old := *e
	n := len(old) - 1
	x := old[n]
	*e = old[:n]
	return x
}

// Push adds v with the given priority.
func (q *Queue[T]) Push(v T, priority int) {
	heap.Push(&q.h, entry[T]{value: v, priority: priority})
}

// Pop removes the value with the lowest priority. It panics on an empty queue.
func (q *Queue[T]) Pop() (T, int) {
	e := heap.Pop(&q.h).(entry[T])
	return e.value, e.priority
}

func (q *Queue[T]) Len() int { return q.h.Len() }

// Edges yields the neighbours of a node with the cost of reaching them.
type Edges[N comparable] func(N) iter.Seq2[N, int]

// Dijkstra returns the cost of the cheapest path from any start to a node
// accepted by goal, or false when none is reachable.
func Dijkstra[N comparable](starts []N, edges Edges[N], goal func(N) bool) (int, bool) {
	var q Queue[N]
	for _, s := range starts {
		q.Push(s, 0)
	}
	done := map[N]bool{}
	for q.Len() > 0 {
		n, cost := q.Pop()
		if done[n] {
			continue
		}
		if goal(n) {
			return cost, true
		}
		done[n] = true
		for m, c := range edges(n) {
			if !done[m] {
				q.Push(m, cost+c)
			}
		}
	}
	return 0, false
}

// Distances returns the cost of the cheapest path from the starts to every
// reachable node.
func Distances[N comparable](starts []N, edges Edges[N]) map[N]int {
	var q Queue[N]
	for _, s := range starts {
		q.Push(s, 0)
	}
	dist := map[N]int{}
	for q.Len() > 0 {
		n, cost := q.Pop()
		if _, ok := dist[n]; ok {
			continue
		}
		dist[n] = cost
		for m, c := range edges(n) {
			if _, ok := dist[m]; !ok {
				q.Push(m, cost+c)
			}
		}
	}
	return dist
}

// BFS returns the step count from start to every node reachable through
// next, stopping at limit steps when limit is positive.
func BFS[N comparable](start N, next func(N) []N, limit int) map[N]int {
	dist := map[N]int{start: 0}
	frontier := []N{start}
	for step := 1; len(frontier) > 0 && (limit <= 0 || step <= limit); step++ {
		var following []N
		for _, n := range frontier {
			for _, m := range next(n) {
				if _, ok := dist[m]; ok {
					continue
				}
				dist[m] = step
				following = append(following, m)
			}
		}
		frontier = following
	}
	return dist
}

package schedule

import "planbase/internal/core/domain"

// ReachableTasks walks the link list in both directions from the seed task
// ids and returns every task id in their connected component, seeds included.
// Iterative DFS; the visited set doubles as the result.
func ReachableTasks(links []domain.Link, seeds ...uint64) map[uint64]struct{} {
	forward := make(map[uint64][]uint64)
	backward := make(map[uint64][]uint64)
	for _, link := range links {
		forward[link.SourceID] = append(forward[link.SourceID], link.TargetID)
		backward[link.TargetID] = append(backward[link.TargetID], link.SourceID)
	}

	visited := make(map[uint64]struct{}, len(seeds))
	stack := append([]uint64(nil), seeds...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		stack = append(stack, forward[id]...)
		stack = append(stack, backward[id]...)
	}
	return visited
}

// IncidentLinks returns the ids of every link with at least one endpoint in
// the task set.
func IncidentLinks(links []domain.Link, tasks map[uint64]struct{}) []uint64 {
	var ids []uint64
	for _, link := range links {
		if _, ok := tasks[link.SourceID]; ok {
			ids = append(ids, link.ID)
			continue
		}
		if _, ok := tasks[link.TargetID]; ok {
			ids = append(ids, link.ID)
		}
	}
	return ids
}

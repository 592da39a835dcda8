package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"planbase/internal/core/domain"
)

func link(id, source, target uint64) domain.Link {
	return domain.Link{ID: id, SourceID: source, TargetID: target, Type: domain.LinkTypeFinishToStart}
}

func TestReachableTasks_Chain(t *testing.T) {
	// A(1) -> M1(2) -> M2(3) -> B(4), plus an unrelated edge 10 -> 11.
	links := []domain.Link{
		link(1, 1, 2),
		link(2, 2, 3),
		link(3, 3, 4),
		link(4, 10, 11),
	}

	got := ReachableTasks(links, 1, 2)

	require.Len(t, got, 4)
	for _, id := range []uint64{1, 2, 3, 4} {
		require.Contains(t, got, id)
	}
	require.NotContains(t, got, uint64(10))
	require.NotContains(t, got, uint64(11))
}

func TestReachableTasks_FollowsBothDirections(t *testing.T) {
	// Seeding from the middle must reach upstream and downstream.
	links := []domain.Link{
		link(1, 1, 2),
		link(2, 2, 3),
	}

	got := ReachableTasks(links, 2)
	require.Len(t, got, 3)
}

func TestReachableTasks_CycleTerminates(t *testing.T) {
	links := []domain.Link{
		link(1, 1, 2),
		link(2, 2, 3),
		link(3, 3, 1),
	}

	got := ReachableTasks(links, 1)
	require.Len(t, got, 3)
}

func TestReachableTasks_SeedsOnly(t *testing.T) {
	got := ReachableTasks(nil, 5, 6)
	require.Len(t, got, 2)
}

func TestIncidentLinks(t *testing.T) {
	links := []domain.Link{
		link(1, 1, 2),
		link(2, 2, 3),
		link(3, 8, 9),
	}

	got := IncidentLinks(links, map[uint64]struct{}{2: {}})
	require.ElementsMatch(t, []uint64{1, 2}, got)
}

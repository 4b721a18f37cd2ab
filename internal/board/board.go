package board

import "sort"

// The mansion is a 16-cell corridor ring with 8 rooms hanging off it. Room i
// (0-based) opens onto ring cell 2i+1, so every second corridor cell is a
// door. Two secret passages connect opposite corners in a single step.
const (
	RingSize  = 16
	FirstRoom = RingSize + 1
	NumRooms  = 8
	LastCell  = FirstRoom + NumRooms - 1

	// StartCell is where every token is placed when the match starts.
	StartCell = 1
)

var roomNames = [NumRooms]string{
	"Garage",
	"Laboratory",
	"Vestibule",
	"Pantheon",
	"Cellar",
	"Parlor",
	"Library",
	"Bedroom",
}

var adjacency = buildAdjacency()

func buildAdjacency() map[int][]int {
	adj := make(map[int][]int, LastCell)
	link := func(a, b int) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for c := 1; c <= RingSize; c++ {
		link(c, c%RingSize+1)
	}
	for i := 0; i < NumRooms; i++ {
		link(FirstRoom+i, 2*i+1)
	}
	// Secret passages: Garage-Cellar and Laboratory-Library.
	link(FirstRoom, FirstRoom+4)
	link(FirstRoom+1, FirstRoom+6)
	return adj
}

func Valid(cell int) bool {
	return cell >= 1 && cell <= LastCell
}

func IsRoom(cell int) bool {
	return cell >= FirstRoom && cell <= LastCell
}

// RoomName returns the room card name for a room cell.
func RoomName(cell int) (string, bool) {
	if !IsRoom(cell) {
		return "", false
	}
	return roomNames[cell-FirstRoom], true
}

// RoomCell returns the cell housing the named room.
func RoomCell(name string) (int, bool) {
	for i, n := range roomNames {
		if n == name {
			return FirstRoom + i, true
		}
	}
	return 0, false
}

// ReachableCells returns, in ascending order, every cell that ends a path of
// exactly steps edges from the given cell without revisiting a cell along the
// way. The starting cell is never part of the result.
func ReachableCells(from, steps int) []int {
	if !Valid(from) || steps < 1 {
		return nil
	}
	found := make(map[int]struct{})
	visited := map[int]bool{from: true}
	var walk func(cell, left int)
	walk = func(cell, left int) {
		if left == 0 {
			found[cell] = struct{}{}
			return
		}
		for _, n := range adjacency[cell] {
			if visited[n] {
				continue
			}
			visited[n] = true
			walk(n, left-1)
			visited[n] = false
		}
	}
	walk(from, steps)

	out := make([]int, 0, len(found))
	for c := range found {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// CanReach reports whether dest ends a legal path of exactly steps edges
// from the given cell.
func CanReach(from, steps, dest int) bool {
	for _, c := range ReachableCells(from, steps) {
		if c == dest {
			return true
		}
	}
	return false
}

package battleship

// Hunt-and-target state of the computer player. After a first hit
// the four orthogonal neighbors are queued; a second hit on the
// same row or column fixes the axis and the queue is rebuilt by
// walking outward along it from both ends of the damaged ship.
// A sink clears everything and search falls back to random.
type targetingState struct {
	isHunting      bool
	pendingTargets []Coordinates
	hitHistory     []Coordinates
	huntAxis       *Coordinates
}

func newTargetingState() *targetingState {
	ts := &targetingState{}
	ts.reset()
	return ts
}

func (ts *targetingState) reset() {
	ts.isHunting = false
	ts.pendingTargets = ts.pendingTargets[:0]
	ts.hitHistory = ts.hitHistory[:0]
	ts.huntAxis = nil
}

// Feeds the outcome of an attack at coord back into the state
// machine. A miss leaves the queue untouched; the walks that
// built it already stop at attacked cells, so a missed arm
// exhausts itself without explicit pruning.
func (ts *targetingState) observeOutcome(coord Coordinates, outcome uint8, targetBoard *Board) {
	switch outcome {
	case AttackOutcomeSunk:
		ts.reset()

	case AttackOutcomeHit:
		ts.observeHit(coord, targetBoard)
	}
}

func (ts *targetingState) observeHit(coord Coordinates, targetBoard *Board) {
	switch {
	case len(ts.hitHistory) == 0:
		ts.anchor(coord, targetBoard)

	case len(ts.hitHistory) == 1:
		axis, ok := inferAxis(ts.hitHistory[0], coord)
		if !ok {
			// The two hits share no row or column, so this hit
			// belongs to a different ship. Re-anchor on it.
			ts.anchor(coord, targetBoard)
			return
		}

		ts.huntAxis = &axis

		// Interleave the forward and reverse runs by distance so a
		// miss past one end of the ship flips the search to the
		// other end instead of marching further out.
		forward := walkUnattacked(targetBoard, coord, axis)
		reverse := walkUnattacked(targetBoard, ts.hitHistory[0], axis.negate())

		ts.hitHistory = append(ts.hitHistory, coord)
		ts.pendingTargets = ts.pendingTargets[:0]
		for i := 0; i < len(forward) || i < len(reverse); i++ {
			if i < len(forward) {
				ts.enqueue(forward[i])
			}
			if i < len(reverse) {
				ts.enqueue(reverse[i])
			}
		}

	default:
		ts.hitHistory = append(ts.hitHistory, coord)
		if ts.huntAxis != nil {
			ts.enqueue(walkUnattacked(targetBoard, coord, *ts.huntAxis)...)
		}
	}
}

func (ts *targetingState) anchor(coord Coordinates, targetBoard *Board) {
	ts.isHunting = true
	ts.huntAxis = nil
	ts.hitHistory = append(ts.hitHistory[:0], coord)

	ts.pendingTargets = ts.pendingTargets[:0]
	for _, neighbor := range orthogonalNeighbors(coord) {
		if neighbor.InGridBound() && !targetBoard.IsAttacked(neighbor.X, neighbor.Y) {
			ts.enqueue(neighbor)
		}
	}
}

// FIFO dequeue, dropping coordinates attacked since they were
// queued. Reports false once the queue is exhausted, which also
// drops back to random search for subsequent calls.
func (ts *targetingState) nextTarget(targetBoard *Board) (Coordinates, bool) {
	if !ts.isHunting {
		return Coordinates{}, false
	}

	for len(ts.pendingTargets) > 0 {
		coord := ts.pendingTargets[0]
		ts.pendingTargets = ts.pendingTargets[1:]

		if !targetBoard.IsAttacked(coord.X, coord.Y) {
			return coord, true
		}
	}

	ts.reset()
	return Coordinates{}, false
}

func (ts *targetingState) enqueue(coords ...Coordinates) {
enqueueLoop:
	for _, coord := range coords {
		for _, pending := range ts.pendingTargets {
			if pending == coord {
				continue enqueueLoop
			}
		}
		ts.pendingTargets = append(ts.pendingTargets, coord)
	}
}

func orthogonalNeighbors(coord Coordinates) [4]Coordinates {
	return [4]Coordinates{
		{X: coord.X - 1, Y: coord.Y},
		{X: coord.X + 1, Y: coord.Y},
		{X: coord.X, Y: coord.Y - 1},
		{X: coord.X, Y: coord.Y + 1},
	}
}

// Unit step pointing from the older hit toward the newer one.
// Reports false when the hits share neither row nor column.
func inferAxis(older, newer Coordinates) (Coordinates, bool) {
	switch {
	case older.X == newer.X && older.Y != newer.Y:
		if newer.Y > older.Y {
			return Coordinates{X: 0, Y: 1}, true
		}
		return Coordinates{X: 0, Y: -1}, true

	case older.Y == newer.Y && older.X != newer.X:
		if newer.X > older.X {
			return Coordinates{X: 1, Y: 0}, true
		}
		return Coordinates{X: -1, Y: 0}, true

	default:
		return Coordinates{}, false
	}
}

// Walks outward from (not including) `from` along `step`,
// collecting cells until the grid edge or an attacked cell.
func walkUnattacked(targetBoard *Board, from, step Coordinates) []Coordinates {
	var run []Coordinates

	coord := from.add(step)
	for coord.InGridBound() && !targetBoard.IsAttacked(coord.X, coord.Y) {
		run = append(run, coord)
		coord = coord.add(step)
	}
	return run
}

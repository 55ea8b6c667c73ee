package battleship

import "testing"

func newHumanMatch(t *testing.T) *Match {
	t.Helper()

	host, err := NewPlayer("host", PlayerKindHuman)
	if err != nil {
		t.Fatal(err)
	}
	join, err := NewPlayer("join", PlayerKindHuman)
	if err != nil {
		t.Fatal(err)
	}

	return NewMatch(host, join, PlacementPolicyNoTouch)
}

func TestStartMatchRefusedWithIncompleteFleet(t *testing.T) {
	match := newHumanMatch(t)

	if err := match.StartMatch(); err == nil {
		t.Fatal("expected start refusal with empty fleets")
	}
	if match.Phase() != MatchPhaseNotPlaying {
		t.Fatal("refused start must not transition the phase")
	}

	// partially placed fleet still refuses
	placeTestFleet(t, match.BoardOf(match.HostPlayer()))
	if err := match.StartMatch(); err == nil {
		t.Fatal("expected start refusal with one empty fleet")
	}
}

func TestStartMatchAutoPlacesComputerFleet(t *testing.T) {
	host, err := NewPlayer("host", PlayerKindHuman)
	if err != nil {
		t.Fatal(err)
	}
	computer, err := NewPlayer(ComputerPlayerName, PlayerKindComputer)
	if err != nil {
		t.Fatal(err)
	}
	match := NewMatch(host, computer, PlacementPolicyNoTouch)

	placeTestFleet(t, match.BoardOf(host))

	if err := match.StartMatch(); err != nil {
		t.Fatal(err)
	}
	if match.Phase() != MatchPhasePlaying {
		t.Fatal("expected playing phase after start")
	}
	if !IsFleetComplete(match.BoardOf(computer)) {
		t.Fatal("computer fleet must be auto placed on start")
	}
	if match.CurrentPlayer() != host {
		t.Fatal("host must take the first turn")
	}
}

func TestMakeAttackWhileNotPlaying(t *testing.T) {
	match := newHumanMatch(t)

	if _, err := match.MakeAttack(0, 0); err == nil {
		t.Fatal("expected not-playing error")
	}
}

func TestMatchPlayThrough(t *testing.T) {
	match := newHumanMatch(t)
	host := match.HostPlayer()
	join := match.JoinPlayer()

	placeTestFleet(t, match.BoardOf(host))
	placeTestFleet(t, match.BoardOf(join))

	if err := match.StartMatch(); err != nil {
		t.Fatal(err)
	}

	// host hits the join destroyer's first cell
	outcome, err := match.MakeAttack(8, 0)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != AttackOutcomeHit {
		t.Fatalf("expected hit, got: %d", outcome)
	}
	if host.Score() != 1 {
		t.Fatalf("expected host score 1, got: %d", host.Score())
	}
	if match.CurrentPlayer() != join {
		t.Fatal("turn must advance to the join player")
	}
	if match.TurnCount() != 1 {
		t.Fatalf("expected turn count 1, got: %d", match.TurnCount())
	}

	// join misses at an empty corner and the turn returns
	if _, err := match.MakeAttack(9, 9); err != nil {
		t.Fatal(err)
	}
	if match.CurrentPlayer() != host {
		t.Fatal("turn must return to the host")
	}

	// host sinks the rest of the join fleet, with join missing in
	// between; the final blow must not advance the turn
	targets := []Coordinates{
		{8, 1},
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4},
		{2, 0}, {2, 1}, {2, 2}, {2, 3},
		{4, 0}, {4, 1}, {4, 2},
		{6, 0}, {6, 1}, {6, 2},
	}
	joinMisses := []Coordinates{
		{9, 7}, {9, 5}, {9, 3}, {9, 1}, {7, 9}, {7, 7}, {7, 5}, {7, 3},
		{5, 9}, {5, 7}, {5, 5}, {5, 3}, {3, 9}, {3, 7}, {3, 5},
	}

	for i, target := range targets {
		if match.CurrentPlayer() != host {
			t.Fatalf("expected host turn before attack %d", i)
		}
		if _, err := match.MakeAttack(target.X, target.Y); err != nil {
			t.Fatal(err)
		}

		if match.Phase() == MatchPhaseNotPlaying {
			break
		}

		if _, err := match.MakeAttack(joinMisses[i].X, joinMisses[i].Y); err != nil {
			t.Fatal(err)
		}
	}

	if match.Winner() != host {
		t.Fatal("expected the host to win")
	}
	if match.Phase() != MatchPhaseNotPlaying {
		t.Fatal("expected not-playing phase after the win")
	}
	if match.CurrentPlayer() != host {
		t.Fatal("turn must not advance once the match is over")
	}
	if !match.BoardOf(join).AllShipsSunk() {
		t.Fatal("join board must report all ships sunk")
	}

	// with a winner set, further attacks are refused
	if _, err := match.MakeAttack(9, 0); err == nil {
		t.Fatal("expected not-playing error after the win")
	}
}

func TestMatchState(t *testing.T) {
	match := newHumanMatch(t)
	placeTestFleet(t, match.BoardOf(match.HostPlayer()))
	placeTestFleet(t, match.BoardOf(match.JoinPlayer()))

	if err := match.StartMatch(); err != nil {
		t.Fatal(err)
	}

	if _, err := match.MakeAttack(0, 0); err != nil {
		t.Fatal(err)
	}

	state := match.State()
	if state.Phase != MatchPhasePlaying {
		t.Fatalf("expected playing phase, got: %d", state.Phase)
	}
	if state.CurrentPlayer != "join" {
		t.Fatalf("expected join to be current, got: %s", state.CurrentPlayer)
	}
	if state.Winner != "" {
		t.Fatalf("expected no winner, got: %s", state.Winner)
	}
	if state.HostPlayer.Score != 1 {
		t.Fatalf("expected host score 1, got: %d", state.HostPlayer.Score)
	}
	if state.TurnCount != 1 {
		t.Fatalf("expected turn count 1, got: %d", state.TurnCount)
	}
}

func TestResetMatch(t *testing.T) {
	match := newHumanMatch(t)
	host := match.HostPlayer()

	placeTestFleet(t, match.BoardOf(host))
	placeTestFleet(t, match.BoardOf(match.JoinPlayer()))

	if err := match.StartMatch(); err != nil {
		t.Fatal(err)
	}
	if _, err := match.MakeAttack(0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := match.MakeAttack(4, 4); err != nil {
		t.Fatal(err)
	}

	match.ResetMatch()

	if match.Phase() != MatchPhaseNotPlaying {
		t.Fatal("reset match must not be playing")
	}
	if match.Winner() != nil {
		t.Fatal("reset match must have no winner")
	}
	if match.TurnCount() != 0 {
		t.Fatalf("expected turn count 0, got: %d", match.TurnCount())
	}
	if match.CurrentPlayer() != host {
		t.Fatal("reset match must return the first turn to the host")
	}
	if host.Score() != 0 {
		t.Fatalf("expected host score 0, got: %d", host.Score())
	}

	for _, board := range []*Board{match.BoardOf(host), match.BoardOf(match.JoinPlayer())} {
		for x := 0; x < GameGridSize; x++ {
			for y := 0; y < GameGridSize; y++ {
				if board.ShipAt(x, y) != nil {
					t.Fatalf("reset board must be empty at (%d,%d)", x, y)
				}
			}
		}
	}
}

func TestMatchManager(t *testing.T) {
	manager := NewArmadaMatchManager()

	match, err := manager.CreateMatch("host", PlacementPolicyNoTouch)
	if err != nil {
		t.Fatal(err)
	}
	if !match.JoinPlayer().IsComputer() {
		t.Fatal("join player of a managed match must be the computer")
	}

	found, err := manager.GetMatch(match.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != match {
		t.Fatal("expected the same match instance")
	}

	manager.TerminateMatch(match.Uuid())
	if _, err := manager.GetMatch(match.Uuid()); err == nil {
		t.Fatal("expected error for terminated match")
	}

	if _, err := manager.CreateMatch("", PlacementPolicyNoTouch); err == nil {
		t.Fatal("expected error for empty host name")
	}
}

func TestStartMatchRefusedAfterWinUntilReset(t *testing.T) {
	match := newHumanMatch(t)
	host := match.HostPlayer()
	join := match.JoinPlayer()

	placeTestFleet(t, match.BoardOf(host))
	placeTestFleet(t, match.BoardOf(join))
	if err := match.StartMatch(); err != nil {
		t.Fatal(err)
	}

	// host sinks the whole join fleet; join misses at the empty
	// odd rows of the host board in between
	fleetRows := []struct {
		x, length int
	}{
		{x: 0, length: 5},
		{x: 2, length: 4},
		{x: 4, length: 3},
		{x: 6, length: 3},
		{x: 8, length: 2},
	}

	var targets []Coordinates
	for _, row := range fleetRows {
		for y := 0; y < row.length; y++ {
			targets = append(targets, NewCoordinates(row.x, y))
		}
	}

	missIdx := 0
	for _, target := range targets {
		if _, err := match.MakeAttack(target.X, target.Y); err != nil {
			t.Fatal(err)
		}
		if match.Phase() == MatchPhaseNotPlaying {
			break
		}

		miss := NewCoordinates(1+2*(missIdx/GameGridSize), missIdx%GameGridSize)
		missIdx++
		if _, err := match.MakeAttack(miss.X, miss.Y); err != nil {
			t.Fatal(err)
		}
	}

	if match.Winner() != host {
		t.Fatal("expected the host to win")
	}

	// a finished match is terminal until it goes through reset
	if err := match.StartMatch(); err == nil {
		t.Fatal("expected start refusal on a finished match")
	}
	if match.Winner() != host {
		t.Fatal("refused start must keep the winner")
	}
	if match.Phase() != MatchPhaseNotPlaying {
		t.Fatal("refused start must not transition the phase")
	}
	if _, err := match.MakeAttack(9, 9); err == nil {
		t.Fatal("expected not-playing error on a finished match")
	}

	match.ResetMatch()
	placeTestFleet(t, match.BoardOf(host))
	placeTestFleet(t, match.BoardOf(join))
	if err := match.StartMatch(); err != nil {
		t.Fatal(err)
	}

	outcome, err := match.MakeAttack(9, 9)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != AttackOutcomeMiss {
		t.Fatalf("expected miss, got: %d", outcome)
	}
	if match.Phase() != MatchPhasePlaying {
		t.Fatal("a miss must not end the restarted match")
	}
	if match.Winner() != nil {
		t.Fatal("restarted match must have no winner")
	}
}

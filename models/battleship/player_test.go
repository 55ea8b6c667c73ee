package battleship

import "testing"

func TestNewPlayerValidation(t *testing.T) {
	tests := []struct {
		name       string
		playerName string
		kind       uint8
		expectErr  bool
	}{
		{name: "valid human", playerName: "cap", kind: PlayerKindHuman, expectErr: false},
		{name: "valid computer", playerName: "bot", kind: PlayerKindComputer, expectErr: false},
		{name: "empty name", playerName: "", kind: PlayerKindHuman, expectErr: true},
		{name: "invalid kind", playerName: "cap", kind: 9, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPlayer(test.playerName, test.kind)
			if test.expectErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !test.expectErr && err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestPlayerScoreCountsHitsAndSinks(t *testing.T) {
	board := NewBoard()
	if err := board.PlaceShip(mustShip(t, ShipKindDestroyer), 0, 0, OrientationHorizontal); err != nil {
		t.Fatal(err)
	}

	player, err := NewPlayer("cap", PlayerKindHuman)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := player.MakeAttack(0, 0, board); err != nil {
		t.Fatal(err)
	}
	if player.Score() != 1 {
		t.Fatalf("expected score 1 after hit, got: %d", player.Score())
	}

	// miss leaves the score unchanged
	if _, err := player.MakeAttack(9, 9, board); err != nil {
		t.Fatal(err)
	}
	if player.Score() != 1 {
		t.Fatalf("expected score 1 after miss, got: %d", player.Score())
	}

	// sink counts like a hit
	if _, err := player.MakeAttack(0, 1, board); err != nil {
		t.Fatal(err)
	}
	if player.Score() != 2 {
		t.Fatalf("expected score 2 after sink, got: %d", player.Score())
	}

	// already-attacked outcome never scores
	if _, err := player.MakeAttack(0, 0, board); err != nil {
		t.Fatal(err)
	}
	if player.Score() != 2 {
		t.Fatalf("expected score 2 after re-attack, got: %d", player.Score())
	}

	player.ResetScore()
	if player.Score() != 0 {
		t.Fatalf("expected score 0 after reset, got: %d", player.Score())
	}
}

func TestHumanGenerateAttackIsLegal(t *testing.T) {
	board := NewBoard()
	for y := 0; y < GameGridSize; y++ {
		if _, err := board.ReceiveAttack(0, y); err != nil {
			t.Fatal(err)
		}
	}

	player, err := NewPlayer("cap", PlayerKindHuman)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 25; i++ {
		coord, err := player.GenerateAttack(board)
		if err != nil {
			t.Fatal(err)
		}
		if !coord.InGridBound() {
			t.Fatalf("generated coordinate out of bound: (%d,%d)", coord.X, coord.Y)
		}
		if board.IsAttacked(coord.X, coord.Y) {
			t.Fatalf("generated an already attacked coordinate: (%d,%d)", coord.X, coord.Y)
		}
	}
}

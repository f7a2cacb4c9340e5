package core

import "testing"

func TestIsWalkable(t *testing.T) {
	m := ParseGameMap(
		".WB",
		"XP.",
	)

	tests := []struct {
		name string
		pos  GridPos
		want bool
	}{
		{"blank", GridPos{0, 0}, true},
		{"wall", GridPos{1, 0}, false},
		{"block", GridPos{2, 0}, false},
		{"bomb", GridPos{0, 1}, false},
		{"powerup", GridPos{1, 1}, true},
		{"left of grid", GridPos{-1, 0}, false},
		{"above grid", GridPos{0, -1}, false},
		{"right of grid", GridPos{3, 1}, false},
		{"below grid", GridPos{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsWalkable(tt.pos); got != tt.want {
				t.Fatalf("IsWalkable(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestClassifyOutOfBoundsIsWall(t *testing.T) {
	m := NewGameMap(2, 2)
	for _, p := range []GridPos{{-1, -1}, {2, 0}, {0, 2}, {100, 100}} {
		if got := m.Classify(p); got != TileWall {
			t.Fatalf("Classify(%v) = %v, want wall", p, got)
		}
	}
	m.SetTile(5, 5, TileBlock)
	if m.String() != "..\n.." {
		t.Fatalf("out of bounds SetTile mutated map:\n%s", m)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := ParseGameMap("...")
	c := m.Clone()
	c.SetTile(1, 0, TileBomb)
	if m.GetTile(1, 0) != TileBlank {
		t.Fatalf("clone shares storage with original")
	}
	if c.String() != ".X." {
		t.Fatalf("clone = %q", c.String())
	}
}

func TestManhattan(t *testing.T) {
	if d := Manhattan(GridPos{0, 0}, GridPos{2, 3}); d != 5 {
		t.Fatalf("Manhattan = %d, want 5", d)
	}
	if d := Manhattan(GridPos{4, 1}, GridPos{1, 4}); d != 6 {
		t.Fatalf("Manhattan = %d, want 6", d)
	}
}

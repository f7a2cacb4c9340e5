package ai

import (
	"testing"

	"bombman/pkg/core"
)

func TestPreset(t *testing.T) {
	for _, name := range []string{"", "normal", "aggressive", "wander"} {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Preset(%q) does not validate: %v", name, err)
		}
	}
	if _, err := Preset("nightmare"); err == nil {
		t.Fatalf("expected an error for an unknown preset")
	}

	// 预设返回的是副本
	cfg, _ := Preset("normal")
	cfg.BombProximity = 99
	if AIConfigNormal.BombProximity == 99 {
		t.Fatalf("Preset leaked a reference to the package default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AIConfig)
	}{
		{"negative bombs", func(c *AIConfig) { c.MaxOwnBombs = -1 }},
		{"negative proximity", func(c *AIConfig) { c.BombProximity = -2 }},
		{"unknown ranker", func(c *AIConfig) { c.GoalRanker = "orbit" }},
		{"one lair", func(c *AIConfig) { c.Lairs = []core.GridPos{{GridX: 1, GridY: 1}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AIConfigNormal
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}

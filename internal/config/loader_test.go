package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bombman/pkg/ai"
	"bombman/pkg/core"
)

func TestParseOverlaysPreset(t *testing.T) {
	f, err := Parse([]byte(`
preset: aggressive
client:
  proto: kcp
  dial_retries: 3
  retry_interval: 250ms
  record_dir: out/turns
ai:
  bomb_proximity: 3
  lairs:
    - {x: 1, y: 1}
    - {x: 9, y: 9}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.AI.GoalRanker != ai.RankerPursue || f.AI.Advance {
		t.Fatalf("preset not applied: %+v", f.AI)
	}
	if f.AI.BombProximity != 3 || !f.AI.BombBlocks {
		t.Fatalf("overlay wrong: %+v", f.AI)
	}
	if len(f.AI.Lairs) != 2 || f.AI.Lairs[1] != (core.GridPos{GridX: 9, GridY: 9}) {
		t.Fatalf("lairs = %v", f.AI.Lairs)
	}
	if f.Client.Proto != "kcp" || f.Client.DialRetries != 3 || f.Client.RetryInterval != 250*time.Millisecond {
		t.Fatalf("client = %+v", f.Client)
	}
	if f.Client.LogDir != "logs" || f.Client.LogLevel != "info" {
		t.Fatalf("client defaults lost: %+v", f.Client)
	}
}

func TestParseEmptyIsDefault(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Preset != "normal" || f.AI.GoalRanker != ai.RankerRetreat || !f.AI.Advance {
		t.Fatalf("got %+v", f)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	for name, doc := range map[string]string{
		"preset": "preset: nightmare\n",
		"ranker": "ai:\n  goal_ranker: orbit\n",
		"proto":  "client:\n  proto: sctp\n",
		"syntax": "ai: [\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	if err := os.WriteFile(path, []byte("preset: wander\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.AI.GoalRanker != ai.RankerWander {
		t.Fatalf("GoalRanker = %q", f.AI.GoalRanker)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

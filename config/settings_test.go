package config

import "testing"

func TestLoadFromDefaults(t *testing.T) {
	s, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if s.Target != 100 {
		t.Fatalf("expected target 100, got %d", s.Target)
	}
	if s.DiceColor != DiceWhite {
		t.Fatalf("expected white dice, got %v", s.DiceColor)
	}
	if s.TPS != 60 {
		t.Fatalf("expected 60 TPS, got %d", s.TPS)
	}
	if s.LogLevel != "info" {
		t.Fatalf("expected info log level, got %q", s.LogLevel)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	s, err := LoadFrom(map[string]string{
		"PIG_TARGET_SCORE": "200",
		"PIG_DICE_COLOR":   "Red",
		"PIG_SEED":         "42",
		"PIG_MUTE":         "true",
	})
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	opts := s.Options()
	if opts.TargetScore() != 200 || opts.DiceColor() != DiceRed {
		t.Fatalf("unexpected options: target=%d color=%v", opts.TargetScore(), opts.DiceColor())
	}
	if s.Seed != 42 || !s.Mute {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadFromRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "target", env: map[string]string{"PIG_TARGET_SCORE": "150"}},
		{name: "color", env: map[string]string{"PIG_DICE_COLOR": "green"}},
		{name: "tps", env: map[string]string{"PIG_TPS": "0"}},
		{name: "volume", env: map[string]string{"PIG_VOLUME": "1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.env); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestOptionsIndexes(t *testing.T) {
	o := DefaultOptions()
	if o.DiceColorIndex() != 0 || o.TargetScoreIndex() != 0 {
		t.Fatalf("unexpected default indexes")
	}
	o.SetDiceColor(DiceRed)
	o.SetTargetScore(200)
	if o.DiceColorIndex() != 2 || o.TargetScoreIndex() != 1 {
		t.Fatalf("unexpected indexes: %d %d", o.DiceColorIndex(), o.TargetScoreIndex())
	}
	o.SetTargetScore(0)
	if o.TargetScore() != 200 {
		t.Fatalf("non-positive target must be ignored, got %d", o.TargetScore())
	}
}

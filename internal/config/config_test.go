package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	var tag TagConfig
	if err := yaml.Unmarshal(defaultTagYAML, &tag); err != nil {
		t.Fatalf("tag default yaml: %v", err)
	}
	if tag.Physics.Gravity != 1500 || tag.Gameplay.TagCooldown != 0.8 {
		t.Errorf("tag defaults off: %+v", tag)
	}

	var sur SurvivalConfig
	if err := yaml.Unmarshal(defaultSurvivalYAML, &sur); err != nil {
		t.Fatalf("survival default yaml: %v", err)
	}
	if sur.Hazards.StartInterval != 1.0 || sur.Hazards.EndSpeed != 380 {
		t.Errorf("survival defaults off: %+v", sur)
	}

	var bb BrickBreakerConfig
	if err := yaml.Unmarshal(defaultBrickBreakerYAML, &bb); err != nil {
		t.Fatalf("brickbreaker default yaml: %v", err)
	}
	if bb.Gameplay.Lives != 3 || bb.Bricks.Rows != 5 {
		t.Errorf("brickbreaker defaults off: %+v", bb)
	}

	var tl TrailLockConfig
	if err := yaml.Unmarshal(defaultTrailLockYAML, &tl); err != nil {
		t.Fatalf("traillock default yaml: %v", err)
	}
	if tl.Gameplay.Rounds != 10 || tl.Arena.MinWidth != 120 {
		t.Errorf("traillock defaults off: %+v", tl)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	var tag TagConfig
	if err := yaml.Unmarshal(defaultTagYAML, &tag); err != nil {
		t.Fatal(err)
	}
	if tag != DefaultTagConfig() {
		t.Errorf("embedded tag yaml diverged from DefaultTagConfig:\n%+v\n%+v", tag, DefaultTagConfig())
	}

	var sur SurvivalConfig
	if err := yaml.Unmarshal(defaultSurvivalYAML, &sur); err != nil {
		t.Fatal(err)
	}
	if sur != DefaultSurvivalConfig() {
		t.Errorf("embedded survival yaml diverged from DefaultSurvivalConfig")
	}
}

func TestLoadTagCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tag.yaml")
	body := []byte("physics:\n  gravity: 900\ngameplay:\n  match_time: 30\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTag(path)
	if err != nil {
		t.Fatalf("LoadTag: %v", err)
	}
	if cfg.Physics.Gravity != 900 || cfg.Gameplay.MatchTime != 30 {
		t.Errorf("custom values not applied: %+v", cfg)
	}

	if _, err := LoadTag(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTag(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestPresets(t *testing.T) {
	cfg := DefaultTagConfig()
	ApplyTagPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.TagCooldown != 0.5 {
		t.Errorf("hard tag cooldown = %v", cfg.Gameplay.TagCooldown)
	}

	bb := DefaultBrickBreakerConfig()
	ApplyBrickBreakerPreset(&bb, DifficultyEasy)
	if bb.Gameplay.Lives != 5 || bb.Physics.BallSpeed != 250 {
		t.Errorf("easy brickbreaker preset not applied: %+v", bb)
	}

	sur := DefaultSurvivalConfig()
	ApplySurvivalPreset(&sur, DifficultyFixed)
	if sur.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManager(t *testing.T) {
	m := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 45},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	})

	if got := m.Level(0); got != 0 {
		t.Errorf("Level(0) = %v", got)
	}
	if got := m.Level(45); got != 1 {
		t.Errorf("Level(45) = %v", got)
	}
	if got := m.Level(90); got != 1 {
		t.Errorf("Level(90) = %v, want clamped to 1", got)
	}

	if got := m.Speed(150, 45); got != 300 {
		t.Errorf("Speed at full ramp = %v, want 300", got)
	}
	if got := m.Interval(1.0, 45); got != 0.5 {
		t.Errorf("Interval at full ramp = %v, want 0.5", got)
	}

	m.SetEnabled(false)
	if got := m.Level(45); got != 0 {
		t.Errorf("Level with progression disabled = %v, want initial", got)
	}
}

func TestKeybindingsDefaults(t *testing.T) {
	kb := DefaultKeybindings()
	if err := kb.Validate(); err != nil {
		t.Fatalf("default bindings invalid: %v", err)
	}

	lut := kb.Lookup()
	if len(lut) != 16 {
		t.Errorf("lookup has %d entries, want 16", len(lut))
	}
	if b := lut["w"]; b.Player != 1 {
		t.Errorf("'w' bound to seat %d, want 1", b.Player)
	}
	if b := lut["left"]; b.Player != 2 {
		t.Errorf("'left' bound to seat %d, want 2", b.Player)
	}
}

func TestKeybindingsValidateRejectsConflicts(t *testing.T) {
	kb := Keybindings{Players: map[string]PlayerKeys{
		"1": {Up: "w", Down: "s", Left: "a", Right: "d"},
		"2": {Up: "w", Down: "x", Left: "z", Right: "c"},
	}}
	if err := kb.Validate(); err == nil {
		t.Error("expected duplicate-key error")
	}

	kb = Keybindings{Players: map[string]PlayerKeys{
		"7": {Up: "w"},
	}}
	if err := kb.Validate(); err == nil {
		t.Error("expected invalid-seat error")
	}
}

func TestLoadKeybindingsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.json")
	body := []byte(`{"players":{"1":{"up":"t","down":"g","left":"f","right":"h"}}}`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	kb, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if kb.Players["1"].Up != "t" {
		t.Errorf("custom binding not applied: %+v", kb)
	}

	if _, err := LoadKeybindings(filepath.Join(dir, "nope.json")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

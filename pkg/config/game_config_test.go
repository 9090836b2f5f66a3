package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Player.Speed != 480 {
		t.Errorf("player speed = %v, want 480", cfg.Player.Speed)
	}
	if cfg.Enemy.SpawnInterval != 2.9 || cfg.Cat.SpawnInterval != 1.0 {
		t.Errorf("spawn intervals = %v/%v, want 2.9/1.0", cfg.Enemy.SpawnInterval, cfg.Cat.SpawnInterval)
	}
	if cfg.Train.StepDuration != 0.3 {
		t.Errorf("train step = %v, want 0.3", cfg.Train.StepDuration)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
rules:
  startingLives: 3
player:
  headingMode: velocity
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Rules.StartingLives != 3 {
					t.Errorf("expected startingLives = 3, got %d", cfg.Rules.StartingLives)
				}
				if cfg.Rules.WinTrainLength != 5 {
					t.Errorf("expected default winTrainLength = 5, got %d", cfg.Rules.WinTrainLength)
				}
				if cfg.Player.HeadingMode != HeadingVelocity {
					t.Errorf("expected headingMode velocity, got %q", cfg.Player.HeadingMode)
				}
			},
		},
		{
			name:        "unknown heading mode",
			yamlContent: "player:\n  headingMode: sideways\n",
			wantErr:     true,
			errContains: "headingMode",
		},
		{
			name:        "zero lives",
			yamlContent: "rules:\n  startingLives: 0\n",
			wantErr:     true,
			errContains: "startingLives",
		},
		{
			name:        "negative inset",
			yamlContent: "enemy:\n  collisionInset: -1\n",
			wantErr:     true,
			errContains: "collisionInset",
		},
		{
			name:        "malformed yaml",
			yamlContent: "rules: [1, 2",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game_config.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestShippedGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", "data", "game_config.yaml"))
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	if cfg.Rules.StartingLives != 5 || cfg.Rules.WinTrainLength != 5 {
		t.Errorf("shipped rules = %+v", cfg.Rules)
	}
}

package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/zombieconga/pkg/embedded"
)

func TestLoadGameConfigDefaultsWithoutEmbedded(t *testing.T) {
	embedded.Init(nil)

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Rules.WinTrainLength != 5 {
		t.Errorf("WinTrainLength = %d, want default 5", cfg.Rules.WinTrainLength)
	}
}

func TestLoadGameConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		GameConfigPath: {Data: []byte("rules:\n  winTrainLength: 8\n")},
	})
	defer embedded.Init(nil)

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Rules.WinTrainLength != 8 || cfg.Rules.StartingLives != 5 {
		t.Errorf("rules = %+v, want winTrainLength 8 with default lives", cfg.Rules)
	}
}

func TestLoadGameConfigFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("seed: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGameConfig(good)
	if err != nil || cfg.Seed != 99 {
		t.Errorf("LoadGameConfig(good) = %+v, %v", cfg, err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  speed: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGameConfig(bad); err == nil {
		t.Error("invalid config should fail validation")
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

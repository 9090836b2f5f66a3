package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestStorage 在临时 HOME 下打开 gdata 存储
// 受限环境下无法打开时跳过测试
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	manager, err := gdata.Open(gdata.Config{AppName: "zombie_conga_test"})
	if err != nil {
		t.Skipf("gdata not available: %v", err)
	}
	return NewStorage(manager)
}

func TestStorageRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	if s.Exists("obj", "prop") {
		t.Fatal("fresh storage should be empty")
	}
	data, err := s.Load("obj", "prop")
	if err != nil || data != nil {
		t.Fatalf("Load missing = (%v, %v), want (nil, nil)", data, err)
	}

	if err := s.Save("obj", "prop", []byte("hello")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !s.Exists("obj", "prop") {
		t.Error("saved property should exist")
	}
	data, err = s.Load("obj", "prop")
	if err != nil || string(data) != "hello" {
		t.Errorf("Load = (%q, %v), want hello", data, err)
	}

	if err := s.Delete("obj", "prop"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Exists("obj", "prop") {
		t.Error("deleted property should not exist")
	}
	if err := s.Delete("obj", "prop"); err != nil {
		t.Errorf("deleting twice should not fail: %v", err)
	}
}

func TestStorageDegradedMode(t *testing.T) {
	storages := map[string]*Storage{
		"nil manager": NewStorage(nil),
		"nil storage": nil,
	}
	for name, s := range storages {
		t.Run(name, func(t *testing.T) {
			if s.Available() {
				t.Error("degraded storage should not be available")
			}
			if err := s.Save("obj", "prop", []byte("x")); err != nil {
				t.Errorf("Save should silently succeed: %v", err)
			}
			if s.Exists("obj", "prop") {
				t.Error("nothing should exist in degraded mode")
			}
			if data, err := s.Load("obj", "prop"); data != nil || err != nil {
				t.Errorf("Load = (%v, %v), want (nil, nil)", data, err)
			}
			if err := s.Delete("obj", "prop"); err != nil {
				t.Errorf("Delete should silently succeed: %v", err)
			}
		})
	}
}

func TestStorageYAML(t *testing.T) {
	s := newTestStorage(t)

	type record struct {
		Name  string `yaml:"name"`
		Count int    `yaml:"count"`
	}

	var out record
	found, err := s.loadYAML("rec", "one", &out)
	if found || err != nil {
		t.Fatalf("loadYAML missing = (%v, %v), want (false, nil)", found, err)
	}

	if err := s.saveYAML("rec", "one", record{Name: "conga", Count: 5}); err != nil {
		t.Fatalf("saveYAML failed: %v", err)
	}
	found, err = s.loadYAML("rec", "one", &out)
	if !found || err != nil {
		t.Fatalf("loadYAML = (%v, %v), want (true, nil)", found, err)
	}
	if out.Name != "conga" || out.Count != 5 {
		t.Errorf("loaded %+v", out)
	}

	if err := s.Save("rec", "bad", []byte("name: [unclosed")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.loadYAML("rec", "bad", &out); err == nil {
		t.Error("malformed YAML should return an error")
	}
}

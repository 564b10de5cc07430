package styles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGuidanceDefaults(t *testing.T) {
	r := NewRegistry()

	if got := r.Guidance("concise"); !strings.Contains(got, "concise") {
		t.Errorf("concise guidance = %q", got)
	}
	if got := r.Guidance("Detailed"); !strings.Contains(got, "detailed") {
		t.Errorf("style lookup should be case-insensitive, got %q", got)
	}

	standard := r.Guidance("standard")
	if r.Guidance("") != standard {
		t.Error("empty style should fall back to standard")
	}
	if r.Guidance("aggressive") != standard {
		t.Error("unknown style should fall back to standard")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	content := "concise: Keep it under one page.\nexecutive: Emphasize leadership scope.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Guidance("concise"); got != "Keep it under one page." {
		t.Errorf("override not applied, got %q", got)
	}
	if got := r.Guidance("executive"); got != "Emphasize leadership scope." {
		t.Errorf("new style not registered, got %q", got)
	}
	if got := r.Guidance("standard"); !strings.Contains(got, "balanced") {
		t.Errorf("default lost after load, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScenarioFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
}

func TestStoreListAndGet(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "one.json", `{"name":"one","teams":{"a":{"strategy":"hold"}}}`)
	writeScenarioFile(t, dir, "two.json", `{"name":"two","teams":{}}`)
	writeScenarioFile(t, dir, "notes.txt", "not a scenario")
	writeScenarioFile(t, dir, "broken.json", "{")

	store := NewStore(dir)
	infos, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(infos))
	}

	sc, err := store.Get("one")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sc.Name != "one" {
		t.Fatalf("expected scenario name one, got %q", sc.Name)
	}
	if _, err := store.Get("missing"); err == nil {
		t.Fatal("expected error for missing scenario")
	}
}

func TestStoreRejectsPathTraversal(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Get("../etc/passwd"); err == nil {
		t.Fatal("expected error for path traversal id")
	}
}

func TestStoreCachesByModTime(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "one.json", `{"name":"one","teams":{}}`)
	store := NewStore(dir)

	first, err := store.Get("one")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := store.Get("one")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first != second {
		t.Fatal("expected cached scenario pointer on unchanged file")
	}
}

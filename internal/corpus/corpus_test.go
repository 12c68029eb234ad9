// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ovoronina/corpus-annotator/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewManager(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1_raw.txt", "Первый текст.")
	writeFile(t, dir, "2_raw.txt", "Второй текст.")
	writeFile(t, dir, "1_meta.json", `{"id": 1}`)
	writeFile(t, dir, "2_meta.json", `{"id": 2}`)
	writeFile(t, dir, "notes.md", "not part of the corpus")

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	reg := m.Documents()
	if len(reg) != 2 {
		t.Fatalf("registered %d documents, want 2", len(reg))
	}

	doc, ok := reg[2]
	if !ok {
		t.Fatal("document 2 not registered")
	}
	if doc.RawPath != filepath.Join(dir, "2_raw.txt") {
		t.Errorf("raw path = %q", doc.RawPath)
	}

	text, err := doc.RawText()
	if err != nil {
		t.Fatalf("RawText: %v", err)
	}
	if text != "Второй текст." {
		t.Errorf("raw text = %q", text)
	}
}

func TestManagerIDsAscending(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"3_raw.txt", "1_raw.txt", "2_raw.txt"} {
		writeFile(t, dir, name, "text")
	}

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	ids := m.IDs()
	want := []int{1, 2, 3}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestRegistryBuilder(t *testing.T) {
	b := NewRegistryBuilder()
	if err := b.Add(types.NewDocument(1, "1_raw.txt")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Add(types.NewDocument(1, "1_raw.txt")); err == nil {
		t.Error("expected error adding duplicate id")
	}

	reg := b.Build()
	if len(reg) != 1 {
		t.Fatalf("registry size = %d, want 1", len(reg))
	}

	// The builder is frozen after Build.
	if err := b.Add(types.NewDocument(2, "2_raw.txt")); err == nil {
		t.Error("expected error adding after Build")
	}
}

func TestDocumentMeta(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1_raw.txt", "Текст статьи.")
	writeFile(t, dir, "1_meta.json", `{"id": 1, "url": "https://example.org/1", "title": "Заголовок", "author": "Иванов", "date": "2026-01-15"}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	meta, err := m.Documents()[1].Meta()
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if meta.Title != "Заголовок" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.ID != 1 {
		t.Errorf("id = %d", meta.ID)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus discovers raw text files in a dataset directory and owns
// the in-memory document registry for the lifetime of a run.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ovoronina/corpus-annotator/pkg/types"
)

// Registry maps document id to document handle. It is built once by a
// RegistryBuilder during the manager's scan and is read-only afterward;
// pipeline consumers only borrow the handles it owns.
type Registry map[int]*types.Document

// idPattern extracts the decimal id embedded in a raw filename.
var idPattern = regexp.MustCompile(`\d+`)

// RegistryBuilder accumulates documents during a directory scan and
// freezes them into a Registry. A builder must not be reused after Build.
type RegistryBuilder struct {
	docs Registry
}

// NewRegistryBuilder returns an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{docs: make(Registry)}
}

// Add registers one document. Adding after Build or adding a duplicate id
// is an error.
func (b *RegistryBuilder) Add(doc *types.Document) error {
	if b.docs == nil {
		return errors.New("registry builder already frozen")
	}
	if _, ok := b.docs[doc.ID]; ok {
		return fmt.Errorf("duplicate document id %d", doc.ID)
	}
	b.docs[doc.ID] = doc
	return nil
}

// Build freezes the builder and returns the registry.
func (b *RegistryBuilder) Build() Registry {
	r := b.docs
	b.docs = nil
	return r
}

// Manager scans a dataset directory for raw text files and registers one
// document per id. It does not validate dataset consistency; by contract
// dataset.Validate has already run on the same directory.
type Manager struct {
	dir      string
	registry Registry
}

// NewManager scans dir for *_raw.txt files and builds the registry. Raw
// text is not read during the scan; documents load it lazily.
func NewManager(dir string) (*Manager, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning dataset directory %s: %w", dir, err)
	}

	b := NewRegistryBuilder()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), types.RawSuffix) {
			continue
		}
		m := idPattern.FindString(e.Name())
		if m == "" {
			continue
		}
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if err := b.Add(types.NewDocument(id, filepath.Join(dir, e.Name()))); err != nil {
			return nil, err
		}
	}

	return &Manager{dir: dir, registry: b.Build()}, nil
}

// Documents returns the read-only registry.
func (m *Manager) Documents() Registry {
	return m.registry
}

// IDs returns the registered document ids in ascending order, for
// deterministic iteration.
func (m *Manager) IDs() []int {
	ids := make([]int, 0, len(m.registry))
	for id := range m.registry {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Dir returns the dataset directory the manager was constructed with.
func (m *Manager) Dir() string {
	return m.dir
}

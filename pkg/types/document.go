// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactKind identifies one of the three persisted rendered views of a
// document.
type ArtifactKind string

const (
	ArtifactCleaned        ArtifactKind = "cleaned"
	ArtifactSingleTagged   ArtifactKind = "single_tagged"
	ArtifactMultipleTagged ArtifactKind = "multiple_tagged"
)

// ArtifactKinds lists the artifact kinds in persistence order.
var ArtifactKinds = []ArtifactKind{ArtifactCleaned, ArtifactSingleTagged, ArtifactMultipleTagged}

// RawSuffix is the fixed suffix of raw text files in a dataset directory.
const RawSuffix = "_raw.txt"

// MetaSuffix is the fixed suffix of metadata sidecar files.
const MetaSuffix = "_meta.json"

// Document represents one corpus entry: a raw text file plus its metadata
// sidecar, identified by the decimal id embedded in the filename. Documents
// are constructed by the corpus manager during the directory scan and
// mutated only by the pipeline when it records written artifacts.
type Document struct {
	// ID is the positive document id parsed from the raw filename. Ids are
	// assigned by the collector that produced the dataset, never generated
	// here.
	ID int

	// RawPath is the path to the raw text file (<id>_raw.txt).
	RawPath string

	artifacts map[ArtifactKind]string
}

// NewDocument creates a document handle for the raw file at rawPath.
func NewDocument(id int, rawPath string) *Document {
	return &Document{
		ID:        id,
		RawPath:   rawPath,
		artifacts: make(map[ArtifactKind]string),
	}
}

// RawText loads the document's raw text. Loading is lazy: the registry
// stores only paths, and the dataset validator has already guaranteed the
// file exists and is non-empty.
func (d *Document) RawText() (string, error) {
	data, err := os.ReadFile(d.RawPath)
	if err != nil {
		return "", fmt.Errorf("reading raw text for document %d: %w", d.ID, err)
	}
	return string(data), nil
}

// MetaPath returns the path of the metadata sidecar next to the raw file.
func (d *Document) MetaPath() string {
	return filepath.Join(filepath.Dir(d.RawPath), fmt.Sprintf("%d%s", d.ID, MetaSuffix))
}

// Meta reads and decodes the metadata sidecar.
func (d *Document) Meta() (DocumentMeta, error) {
	var meta DocumentMeta
	data, err := os.ReadFile(d.MetaPath())
	if err != nil {
		return meta, fmt.Errorf("reading metadata for document %d: %w", d.ID, err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("parsing metadata for document %d: %w", d.ID, err)
	}
	return meta, nil
}

// ArtifactPath returns the path an artifact of the given kind is written
// to, next to the raw file: <id>_<kind>.txt.
func (d *Document) ArtifactPath(kind ArtifactKind) string {
	return filepath.Join(filepath.Dir(d.RawPath), fmt.Sprintf("%d_%s.txt", d.ID, kind))
}

// SetArtifact records the path of a written artifact view.
func (d *Document) SetArtifact(kind ArtifactKind, path string) {
	d.artifacts[kind] = path
}

// Artifact returns the recorded path for kind and whether that view has
// been written during this run.
func (d *Document) Artifact(kind ArtifactKind) (string, bool) {
	path, ok := d.artifacts[kind]
	return path, ok
}

// DocumentMeta holds the sidecar metadata written by the collector that
// produced the dataset.
type DocumentMeta struct {
	ID     int    `json:"id" yaml:"id"`
	URL    string `json:"url" yaml:"url"`
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Date   string `json:"date" yaml:"date"`
}

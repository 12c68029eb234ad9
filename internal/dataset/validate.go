// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset validates the shape of a numbered corpus directory
// before any document is touched: contiguous numbering from 1 on both the
// raw and the metadata side, equal file counts, no zero-byte files.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ovoronina/corpus-annotator/pkg/types"
)

// Validation failures. ErrInconsistentDataset covers numbering gaps and
// duplicates, count mismatches, zero-byte files, and non-matching id sets;
// the others are path-shape failures. All are fatal: nothing is processed
// after a failed validation.
var (
	ErrPathNotFound        = errors.New("dataset path does not exist")
	ErrNotADirectory       = errors.New("dataset path is not a directory")
	ErrEmptyDirectory      = errors.New("dataset directory is empty")
	ErrInconsistentDataset = errors.New("inconsistent dataset")
)

// digitPattern extracts the decimal id embedded in a dataset filename.
var digitPattern = regexp.MustCompile(`\d+`)

// Validate checks that dir forms a structurally consistent numbered
// corpus. Checks run in a fixed order and stop at the first failure, since
// later checks assume earlier invariants. Validate never modifies the
// directory.
func Validate(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, dir)
		}
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyDirectory, dir)
	}

	rawIDs, err := collectIDs(entries, types.RawSuffix)
	if err != nil {
		return err
	}
	metaIDs, err := collectIDs(entries, types.MetaSuffix)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		if fi.Size() == 0 {
			return fmt.Errorf("%w: zero-byte file %s", ErrInconsistentDataset, e.Name())
		}
	}

	if err := checkContiguous(rawIDs, "raw"); err != nil {
		return err
	}
	if err := checkContiguous(metaIDs, "meta"); err != nil {
		return err
	}

	if !equalIDs(rawIDs, metaIDs) {
		return fmt.Errorf("%w: raw and meta file ids do not match", ErrInconsistentDataset)
	}
	if len(rawIDs) != len(metaIDs) {
		return fmt.Errorf("%w: %d raw files but %d meta files",
			ErrInconsistentDataset, len(rawIDs), len(metaIDs))
	}

	return nil
}

// collectIDs gathers the decimal ids of every file in entries whose name
// carries the given suffix.
func collectIDs(entries []os.DirEntry, suffix string) ([]int, error) {
	var ids []int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		m := digitPattern.FindString(e.Name())
		if m == "" {
			return nil, fmt.Errorf("%w: no id in filename %s", ErrInconsistentDataset, e.Name())
		}
		id, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("%w: bad id in filename %s", ErrInconsistentDataset, e.Name())
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// checkContiguous verifies that ids, sorted, form the run 1..N with no
// duplicates or gaps. side names the file class for the error message.
func checkContiguous(ids []int, side string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no %s files found", ErrInconsistentDataset, side)
	}
	sort.Ints(ids)
	if ids[0] != 1 {
		return fmt.Errorf("%w: %s numbering starts at %d, want 1",
			ErrInconsistentDataset, side, ids[0])
	}
	for i, id := range ids {
		if id != i+1 {
			return fmt.Errorf("%w: %s numbering has a gap or duplicate at %d",
				ErrInconsistentDataset, side, id)
		}
	}
	return nil
}

// equalIDs reports whether two sorted id lists are identical.
func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

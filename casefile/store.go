package casefile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonlawlor/cartesian"
)

// File name suffixes of the three datasets of a case.
const (
	FullSuffix    = ".in"
	ReducedSuffix = "_reduced.in"
	AnswerSuffix  = ".ans"
)

// Case is a generated test case: the full product, the reduced dataset
// derived from it, and the complete subset found in the reduced dataset.
// Datasets that have not been written are nil.
type Case struct {
	ID      string
	Full    cartesian.Rows
	Reduced cartesian.Rows
	Minimal cartesian.Rows
}

// Store keeps cases as files in a single directory.
//
// Layout, for a case with id "test1":
//
//	test1.in          full product
//	test1_reduced.in  reduced dataset
//	test1.ans         complete subset of the reduced dataset
//
// Every file is written to a temporary file first and renamed into place, so
// a file is either absent or complete.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("casefile: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the path of the file with the given name in the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteInput writes the full and reduced datasets of case id.
func (s *Store) WriteInput(id string, full, reduced cartesian.Rows) error {
	if err := s.writeRows(id+FullSuffix, full); err != nil {
		return err
	}
	return s.writeRows(id+ReducedSuffix, reduced)
}

// WriteAnswer writes the complete subset found for case id.
func (s *Store) WriteAnswer(id string, minimal cartesian.Rows) error {
	return s.writeRows(id+AnswerSuffix, minimal)
}

// ReadCase reads back the datasets of case id.  Missing files leave the
// corresponding field nil; a case with no files at all is an error wrapping
// fs.ErrNotExist.
func (s *Store) ReadCase(id string) (Case, error) {
	c := Case{ID: id}
	found := false
	for _, f := range []struct {
		suffix string
		dst    *cartesian.Rows
	}{
		{FullSuffix, &c.Full},
		{ReducedSuffix, &c.Reduced},
		{AnswerSuffix, &c.Minimal},
	} {
		rows, err := s.readRows(id + f.suffix)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Case{}, err
		}
		*f.dst = rows
		found = true
	}
	if !found {
		return Case{}, fmt.Errorf("casefile: case %q: %w", id, fs.ErrNotExist)
	}
	return c, nil
}

// WriteErrorLog writes ids to the named file, one per line.  An empty list
// produces an empty file.
func (s *Store) WriteErrorLog(name string, ids []string) error {
	return s.atomicWrite(name, func(w *bufio.Writer) error {
		for _, id := range ids {
			if _, err := w.WriteString(id + "\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadErrorLog reads the ids from the named file.
func (s *Store) ReadErrorLog(name string) ([]string, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("casefile: open error log: %w", err)
	}
	defer f.Close()

	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			ids = append(ids, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("casefile: read error log: %w", err)
	}
	return ids, nil
}

func (s *Store) writeRows(name string, rows cartesian.Rows) error {
	return s.atomicWrite(name, func(w *bufio.Writer) error {
		return WriteRows(w, rows)
	})
}

func (s *Store) readRows(name string) (cartesian.Rows, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("casefile: open %s: %w", name, err)
	}
	defer f.Close()
	rows, err := ReadRows(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("casefile: %s: %w", name, err)
	}
	return rows, nil
}

// atomicWrite writes a temporary file in the store with fill and renames it
// to name once it is complete.
func (s *Store) atomicWrite(name string, fill func(*bufio.Writer) error) (err error) {
	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("casefile: create %s: %w", name, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = fill(w); err != nil {
		return fmt.Errorf("casefile: write %s: %w", name, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("casefile: flush %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("casefile: close %s: %w", name, err)
	}
	if err = os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("casefile: rename %s: %w", name, err)
	}
	return nil
}

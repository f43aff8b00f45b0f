package casefile

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonlawlor/cartesian"
)

func TestStoreCase(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "cases"))
	require.NoError(t, err)

	full := cartesian.Product(cartesian.NewSet(1, 2), cartesian.NewSet(3, 4))
	reduced := full.Without(3)
	minimal := reduced.Select(0b011)

	require.NoError(t, s.WriteInput("test1", full, reduced))
	require.NoError(t, s.WriteAnswer("test1", minimal))

	data, err := os.ReadFile(s.Path("test1_reduced.in"))
	require.NoError(t, err)
	assert.Equal(t, "1 3\n1 4\n2 3\n", string(data))

	c, err := s.ReadCase("test1")
	require.NoError(t, err)
	assert.Equal(t, "test1", c.ID)
	assert.True(t, c.Full.Equal(full))
	assert.True(t, c.Reduced.Equal(reduced))
	assert.True(t, c.Minimal.Equal(minimal))

	// no temporary files are left behind
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.ElementsMatch(t, []string{"test1.in", "test1_reduced.in", "test1.ans"}, names)
}

func TestStoreCasePartial(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	full := cartesian.Product(cartesian.NewSet(1), cartesian.NewSet(2, 3))
	require.NoError(t, s.WriteInput("test2", full, full))

	c, err := s.ReadCase("test2")
	require.NoError(t, err)
	assert.True(t, c.Reduced.Equal(full))
	assert.Nil(t, c.Minimal)

	_, err = s.ReadCase("missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStoreErrorLog(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.WriteErrorLog("errors.txt", []string{"test3", "test7"}))
	data, err := os.ReadFile(s.Path("errors.txt"))
	require.NoError(t, err)
	assert.Equal(t, "test3\ntest7\n", string(data))

	ids, err := s.ReadErrorLog("errors.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"test3", "test7"}, ids)

	require.NoError(t, s.WriteErrorLog("errors.txt", nil))
	ids, err = s.ReadErrorLog("errors.txt")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStoreAtomicWriteFailure(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	errFill := errors.New("fill failed")
	fail := func(w *bufio.Writer) error {
		if _, err := w.WriteString("1 2\n"); err != nil {
			return err
		}
		return errFill
	}

	// a failed write leaves nothing behind
	err = s.atomicWrite("test1.ans", fail)
	assert.ErrorIs(t, err, errFill)
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)

	// and does not touch a file that is already there
	answer := cartesian.NewRows([]int64{3, 4})
	require.NoError(t, s.WriteAnswer("test1", answer))
	err = s.atomicWrite("test1.ans", fail)
	assert.ErrorIs(t, err, errFill)

	entries, err = os.ReadDir(s.Dir())
	require.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "test1.ans", entries[0].Name())
	}
	c, err := s.ReadCase("test1")
	require.NoError(t, err)
	assert.True(t, c.Minimal.Equal(answer))
}

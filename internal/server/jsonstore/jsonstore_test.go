package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestAll_MissingFile(t *testing.T) {
	c := New[item](t.TempDir(), "things")

	items, err := c.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAll_MalformedFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o660))

	c := New[item](dir, "things")

	items, err := c.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMutate_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	c := New[item](dir, "things")
	err := c.Mutate(func(items []item) ([]item, error) {
		return append(items, item{ID: "1", Name: "one"}), nil
	})
	require.NoError(t, err)

	// a fresh Collection over the same file sees the write
	c2 := New[item](dir, "things")
	items, err := c2.All()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Name)
}

func TestMutate_ErrorLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	c := New[item](dir, "things")

	require.NoError(t, c.Mutate(func(items []item) ([]item, error) {
		return append(items, item{ID: "1"}), nil
	}))

	boom := errors.New("boom")
	err := c.Mutate(func(items []item) ([]item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	items, err := c.All()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMutate_ConcurrentAppendsAllSurvive(t *testing.T) {
	c := New[item](t.TempDir(), "things")

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = c.Mutate(func(items []item) ([]item, error) {
				return append(items, item{ID: "x"}), nil
			})
		}()
	}
	wg.Wait()

	items, err := c.All()
	require.NoError(t, err)
	assert.Len(t, items, n)
}

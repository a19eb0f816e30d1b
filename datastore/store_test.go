package datastore_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/statestack/datastore"
)

func TestStoreBasic(t *testing.T) {
	t.Parallel()
	s := datastore.New()

	assert.False(t, s.Contains("score"))
	assert.True(t, s.Add("score", 10))
	assert.False(t, s.Add("score", 20), "add does not overwrite")
	assert.True(t, s.Contains("score"))
	assert.Equal(t, 1, s.Count())

	v, err := datastore.Get[int](s, "score")
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	assert.True(t, s.Update("score", 30))
	assert.False(t, s.Update("lives", 3), "update needs an existing key")
	assert.False(t, s.Contains("lives"))

	v, err = datastore.Get[int](s, "score")
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	assert.True(t, s.Remove("score"))
	assert.False(t, s.Remove("score"))
	assert.Equal(t, 0, s.Count())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	s := datastore.New()
	s.Add("name", "player-one")
	s.Add("empty", nil)

	t.Run("Missing", func(t *testing.T) {
		v, err := datastore.Get[string](s, "nope")
		assert.True(t, datastore.IsNotFound(err))
		assert.Zero(t, v)
	})

	t.Run("WrongType", func(t *testing.T) {
		v, err := datastore.Get[int](s, "name")
		require.Error(t, err)
		assert.True(t, datastore.IsTypeMismatch(err))
		assert.Zero(t, v)

		var tme *datastore.TypeMismatchError
		require.ErrorAs(t, err, &tme)
		assert.Equal(t, "name", tme.Key)
		assert.Equal(t, "int", tme.Want)
		assert.Equal(t, "string", tme.Got)
	})

	t.Run("StoredNil", func(t *testing.T) {
		v, err := datastore.Get[*struct{}](s, "empty")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("Interface", func(t *testing.T) {
		v, err := datastore.Get[fmt.Stringer](s, "name")
		assert.True(t, datastore.IsTypeMismatch(err))
		assert.Nil(t, v)
	})

	t.Run("GetOr", func(t *testing.T) {
		assert.Equal(t, 7, datastore.GetOr(s, "name", 7))
		assert.Equal(t, "player-one", datastore.GetOr(s, "name", "anon"))
		assert.Equal(t, "anon", datastore.GetOr(s, "missing", "anon"))
	})
}

func TestClearKeysSnapshot(t *testing.T) {
	t.Parallel()
	s := datastore.New()
	s.Add("b", 2)
	s.Add("a", 1)
	s.Add("c", []int{3})

	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())

	snap := s.Snapshot()
	assert.Len(t, snap, 3)
	delete(snap, "a")
	assert.True(t, s.Contains("a"), "snapshot is a copy")

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Keys())
	assert.True(t, s.Add("a", 1), "store is usable after Clear")
}

func TestDefaultIsSingleton(t *testing.T) {
	a := datastore.Default()
	b := datastore.Default()
	require.NotNil(t, a)
	assert.Same(t, a, b)

	key := fmt.Sprintf("singleton-%p", t)
	require.True(t, a.Add(key, true))
	t.Cleanup(func() { a.Remove(key) })
	assert.True(t, b.Contains(key))
}

func TestConcurrentAddIsAtomicPerKey(t *testing.T) {
	t.Parallel()
	s := datastore.New()
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if s.Add("winner", id) {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 1, s.Count())
}

func TestConcurrentMixedOperations(t *testing.T) {
	t.Parallel()
	s := datastore.New()
	const nWorkers = 50
	const nOpsPerWorker = 50
	var wg sync.WaitGroup

	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < nOpsPerWorker; j++ {
				key := fmt.Sprintf("w%d_j%d", workerID, j)
				s.Add(key, j)
				v, err := datastore.Get[int](s, key)
				if err != nil || v != j {
					t.Errorf("concurrent Add/Get mismatch for key %s: got %v, %v", key, v, err)
				}
				s.Update(key, j+1)
				if j%10 == 0 {
					s.Remove(key)
				}
				_ = s.Keys()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, nWorkers*(nOpsPerWorker-nOpsPerWorker/10), s.Count())
}

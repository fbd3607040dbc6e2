package pagestore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct{ hits int }

func TestPutGetDelete(t *testing.T) {
	s := New[*page](time.Minute)
	id := s.Put(&page{hits: 1})
	require.NotEmpty(t, id)

	p, err := s.Get(id)
	require.NoError(t, err)
	p.hits++

	again, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 2, again.hits, "store hands out the same page session")
	assert.Equal(t, 1, s.Len())

	s.Delete(id)
	_, err = s.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiry(t *testing.T) {
	s := New[*page](20 * time.Millisecond)
	id := s.Put(&page{})
	time.Sleep(40 * time.Millisecond)

	_, err := s.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDistinctIDs(t *testing.T) {
	s := New[*page](time.Minute)
	assert.NotEqual(t, s.Put(&page{}), s.Put(&page{}))
}

func TestDeleteIsNotUndoneByConcurrentGet(t *testing.T) {
	for range 50 {
		s := New[*page](time.Minute)
		id := s.Put(&page{})

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					_, _ = s.Get(id)
				}
			}()
		}
		s.Delete(id)
		wg.Wait()

		_, err := s.Get(id)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 0, s.Len())
	}
}

package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/teamsplit/internal/roster"
)

func TestStoreGetMissing(t *testing.T) {
	t.Parallel()
	s := NewStore()

	got := s.Get(1)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, s.Has(1))
	assert.Equal(t, 0, s.Len())
}

func TestStorePutOverwrites(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.Put(1, roster.Roster{"a", "b"})
	s.Put(1, roster.Roster{"c"})
	s.Put(2, roster.Roster{"d"})

	assert.Equal(t, roster.Roster{"c"}, s.Get(1))
	assert.Equal(t, roster.Roster{"d"}, s.Get(2))
	assert.Equal(t, 2, s.Len())
}

func TestStoreIsolatesCopies(t *testing.T) {
	t.Parallel()
	s := NewStore()

	in := roster.Roster{"a", "b"}
	s.Put(1, in)
	in[0] = "changed"

	out := s.Get(1)
	out[1] = "changed"

	assert.Equal(t, roster.Roster{"a", "b"}, s.Get(1))
}

func TestStoreConcurrentUsers(t *testing.T) {
	t.Parallel()
	s := NewStore()

	var wg sync.WaitGroup
	for user := range int64(32) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				want := roster.Roster{fmt.Sprintf("u%d", user), fmt.Sprintf("i%d", i)}
				s.Put(user, want)
				assert.Equal(t, want, s.Get(user))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, s.Len())
	assert.Equal(t, roster.Roster{"u7", "i49"}, s.Get(7))
}

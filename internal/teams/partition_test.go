package teams

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/teamsplit/internal/randutil"
	"github.com/lox/teamsplit/internal/roster"
)

func players(n int) roster.Roster {
	out := make(roster.Roster, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%02d", i)
	}
	return out
}

func flatten(teams []Team) []string {
	var all []string
	for _, team := range teams {
		all = append(all, team...)
	}
	sort.Strings(all)
	return all
}

func TestPartitionConservesMembers(t *testing.T) {
	t.Parallel()
	p := NewPartitioner(6, randutil.New(42))

	for _, n := range []int{0, 6, 12, 18, 24} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := players(n)
			for range 20 {
				got := p.Partition(in)
				require.Len(t, got, n/6)
				for _, team := range got {
					assert.Len(t, team, 6)
				}
				want := append([]string(nil), in...)
				sort.Strings(want)
				if n == 0 {
					assert.Empty(t, flatten(got))
				} else {
					assert.Equal(t, want, flatten(got))
				}
			}
		})
	}
}

func TestPartitionTeamCount(t *testing.T) {
	t.Parallel()
	p := NewPartitioner(6, randutil.New(1))

	tests := []struct {
		n     int
		teams int
	}{
		{0, 0}, {5, 0}, {6, 1}, {11, 1}, {13, 2}, {24, 4},
	}
	for _, tt := range tests {
		assert.Len(t, p.Partition(players(tt.n)), tt.teams, "n=%d", tt.n)
		assert.Equal(t, tt.n%6, p.Leftover(tt.n))
	}
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	p := NewPartitioner(6, randutil.New(3))

	in := players(12)
	before := in.Clone()
	_ = p.Partition(in)
	assert.Equal(t, before, in)
}

func TestPartitionDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := NewPartitioner(6, randutil.New(99)).Partition(players(24))
	b := NewPartitioner(6, randutil.New(99)).Partition(players(24))
	assert.Equal(t, a, b)
}

func TestPartitionShuffles(t *testing.T) {
	t.Parallel()
	p := NewPartitioner(6, randutil.New(5))

	in := players(24)
	seen := make(map[string]bool)
	for range 50 {
		seen[fmt.Sprint(p.Partition(in))] = true
	}
	assert.Greater(t, len(seen), 1, "expected different orderings across draws")
}

func TestPartitionFirstSlotIsUniform(t *testing.T) {
	t.Parallel()
	p := NewPartitioner(6, randutil.New(11))

	in := players(6)
	counts := make(map[string]int)
	const draws = 6000
	for range draws {
		counts[p.Partition(in)[0][0]]++
	}
	for _, name := range in {
		// expected 1000 per player
		assert.InDelta(t, 1000, counts[name], 200, "player %s", name)
	}
}

func TestPartitionConcurrent(t *testing.T) {
	t.Parallel()
	p := NewPartitioner(6, randutil.New(8))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got := p.Partition(players(18))
				assert.Len(t, got, 3)
			}
		}()
	}
	wg.Wait()
}

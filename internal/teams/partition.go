// Package teams randomly splits a roster into fixed-size teams.
package teams

import (
	rand "math/rand/v2"
	"sync"

	"github.com/samber/lo"

	"github.com/lox/teamsplit/internal/roster"
)

// Team is one fixed-size group of players.
type Team []string

// Partitioner shuffles rosters with a shared RNG.
type Partitioner struct {
	size     int
	rng      *rand.Rand
	rngMutex sync.Mutex // rand.Rand is not safe for concurrent use
}

// NewPartitioner returns a partitioner producing teams of size players.
func NewPartitioner(size int, rng *rand.Rand) *Partitioner {
	return &Partitioner{size: size, rng: rng}
}

// Size returns the team size.
func (p *Partitioner) Size() int {
	return p.size
}

// Partition shuffles a copy of r and slices it into consecutive teams.
// Players that do not fill a final full-size team are dropped, so the result
// always has len(r)/size teams.
func (p *Partitioner) Partition(r roster.Roster) []Team {
	if p.size <= 0 {
		return nil
	}
	players := r.Clone()

	p.rngMutex.Lock()
	p.rng.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
	p.rngMutex.Unlock()

	full := len(players) / p.size * p.size
	return lo.Map(lo.Chunk([]string(players[:full]), p.size), func(chunk []string, _ int) Team {
		return Team(chunk)
	})
}

// Leftover returns how many players Partition would drop from a roster of n.
func (p *Partitioner) Leftover(n int) int {
	if p.size <= 0 {
		return n
	}
	return n % p.size
}

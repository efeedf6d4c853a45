package cache

import "sync"

// Generations counts invalidations per key. A read-through fill records the
// generation before reading the source and is dropped if an invalidation ran
// in between, so a slow reader cannot put an outdated record back.
//
// The counters are per process; instances sharing one Redis still rely on the TTL.
type Generations struct {
	mu   sync.Mutex
	gens map[string]uint64
}

func NewGenerations() *Generations {
	return &Generations{gens: make(map[string]uint64)}
}

// Current returns the generation to pass to Fill.
func (g *Generations) Current(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[key]
}

// Fill runs set only when key was not invalidated since gen was taken.
// It reports whether set ran.
func (g *Generations) Fill(key string, gen uint64, set func() error) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gens[key] != gen {
		return false, nil
	}
	return true, set()
}

// Invalidate bumps the generation of key and runs del under the same lock,
// so no Fill can land between the two.
func (g *Generations) Invalidate(key string, del func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gens[key]++
	return del()
}

package model

import "sync"

// countPool recycles the neighbor-count maps Advance fills every tick.
var countPool = newCountMapPool()

// countMapPool for memory efficiency across Advance calls
type countMapPool struct {
	pool sync.Pool
}

func newCountMapPool() *countMapPool {
	return &countMapPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Coord]int)
			},
		},
	}
}

// Get retrieves an empty neighbor-count map from the pool
func (p *countMapPool) Get() map[Coord]int {
	return p.pool.Get().(map[Coord]int)
}

// Put returns a count map to the pool, clearing its entries
func (p *countMapPool) Put(m map[Coord]int) {
	clear(m)
	p.pool.Put(m)
}

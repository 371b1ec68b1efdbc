// internal/form/pool.go
package form

import "sync"

// Pool keeps one Controller per key, so each signed-in admin edits their own
// draft.
type Pool[D Draft[D]] struct {
	mu          sync.Mutex
	controllers map[string]*Controller[D]
	factory     func() *Controller[D]
}

func NewPool[D Draft[D]](factory func() *Controller[D]) *Pool[D] {
	return &Pool[D]{
		controllers: make(map[string]*Controller[D]),
		factory:     factory,
	}
}

func (p *Pool[D]) Get(key string) *Controller[D] {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.controllers[key]
	if !ok {
		c = p.factory()
		p.controllers[key] = c
	}
	return c
}

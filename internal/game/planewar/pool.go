package planewar

// Free-list pools for the two entity kinds that churn every few ticks.
// Pooling keeps steady-state play free of per-tick allocations; entities
// are fully reconfigured on reuse, so no stale state leaks between lives.

// PoolStats reports pool usage for debugging and tests.
type PoolStats struct {
	Free      int // Objects waiting for reuse
	Allocated int // Total objects ever created by this pool
}

// BulletPool recycles Bullet objects.
type BulletPool struct {
	free      []*Bullet
	allocated int
}

// NewBulletPool creates a pool pre-filled with size bullets.
func NewBulletPool(size int) *BulletPool {
	p := &BulletPool{free: make([]*Bullet, 0, size)}
	for i := 0; i < size; i++ {
		p.free = append(p.free, &Bullet{})
		p.allocated++
	}
	return p
}

// Get returns a bullet from the pool, allocating if the pool is empty.
func (p *BulletPool) Get() *Bullet {
	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free = p.free[:n-1]
		return b
	}
	p.allocated++
	return &Bullet{}
}

// Put returns a bullet to the pool.
func (p *BulletPool) Put(b *Bullet) {
	b.alive = false
	p.free = append(p.free, b)
}

// Stats returns current pool usage.
func (p *BulletPool) Stats() PoolStats {
	return PoolStats{Free: len(p.free), Allocated: p.allocated}
}

// EnemyPool recycles Enemy objects.
type EnemyPool struct {
	free      []*Enemy
	allocated int
}

// NewEnemyPool creates a pool pre-filled with size enemies.
func NewEnemyPool(size int) *EnemyPool {
	p := &EnemyPool{free: make([]*Enemy, 0, size)}
	for i := 0; i < size; i++ {
		p.free = append(p.free, &Enemy{})
		p.allocated++
	}
	return p
}

// Get returns an enemy from the pool, allocating if the pool is empty.
func (p *EnemyPool) Get() *Enemy {
	if n := len(p.free); n > 0 {
		e := p.free[n-1]
		p.free = p.free[:n-1]
		return e
	}
	p.allocated++
	return &Enemy{}
}

// Put returns an enemy to the pool.
func (p *EnemyPool) Put(e *Enemy) {
	e.alive = false
	p.free = append(p.free, e)
}

// Stats returns current pool usage.
func (p *EnemyPool) Stats() PoolStats {
	return PoolStats{Free: len(p.free), Allocated: p.allocated}
}

// Package clock abstrae la hora actual para poder fijarla en tests.
package clock

import (
	"sync"
	"time"
)

// Clock devuelve la hora actual.
type Clock interface {
	Now() time.Time
}

// System usa time.Now.
type System struct{}

// Now implementa Clock.
func (System) Now() time.Time { return time.Now() }

// Fake es un reloj fijo que sólo avanza con Advance o Set.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake construye un reloj fijo en t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now implementa Clock.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance adelanta el reloj.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set fija la hora.
func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

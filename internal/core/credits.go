package core

import "sync"

// Credits tracks the gateway account's balance. Bare transfers and forwarded
// call values are credited here; the core never debits below zero.
type Credits struct {
	mu      sync.Mutex
	balance uint64
}

// NewCredits creates a balance with an initial amount.
func NewCredits(initial uint64) *Credits {
	return &Credits{balance: initial}
}

// Add increases the credit balance.
func (c *Credits) Add(amount uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balance += amount
}

// Spend decreases the balance, reporting false if funds are insufficient.
func (c *Credits) Spend(amount uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balance < amount {
		return false
	}
	c.balance -= amount
	return true
}

// Balance returns the current balance.
func (c *Credits) Balance() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

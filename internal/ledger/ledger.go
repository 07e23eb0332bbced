// Package ledger records the orders submitted during one run of the program.
// Orders live in an encrypted zstore collection over an in-memory
// filesystem keyed by a random per-process passphrase; nothing reaches disk
// and everything is gone once the process exits.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zorder/internal/billing"
)

const (
	collectionName = "orders"
	keySize        = 32
)

// Order is a submitted billing record.
type Order struct {
	billing.State
	SubmittedAt time.Time `json:"submittedAt"`
}

// Ledger holds the orders submitted this session.
type Ledger struct {
	store  *zstore.Store
	orders *zstore.Collection[Order]
}

// Open creates an empty session ledger.
func Open() (*Ledger, error) {
	pass, err := zcrypto.RandBytes(keySize)
	if err != nil {
		return nil, fmt.Errorf("open ledger: session key: %w", err)
	}
	defer zcrypto.Erase(pass)

	s, err := zstore.Open(zfilesystem.NewMemFS(), pass)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	col, err := zstore.NewCollection[Order](s, collectionName)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	return &Ledger{store: s, orders: col}, nil
}

// Record stores a submitted order keyed by its tracking identifier.
func (l *Ledger) Record(s billing.State, at time.Time) error {
	if s.Tracking == "" {
		return fmt.Errorf("record order: missing tracking")
	}
	o := Order{State: s, SubmittedAt: at.UTC()}
	if err := l.orders.Put(s.Tracking, o); err != nil {
		return fmt.Errorf("record order %s: %w", s.Tracking, err)
	}
	return nil
}

// Get returns the order with the given tracking identifier.
func (l *Ledger) Get(tracking string) (Order, error) {
	o, err := l.orders.Get(tracking)
	if err != nil {
		return Order{}, fmt.Errorf("get order %s: %w", tracking, err)
	}
	return o, nil
}

// List returns every order, newest first.
func (l *Ledger) List() ([]Order, error) {
	orders, err := l.orders.List()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	// zstore.List does not guarantee order
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].SubmittedAt.Equal(orders[j].SubmittedAt) {
			return orders[i].Tracking > orders[j].Tracking
		}
		return orders[i].SubmittedAt.After(orders[j].SubmittedAt)
	})
	return orders, nil
}

// Count returns how many orders were submitted.
func (l *Ledger) Count() (int, error) {
	orders, err := l.orders.List()
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return len(orders), nil
}

// Close releases the store and its key.
func (l *Ledger) Close() {
	if l.store != nil {
		l.store.Close()
	}
}

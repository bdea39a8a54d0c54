// Package memory implements storage.Storage in process memory. It is the
// default engine of the placeholder backend and loses everything on exit.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/storage"

	"github.com/google/uuid"
)

// Memory implements storage.Storage.
type Memory struct {
	mu      sync.RWMutex
	byEmail map[domain.EmailAddress]domain.Signup

	// txMu serializes transactions.
	txMu sync.Mutex
	now  func() time.Time
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty store.
func New() *Memory {
	return &Memory{
		byEmail: make(map[domain.EmailAddress]domain.Signup),
		now:     time.Now,
	}
}

func (m *Memory) newSignup(signup domain.Signup) domain.Signup {
	signup.ID = domain.SignupID(uuid.New())
	signup.CreatedAt = m.now().UTC()

	return signup
}

// StoreSignup implements storage.SignupStorage.
func (m *Memory) StoreSignup(ctx context.Context, signup domain.Signup) (*domain.Signup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[signup.Email]; ok {
		return nil, nil
	}
	stored := m.newSignup(signup)
	m.byEmail[stored.Email] = stored

	return &stored, nil
}

// SignupByEmail implements storage.SignupStorage.
func (m *Memory) SignupByEmail(ctx context.Context, email domain.EmailAddress) (*domain.Signup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	signup, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}

	return &signup, nil
}

// CountSignups implements storage.SignupStorage.
func (m *Memory) CountSignups(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.byEmail)), nil
}

// Close implements storage.Storage. It is a no-op.
func (m *Memory) Close() error {
	return nil
}

// WithTx implements storage.Storage. Writes made through tx become visible
// to other callers only when cb returns nil. A staged email stored outside
// the transaction meanwhile fails the commit with storage.ErrConflict.
func (m *Memory) WithTx(ctx context.Context, cb func(tx storage.SignupStorage) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := &memTx{parent: m, pending: make(map[domain.EmailAddress]domain.Signup)}
	if err := cb(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for email := range tx.pending {
		if _, ok := m.byEmail[email]; ok {
			return fmt.Errorf("could not commit signup for %q: %w", email, storage.ErrConflict)
		}
	}
	for email, signup := range tx.pending {
		m.byEmail[email] = signup
	}

	return nil
}

// memTx stages writes on top of the parent store until commit.
type memTx struct {
	parent  *Memory
	pending map[domain.EmailAddress]domain.Signup
}

func (t *memTx) StoreSignup(ctx context.Context, signup domain.Signup) (*domain.Signup, error) {
	existing, err := t.SignupByEmail(ctx, signup.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	stored := t.parent.newSignup(signup)
	t.pending[stored.Email] = stored

	return &stored, nil
}

func (t *memTx) SignupByEmail(ctx context.Context, email domain.EmailAddress) (*domain.Signup, error) {
	if signup, ok := t.pending[email]; ok {
		return &signup, nil
	}

	return t.parent.SignupByEmail(ctx, email)
}

func (t *memTx) CountSignups(ctx context.Context) (int64, error) {
	n, err := t.parent.CountSignups(ctx)
	if err != nil {
		return 0, err
	}

	return n + int64(len(t.pending)), nil
}

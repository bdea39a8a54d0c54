package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/storage"
	"earlyaccess/pkg/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemory_StoreSignup(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	stored, err := store.StoreSignup(ctx, domain.Signup{Email: "a@b.co", UserAgent: "test"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, "test", stored.UserAgent)

	dup, err := store.StoreSignup(ctx, domain.Signup{Email: "a@b.co"})
	require.NoError(t, err)
	require.Nil(t, dup)

	found, err := store.SignupByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	require.Equal(t, stored.ID, found.ID)

	missing, err := store.SignupByEmail(ctx, "x@y.zz")
	require.NoError(t, err)
	require.Nil(t, missing)

	n, err := store.CountSignups(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	require.NoError(t, store.Close())
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.New().StoreSignup(ctx, domain.Signup{Email: "a@b.co"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemory_WithTx(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(tx storage.SignupStorage) error {
		stored, err := tx.StoreSignup(ctx, domain.Signup{Email: "rolled@back.io"})
		require.NoError(t, err)
		require.NotNil(t, stored)

		// visible inside the transaction
		n, err := tx.CountSignups(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		dup, err := tx.StoreSignup(ctx, domain.Signup{Email: "rolled@back.io"})
		require.NoError(t, err)
		require.Nil(t, dup)

		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := store.SignupByEmail(ctx, "rolled@back.io")
	require.NoError(t, err)
	require.Nil(t, found)

	err = store.WithTx(ctx, func(tx storage.SignupStorage) error {
		_, err := tx.StoreSignup(ctx, domain.Signup{Email: "kept@commit.io"})

		return err
	})
	require.NoError(t, err)

	found, err = store.SignupByEmail(ctx, "kept@commit.io")
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestMemory_WithTx_ConcurrentWriterWins(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	var winner *domain.Signup
	err := store.WithTx(ctx, func(tx storage.SignupStorage) error {
		_, err := tx.StoreSignup(ctx, domain.Signup{Email: "race@x.io"})
		require.NoError(t, err)
		_, err = tx.StoreSignup(ctx, domain.Signup{Email: "other@x.io"})
		require.NoError(t, err)

		winner, err = store.StoreSignup(ctx, domain.Signup{Email: "race@x.io"})
		require.NoError(t, err)

		return nil
	})
	require.ErrorIs(t, err, storage.ErrConflict)

	found, err := store.SignupByEmail(ctx, "race@x.io")
	require.NoError(t, err)
	require.Equal(t, winner.ID, found.ID)

	// the commit is all or nothing
	other, err := store.SignupByEmail(ctx, "other@x.io")
	require.NoError(t, err)
	require.Nil(t, other)
}

func TestMemory_ConcurrentStoresKeepEmailsUnique(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := domain.EmailAddress(fmt.Sprintf("user%d@example.com", i%5))
			stored, err := store.StoreSignup(ctx, domain.Signup{Email: email})
			if err != nil || stored == nil {
				return
			}
			mu.Lock()
			created++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	require.Equal(t, 5, created)
	n, err := store.CountSignups(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
}

package signup_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"earlyaccess/internal/signup"
	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/metrics"
	"earlyaccess/pkg/serrors"
	"earlyaccess/pkg/storage"
	"earlyaccess/pkg/storage/memory"
	mockstorage "earlyaccess/pkg/storage/mock"
	rstore "earlyaccess/pkg/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, signup.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, signup.New(st, nil)
}

// helper to wire Storage.WithTx to execute callback with a MockSignupStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockSignupStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.SignupStorage) error) error {
			tx := mockstorage.NewMockSignupStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_Register_Created(t *testing.T) {
	ctrl, st, s := newTestService(t)

	id := domain.SignupID(uuid.New())
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockSignupStorage) {
		tx.EXPECT().StoreSignup(gomock.Any(), domain.Signup{
			Email:     "ada@example.com",
			UserAgent: "ua",
			ClientIP:  "1.2.3.4",
		}).DoAndReturn(func(_ context.Context, in domain.Signup) (*domain.Signup, error) {
			in.ID = id
			in.CreatedAt = time.Now()

			return &in, nil
		})
	})

	got, created, err := s.Register(context.Background(), signup.Request{
		Email:     "  ada@EXAMPLE.com ",
		UserAgent: "ua",
		ClientIP:  "1.2.3.4",
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, id, got.ID)
	require.Equal(t, domain.EmailAddress("ada@example.com"), got.Email)
}

func TestService_Register_Existing(t *testing.T) {
	ctrl, st, s := newTestService(t)

	existing := &domain.Signup{ID: domain.SignupID(uuid.New()), Email: "ada@example.com"}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockSignupStorage) {
		tx.EXPECT().StoreSignup(gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().SignupByEmail(gomock.Any(), domain.EmailAddress("ada@example.com")).Return(existing, nil)
	})

	got, created, err := s.Register(context.Background(), signup.Request{Email: "ada@example.com"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing, got)
}

func TestService_Register_InvalidEmail(t *testing.T) {
	_, _, s := newTestService(t)

	// no storage expectations: invalid input must never reach storage
	_, _, err := s.Register(context.Background(), signup.Request{Email: "not-an-email"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestService_Register_StorageError(t *testing.T) {
	ctrl, st, s := newTestService(t)

	boom := errors.New("db down")
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockSignupStorage) {
		tx.EXPECT().StoreSignup(gomock.Any(), gomock.Any()).Return(nil, boom)
	})

	_, _, err := s.Register(context.Background(), signup.Request{Email: "a@b.co"})
	require.ErrorIs(t, err, boom)
	require.Nil(t, serrors.KindOf(err))
}

func TestService_Register_VanishedAfterConflict(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockSignupStorage) {
		tx.EXPECT().StoreSignup(gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().SignupByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	_, _, err := s.Register(context.Background(), signup.Request{Email: "a@b.co"})
	require.Error(t, err)
}

func TestService_Register_ConflictAtCommit(t *testing.T) {
	_, st, s := newTestService(t)

	existing := &domain.Signup{ID: domain.SignupID(uuid.New()), Email: "a@b.co"}
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("could not commit: %w", storage.ErrConflict))
	st.EXPECT().SignupByEmail(gomock.Any(), domain.EmailAddress("a@b.co")).Return(existing, nil)

	got, created, err := s.Register(context.Background(), signup.Request{Email: "a@b.co"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing, got)
}

// racingStorage stores raceEmail outside the transaction just before the
// transaction commits, like a concurrent request would.
type racingStorage struct {
	storage.Storage

	winner *domain.Signup
}

const raceEmail = "race@example.com"

func (r *racingStorage) WithTx(ctx context.Context, cb func(tx storage.SignupStorage) error) error {
	return r.Storage.WithTx(ctx, func(tx storage.SignupStorage) error {
		if err := cb(tx); err != nil {
			return err
		}

		var err error
		r.winner, err = r.Storage.StoreSignup(ctx, domain.Signup{Email: raceEmail})

		return err
	})
}

func TestService_Register_LosesRaceAtCommit(t *testing.T) {
	engines := map[string]func(t *testing.T) storage.Storage{
		"memory": func(t *testing.T) storage.Storage { return memory.New() },
		"redis": func(t *testing.T) storage.Storage {
			mr := miniredis.RunT(t)

			return rstore.NewWithClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), "test")
		},
	}

	for name, newStorage := range engines {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st := &racingStorage{Storage: newStorage(t)}
			t.Cleanup(func() { _ = st.Close() })

			got, created, err := signup.New(st, nil).Register(ctx, signup.Request{Email: raceEmail})
			require.NoError(t, err)
			require.False(t, created)
			require.NotNil(t, st.winner)
			require.Equal(t, st.winner.ID, got.ID, "reported signup must be the persisted one")

			stored, err := st.SignupByEmail(ctx, raceEmail)
			require.NoError(t, err)
			require.Equal(t, got.ID, stored.ID)
		})
	}
}

func TestService_Count(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().CountSignups(gomock.Any()).Return(int64(3), nil)
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	st.EXPECT().CountSignups(gomock.Any()).Return(int64(0), errors.New("boom"))
	_, err = s.Count(context.Background())
	require.Error(t, err)
}

func TestService_Register_Idempotent_WithMemoryAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	m, err := metrics.NewSignups(metrics.Meter(mp))
	require.NoError(t, err)

	s := signup.New(memory.New(), m)
	ctx := context.Background()

	first, created, err := s.Register(ctx, signup.Request{Email: "dup@example.com"})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := s.Register(ctx, signup.Request{Email: " dup@EXAMPLE.COM"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "earlyaccess_signups") {
			found = true
			require.Len(t, f.GetMetric(), 2)
		}
	}
	require.True(t, found, "signups counter must be exported")
}

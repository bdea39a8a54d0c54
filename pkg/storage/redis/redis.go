// Package redis implements storage.Storage on Redis. Each signup is a JSON
// value under "<prefix>:signup:<email>" and the set "<prefix>:emails" holds
// every registered address.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/storage"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces every key written by this package.
const DefaultKeyPrefix = "earlyaccess"

// Options defines the connection parameters.
type Options struct {
	// URL is a redis:// or rediss:// connection URL.
	URL string
	// KeyPrefix namespaces the keys. Empty means DefaultKeyPrefix.
	KeyPrefix string
}

// Redis implements storage.Storage.
type Redis struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

var _ storage.Storage = (*Redis)(nil)

// record is the stored JSON layout. It keeps the request metadata that
// domain.Signup leaves out of its JSON form.
type record struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UserAgent string    `json:"userAgent,omitempty"`
	ClientIP  string    `json:"clientIp,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r record) toDomain() *domain.Signup {
	return &domain.Signup{
		ID:        domain.SignupID(r.ID),
		Email:     domain.EmailAddress(r.Email),
		UserAgent: r.UserAgent,
		ClientIP:  r.ClientIP,
		CreatedAt: r.CreatedAt,
	}
}

// New parses options.URL, connects and pings the server.
func New(ctx context.Context, options Options) (*Redis, error) {
	opts, err := goredis.ParseURL(options.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return NewWithClient(client, options.KeyPrefix), nil
}

// NewWithClient wraps an existing client. Close closes the client.
func NewWithClient(client *goredis.Client, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}

	return &Redis{client: client, prefix: keyPrefix, now: time.Now}
}

func (r *Redis) signupKey(email domain.EmailAddress) string {
	return r.prefix + ":signup:" + string(email)
}

func (r *Redis) emailsKey() string {
	return r.prefix + ":emails"
}

func (r *Redis) newRecord(signup domain.Signup) record {
	return record{
		ID:        uuid.New(),
		Email:     string(signup.Email),
		UserAgent: signup.UserAgent,
		ClientIP:  signup.ClientIP,
		CreatedAt: r.now().UTC(),
	}
}

// StoreSignup implements storage.SignupStorage.
func (r *Redis) StoreSignup(ctx context.Context, signup domain.Signup) (*domain.Signup, error) {
	return r.store(ctx, r.newRecord(signup))
}

func (r *Redis) store(ctx context.Context, rec record) (*domain.Signup, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("could not marshal signup: %w", err)
	}

	var stored *goredis.BoolCmd
	if _, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		stored = pipe.SetNX(ctx, r.signupKey(domain.EmailAddress(rec.Email)), value, 0)
		// adding an existing member is a no-op, so the set stays exact
		pipe.SAdd(ctx, r.emailsKey(), rec.Email)

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not store signup into redis: %w", err)
	}
	if !stored.Val() {
		return nil, nil
	}

	return rec.toDomain(), nil
}

// SignupByEmail implements storage.SignupStorage.
func (r *Redis) SignupByEmail(ctx context.Context, email domain.EmailAddress) (*domain.Signup, error) {
	value, err := r.client.Get(ctx, r.signupKey(email)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get signup from redis: %w", err)
	}

	var rec record
	if err := json.Unmarshal(value, &rec); err != nil {
		return nil, fmt.Errorf("could not unmarshal signup: %w", err)
	}

	return rec.toDomain(), nil
}

// CountSignups implements storage.SignupStorage.
func (r *Redis) CountSignups(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, r.emailsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("could not count signups in redis: %w", err)
	}

	return n, nil
}

// Close implements storage.Storage.
func (r *Redis) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}

// WithTx implements storage.Storage. Writes made through tx are buffered and
// applied when cb returns nil; a failing cb leaves Redis untouched. If another
// writer stored one of the staged emails in the meantime, WithTx returns
// storage.ErrConflict and the IDs handed out by tx are void.
func (r *Redis) WithTx(ctx context.Context, cb func(tx storage.SignupStorage) error) error {
	tx := &redisTx{parent: r}
	if err := cb(tx); err != nil {
		return err
	}

	for _, rec := range tx.pending {
		stored, err := r.store(ctx, rec)
		if err != nil {
			return fmt.Errorf("could not commit signup: %w", err)
		}
		if stored == nil {
			return fmt.Errorf("could not commit signup for %q: %w", rec.Email, storage.ErrConflict)
		}
	}

	return nil
}

// redisTx stages writes until WithTx commits them.
type redisTx struct {
	parent  *Redis
	pending []record
}

func (t *redisTx) staged(email domain.EmailAddress) *domain.Signup {
	for _, rec := range t.pending {
		if rec.Email == string(email) {
			return rec.toDomain()
		}
	}

	return nil
}

func (t *redisTx) StoreSignup(ctx context.Context, signup domain.Signup) (*domain.Signup, error) {
	existing, err := t.SignupByEmail(ctx, signup.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	rec := t.parent.newRecord(signup)
	t.pending = append(t.pending, rec)

	return rec.toDomain(), nil
}

func (t *redisTx) SignupByEmail(ctx context.Context, email domain.EmailAddress) (*domain.Signup, error) {
	if s := t.staged(email); s != nil {
		return s, nil
	}

	return t.parent.SignupByEmail(ctx, email)
}

func (t *redisTx) CountSignups(ctx context.Context) (int64, error) {
	n, err := t.parent.CountSignups(ctx)
	if err != nil {
		return 0, err
	}

	return n + int64(len(t.pending)), nil
}

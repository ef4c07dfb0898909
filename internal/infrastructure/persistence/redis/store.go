// Package redis implements the profile.Store durable-map contract on Redis.
// Profiles are small JSON documents, so plain string keys with no TTL are all
// the store needs; a key namespace prefix keeps CourseCompass data separable
// from anything else on the instance.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/pkg/retry"
)

// KeyPrefix namespaces every CourseCompass key.
const KeyPrefix = "compass:"

var (
	// ErrConnection is returned when the Redis connection fails.
	ErrConnection = errors.New("redis: connection failed")
)

// Config holds Redis connection configuration.
type Config struct {
	// Host is the Redis server hostname.
	Host string

	// Port is the Redis server port.
	Port int

	// Password is the authentication password (empty if no auth).
	Password string

	// DB is the Redis database number (0-15).
	DB int

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration

	// ReadTimeout is the timeout for socket reads.
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes.
	WriteTimeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         6379,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Addr returns the Redis address in "host:port" format.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Store implements profile.Store on a Redis client. Transient connection
// errors are retried with short backoff; key misses are not.
type Store struct {
	client  *redis.Client
	retrier *retry.Retrier
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return &Store{client: client, retrier: retry.StoreRetrier()}, nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get returns the value for key, or profile.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		b, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return profile.ErrKeyNotFound
			}
			return retry.Retryable(fmt.Errorf("redis: get %s: %w", key, err))
		}
		data = b
		return nil
	})
	return data, err
}

// Set writes the value for key with no expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.retrier.Do(ctx, func(ctx context.Context) error {
		if err := s.client.Set(ctx, KeyPrefix+key, value, 0).Err(); err != nil {
			return retry.Retryable(fmt.Errorf("redis: set %s: %w", key, err))
		}
		return nil
	})
}

// Remove deletes the key; absent keys are ignored.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.retrier.Do(ctx, func(ctx context.Context) error {
		if err := s.client.Del(ctx, KeyPrefix+key).Err(); err != nil {
			return retry.Retryable(fmt.Errorf("redis: del %s: %w", key, err))
		}
		return nil
	})
}

var _ profile.Store = (*Store)(nil)

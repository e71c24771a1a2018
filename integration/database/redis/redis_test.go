package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/integration/database/redis"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) *goredis.StatusCmd {
	args := m.Called(ctx)
	return goredis.NewStatusResult(args.String(0), args.Error(1))
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost:6379"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	// Port 1 on loopback refuses connections immediately.
	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	healthy := &mockPinger{}
	healthy.On("Ping", mock.Anything).Return("PONG", nil)
	require.NoError(t, redis.Healthcheck(healthy)(context.Background()))

	down := &mockPinger{}
	down.On("Ping", mock.Anything).Return("", errors.New("connection refused"))
	err := redis.Healthcheck(down)(context.Background())
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}

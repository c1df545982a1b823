package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ibancheck/internal/config"
)

type fakeServer struct {
	startErr    error
	shutdownErr error

	mu       sync.Mutex
	stopped  chan struct{}
	shutdown bool
}

func newFakeServer(startErr, shutdownErr error) *fakeServer {
	return &fakeServer{startErr: startErr, shutdownErr: shutdownErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.shutdown {
		f.shutdown = true
		if f.startErr == nil {
			close(f.stopped)
		}
	}
	return f.shutdownErr
}

func (f *fakeServer) wasShutdown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown
}

func TestServe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ShutdownTimeout: time.Second}

	t.Run("stops-on-cancel", func(t *testing.T) {
		api := newFakeServer(nil, nil)
		metricsSrv := newFakeServer(nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- serve(ctx, logger, cfg, map[string]server{"api server": api, "metrics server": metricsSrv})
		}()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("serve did not return after cancel")
		}
		assert.True(t, api.wasShutdown())
		assert.True(t, metricsSrv.wasShutdown())
	})

	t.Run("start-failure-shuts-down-others", func(t *testing.T) {
		api := newFakeServer(nil, nil)
		metricsSrv := newFakeServer(errors.New("address already in use"), nil)

		err := serve(context.Background(), logger, cfg, map[string]server{
			"api server":     api,
			"metrics server": metricsSrv,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics server error: address already in use")
		assert.True(t, api.wasShutdown())
	})

	t.Run("shutdown-error", func(t *testing.T) {
		api := newFakeServer(nil, errors.New("deadline exceeded"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Shutdown reports the error but the fake still stops.
		err := serve(ctx, logger, cfg, map[string]server{"api server": api})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "api server shutdown: deadline exceeded")
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"duka/internal/service"
	"duka/internal/service/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionReaper(t *testing.T) {
	t.Run("reaps on every tick", func(t *testing.T) {
		sessions := mocks.NewMockSessionPurger(t)
		reaper := service.NewSessionReaper(discardLogger(), sessions, 5*time.Millisecond)

		reaped := make(chan struct{}, 1)
		sessions.EXPECT().
			DeleteExpiredSessions(mock.Anything, mock.AnythingOfType("time.Time")).
			RunAndReturn(func(_ context.Context, _ time.Time) (int64, error) {
				select {
				case reaped <- struct{}{}:
				default:
				}
				return 3, nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		require.NoError(t, reaper.Start(ctx))

		select {
		case <-reaped:
		case <-time.After(time.Second):
			t.Fatal("reaper never ran")
		}
	})

	t.Run("keeps running after a failed sweep", func(t *testing.T) {
		sessions := mocks.NewMockSessionPurger(t)
		reaper := service.NewSessionReaper(discardLogger(), sessions, 5*time.Millisecond)

		calls := make(chan struct{}, 2)
		var failed bool
		sessions.EXPECT().
			DeleteExpiredSessions(mock.Anything, mock.AnythingOfType("time.Time")).
			RunAndReturn(func(_ context.Context, _ time.Time) (int64, error) {
				select {
				case calls <- struct{}{}:
				default:
				}
				if !failed {
					failed = true
					return 0, errors.New("db down")
				}
				return 0, nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		require.NoError(t, reaper.Start(ctx))

		for i := 0; i < 2; i++ {
			select {
			case <-calls:
			case <-time.After(time.Second):
				t.Fatal("reaper stopped after an error")
			}
		}
	})
}

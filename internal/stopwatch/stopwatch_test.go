package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nbj/pulse/internal/clock"
)

func TestStopwatch(t *testing.T) {
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	t.Run("elapsed follows the clock", func(t *testing.T) {
		fake := clock.NewFake(start)
		sw := New(fake)

		require.Equal(t, time.Duration(0), sw.Elapsed())

		fake.Advance(42 * time.Millisecond)
		require.Equal(t, 42*time.Millisecond, sw.Elapsed())

		fake.Advance(8 * time.Millisecond)
		require.Equal(t, 50*time.Millisecond, sw.Elapsed())
	})

	t.Run("restart resets the start instant", func(t *testing.T) {
		fake := clock.NewFake(start)
		sw := New(fake)

		fake.Advance(time.Second)
		sw.Restart()
		require.Equal(t, time.Duration(0), sw.Elapsed())

		fake.Advance(5 * time.Millisecond)
		require.Equal(t, 5*time.Millisecond, sw.Elapsed())
	})
}

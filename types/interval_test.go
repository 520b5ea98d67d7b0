package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInterval_String(t *testing.T) {
	require.Equal(t, "second", IntervalSecond.String())
	require.Equal(t, "minute", IntervalMinute.String())
	require.Equal(t, "hour", IntervalHour.String())
	require.Equal(t, "day", IntervalDay.String())
	require.Equal(t, "everyTick", IntervalEveryTick.String())
	require.Equal(t, "Interval(42)", Interval(42).String())
}

func TestParseInterval(t *testing.T) {
	t.Run("canonical names", func(t *testing.T) {
		cases := map[string]Interval{
			"second":    IntervalSecond,
			"minute":    IntervalMinute,
			"hour":      IntervalHour,
			"day":       IntervalDay,
			"everyTick": IntervalEveryTick,
		}
		for name, want := range cases {
			got, err := ParseInterval(name)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("case insensitive and trimmed", func(t *testing.T) {
		got, err := ParseInterval("  MINUTE ")
		require.NoError(t, err)
		require.Equal(t, IntervalMinute, got)

		got, err = ParseInterval("every_tick")
		require.NoError(t, err)
		require.Equal(t, IntervalEveryTick, got)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseInterval("fortnight")
		require.ErrorContains(t, err, `unknown interval "fortnight"`)
	})
}

func TestInterval_YAML(t *testing.T) {
	t.Run("unmarshal string", func(t *testing.T) {
		var i Interval
		require.NoError(t, yaml.Unmarshal([]byte("hour"), &i))
		require.Equal(t, IntervalHour, i)
	})

	t.Run("unmarshal unknown", func(t *testing.T) {
		var i Interval
		require.Error(t, yaml.Unmarshal([]byte("fortnight"), &i))
	})

	t.Run("round trip", func(t *testing.T) {
		data, err := yaml.Marshal(IntervalEveryTick)
		require.NoError(t, err)

		var i Interval
		require.NoError(t, yaml.Unmarshal(data, &i))
		require.Equal(t, IntervalEveryTick, i)
	})

	t.Run("zero value is second", func(t *testing.T) {
		var i Interval
		require.Equal(t, IntervalSecond, i)
	})
}

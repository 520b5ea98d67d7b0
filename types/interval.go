package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Interval selects how often a scheduler dispatches its job.
//
// The zero value is IntervalSecond, so an unset configuration field falls
// back to the most common cadence.
type Interval int

const (
	// IntervalSecond dispatches once per whole second.
	IntervalSecond Interval = iota

	// IntervalMinute dispatches once per minute, on second zero.
	IntervalMinute

	// IntervalHour dispatches once per hour, on minute zero.
	IntervalHour

	// IntervalDay dispatches once per day, on hour zero.
	IntervalDay

	// IntervalEveryTick dispatches on every polling cycle with no
	// second-boundary gating.
	IntervalEveryTick
)

// String returns the canonical configuration name of the interval.
func (i Interval) String() string {
	switch i {
	case IntervalSecond:
		return "second"
	case IntervalMinute:
		return "minute"
	case IntervalHour:
		return "hour"
	case IntervalDay:
		return "day"
	case IntervalEveryTick:
		return "everyTick"
	default:
		return fmt.Sprintf("Interval(%d)", int(i))
	}
}

// ParseInterval converts a configuration string into an Interval.
//
// Matching is case-insensitive, so "second", "Second" and "SECOND" are
// equivalent.
//
// Parameters:
//   - s: Interval name ("second", "minute", "hour", "day", "everyTick")
//
// Returns:
//   - Interval: Parsed interval
//   - error: Error naming the unknown value if s does not match
func ParseInterval(s string) (Interval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "second":
		return IntervalSecond, nil
	case "minute":
		return IntervalMinute, nil
	case "hour":
		return IntervalHour, nil
	case "day":
		return IntervalDay, nil
	case "everytick", "every_tick":
		return IntervalEveryTick, nil
	default:
		return IntervalSecond, fmt.Errorf("unknown interval %q", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler so Interval fields can be
// written as plain strings in configuration files.
func (i *Interval) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	parsed, err := ParseInterval(raw)
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler using the canonical name.
func (i Interval) MarshalYAML() (any, error) {
	return i.String(), nil
}

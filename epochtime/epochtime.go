//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package epochtime provides an EpochTime type whose JSON form is unix
// seconds as a float, keeping stored eval sets and results readable by
// ADK-style evaluation tooling.
package epochtime

import (
	"encoding/json"
	"time"
)

const (
	// zeroEpochLiteral is the literal for zero epoch.
	zeroEpochLiteral = "0"
	// nanosecondsPerSecond is the number of nanoseconds per second.
	nanosecondsPerSecond = float64(time.Second)
)

// EpochTime wraps time.Time to (un)marshal as unix seconds (float).
type EpochTime struct{ time.Time }

// Now returns the current time as an EpochTime.
func Now() *EpochTime {
	return &EpochTime{Time: time.Now()}
}

// FromUnix builds an EpochTime from unix seconds (float).
func FromUnix(unixSeconds float64) *EpochTime {
	return &EpochTime{Time: time.Unix(0, int64(unixSeconds*nanosecondsPerSecond)).UTC()}
}

// UnixSeconds returns the time as unix seconds (float), zero for zero time.
func (t EpochTime) UnixSeconds() float64 {
	if t.Time.IsZero() {
		return 0
	}
	return float64(t.Time.UnixNano()) / nanosecondsPerSecond
}

// MarshalJSON implements json.Marshaler to encode time as unix seconds (float).
func (t EpochTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte(zeroEpochLiteral), nil
	}
	unixSeconds := float64(t.Time.UnixNano()) / nanosecondsPerSecond
	return json.Marshal(unixSeconds)
}

// UnmarshalJSON implements json.Unmarshaler to decode unix seconds (float).
func (t *EpochTime) UnmarshalJSON(b []byte) error {
	var unixSeconds float64
	if err := json.Unmarshal(b, &unixSeconds); err != nil {
		return err
	}
	t.Time = time.Unix(0, int64(unixSeconds*nanosecondsPerSecond)).UTC()
	return nil
}

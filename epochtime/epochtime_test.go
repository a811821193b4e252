//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package epochtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEpochTime_JSONRoundTrip verifies the unix-seconds-float wire form.
func TestEpochTime_JSONRoundTrip(t *testing.T) {
	et := EpochTime{Time: time.Unix(1700000000, 500000000)}
	b, err := json.Marshal(et)
	require.NoError(t, err)
	assert.Equal(t, "1700000000.5", string(b))

	var decoded EpochTime
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.True(t, et.Time.Equal(decoded.Time))
}

// TestEpochTime_Zero verifies that the zero time marshals as 0.
func TestEpochTime_Zero(t *testing.T) {
	b, err := json.Marshal(EpochTime{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))
	assert.Zero(t, EpochTime{}.UnixSeconds())
}

// TestFromUnix verifies the float-seconds constructor.
func TestFromUnix(t *testing.T) {
	et := FromUnix(1700000000.25)
	require.NotNil(t, et)
	assert.InDelta(t, 1700000000.25, et.UnixSeconds(), 1e-6)
}

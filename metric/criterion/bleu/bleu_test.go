//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package bleu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatch_Nil verifies that a nil criterion returns an error.
func TestMatch_Nil(t *testing.T) {
	var c *BleuCriterion
	_, err := c.Match(context.Background(), "a", []string{"a"})
	require.Error(t, err)
}

// TestMatch_Ignore verifies that ignored criteria pass with a full score.
func TestMatch_Ignore(t *testing.T) {
	c := &BleuCriterion{Ignore: true}
	result, err := c.Match(context.Background(), "", nil)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.InDelta(t, 1.0, result.Value, 1e-12)
}

// TestMatch_Threshold verifies pass and fail against the configured threshold.
func TestMatch_Threshold(t *testing.T) {
	c := &BleuCriterion{Threshold: 0.7}
	result, err := c.Match(
		context.Background(),
		"the cat is on the mat",
		[]string{"there is a cat on the mat", "a cat is on the mat"},
	)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.InDelta(t, 0.7598, result.Value, 1e-4)
	assert.Contains(t, result.Reason(), "bleu=")

	c.Threshold = 0.8
	result, err = c.Match(
		context.Background(),
		"the cat is on the mat",
		[]string{"there is a cat on the mat", "a cat is on the mat"},
	)
	require.NoError(t, err)
	assert.False(t, result.Passed)
}

// TestMatch_MaxOrder verifies that the configured order reaches the scorer.
func TestMatch_MaxOrder(t *testing.T) {
	c := &BleuCriterion{MaxOrder: 1}
	result, err := c.Match(context.Background(), "the cat", []string{"the cat is on the mat"})
	require.NoError(t, err)
	require.Len(t, result.Score.Precisions, 1)
}

// TestMatch_EmptyPrediction verifies that scorer errors propagate.
func TestMatch_EmptyPrediction(t *testing.T) {
	c := &BleuCriterion{}
	_, err := c.Match(context.Background(), "", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prediction is empty")
}

//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texteval/texteval-go/rouge"
)

// TestMatch_Nil verifies that a nil criterion returns an error.
func TestMatch_Nil(t *testing.T) {
	var c *RougeCriterion
	_, err := c.Match(context.Background(), "a", []string{"a"})
	require.Error(t, err)
}

// TestMatch_Ignore verifies that ignored criteria pass with full scores.
func TestMatch_Ignore(t *testing.T) {
	c := &RougeCriterion{Ignore: true, RougeType: "rouge1"}
	result, err := c.Match(context.Background(), "", nil)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.InDelta(t, 1.0, result.Score.F1, 1e-12)
}

// TestMatch_RequiresRougeType verifies that the variant must be configured.
func TestMatch_RequiresRougeType(t *testing.T) {
	c := &RougeCriterion{}
	_, err := c.Match(context.Background(), "a", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires rougeType")
}

// TestMatch_UnsupportedMeasure verifies measure validation.
func TestMatch_UnsupportedMeasure(t *testing.T) {
	c := &RougeCriterion{RougeType: "rouge1", Measure: "f2"}
	_, err := c.Match(context.Background(), "a", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported rouge measure")
}

// TestMatch_Rouge1 verifies scoring and threshold comparison for rouge1.
func TestMatch_Rouge1(t *testing.T) {
	c := &RougeCriterion{
		RougeType: "rouge1",
		Threshold: rouge.Score{F1: 0.8},
	}
	result, err := c.Match(
		context.Background(),
		"the cat is on the mat",
		[]string{"there is a cat on the mat", "a cat is on the mat"},
	)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.InDelta(t, 5.0/6.0, result.Value, 1e-12)
	assert.Contains(t, result.Reason(), "rouge1 f1=")
}

// TestMatch_Measures verifies that the measure selects the scalar component.
func TestMatch_Measures(t *testing.T) {
	prediction := "the cat is on the mat"
	references := []string{"a cat is on the mat extra words here"}
	for _, measure := range []RougeMeasure{RougeMeasureF1, RougeMeasurePrecision, RougeMeasureRecall} {
		c := &RougeCriterion{RougeType: "rouge1", Measure: measure}
		result, err := c.Match(context.Background(), prediction, references)
		require.NoError(t, err)
		assert.Equal(t, measure, result.Measure)
		switch measure {
		case RougeMeasurePrecision:
			assert.InDelta(t, result.Score.Precision, result.Value, 1e-12)
		case RougeMeasureRecall:
			assert.InDelta(t, result.Score.Recall, result.Value, 1e-12)
		default:
			assert.InDelta(t, result.Score.F1, result.Value, 1e-12)
		}
	}
}

// TestMatch_ThresholdComponents verifies that every threshold component must be met.
func TestMatch_ThresholdComponents(t *testing.T) {
	c := &RougeCriterion{
		RougeType: "rouge1",
		Threshold: rouge.Score{Precision: 0.9},
	}
	result, err := c.Match(
		context.Background(),
		"the cat is on the mat",
		[]string{"a cat is on the mat"},
	)
	require.NoError(t, err)
	assert.False(t, result.Passed)
}

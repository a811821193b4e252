//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package bleu

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_NilContext verifies that nil contexts return an error.
func TestCompute_NilContext(t *testing.T) {
	_, err := Compute(nil, "a", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context is nil")
}

// TestCompute_ContextCanceled verifies that canceled contexts return the context error.
func TestCompute_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Compute(ctx, "a", []string{"a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestCompute_EmptyInputs verifies that empty predictions and reference lists return errors.
func TestCompute_EmptyInputs(t *testing.T) {
	_, err := Compute(context.Background(), "", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prediction is empty")

	_, err = Compute(context.Background(), "a", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references are empty")

	_, err = Compute(context.Background(), "a", []string{"", "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references have no tokens")
}

// TestCompute_CatOnTheMat verifies the canonical multi-reference BLEU-4 example.
func TestCompute_CatOnTheMat(t *testing.T) {
	score, err := Compute(
		context.Background(),
		"the cat is on the mat",
		[]string{"there is a cat on the mat", "a cat is on the mat"},
	)
	require.NoError(t, err)
	// Precisions 5/6, 4/5, 3/4, 2/3 with brevity penalty 1.
	assert.InDelta(t, 5.0/6.0, score.Precisions[0], 1e-12)
	assert.InDelta(t, 4.0/5.0, score.Precisions[1], 1e-12)
	assert.InDelta(t, 3.0/4.0, score.Precisions[2], 1e-12)
	assert.InDelta(t, 2.0/3.0, score.Precisions[3], 1e-12)
	assert.InDelta(t, 1.0, score.BrevityPenalty, 1e-12)
	assert.Equal(t, 6, score.PredictionLength)
	assert.Equal(t, 6, score.ReferenceLength)
	assert.InDelta(t, math.Pow(1.0/3.0, 0.25), score.BLEU, 1e-12)
}

// TestCompute_Identical verifies that identical prediction and reference score 1.0.
func TestCompute_Identical(t *testing.T) {
	score, err := Compute(
		context.Background(),
		"the cat is on the mat",
		[]string{"the cat is on the mat"},
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score.BLEU, 1e-12)
}

// TestCompute_Disjoint verifies that disjoint token sets score 0.0.
func TestCompute_Disjoint(t *testing.T) {
	score, err := Compute(
		context.Background(),
		"alpha beta gamma delta",
		[]string{"epsilon zeta eta theta"},
	)
	require.NoError(t, err)
	assert.Zero(t, score.BLEU)
	assert.Zero(t, score.Precisions[0])
}

// TestCompute_ShortPrediction verifies that predictions shorter than the
// maximum order score zero without smoothing.
func TestCompute_ShortPrediction(t *testing.T) {
	score, err := Compute(context.Background(), "the cat", []string{"the cat"})
	require.NoError(t, err)
	assert.Zero(t, score.BLEU)
}

// TestCompute_BrevityPenalty verifies the exponential penalty for short predictions.
func TestCompute_BrevityPenalty(t *testing.T) {
	score, err := Compute(
		context.Background(),
		"the cat",
		[]string{"the cat is on the mat"},
		WithMaxOrder(2),
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score.Precisions[0], 1e-12)
	assert.InDelta(t, 1.0, score.Precisions[1], 1e-12)
	assert.InDelta(t, math.Exp(1-6.0/2.0), score.BrevityPenalty, 1e-12)
	assert.InDelta(t, math.Exp(-2), score.BLEU, 1e-12)
}

// TestCompute_ClosestReferenceLength verifies that the brevity penalty uses
// the reference length closest to the prediction length.
func TestCompute_ClosestReferenceLength(t *testing.T) {
	score, err := Compute(
		context.Background(),
		"a b c",
		[]string{"a b c d e f g", "a b c"},
		WithMaxOrder(1),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, score.ReferenceLength)
	assert.InDelta(t, 1.0, score.BrevityPenalty, 1e-12)
}

// TestCompute_Smoothing verifies that add-one smoothing keeps sparse matches non-zero.
func TestCompute_Smoothing(t *testing.T) {
	unsmoothed, err := Compute(context.Background(), "the cat sat", []string{"the dog sat"})
	require.NoError(t, err)
	assert.Zero(t, unsmoothed.BLEU)

	smoothed, err := Compute(
		context.Background(),
		"the cat sat",
		[]string{"the dog sat"},
		WithSmoothing(true),
	)
	require.NoError(t, err)
	assert.Greater(t, smoothed.BLEU, 0.0)
}

// TestCompute_InvalidOptions verifies option validation errors.
func TestCompute_InvalidOptions(t *testing.T) {
	_, err := Compute(context.Background(), "a", []string{"a"}, WithMaxOrder(0))
	require.Error(t, err)

	_, err = Compute(context.Background(), "a", []string{"a"}, WithWeights(0.5, 0.5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match max order")

	_, err = Compute(context.Background(), "a", []string{"a"}, WithTokenizer(nil))
	require.Error(t, err)
}

// TestCompute_CustomWeights verifies that unigram-only weights reduce BLEU to
// unigram precision.
func TestCompute_CustomWeights(t *testing.T) {
	score, err := Compute(
		context.Background(),
		"the cat is on the mat",
		[]string{"a cat is on the mat"},
		WithWeights(1, 0, 0, 0),
	)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/6.0, score.BLEU, 1e-12)
}

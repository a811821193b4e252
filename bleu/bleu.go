//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package bleu implements corpus-style BLEU scoring: clipped modified n-gram
// precision combined by a weighted geometric mean and scaled by a brevity
// penalty against the closest reference length.
package bleu

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Score holds the BLEU value together with its components.
type Score struct {
	// BLEU is the final score in range [0, 1].
	BLEU float64 `json:"bleu"`
	// Precisions holds the clipped n-gram precision per order, 1-based at index 0.
	Precisions []float64 `json:"precisions"`
	// BrevityPenalty is the length penalty applied to the geometric mean.
	BrevityPenalty float64 `json:"brevityPenalty"`
	// PredictionLength is the prediction token count.
	PredictionLength int `json:"predictionLength"`
	// ReferenceLength is the closest reference token count.
	ReferenceLength int `json:"referenceLength"`
}

// Compute returns the BLEU score for a prediction against one or more
// references. Without smoothing, any order with zero matches drives the score
// to zero.
func Compute(ctx context.Context, prediction string, references []string, opt ...Option) (Score, error) {
	if ctx == nil {
		return Score{}, errors.New("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return Score{}, err
	}
	if strings.TrimSpace(prediction) == "" {
		return Score{}, errors.New("prediction is empty")
	}
	if len(references) == 0 {
		return Score{}, errors.New("references are empty")
	}

	opts, err := newOptions(opt...)
	if err != nil {
		return Score{}, err
	}

	predTokens := opts.tokenizer.Tokenize(prediction)
	if len(predTokens) == 0 {
		return Score{}, errors.New("prediction has no tokens")
	}
	refTokens := make([][]string, 0, len(references))
	for _, reference := range references {
		tokens := opts.tokenizer.Tokenize(reference)
		if len(tokens) == 0 {
			continue
		}
		refTokens = append(refTokens, tokens)
	}
	if len(refTokens) == 0 {
		return Score{}, errors.New("references have no tokens")
	}

	predLen := len(predTokens)
	refLen := closestLength(refTokens, predLen)

	precisions := make([]float64, opts.maxOrder)
	logSum := 0.0
	zeroMatch := false
	for n := 1; n <= opts.maxOrder; n++ {
		if err := ctx.Err(); err != nil {
			return Score{}, err
		}
		matched, total := clippedMatches(predTokens, refTokens, n)
		if opts.smooth && n > 1 {
			matched++
			total++
		}
		if total == 0 {
			zeroMatch = true
			continue
		}
		p := float64(matched) / float64(total)
		precisions[n-1] = p
		if p == 0 {
			zeroMatch = true
			continue
		}
		logSum += opts.weights[n-1] * math.Log(p)
	}

	bp := brevityPenalty(predLen, refLen)
	score := Score{
		Precisions:       precisions,
		BrevityPenalty:   bp,
		PredictionLength: predLen,
		ReferenceLength:  refLen,
	}
	if !zeroMatch {
		score.BLEU = bp * math.Exp(logSum)
	}
	return score, nil
}

// clippedMatches counts prediction n-grams clipped by the maximum count any
// single reference assigns to the same n-gram, plus the total prediction
// n-gram count.
func clippedMatches(predTokens []string, refTokens [][]string, n int) (matched, total int) {
	predNGrams := countNGrams(predTokens, n)
	maxRefNGrams := make(map[string]int)
	for _, ref := range refTokens {
		for key, cnt := range countNGrams(ref, n) {
			maxRefNGrams[key] = max(maxRefNGrams[key], cnt)
		}
	}
	for key, cnt := range predNGrams {
		total += cnt
		matched += min(cnt, maxRefNGrams[key])
	}
	return matched, total
}

// countNGrams builds a multiset of n-grams keyed by a delimiter-joined token sequence.
func countNGrams(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	ngrams := make(map[string]int, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		ngrams[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return ngrams
}

// closestLength returns the reference length closest to the prediction
// length, preferring the shorter one on ties.
func closestLength(refTokens [][]string, predLen int) int {
	best := len(refTokens[0])
	for _, ref := range refTokens[1:] {
		l := len(ref)
		dl, db := abs(l-predLen), abs(best-predLen)
		if dl < db || (dl == db && l < best) {
			best = l
		}
	}
	return best
}

// brevityPenalty computes exp(1 - r/c) for predictions shorter than the
// reference and 1 otherwise.
func brevityPenalty(predLen, refLen int) float64 {
	if predLen >= refLen {
		return 1
	}
	if predLen == 0 {
		return 0
	}
	return math.Exp(1 - float64(refLen)/float64(predLen))
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// validateWeights checks a custom weight vector against the n-gram order.
func validateWeights(weights []float64, maxOrder int) error {
	if len(weights) != maxOrder {
		return fmt.Errorf("weights length %d does not match max order %d", len(weights), maxOrder)
	}
	for _, w := range weights {
		if w < 0 {
			return errors.New("weights must be non-negative")
		}
	}
	return nil
}

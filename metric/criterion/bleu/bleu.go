//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package bleu defines the BLEU scoring criterion.
package bleu

import (
	"context"
	"fmt"

	"github.com/texteval/texteval-go/bleu"
)

// BleuCriterion configures BLEU scoring for evaluation.
type BleuCriterion struct {
	// Ignore skips BLEU scoring when true.
	Ignore bool `json:"ignore,omitempty"`
	// MaxOrder is the highest n-gram order scored, defaulting to 4 when unset.
	MaxOrder int `json:"maxOrder,omitempty"`
	// Weights holds one weight per order; empty means uniform.
	Weights []float64 `json:"weights,omitempty"`
	// Smoothing enables add-one smoothing for orders above one.
	Smoothing bool `json:"smoothing,omitempty"`
	// Threshold defines the minimum BLEU score requirement.
	Threshold float64 `json:"threshold,omitempty"`
}

// MatchResult holds BLEU scoring output for a single comparison.
type MatchResult struct {
	// Value is the BLEU scalar.
	Value float64
	// Score holds the BLEU value with its components.
	Score bleu.Score
	// Passed reports whether the score meets the configured threshold.
	Passed bool
}

// Reason formats the scoring output for display.
func (r MatchResult) Reason() string {
	return fmt.Sprintf("bleu=%.6f brevityPenalty=%.6f predictionLength=%d referenceLength=%d",
		r.Value, r.Score.BrevityPenalty, r.Score.PredictionLength, r.Score.ReferenceLength)
}

// Match computes a BLEU score between the prediction and references based on
// the configured options.
func (c *BleuCriterion) Match(ctx context.Context, prediction string, references []string) (*MatchResult, error) {
	if c == nil {
		return nil, fmt.Errorf("bleu criterion is nil")
	}
	if c.Ignore {
		return &MatchResult{Value: 1.0, Score: bleu.Score{BLEU: 1.0}, Passed: true}, nil
	}
	opt := []bleu.Option{bleu.WithSmoothing(c.Smoothing)}
	if c.MaxOrder > 0 {
		opt = append(opt, bleu.WithMaxOrder(c.MaxOrder))
	}
	if len(c.Weights) > 0 {
		opt = append(opt, bleu.WithWeights(c.Weights...))
	}
	score, err := bleu.Compute(ctx, prediction, references, opt...)
	if err != nil {
		return nil, err
	}
	return &MatchResult{
		Value:  score.BLEU,
		Score:  score,
		Passed: score.BLEU >= c.Threshold,
	}, nil
}

//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package rouge defines the ROUGE scoring criterion.
package rouge

import (
	"context"
	"fmt"

	"github.com/texteval/texteval-go/rouge"
)

// RougeCriterion configures ROUGE scoring for evaluation.
type RougeCriterion struct {
	// Ignore skips ROUGE scoring when true.
	Ignore bool `json:"ignore,omitempty"`
	// RougeType selects the ROUGE variant: "rougeN" with a positive integer N
	// such as "rouge1" or "rouge2", "rougeL", or "rougeLsum".
	RougeType string `json:"rougeType,omitempty"`
	// Measure selects which component is used as the primary score and
	// defaults to "f1" when unset.
	Measure RougeMeasure `json:"measure,omitempty"`
	// Threshold defines the minimum score requirement for each component.
	Threshold rouge.Score `json:"threshold,omitempty"`
	// UseStemmer enables Porter stemming for the built-in tokenizer.
	UseStemmer bool `json:"useStemmer,omitempty"`
	// SplitSummaries splits summaries into sentences for rougeLsum and is
	// ignored for other variants.
	SplitSummaries bool `json:"splitSummaries,omitempty"`
	// Aggregation selects multi-reference aggregation, best F1 when unset.
	Aggregation rouge.Aggregation `json:"aggregation,omitempty"`
}

// RougeMeasure selects which ROUGE component should be used as a scalar score.
type RougeMeasure string

const (
	// RougeMeasureF1 uses the F1 score.
	RougeMeasureF1 RougeMeasure = "f1"
	// RougeMeasurePrecision uses the precision score.
	RougeMeasurePrecision RougeMeasure = "precision"
	// RougeMeasureRecall uses the recall score.
	RougeMeasureRecall RougeMeasure = "recall"
)

// MatchResult holds ROUGE scoring output for a single comparison.
type MatchResult struct {
	// RougeType is the configured ROUGE variant name.
	RougeType string
	// Measure is the score component used for Value.
	Measure RougeMeasure
	// Value is the scalar score selected by Measure.
	Value float64
	// Score holds the full precision/recall/F1 values.
	Score rouge.Score
	// Passed reports whether the computed scores meet the configured thresholds.
	Passed bool
}

// Reason formats the scoring output for display.
func (r MatchResult) Reason() string {
	return fmt.Sprintf("%s %s=%.6f precision=%.6f recall=%.6f f1=%.6f",
		r.RougeType, r.Measure, r.Value, r.Score.Precision, r.Score.Recall, r.Score.F1)
}

// Match computes ROUGE scores between the prediction and references based on
// the configured options.
func (c *RougeCriterion) Match(ctx context.Context, prediction string, references []string) (*MatchResult, error) {
	if c == nil {
		return nil, fmt.Errorf("rouge criterion is nil")
	}
	if c.Ignore {
		return &MatchResult{
			RougeType: c.RougeType,
			Measure:   RougeMeasureF1,
			Value:     1.0,
			Score:     rouge.Score{Precision: 1.0, Recall: 1.0, F1: 1.0},
			Passed:    true,
		}, nil
	}
	if c.RougeType == "" {
		return nil, fmt.Errorf("rouge criterion requires rougeType")
	}
	measure := c.Measure
	if measure == "" {
		measure = RougeMeasureF1
	}
	switch measure {
	case RougeMeasureF1, RougeMeasurePrecision, RougeMeasureRecall:
	default:
		return nil, fmt.Errorf("unsupported rouge measure: %s", measure)
	}
	opt := []rouge.Option{
		rouge.WithVariants(c.RougeType),
		rouge.WithStemming(c.UseStemmer),
		rouge.WithSentenceSplit(c.SplitSummaries),
	}
	if c.Aggregation != "" {
		opt = append(opt, rouge.WithAggregation(c.Aggregation))
	}

	scores, err := rouge.Compute(ctx, prediction, references, opt...)
	if err != nil {
		return nil, err
	}
	score, ok := scores[c.RougeType]
	if !ok {
		return nil, fmt.Errorf("missing rouge score for variant: %s", c.RougeType)
	}
	var value float64
	switch measure {
	case RougeMeasureF1:
		value = score.F1
	case RougeMeasurePrecision:
		value = score.Precision
	case RougeMeasureRecall:
		value = score.Recall
	}
	passed := score.Precision >= c.Threshold.Precision &&
		score.Recall >= c.Threshold.Recall &&
		score.F1 >= c.Threshold.F1
	return &MatchResult{
		RougeType: c.RougeType,
		Measure:   measure,
		Value:     value,
		Score:     score,
		Passed:    passed,
	}, nil
}

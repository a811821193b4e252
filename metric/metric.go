//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package metric provides the metric configuration applied during evaluation.
package metric

import (
	"errors"

	"github.com/texteval/texteval-go/metric/criterion"
)

const (
	// MetricBleuScore is the metric name for BLEU scoring.
	MetricBleuScore = "bleu_score"
	// MetricRougeScore is the metric name for ROUGE scoring.
	MetricRougeScore = "rouge_score"
)

// EvalMetric configures a single metric for an evaluation run.
type EvalMetric struct {
	// MetricName identifies the metric and selects the scorer.
	MetricName string `json:"metricName,omitempty"`
	// Threshold is the minimum average score for the metric to pass.
	Threshold float64 `json:"threshold,omitempty"`
	// Criterion carries the metric-specific scoring configuration.
	Criterion *criterion.Criterion `json:"criterion,omitempty"`
}

// Validate checks that the metric carries a name and a valid threshold.
func (m *EvalMetric) Validate() error {
	if m == nil {
		return errors.New("metric is nil")
	}
	if m.MetricName == "" {
		return errors.New("metric name is empty")
	}
	if m.Threshold < 0 || m.Threshold > 1 {
		return errors.New("metric threshold must be in [0, 1]")
	}
	return nil
}

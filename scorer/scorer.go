//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package scorer defines the scoring interface applied to evaluation cases.
package scorer

import (
	"context"

	"github.com/texteval/texteval-go/evalset"
	"github.com/texteval/texteval-go/metric"
	"github.com/texteval/texteval-go/status"
)

// Scorer scores evaluation cases against a metric configuration.
type Scorer interface {
	// Name returns the scorer identifier.
	Name() string
	// Description describes the scorer purpose.
	Description() string
	// Score scores the given cases against the metric.
	Score(ctx context.Context, cases []*evalset.EvalCase, evalMetric *metric.EvalMetric) (*Result, error)
}

// Result contains the outcome of scoring a batch of cases with one metric.
type Result struct {
	// OverallScore is the average score across evaluated cases.
	OverallScore float64 `json:"overallScore,omitempty"`
	// OverallStatus summarizes the batch against the metric threshold.
	OverallStatus status.EvalStatus `json:"overallStatus,omitempty"`
	// PerCaseResults contains the outcome for each case.
	PerCaseResults []*PerCaseResult `json:"perCaseResults,omitempty"`
}

// PerCaseResult contains the outcome of scoring a single case.
type PerCaseResult struct {
	// CaseID identifies the evaluation case.
	CaseID string `json:"caseId,omitempty"`
	// Score is the scalar score for this case.
	Score float64 `json:"score,omitempty"`
	// Status reports this case against the metric threshold.
	Status status.EvalStatus `json:"status,omitempty"`
	// Reason explains the score or carries the scoring error.
	Reason string `json:"reason,omitempty"`
}

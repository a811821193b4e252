//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package evalresult provides the evaluation result model and its managers.
package evalresult

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/texteval/texteval-go/epochtime"
	"github.com/texteval/texteval-go/status"
)

// EvalSetResult represents the evaluation result for an entire eval set.
type EvalSetResult struct {
	// EvalSetResultID uniquely identifies this result.
	EvalSetResultID string `json:"evalSetResultId,omitempty"`
	// EvalSetResultName is the name of this result.
	EvalSetResultName string `json:"evalSetResultName,omitempty"`
	// EvalSetID identifies the eval set.
	EvalSetID string `json:"evalSetId,omitempty"`
	// EvalCaseResults contains results for each eval case.
	EvalCaseResults []*EvalCaseResult `json:"evalCaseResults,omitempty"`
	// Summary aggregates outcomes across cases and metrics.
	Summary *Summary `json:"summary,omitempty"`
	// CreationTimestamp when this result was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// EvalCaseResult represents the result of a single evaluation case.
type EvalCaseResult struct {
	// EvalSetID identifies the eval set.
	EvalSetID string `json:"evalSetId,omitempty"`
	// CaseID identifies the eval case.
	CaseID string `json:"caseId,omitempty"`
	// FinalStatus is the final status for this eval case across metrics.
	FinalStatus status.EvalStatus `json:"finalStatus,omitempty"`
	// MetricResults contains one result per metric for this case.
	MetricResults []*EvalMetricResult `json:"metricResults,omitempty"`
	// ErrorMessage carries a scoring error for this case, if any.
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// EvalMetricResult represents the result of a single metric evaluation.
type EvalMetricResult struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// Score obtained for this metric.
	Score float64 `json:"score,omitempty"`
	// Status of this metric evaluation.
	Status status.EvalStatus `json:"status,omitempty"`
	// Threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// Reason explains the score or carries the scoring error.
	Reason string `json:"reason,omitempty"`
}

// Manager defines the interface for managing evaluation results.
type Manager interface {
	// Save stores an evaluation result and returns its ID, generating one
	// when the result carries none.
	Save(ctx context.Context, appName string, result *EvalSetResult) (string, error)
	// Get retrieves an evaluation result by ID.
	Get(ctx context.Context, appName, evalSetResultID string) (*EvalSetResult, error)
	// List returns all available evaluation result IDs for the app.
	List(ctx context.Context, appName string) ([]string, error)
	// Close closes the manager and releases owned resources.
	Close() error
}

// NewResultID builds a unique result ID from the app and eval set.
func NewResultID(appName, evalSetID string) string {
	return fmt.Sprintf("%s_%s_%s", appName, evalSetID, uuid.New().String())
}

//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package status provides the status of an evaluation.
package status

import "fmt"

// EvalStatus represents the status of an evaluation.
type EvalStatus int

const (
	// EvalStatusUnknown represents an unknown evaluation status.
	EvalStatusUnknown EvalStatus = iota
	// EvalStatusPassed represents a passed evaluation status.
	EvalStatusPassed
	// EvalStatusFailed represents a failed evaluation status.
	EvalStatusFailed
	// EvalStatusNotEvaluated represents a not evaluated evaluation status.
	EvalStatusNotEvaluated
)

// String returns the string representation of the evaluation status.
func (s EvalStatus) String() string {
	switch s {
	case EvalStatusPassed:
		return "passed"
	case EvalStatusFailed:
		return "failed"
	case EvalStatusNotEvaluated:
		return "not_evaluated"
	default:
		return "unknown"
	}
}

// ForScore maps a numeric score to a status against a threshold.
func ForScore(score, threshold float64) EvalStatus {
	if score >= threshold {
		return EvalStatusPassed
	}
	return EvalStatusFailed
}

// Summarize combines multiple statuses into a single value.
// The precedence rules are:
// 1. If there is a Failed, the overall status is Failed.
// 2. If there is a Passed, the overall status is Passed.
// 3. Otherwise, the overall status is NotEvaluated.
func Summarize(statuses []EvalStatus) (EvalStatus, error) {
	combined := EvalStatusNotEvaluated
	for _, s := range statuses {
		switch s {
		case EvalStatusFailed:
			return EvalStatusFailed, nil
		case EvalStatusPassed:
			combined = EvalStatusPassed
		case EvalStatusNotEvaluated:
			continue
		default:
			return EvalStatusFailed, fmt.Errorf("unexpected eval status %v", s)
		}
	}
	return combined, nil
}

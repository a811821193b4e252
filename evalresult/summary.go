//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package evalresult

import "github.com/texteval/texteval-go/status"

// Summary aggregates outcomes across cases and metrics.
type Summary struct {
	// TotalCases is the number of scored cases.
	TotalCases int `json:"totalCases"`
	// PassedCases is the number of cases whose final status is passed.
	PassedCases int `json:"passedCases"`
	// FailedCases is the number of cases whose final status is failed.
	FailedCases int `json:"failedCases"`
	// MetricAverages maps metric name to the average score across cases.
	MetricAverages map[string]float64 `json:"metricAverages,omitempty"`
}

// Summarize builds a Summary from per-case results.
func Summarize(caseResults []*EvalCaseResult) *Summary {
	summary := &Summary{MetricAverages: make(map[string]float64)}
	metricCounts := make(map[string]int)
	for _, caseResult := range caseResults {
		if caseResult == nil {
			continue
		}
		summary.TotalCases++
		switch caseResult.FinalStatus {
		case status.EvalStatusPassed:
			summary.PassedCases++
		case status.EvalStatusFailed:
			summary.FailedCases++
		}
		for _, metricResult := range caseResult.MetricResults {
			if metricResult == nil {
				continue
			}
			summary.MetricAverages[metricResult.MetricName] += metricResult.Score
			metricCounts[metricResult.MetricName]++
		}
	}
	for name, sum := range summary.MetricAverages {
		summary.MetricAverages[name] = sum / float64(metricCounts[name])
	}
	return summary
}

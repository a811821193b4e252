//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package evalresult

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texteval/texteval-go/status"
)

// TestSummarize verifies case counting and per-metric score averaging.
func TestSummarize(t *testing.T) {
	summary := Summarize([]*EvalCaseResult{
		{
			CaseID:      "case1",
			FinalStatus: status.EvalStatusPassed,
			MetricResults: []*EvalMetricResult{
				{MetricName: "bleu_score", Score: 1.0},
				{MetricName: "rouge_score", Score: 0.9},
			},
		},
		{
			CaseID:      "case2",
			FinalStatus: status.EvalStatusFailed,
			MetricResults: []*EvalMetricResult{
				{MetricName: "bleu_score", Score: 0.5},
			},
		},
		nil,
		{CaseID: "case3", FinalStatus: status.EvalStatusNotEvaluated},
	})

	assert.Equal(t, 3, summary.TotalCases)
	assert.Equal(t, 1, summary.PassedCases)
	assert.Equal(t, 1, summary.FailedCases)
	assert.InDelta(t, 0.75, summary.MetricAverages["bleu_score"], 1e-9)
	assert.InDelta(t, 0.9, summary.MetricAverages["rouge_score"], 1e-9)
}

// TestSummarize_Empty verifies the zero-case summary.
func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.TotalCases)
	assert.Empty(t, summary.MetricAverages)
}

// TestNewResultID verifies the app/eval-set/uuid shape of generated IDs.
func TestNewResultID(t *testing.T) {
	id := NewResultID("app", "set1")
	require.True(t, strings.HasPrefix(id, "app_set1_"))
	assert.NotEqual(t, id, NewResultID("app", "set1"))
}

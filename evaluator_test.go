//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package texteval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texteval/texteval-go/evalresult/inmemory"
	"github.com/texteval/texteval-go/evalset"
	evalsetlocal "github.com/texteval/texteval-go/evalset/local"
	"github.com/texteval/texteval-go/metric"
	"github.com/texteval/texteval-go/metric/criterion"
	cbleu "github.com/texteval/texteval-go/metric/criterion/bleu"
	crouge "github.com/texteval/texteval-go/metric/criterion/rouge"
	"github.com/texteval/texteval-go/rouge"
	"github.com/texteval/texteval-go/status"
)

// newTestEvalSetManager builds a file-backed eval set manager seeded with an
// exact-match case and a disjoint case.
func newTestEvalSetManager(t *testing.T) evalset.Manager {
	t.Helper()
	mgr := evalsetlocal.New(evalset.WithBaseDir(t.TempDir()))
	ctx := context.Background()
	_, err := mgr.Create(ctx, "app", "set1")
	require.NoError(t, err)
	require.NoError(t, mgr.AddCase(ctx, "app", "set1", &evalset.EvalCase{
		CaseID:     "exact",
		Prediction: "the cat is on the mat",
		References: []string{"the cat is on the mat"},
	}))
	require.NoError(t, mgr.AddCase(ctx, "app", "set1", &evalset.EvalCase{
		CaseID:     "disjoint",
		Prediction: "green apples fall",
		References: []string{"blue birds fly"},
	}))
	return mgr
}

func testMetrics() []*metric.EvalMetric {
	return []*metric.EvalMetric{
		{
			MetricName: metric.MetricBleuScore,
			Threshold:  0.5,
			Criterion: &criterion.Criterion{
				Bleu: &cbleu.BleuCriterion{Threshold: 0.5},
			},
		},
		{
			MetricName: metric.MetricRougeScore,
			Threshold:  0.5,
			Criterion: &criterion.Criterion{
				Rouge: &crouge.RougeCriterion{
					RougeType: "rouge1",
					Threshold: rouge.Score{F1: 0.5},
				},
			},
		},
	}
}

// TestEvaluator_Evaluate runs both built-in metrics over a small eval set
// and checks the persisted per-case and summary results.
func TestEvaluator_Evaluate(t *testing.T) {
	resultMgr := inmemory.New()
	ev, err := New("app",
		WithEvalSetManager(newTestEvalSetManager(t)),
		WithResultManager(resultMgr),
		WithMetrics(testMetrics()...),
		WithParallelism(2),
	)
	require.NoError(t, err)
	defer ev.Close()

	ctx := context.Background()
	result, err := ev.Evaluate(ctx, "set1")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.EvalCaseResults, 2)

	byCase := make(map[string]status.EvalStatus)
	for _, caseResult := range result.EvalCaseResults {
		byCase[caseResult.CaseID] = caseResult.FinalStatus
		assert.Len(t, caseResult.MetricResults, 2)
	}
	assert.Equal(t, status.EvalStatusPassed, byCase["exact"])
	assert.Equal(t, status.EvalStatusFailed, byCase["disjoint"])

	require.NotNil(t, result.Summary)
	assert.Equal(t, 2, result.Summary.TotalCases)
	assert.Equal(t, 1, result.Summary.PassedCases)
	assert.Equal(t, 1, result.Summary.FailedCases)
	assert.InDelta(t, 0.5, result.Summary.MetricAverages[metric.MetricBleuScore], 1e-9)

	// The result is persisted under its generated ID.
	stored, err := resultMgr.Get(ctx, "app", result.EvalSetResultID)
	require.NoError(t, err)
	assert.Equal(t, result.EvalSetID, stored.EvalSetID)
}

// TestNew_Validation covers constructor validation.
func TestNew_Validation(t *testing.T) {
	_, err := New("")
	require.Error(t, err)

	_, err = New("app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metrics configured")

	_, err = New("app", WithMetrics(&metric.EvalMetric{MetricName: "", Threshold: 0.5}))
	require.Error(t, err)

	_, err = New("app",
		WithMetrics(testMetrics()...),
		WithParallelism(0))
	require.Error(t, err)
}

// TestEvaluator_UnknownMetric verifies that a metric without a registered
// scorer surfaces as an aggregated error while the result is still saved.
func TestEvaluator_UnknownMetric(t *testing.T) {
	resultMgr := inmemory.New()
	metrics := append(testMetrics(), &metric.EvalMetric{MetricName: "levenshtein", Threshold: 0.5})
	ev, err := New("app",
		WithEvalSetManager(newTestEvalSetManager(t)),
		WithResultManager(resultMgr),
		WithMetrics(metrics...),
	)
	require.NoError(t, err)
	defer ev.Close()

	ctx := context.Background()
	result, err := ev.Evaluate(ctx, "set1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "levenshtein")

	// The two resolvable metrics still produced a persisted result.
	require.NotNil(t, result)
	require.Len(t, result.EvalCaseResults, 2)
	for _, caseResult := range result.EvalCaseResults {
		assert.Len(t, caseResult.MetricResults, 2)
	}
	_, err = resultMgr.Get(ctx, "app", result.EvalSetResultID)
	require.NoError(t, err)
}

// TestEvaluator_MissingEvalSet verifies the error for an unknown eval set.
func TestEvaluator_MissingEvalSet(t *testing.T) {
	ev, err := New("app",
		WithEvalSetManager(newTestEvalSetManager(t)),
		WithResultManager(inmemory.New()),
		WithMetrics(testMetrics()...),
	)
	require.NoError(t, err)
	defer ev.Close()

	_, err = ev.Evaluate(context.Background(), "missing")
	require.Error(t, err)
}

// TestEvaluator_Close verifies that Close is idempotent.
func TestEvaluator_Close(t *testing.T) {
	ev, err := New("app",
		WithEvalSetManager(newTestEvalSetManager(t)),
		WithResultManager(inmemory.New()),
		WithMetrics(testMetrics()...),
	)
	require.NoError(t, err)
	require.NoError(t, ev.Close())
	require.NoError(t, ev.Close())
}

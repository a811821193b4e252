//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package bleuscore provides deterministic BLEU scoring for evaluation cases.
package bleuscore

import (
	"context"
	"errors"

	"github.com/texteval/texteval-go/evalset"
	"github.com/texteval/texteval-go/metric"
	"github.com/texteval/texteval-go/scorer"
	"github.com/texteval/texteval-go/status"
)

// bleuScorer scores cases using the BLEU criterion.
type bleuScorer struct {
}

// New creates a new BLEU scorer.
func New() scorer.Scorer {
	return &bleuScorer{}
}

// Name returns the scorer identifier.
func (s *bleuScorer) Name() string {
	return metric.MetricBleuScore
}

// Description describes the scorer purpose.
func (s *bleuScorer) Description() string {
	return "Scores predictions against references with BLEU n-gram precision"
}

// Score scores the given cases against the BLEU criterion.
func (s *bleuScorer) Score(ctx context.Context, cases []*evalset.EvalCase, evalMetric *metric.EvalMetric) (*scorer.Result, error) {
	if evalMetric == nil || evalMetric.Criterion == nil || evalMetric.Criterion.Bleu == nil {
		return nil, errors.New("bleu criterion not configured")
	}
	perCase := make([]*scorer.PerCaseResult, 0, len(cases))
	var totalScore float64
	for _, c := range cases {
		if c == nil {
			continue
		}
		score := 0.0
		reason := ""
		result, err := evalMetric.Criterion.Bleu.Match(ctx, c.Prediction, c.References)
		if err != nil {
			reason = err.Error()
		} else {
			score = result.Value
			reason = result.Reason()
		}
		perCase = append(perCase, &scorer.PerCaseResult{
			CaseID: c.CaseID,
			Score:  score,
			Status: status.ForScore(score, evalMetric.Threshold),
			Reason: reason,
		})
		totalScore += score
	}
	if len(perCase) == 0 {
		return &scorer.Result{OverallStatus: status.EvalStatusNotEvaluated}, nil
	}
	overallScore := totalScore / float64(len(perCase))
	return &scorer.Result{
		OverallScore:   overallScore,
		OverallStatus:  status.ForScore(overallScore, evalMetric.Threshold),
		PerCaseResults: perCase,
	}, nil
}

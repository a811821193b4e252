//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package texteval

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/texteval/texteval-go/evalresult"
	evalresultlocal "github.com/texteval/texteval-go/evalresult/local"
	"github.com/texteval/texteval-go/evalset"
	evalsetlocal "github.com/texteval/texteval-go/evalset/local"
	"github.com/texteval/texteval-go/metric"
	"github.com/texteval/texteval-go/scorer"
	"github.com/texteval/texteval-go/scorer/registry"
	"github.com/texteval/texteval-go/status"
)

// Evaluator scores every case of an eval set against the configured metrics
// and persists the result.
type Evaluator interface {
	// Evaluate evaluates the eval set and returns the persisted result.
	// Per-case and per-metric failures do not abort the remaining work; they
	// are aggregated into the returned error alongside the partial result.
	Evaluate(ctx context.Context, evalSetID string) (*evalresult.EvalSetResult, error)
	// Close releases the scoring pool and the managers.
	Close() error
}

// evaluator implements Evaluator.
type evaluator struct {
	appName   string
	opts      *options
	pool      *ants.PoolWithFunc
	closeOnce sync.Once
	closeErr  error
}

// New creates a batch Evaluator for the app. Unless overridden, eval sets
// and results live in local JSON files and both built-in scorers are
// available.
func New(appName string, opt ...Option) (Evaluator, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	opts := newOptions(opt...)
	if opts.evalSetManager == nil {
		opts.evalSetManager = evalsetlocal.New()
	}
	if opts.resultManager == nil {
		opts.resultManager = evalresultlocal.New()
	}
	if opts.registry == nil {
		opts.registry = registry.New()
	}
	if len(opts.metrics) == 0 {
		return nil, errors.New("no metrics configured")
	}
	for _, m := range opts.metrics {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("validate metric: %w", err)
		}
	}
	pool, err := createMetricScorePool(opts.parallelism)
	if err != nil {
		return nil, err
	}
	return &evaluator{appName: appName, opts: opts, pool: pool}, nil
}

// Evaluate loads the eval set, scores every case against every configured
// metric, persists the aggregated result, and returns it.
func (e *evaluator) Evaluate(ctx context.Context, evalSetID string) (*evalresult.EvalSetResult, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	if evalSetID == "" {
		return nil, errors.New("eval set id is empty")
	}
	set, err := e.opts.evalSetManager.Get(ctx, e.appName, evalSetID)
	if err != nil {
		return nil, fmt.Errorf("get eval set %s: %w", evalSetID, err)
	}
	evalCases := make([]*evalset.EvalCase, 0, len(set.EvalCases))
	for _, evalCase := range set.EvalCases {
		if evalCase != nil {
			evalCases = append(evalCases, evalCase)
		}
	}
	e.opts.logger.Info("starting evaluation",
		zap.String("app", e.appName),
		zap.String("evalSet", evalSetID),
		zap.Int("cases", len(evalCases)),
		zap.Int("metrics", len(e.opts.metrics)))

	outcomes := e.scoreMetrics(ctx, evalCases)

	var merr *multierror.Error
	caseResults := make([]*evalresult.EvalCaseResult, 0, len(evalCases))
	for idx, evalCase := range evalCases {
		caseResult := &evalresult.EvalCaseResult{
			EvalSetID: evalSetID,
			CaseID:    evalCase.CaseID,
		}
		statuses := make([]status.EvalStatus, 0, len(outcomes))
		for _, outcome := range outcomes {
			if outcome.err != nil {
				continue
			}
			perCase := outcome.result.PerCaseResults[idx]
			caseResult.MetricResults = append(caseResult.MetricResults, &evalresult.EvalMetricResult{
				MetricName: outcome.evalMetric.MetricName,
				Score:      perCase.Score,
				Status:     perCase.Status,
				Threshold:  outcome.evalMetric.Threshold,
				Reason:     perCase.Reason,
			})
			statuses = append(statuses, perCase.Status)
		}
		caseResult.FinalStatus = summarizeCase(statuses)
		caseResults = append(caseResults, caseResult)
	}
	for _, outcome := range outcomes {
		if outcome.err != nil {
			e.opts.logger.Warn("metric scoring failed",
				zap.String("metric", outcome.evalMetric.MetricName),
				zap.Error(outcome.err))
			merr = multierror.Append(merr, fmt.Errorf("score metric %s: %w",
				outcome.evalMetric.MetricName, outcome.err))
		}
	}

	result := &evalresult.EvalSetResult{
		EvalSetID:       evalSetID,
		EvalCaseResults: caseResults,
		Summary:         evalresult.Summarize(caseResults),
	}
	if _, err := e.opts.resultManager.Save(ctx, e.appName, result); err != nil {
		return nil, fmt.Errorf("save eval set result: %w", err)
	}
	e.opts.logger.Info("evaluation finished",
		zap.String("resultID", result.EvalSetResultID),
		zap.Int("passed", result.Summary.PassedCases),
		zap.Int("failed", result.Summary.FailedCases))
	return result, merr.ErrorOrNil()
}

// scoreMetrics runs one scoring task per metric on the pool, falling back to
// inline execution when a task cannot be submitted.
func (e *evaluator) scoreMetrics(ctx context.Context, evalCases []*evalset.EvalCase) []*metricOutcome {
	outcomes := make([]*metricOutcome, len(e.opts.metrics))
	var wg sync.WaitGroup
	for idx, evalMetric := range e.opts.metrics {
		wg.Add(1)
		param := metricScoreParamPool.Get().(*metricScoreParam)
		param.idx = idx
		param.ctx = ctx
		param.evalCases = evalCases
		param.evalMetric = evalMetric
		param.ev = e
		param.outcomes = outcomes
		param.wg = &wg
		if err := e.pool.Invoke(param); err != nil {
			wg.Done()
			outcomes[idx] = e.scoreMetric(ctx, evalCases, evalMetric)
			param.reset()
			metricScoreParamPool.Put(param)
		}
	}
	wg.Wait()
	return outcomes
}

// metricOutcome is the result of scoring all cases against one metric.
type metricOutcome struct {
	evalMetric *metric.EvalMetric
	result     *scorer.Result
	err        error
}

// scoreMetric resolves the scorer for the metric and scores the cases.
func (e *evaluator) scoreMetric(ctx context.Context, evalCases []*evalset.EvalCase, evalMetric *metric.EvalMetric) *metricOutcome {
	outcome := &metricOutcome{evalMetric: evalMetric}
	s, err := e.opts.registry.Get(evalMetric.MetricName)
	if err != nil {
		outcome.err = err
		return outcome
	}
	result, err := s.Score(ctx, evalCases, evalMetric)
	if err != nil {
		outcome.err = err
		return outcome
	}
	if len(result.PerCaseResults) != len(evalCases) {
		outcome.err = fmt.Errorf("scorer %s returned %d case results for %d cases",
			evalMetric.MetricName, len(result.PerCaseResults), len(evalCases))
		return outcome
	}
	outcome.result = result
	return outcome
}

// summarizeCase folds per-metric statuses into a final case status.
func summarizeCase(statuses []status.EvalStatus) status.EvalStatus {
	if len(statuses) == 0 {
		return status.EvalStatusNotEvaluated
	}
	final, err := status.Summarize(statuses)
	if err != nil {
		return status.EvalStatusNotEvaluated
	}
	return final
}

// Close releases the scoring pool and closes the managers.
func (e *evaluator) Close() error {
	e.closeOnce.Do(func() {
		e.pool.Release()
		e.closeErr = errors.Join(
			e.opts.evalSetManager.Close(),
			e.opts.resultManager.Close(),
		)
	})
	return e.closeErr
}

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

	"github.com/panjf2000/ants/v2"

	"github.com/texteval/texteval-go/evalset"
	"github.com/texteval/texteval-go/metric"
)

type metricScoreParam struct {
	idx        int
	ctx        context.Context
	evalCases  []*evalset.EvalCase
	evalMetric *metric.EvalMetric
	ev         *evaluator
	outcomes   []*metricOutcome
	wg         *sync.WaitGroup
}

func (p *metricScoreParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.evalCases = nil
	p.evalMetric = nil
	p.ev = nil
	p.outcomes = nil
	p.wg = nil
}

var metricScoreParamPool = &sync.Pool{
	New: func() any { return new(metricScoreParam) },
}

func createMetricScorePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*metricScoreParam)
		if !ok {
			panic("metric score pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			metricScoreParamPool.Put(param)
		}()
		param.outcomes[param.idx] = param.ev.scoreMetric(param.ctx, param.evalCases, param.evalMetric)
	})
	if err != nil {
		return nil, fmt.Errorf("create metric score pool: %w", err)
	}
	return pool, nil
}

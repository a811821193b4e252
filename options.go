//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package texteval

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/texteval/texteval-go/bleu"
	"github.com/texteval/texteval-go/evalresult"
	"github.com/texteval/texteval-go/evalset"
	"github.com/texteval/texteval-go/metric"
	"github.com/texteval/texteval-go/rouge"
	"github.com/texteval/texteval-go/scorer/registry"
)

// defaultParallelism is the default number of concurrent scoring tasks.
const defaultParallelism = 4

// evalOptions holds configuration for the one-shot Evaluate call.
type evalOptions struct {
	// writer receives the printed report.
	writer io.Writer
	// bleuOptions configure the BLEU computation.
	bleuOptions []bleu.Option
	// rougeOptions configure the ROUGE computation.
	rougeOptions []rouge.Option
}

// newEvalOptions applies functional options to the one-shot defaults.
func newEvalOptions(opt ...EvalOption) *evalOptions {
	opts := &evalOptions{writer: os.Stdout}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// EvalOption configures the one-shot Evaluate call.
type EvalOption func(*evalOptions)

// WithWriter sets the destination for the printed report.
func WithWriter(w io.Writer) EvalOption {
	return func(o *evalOptions) {
		o.writer = w
	}
}

// WithBleuOptions forwards options to the BLEU computation.
func WithBleuOptions(opt ...bleu.Option) EvalOption {
	return func(o *evalOptions) {
		o.bleuOptions = append(o.bleuOptions, opt...)
	}
}

// WithRougeOptions forwards options to the ROUGE computation.
func WithRougeOptions(opt ...rouge.Option) EvalOption {
	return func(o *evalOptions) {
		o.rougeOptions = append(o.rougeOptions, opt...)
	}
}

// options holds configuration for the batch Evaluator.
type options struct {
	// evalSetManager stores and loads eval sets.
	evalSetManager evalset.Manager
	// resultManager persists evaluation results.
	resultManager evalresult.Manager
	// registry resolves metric names to scorers.
	registry registry.Registry
	// metrics are the metrics every case is scored against.
	metrics []*metric.EvalMetric
	// parallelism caps concurrent scoring tasks.
	parallelism int
	// logger receives progress and failure logs.
	logger *zap.Logger
}

// newOptions applies functional options to the batch defaults.
func newOptions(opt ...Option) *options {
	opts := &options{
		parallelism: defaultParallelism,
		logger:      zap.NewNop(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the batch Evaluator.
type Option func(*options)

// WithEvalSetManager sets the eval set manager.
func WithEvalSetManager(mgr evalset.Manager) Option {
	return func(o *options) {
		o.evalSetManager = mgr
	}
}

// WithResultManager sets the evaluation result manager.
func WithResultManager(mgr evalresult.Manager) Option {
	return func(o *options) {
		o.resultManager = mgr
	}
}

// WithRegistry sets the scorer registry.
func WithRegistry(reg registry.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithMetrics sets the metrics every case is scored against.
func WithMetrics(metrics ...*metric.EvalMetric) Option {
	return func(o *options) {
		o.metrics = append(o.metrics, metrics...)
	}
}

// WithParallelism caps the number of concurrent scoring tasks.
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		o.parallelism = parallelism
	}
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package bleu

import (
	"errors"

	"github.com/texteval/texteval-go/internal/tokenize"
)

// defaultMaxOrder is the standard BLEU-4 n-gram order.
const defaultMaxOrder = 4

// options holds internal configuration for BLEU scoring.
type options struct {
	// maxOrder is the highest n-gram order scored.
	maxOrder int
	// weights holds one weight per order; nil means uniform.
	weights []float64
	// smooth enables add-one smoothing for orders above one.
	smooth bool
	// tokenizer splits text into tokens.
	tokenizer tokenize.Tokenizer
}

// newOptions applies functional options and validates the configuration.
func newOptions(opt ...Option) (*options, error) {
	opts := &options{
		maxOrder:  defaultMaxOrder,
		tokenizer: tokenize.Whitespace{},
	}
	for _, o := range opt {
		o(opts)
	}
	if opts.maxOrder <= 0 {
		return nil, errors.New("max order must be greater than 0")
	}
	if opts.weights == nil {
		opts.weights = make([]float64, opts.maxOrder)
		for i := range opts.weights {
			opts.weights[i] = 1 / float64(opts.maxOrder)
		}
	} else if err := validateWeights(opts.weights, opts.maxOrder); err != nil {
		return nil, err
	}
	if opts.tokenizer == nil {
		return nil, errors.New("tokenizer is nil")
	}
	return opts, nil
}

// Option configures BLEU scoring.
type Option func(*options)

// WithMaxOrder sets the highest n-gram order scored.
func WithMaxOrder(maxOrder int) Option {
	return func(o *options) {
		o.maxOrder = maxOrder
	}
}

// WithWeights sets one weight per n-gram order, replacing the uniform default.
func WithWeights(weights ...float64) Option {
	return func(o *options) {
		o.weights = append([]float64(nil), weights...)
	}
}

// WithSmoothing enables add-one smoothing for orders above one so that long
// predictions with sparse high-order matches keep a non-zero score.
func WithSmoothing(smooth bool) Option {
	return func(o *options) {
		o.smooth = smooth
	}
}

// WithTokenizer overrides the default whitespace tokenizer.
func WithTokenizer(tokenizer tokenize.Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = tokenizer
	}
}

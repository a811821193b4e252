//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package rouge

import "github.com/texteval/texteval-go/internal/tokenize"

// Aggregation selects how scores from multiple references are combined.
type Aggregation string

const (
	// AggregationBest keeps the reference with the highest F1 per variant.
	AggregationBest Aggregation = "best"
	// AggregationAverage averages precision, recall and F1 across references.
	AggregationAverage Aggregation = "average"
)

// options holds internal configuration for ROUGE scoring.
type options struct {
	// variants holds the requested ROUGE variants to compute.
	variants []string
	// stemming enables Porter stemming during tokenization.
	stemming bool
	// splitSentences enables Punkt sentence splitting for rougeLsum.
	splitSentences bool
	// aggregation selects multi-reference aggregation.
	aggregation Aggregation
	// tokenizer overrides the built-in tokenizer when provided.
	tokenizer tokenize.Tokenizer
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		variants:    DefaultVariants,
		aggregation: AggregationBest,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures ROUGE scoring.
type Option func(*options)

// WithVariants sets the ROUGE variants to compute.
func WithVariants(variants ...string) Option {
	return func(o *options) {
		o.variants = append([]string(nil), variants...)
	}
}

// WithStemming enables or disables Porter stemming in the tokenizer.
func WithStemming(stemming bool) Option {
	return func(o *options) {
		o.stemming = stemming
	}
}

// WithSentenceSplit splits summaries into sentences for rougeLsum instead of
// splitting on newlines.
func WithSentenceSplit(split bool) Option {
	return func(o *options) {
		o.splitSentences = split
	}
}

// WithAggregation sets how multi-reference scores are combined.
func WithAggregation(aggregation Aggregation) Option {
	return func(o *options) {
		o.aggregation = aggregation
	}
}

// WithTokenizer overrides the built-in tokenizer.
func WithTokenizer(tokenizer tokenize.Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = tokenizer
	}
}

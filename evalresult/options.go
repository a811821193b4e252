//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package evalresult

// defaultBaseDir is the default base directory for eval result files.
const defaultBaseDir = "evalset_results"

// Options configure the local evaluation result manager.
type Options struct {
	BaseDir string  // BaseDir is the base directory for eval result files.
	Locator Locator // Locator builds and lists eval result file paths.
}

// NewOptions constructs Options with the default values.
func NewOptions(opt ...Option) *Options {
	options := &Options{
		BaseDir: defaultBaseDir,
		Locator: &locator{},
	}
	for _, o := range opt {
		o(options)
	}
	return options
}

// Option configures the local evaluation result manager.
type Option func(*Options)

// WithBaseDir overrides the default base directory used to store results.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}

// WithLocator sets the locator.
func WithLocator(l Locator) Option {
	return func(o *Options) {
		o.Locator = l
	}
}

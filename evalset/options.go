//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package evalset

// defaultBaseDir is the default base directory for eval set files.
const defaultBaseDir = "evalsets"

// Options configure the local evaluation set manager.
type Options struct {
	BaseDir string  // BaseDir is the base directory for eval set files.
	Locator Locator // Locator builds and lists eval set file paths.
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

// Option is a functional option for configuring the eval set manager.
type Option func(*Options)

// WithBaseDir sets the root directory for storing eval set JSON files.
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

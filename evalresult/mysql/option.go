//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package mysql

import (
	"database/sql"
	"time"
)

// defaultTable is the default table name for eval set results.
const defaultTable = "eval_set_results"

// defaultInitTimeout bounds schema bootstrap at startup.
const defaultInitTimeout = 10 * time.Second

// options holds configuration for the MySQL result manager.
type options struct {
	// dsn is the MySQL data source name.
	dsn string
	// table is the result table name.
	table string
	// skipDBInit skips schema bootstrap at startup.
	skipDBInit bool
	// initTimeout bounds schema bootstrap at startup.
	initTimeout time.Duration
	// db overrides the connection built from dsn, mainly for tests.
	db *sql.DB
}

// newOptions applies functional options to build a manager configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		table:       defaultTable,
		initTimeout: defaultInitTimeout,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the MySQL result manager.
type Option func(*options)

// WithDSN sets the MySQL data source name.
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithTable overrides the result table name.
func WithTable(table string) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithSkipDBInit skips schema bootstrap at startup.
func WithSkipDBInit(skip bool) Option {
	return func(o *options) {
		o.skipDBInit = skip
	}
}

// WithInitTimeout bounds schema bootstrap at startup.
func WithInitTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.initTimeout = timeout
	}
}

// WithDB injects an existing database handle instead of opening one from the DSN.
func WithDB(db *sql.DB) Option {
	return func(o *options) {
		o.db = db
	}
}

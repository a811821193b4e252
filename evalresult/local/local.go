//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package local provides a local file storage implementation for evaluation results.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/texteval/texteval-go/epochtime"
	"github.com/texteval/texteval-go/evalresult"
)

// manager implements the evalresult.Manager interface using local file storage.
type manager struct {
	opts *evalresult.Options
	mu   sync.Mutex
}

// New creates a local file evaluation result manager.
func New(opt ...evalresult.Option) evalresult.Manager {
	return &manager{opts: evalresult.NewOptions(opt...)}
}

// Save stores an evaluation result to a local file and returns its ID.
func (m *manager) Save(ctx context.Context, appName string, result *evalresult.EvalSetResult) (string, error) {
	if appName == "" {
		return "", errors.New("app name is empty")
	}
	if result == nil {
		return "", errors.New("result is nil")
	}
	if result.EvalSetID == "" {
		return "", errors.New("the eval set id of eval set result is empty")
	}
	if result.EvalSetResultID == "" {
		result.EvalSetResultID = evalresult.NewResultID(appName, result.EvalSetID)
	}
	if result.EvalSetResultName == "" {
		result.EvalSetResultName = result.EvalSetResultID
	}
	if result.CreationTimestamp == nil {
		result.CreationTimestamp = epochtime.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := m.opts.Locator.Build(m.opts.BaseDir, appName, result.EvalSetResultID)
	if err := m.save(path, result); err != nil {
		return "", fmt.Errorf("store eval set result %s.%s: %w", appName, result.EvalSetResultID, err)
	}
	return result.EvalSetResultID, nil
}

// Get retrieves an evaluation result by ID from a local file.
func (m *manager) Get(ctx context.Context, appName, evalSetResultID string) (*evalresult.EvalSetResult, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	if evalSetResultID == "" {
		return nil, errors.New("eval set result id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := m.opts.Locator.Build(m.opts.BaseDir, appName, evalSetResultID)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("eval set result %s.%s not found: %w", appName, evalSetResultID, os.ErrNotExist)
		}
		return nil, err
	}
	defer f.Close()
	var result evalresult.EvalSetResult
	if err := json.NewDecoder(f).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode eval set result %s.%s: %w", appName, evalSetResultID, err)
	}
	return &result, nil
}

// List returns all available evaluation result IDs for the app.
func (m *manager) List(ctx context.Context, appName string) ([]string, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts.Locator.List(m.opts.BaseDir, appName)
}

// Close implements evalresult.Manager.
func (m *manager) Close() error {
	return nil
}

// save writes a result file atomically via a temp file and rename.
func (m *manager) save(path string, result *evalresult.EvalSetResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

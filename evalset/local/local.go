//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package local provides a local file storage implementation for evaluation sets.
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
	"github.com/texteval/texteval-go/evalset"
)

// manager implements the evalset.Manager interface using local file storage.
type manager struct {
	opts *evalset.Options
	mu   sync.Mutex
}

// New creates a local file evaluation set manager.
func New(opt ...evalset.Option) evalset.Manager {
	return &manager{opts: evalset.NewOptions(opt...)}
}

// Create creates a new empty eval set file.
func (m *manager) Create(ctx context.Context, appName, evalSetID string) (*evalset.EvalSet, error) {
	if err := validateIDs(appName, evalSetID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := m.opts.Locator.Build(m.opts.BaseDir, appName, evalSetID)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("eval set %s.%s already exists", appName, evalSetID)
	}
	set := &evalset.EvalSet{
		EvalSetID:         evalSetID,
		Name:              evalSetID,
		CreationTimestamp: epochtime.Now(),
	}
	if err := m.save(path, set); err != nil {
		return nil, err
	}
	return set, nil
}

// Get retrieves an eval set by ID from local file.
func (m *manager) Get(ctx context.Context, appName, evalSetID string) (*evalset.EvalSet, error) {
	if err := validateIDs(appName, evalSetID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(appName, evalSetID)
}

// List returns all eval set IDs for the app.
func (m *manager) List(ctx context.Context, appName string) ([]string, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts.Locator.List(m.opts.BaseDir, appName)
}

// Delete removes an eval set file.
func (m *manager) Delete(ctx context.Context, appName, evalSetID string) error {
	if err := validateIDs(appName, evalSetID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := m.opts.Locator.Build(m.opts.BaseDir, appName, evalSetID)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("eval set %s.%s not found: %w", appName, evalSetID, os.ErrNotExist)
		}
		return err
	}
	return nil
}

// AddCase appends a case to an eval set and persists it.
func (m *manager) AddCase(ctx context.Context, appName, evalSetID string, c *evalset.EvalCase) error {
	if err := validateIDs(appName, evalSetID); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	set, err := m.load(appName, evalSetID)
	if err != nil {
		return err
	}
	if set.Case(c.CaseID) != nil {
		return fmt.Errorf("case %s already exists in eval set %s.%s", c.CaseID, appName, evalSetID)
	}
	if c.CreationTimestamp == nil {
		c.CreationTimestamp = epochtime.Now()
	}
	set.EvalCases = append(set.EvalCases, c)
	return m.save(m.opts.Locator.Build(m.opts.BaseDir, appName, evalSetID), set)
}

// GetCase retrieves a single case from an eval set.
func (m *manager) GetCase(ctx context.Context, appName, evalSetID, caseID string) (*evalset.EvalCase, error) {
	set, err := m.Get(ctx, appName, evalSetID)
	if err != nil {
		return nil, err
	}
	c := set.Case(caseID)
	if c == nil {
		return nil, fmt.Errorf("case %s not found in eval set %s.%s: %w", caseID, appName, evalSetID, os.ErrNotExist)
	}
	return c, nil
}

// Close implements evalset.Manager.
func (m *manager) Close() error {
	return nil
}

// load reads an eval set file.
func (m *manager) load(appName, evalSetID string) (*evalset.EvalSet, error) {
	path := m.opts.Locator.Build(m.opts.BaseDir, appName, evalSetID)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("eval set %s.%s not found: %w", appName, evalSetID, os.ErrNotExist)
		}
		return nil, err
	}
	defer f.Close()
	var set evalset.EvalSet
	if err := json.NewDecoder(f).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode eval set %s.%s: %w", appName, evalSetID, err)
	}
	return &set, nil
}

// save writes an eval set file atomically via a temp file and rename.
func (m *manager) save(path string, set *evalset.EvalSet) error {
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
	if err := enc.Encode(set); err != nil {
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

// validateIDs checks the app name and eval set ID.
func validateIDs(appName, evalSetID string) error {
	if appName == "" {
		return errors.New("app name is empty")
	}
	if evalSetID == "" {
		return errors.New("eval set id is empty")
	}
	return nil
}

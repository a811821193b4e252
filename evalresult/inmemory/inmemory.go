//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package inmemory provides an in-memory storage implementation for evaluation results.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/texteval/texteval-go/epochtime"
	"github.com/texteval/texteval-go/evalresult"
)

// manager implements the evalresult.Manager interface using in-memory storage.
type manager struct {
	mu sync.RWMutex
	// results maps appName to result ID to result.
	results map[string]map[string]*evalresult.EvalSetResult
}

// New creates an in-memory evaluation result manager.
func New() evalresult.Manager {
	return &manager{
		results: make(map[string]map[string]*evalresult.EvalSetResult),
	}
}

// Save stores an evaluation result in memory and returns its ID.
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
	if m.results[appName] == nil {
		m.results[appName] = make(map[string]*evalresult.EvalSetResult)
	}
	m.results[appName][result.EvalSetResultID] = result
	return result.EvalSetResultID, nil
}

// Get retrieves an evaluation result by ID from memory.
func (m *manager) Get(ctx context.Context, appName, evalSetResultID string) (*evalresult.EvalSetResult, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	if evalSetResultID == "" {
		return nil, errors.New("eval set result id is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if result, ok := m.results[appName][evalSetResultID]; ok {
		return result, nil
	}
	return nil, fmt.Errorf("eval set result %s.%s not found: %w", appName, evalSetResultID, os.ErrNotExist)
}

// List returns all available evaluation result IDs for the app.
func (m *manager) List(ctx context.Context, appName string) ([]string, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.results[appName]))
	for id := range m.results[appName] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close implements evalresult.Manager.
func (m *manager) Close() error {
	return nil
}

//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package registry manages the registration and retrieval of scorers.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/texteval/texteval-go/scorer"
	"github.com/texteval/texteval-go/scorer/bleuscore"
	"github.com/texteval/texteval-go/scorer/rougescore"
)

// Registry defines the interface for the scorer registry.
type Registry interface {
	// Register registers a scorer to the registry.
	Register(name string, s scorer.Scorer) error
	// Get retrieves a scorer by name.
	Get(name string) (scorer.Scorer, error)
	// List returns the names of all registered scorers.
	List() []string
}

// registry is the default implementation of Registry.
type registry struct {
	mu      sync.RWMutex
	scorers map[string]scorer.Scorer
}

// New creates a scorer registry pre-populated with the BLEU and ROUGE scorers.
func New() Registry {
	r := &registry{
		scorers: make(map[string]scorer.Scorer),
	}
	for _, s := range []scorer.Scorer{bleuscore.New(), rougescore.New()} {
		_ = r.Register(s.Name(), s)
	}
	return r
}

// Register registers a scorer to the registry.
// A scorer with the same name is overwritten.
func (r *registry) Register(name string, s scorer.Scorer) error {
	if s == nil {
		return errors.New("scorer is nil")
	}
	if name == "" {
		name = s.Name()
	}
	if name == "" {
		return errors.New("scorer name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scorers[name] = s
	return nil
}

// Get gets a scorer by name.
// Returns os.ErrNotExist if the scorer is not found.
func (r *registry) Get(name string) (scorer.Scorer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.scorers[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("get scorer %s: %w", name, os.ErrNotExist)
}

// List returns the names of all registered scorers sorted lexicographically.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.scorers))
	for name := range r.scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package evalset provides the evaluation set model and its managers.
package evalset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/texteval/texteval-go/epochtime"
)

// EvalSet is a named collection of evaluation cases.
type EvalSet struct {
	// EvalSetID uniquely identifies this eval set.
	EvalSetID string `json:"evalSetId,omitempty"`
	// Name is a human-readable name for this eval set.
	Name string `json:"name,omitempty"`
	// EvalCases contains the cases of this eval set.
	EvalCases []*EvalCase `json:"evalCases,omitempty"`
	// CreationTimestamp when this eval set was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// EvalCase is a single prediction with the references it is scored against.
type EvalCase struct {
	// CaseID uniquely identifies this evaluation case.
	CaseID string `json:"caseId,omitempty"`
	// Prediction is the candidate text being scored.
	Prediction string `json:"prediction,omitempty"`
	// References holds one or more reference texts.
	References []string `json:"references,omitempty"`
	// CreationTimestamp when this case was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// Validate checks the case invariants: a case ID, a non-empty prediction,
// and at least one non-empty reference.
func (c *EvalCase) Validate() error {
	if c == nil {
		return errors.New("eval case is nil")
	}
	if c.CaseID == "" {
		return errors.New("case id is empty")
	}
	if strings.TrimSpace(c.Prediction) == "" {
		return fmt.Errorf("case %s: prediction is empty", c.CaseID)
	}
	hasReference := false
	for _, reference := range c.References {
		if strings.TrimSpace(reference) != "" {
			hasReference = true
			break
		}
	}
	if !hasReference {
		return fmt.Errorf("case %s: references are empty", c.CaseID)
	}
	return nil
}

// Case returns the case with the given ID or nil.
func (s *EvalSet) Case(caseID string) *EvalCase {
	for _, c := range s.EvalCases {
		if c != nil && c.CaseID == caseID {
			return c
		}
	}
	return nil
}

// Manager defines the interface for managing evaluation sets.
type Manager interface {
	// Create creates a new empty eval set.
	Create(ctx context.Context, appName, evalSetID string) (*EvalSet, error)
	// Get retrieves an eval set by ID.
	Get(ctx context.Context, appName, evalSetID string) (*EvalSet, error)
	// List returns all eval set IDs for the app.
	List(ctx context.Context, appName string) ([]string, error)
	// Delete removes an eval set.
	Delete(ctx context.Context, appName, evalSetID string) error
	// AddCase appends a case to an eval set.
	AddCase(ctx context.Context, appName, evalSetID string, c *EvalCase) error
	// GetCase retrieves a single case from an eval set.
	GetCase(ctx context.Context, appName, evalSetID, caseID string) (*EvalCase, error)
	// Close closes the manager and releases owned resources.
	Close() error
}

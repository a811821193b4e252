//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

package local

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texteval/texteval-go/evalresult"
	"github.com/texteval/texteval-go/status"
)

// TestManager_SaveGet verifies that a saved result round-trips through the
// file store with its generated ID and timestamp filled in.
func TestManager_SaveGet(t *testing.T) {
	mgr := New(evalresult.WithBaseDir(t.TempDir()))
	defer mgr.Close()
	ctx := context.Background()

	result := &evalresult.EvalSetResult{
		EvalSetID: "set1",
		EvalCaseResults: []*evalresult.EvalCaseResult{
			{EvalSetID: "set1", CaseID: "case1", FinalStatus: status.EvalStatusPassed},
		},
		Summary: &evalresult.Summary{TotalCases: 1, PassedCases: 1},
	}
	id, err := mgr.Save(ctx, "app", result)
	require.NoError(t, err)
	assert.Contains(t, id, "app_set1_")

	got, err := mgr.Get(ctx, "app", id)
	require.NoError(t, err)
	assert.Equal(t, id, got.EvalSetResultID)
	assert.Equal(t, "set1", got.EvalSetID)
	require.Len(t, got.EvalCaseResults, 1)
	assert.Equal(t, status.EvalStatusPassed, got.EvalCaseResults[0].FinalStatus)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 1, got.Summary.PassedCases)
	assert.NotNil(t, got.CreationTimestamp)
}

// TestManager_Save_Invalid verifies input validation on Save.
func TestManager_Save_Invalid(t *testing.T) {
	mgr := New(evalresult.WithBaseDir(t.TempDir()))
	defer mgr.Close()
	ctx := context.Background()

	_, err := mgr.Save(ctx, "", &evalresult.EvalSetResult{EvalSetID: "set1"})
	require.Error(t, err)

	_, err = mgr.Save(ctx, "app", nil)
	require.Error(t, err)

	_, err = mgr.Save(ctx, "app", &evalresult.EvalSetResult{})
	require.Error(t, err)
}

// TestManager_Get_NotFound verifies that a missing result maps to
// os.ErrNotExist.
func TestManager_Get_NotFound(t *testing.T) {
	mgr := New(evalresult.WithBaseDir(t.TempDir()))
	defer mgr.Close()

	_, err := mgr.Get(context.Background(), "app", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestManager_List verifies that listing returns the IDs of stored results.
func TestManager_List(t *testing.T) {
	mgr := New(evalresult.WithBaseDir(t.TempDir()))
	defer mgr.Close()
	ctx := context.Background()

	ids, err := mgr.List(ctx, "app")
	require.NoError(t, err)
	assert.Empty(t, ids)

	first, err := mgr.Save(ctx, "app", &evalresult.EvalSetResult{EvalSetID: "set1"})
	require.NoError(t, err)
	second, err := mgr.Save(ctx, "app", &evalresult.EvalSetResult{EvalSetID: "set2"})
	require.NoError(t, err)

	ids, err = mgr.List(ctx, "app")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, ids)
}

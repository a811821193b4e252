//
// Copyright (C) 2026 texteval-go authors. All rights reserved.
//
// texteval-go is licensed under the Apache License Version 2.0.
//

// Package mysql provides a MySQL-backed evaluation result manager.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	// Register the MySQL driver.
	_ "github.com/go-sql-driver/mysql"

	"github.com/texteval/texteval-go/epochtime"
	"github.com/texteval/texteval-go/evalresult"
)

// manager implements evalresult.Manager backed by MySQL.
type manager struct {
	db      *sql.DB
	table   string
	ownsDB  bool
	dbValid bool
}

// New creates a MySQL-backed evaluation result manager.
func New(opt ...Option) (evalresult.Manager, error) {
	opts := newOptions(opt...)
	db := opts.db
	ownsDB := false
	if db == nil {
		if opts.dsn == "" {
			return nil, errors.New("mysql evalresult manager: dsn is required")
		}
		var err error
		db, err = sql.Open("mysql", opts.dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql connection: %w", err)
		}
		ownsDB = true
	}
	m := &manager{
		db:      db,
		table:   opts.table,
		ownsDB:  ownsDB,
		dbValid: true,
	}
	if !opts.skipDBInit {
		ctx, cancel := context.WithTimeout(context.Background(), opts.initTimeout)
		defer cancel()
		if err := m.initSchema(ctx); err != nil {
			if ownsDB {
				db.Close()
			}
			return nil, err
		}
	}
	return m, nil
}

// initSchema creates the result table if it does not exist.
func (m *manager) initSchema(ctx context.Context) error {
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		app_name VARCHAR(255) NOT NULL,
		eval_set_result_id VARCHAR(512) NOT NULL,
		eval_set_result_name VARCHAR(512) NOT NULL DEFAULT '',
		eval_set_id VARCHAR(255) NOT NULL,
		eval_case_results MEDIUMTEXT,
		summary TEXT,
		creation_time DOUBLE NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uk_app_result (app_name, eval_set_result_id),
		KEY idx_app_name (app_name)
	)`, m.table)
	if _, err := m.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("init result table %s: %w", m.table, err)
	}
	return nil
}

// Save stores an evaluation result, generating an ID when the result carries
// none. Saving the same result ID again overwrites the stored row.
func (m *manager) Save(ctx context.Context, appName string, result *evalresult.EvalSetResult) (string, error) {
	if ctx == nil {
		return "", errors.New("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if appName == "" {
		return "", errors.New("app name is empty")
	}
	if result == nil {
		return "", errors.New("eval set result is nil")
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
	caseResults, err := json.Marshal(result.EvalCaseResults)
	if err != nil {
		return "", fmt.Errorf("marshal eval case results: %w", err)
	}
	summary, err := json.Marshal(result.Summary)
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	stmt := fmt.Sprintf(`INSERT INTO %s
		(app_name, eval_set_result_id, eval_set_result_name, eval_set_id, eval_case_results, summary, creation_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		eval_set_result_name = VALUES(eval_set_result_name),
		eval_set_id = VALUES(eval_set_id),
		eval_case_results = VALUES(eval_case_results),
		summary = VALUES(summary),
		creation_time = VALUES(creation_time)`, m.table)
	if _, err := m.db.ExecContext(ctx, stmt,
		appName,
		result.EvalSetResultID,
		result.EvalSetResultName,
		result.EvalSetID,
		string(caseResults),
		string(summary),
		result.CreationTimestamp.UnixSeconds(),
	); err != nil {
		return "", fmt.Errorf("save eval set result %s: %w", result.EvalSetResultID, err)
	}
	return result.EvalSetResultID, nil
}

// Get retrieves an evaluation result by ID.
func (m *manager) Get(ctx context.Context, appName, evalSetResultID string) (*evalresult.EvalSetResult, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stmt := fmt.Sprintf(`SELECT eval_set_result_name, eval_set_id, eval_case_results, summary, creation_time
		FROM %s WHERE app_name = ? AND eval_set_result_id = ?`, m.table)
	var (
		name         string
		evalSetID    string
		caseResults  sql.NullString
		summary      sql.NullString
		creationTime float64
	)
	err := m.db.QueryRowContext(ctx, stmt, appName, evalSetResultID).
		Scan(&name, &evalSetID, &caseResults, &summary, &creationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("eval set result %s not found: %w", evalSetResultID, os.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("get eval set result %s: %w", evalSetResultID, err)
	}
	result := &evalresult.EvalSetResult{
		EvalSetResultID:   evalSetResultID,
		EvalSetResultName: name,
		EvalSetID:         evalSetID,
		CreationTimestamp: epochtime.FromUnix(creationTime),
	}
	if caseResults.Valid && caseResults.String != "" {
		if err := json.Unmarshal([]byte(caseResults.String), &result.EvalCaseResults); err != nil {
			return nil, fmt.Errorf("unmarshal eval case results: %w", err)
		}
	}
	if summary.Valid && summary.String != "" && summary.String != "null" {
		result.Summary = &evalresult.Summary{}
		if err := json.Unmarshal([]byte(summary.String), result.Summary); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
	}
	return result, nil
}

// List returns all available evaluation result IDs for the app, newest first.
func (m *manager) List(ctx context.Context, appName string) ([]string, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stmt := fmt.Sprintf(`SELECT eval_set_result_id FROM %s WHERE app_name = ? ORDER BY created_at DESC, id DESC`, m.table)
	rows, err := m.db.QueryContext(ctx, stmt, appName)
	if err != nil {
		return nil, fmt.Errorf("list eval set results: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan eval set result id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate eval set results: %w", err)
	}
	return ids, nil
}

// Close closes the manager and the database handle it owns.
func (m *manager) Close() error {
	if !m.dbValid {
		return nil
	}
	m.dbValid = false
	if m.ownsDB {
		return m.db.Close()
	}
	return nil
}

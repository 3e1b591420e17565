package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/nmoralesv/informe/internal/common"
	"github.com/nmoralesv/informe/internal/model"
)

// SaveReport persists one interpreted request. A missing ID or timestamp is
// filled in; the record is returned updated.
func (s *SQLiteStorage) SaveReport(ctx context.Context, record *model.ReportRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if record == nil {
		return errors.New("record must not be nil")
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	params, err := json.Marshal(record.Interpretation)
	if err != nil {
		return fmt.Errorf("failed to marshal interpretation: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, prompt, report_type, format, source, role, interpretation, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Prompt,
		string(record.ReportType),
		string(record.Format),
		string(record.Source),
		string(record.Role),
		string(params),
		record.Interpretation.Filters.Category,
		record.CreatedAt,
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("report %s: %w", record.ID, common.ErrDuplicateEntry)
	}
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", record.ID, err)
	}

	return nil
}

// GetReport fetches one record by ID.
func (s *SQLiteStorage) GetReport(ctx context.Context, id string) (*model.ReportRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, prompt, report_type, format, source, role, interpretation, created_at
		 FROM reports WHERE id = ?`, id)

	record, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", id, err)
	}
	return record, nil
}

// ListReports returns the most recent records, newest first.
func (s *SQLiteStorage) ListReports(ctx context.Context, limit int) ([]model.ReportRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, prompt, report_type, format, source, role, interpretation, created_at
		 FROM reports ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.ReportRecord
	for rows.Next() {
		record, scanErr := scanReport(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan report: %w", scanErr)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return records, nil
}

// DeleteReport removes one record by ID.
func (s *SQLiteStorage) DeleteReport(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("report %s: %w", id, common.ErrNotFound)
	}

	return nil
}

// CountSince counts records created at or after the given time, optionally
// restricted to one report type.
func (s *SQLiteStorage) CountSince(ctx context.Context, reportType model.ReportType, since time.Time) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reports WHERE created_at >= ? AND (? = '' OR report_type = ?)`,
		since, string(reportType), string(reportType)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// CategoryCount is a category filter value with its request frequency.
type CategoryCount struct {
	Category string
	Count    int
}

// TopCategories returns the most-requested category filter values since the
// given time, most frequent first.
func (s *SQLiteStorage) TopCategories(ctx context.Context, since time.Time, limit int) ([]CategoryCount, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 3
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) AS n FROM reports
		 WHERE created_at >= ? AND category != ''
		 GROUP BY category ORDER BY n DESC, category LIMIT ?`,
		since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []CategoryCount
	for rows.Next() {
		var cc CategoryCount
		if scanErr := rows.Scan(&cc.Category, &cc.Count); scanErr != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", scanErr)
		}
		counts = append(counts, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return counts, nil
}

// scanner abstracts sql.Row and sql.Rows for scanReport.
type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*model.ReportRecord, error) {
	var (
		record model.ReportRecord
		params string
	)

	err := row.Scan(
		&record.ID,
		&record.Prompt,
		(*string)(&record.ReportType),
		(*string)(&record.Format),
		(*string)(&record.Source),
		(*string)(&record.Role),
		&params,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(params), &record.Interpretation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interpretation: %w", err)
	}

	return &record, nil
}

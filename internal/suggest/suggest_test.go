package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmoralesv/informe/internal/model"
	"github.com/nmoralesv/informe/internal/storage"
)

type mockStore struct {
	count      int
	countErr   error
	categories []storage.CategoryCount
	catErr     error

	gotType  model.ReportType
	gotSince time.Time
}

func (m *mockStore) CountSince(_ context.Context, reportType model.ReportType, since time.Time) (int, error) {
	m.gotType = reportType
	m.gotSince = since
	return m.count, m.countErr
}

func (m *mockStore) TopCategories(_ context.Context, _ time.Time, _ int) ([]storage.CategoryCount, error) {
	return m.categories, m.catErr
}

func TestForReportTypeQuietHistory(t *testing.T) {
	store := &mockStore{count: 3}
	s := New(store)

	got, err := s.ForReportType(context.Background(), model.ReportTypeSales)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, model.ReportTypeSales, store.gotType)
}

func TestForReportTypeActiveWeek(t *testing.T) {
	store := &mockStore{
		count: 12,
		categories: []storage.CategoryCount{
			{Category: "ropa", Count: 5},
			{Category: "electrónica", Count: 2},
		},
	}
	s := New(store)

	got, err := s.ForReportType(context.Background(), model.ReportTypeSales)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "date", got[0].Filter)
	assert.Equal(t, "period", got[0].Kind)
	assert.Equal(t, "última semana", got[0].Value)
	assert.Contains(t, got[0].Reason, "12")

	assert.Equal(t, "category", got[1].Filter)
	assert.Equal(t, "ropa", got[1].Value)
	assert.Equal(t, "electrónica", got[2].Value)
}

func TestForReportTypeSinceWindow(t *testing.T) {
	store := &mockStore{}
	s := New(store)
	now := time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_, err := s.ForReportType(context.Background(), model.ReportTypeSales)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), store.gotSince)
}

func TestForReportTypeStoreErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := New(&mockStore{countErr: boom}).ForReportType(context.Background(), model.ReportTypeSales)
	assert.ErrorIs(t, err, boom)

	_, err = New(&mockStore{catErr: boom}).ForReportType(context.Background(), model.ReportTypeSales)
	assert.ErrorIs(t, err, boom)
}

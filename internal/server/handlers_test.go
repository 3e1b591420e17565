package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmoralesv/informe/internal/common"
	"github.com/nmoralesv/informe/internal/interpreter"
	"github.com/nmoralesv/informe/internal/model"
	"github.com/nmoralesv/informe/internal/storage"
	"github.com/nmoralesv/informe/internal/suggest"
)

type mockStore struct {
	saved     []*model.ReportRecord
	saveErr   error
	report    *model.ReportRecord
	getErr    error
	records   []model.ReportRecord
	listErr   error
	deleteErr error
}

func (m *mockStore) SaveReport(_ context.Context, record *model.ReportRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	record.ID = "test-id"
	record.CreatedAt = time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC)
	m.saved = append(m.saved, record)
	return nil
}

func (m *mockStore) GetReport(_ context.Context, _ string) (*model.ReportRecord, error) {
	return m.report, m.getErr
}

func (m *mockStore) ListReports(_ context.Context, _ int) ([]model.ReportRecord, error) {
	return m.records, m.listErr
}

func (m *mockStore) DeleteReport(_ context.Context, _ string) error {
	return m.deleteErr
}

type mockSuggestStore struct {
	count      int
	categories []storage.CategoryCount
}

func (m *mockSuggestStore) CountSince(_ context.Context, _ model.ReportType, _ time.Time) (int, error) {
	return m.count, nil
}

func (m *mockSuggestStore) TopCategories(_ context.Context, _ time.Time, _ int) ([]storage.CategoryCount, error) {
	return m.categories, nil
}

func newTestAPI(store *mockStore) *WebAPI {
	return NewWebAPI(interpreter.New(), Config{
		Store:     store,
		Suggester: suggest.New(&mockSuggestStore{count: 12}),
	})
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleInterpret(t *testing.T) {
	store := &mockStore{}
	api := newTestAPI(store)

	rec := postJSON(t, api.Handler(), "/api/v1/interpret", map[string]any{
		"text": "ventas de este mes",
		"role": "admin",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp interpretResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "test-id", resp.Report.ID)
	assert.Equal(t, model.ReportTypeSales, resp.Report.ReportType)
	assert.Equal(t, model.SourceText, resp.Report.Source)
	assert.Equal(t, model.RoleAdmin, resp.Report.Role)
	require.NotNil(t, resp.Report.Interpretation.DateRange)

	require.Len(t, store.saved, 1)
	assert.Equal(t, "ventas de este mes", store.saved[0].Prompt)
}

func TestHandleInterpretTranscript(t *testing.T) {
	store := &mockStore{}
	api := newTestAPI(store)

	rec := postJSON(t, api.Handler(), "/api/v1/interpret", map[string]any{
		"transcript": "cuánto he gastado",
		"role":       "admin",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp interpretResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.SourceVoice, resp.Report.Source)
	assert.Equal(t, model.ReportTypeFinancial, resp.Report.ReportType)
}

func TestHandleInterpretDefaultRoleIsClient(t *testing.T) {
	store := &mockStore{}
	api := newTestAPI(store)

	// No role given: the gate treats the caller as a client and downgrades
	// a storewide sales request.
	rec := postJSON(t, api.Handler(), "/api/v1/interpret", map[string]any{
		"text": "reporte de ventas",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp interpretResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.RoleClient, resp.Report.Role)
	assert.Equal(t, model.ReportTypeGeneral, resp.Report.ReportType)
}

func TestHandleInterpretOverrides(t *testing.T) {
	store := &mockStore{}
	api := newTestAPI(store)

	rec := postJSON(t, api.Handler(), "/api/v1/interpret", map[string]any{
		"text": "ventas de este mes",
		"role": "admin",
		"overrides": map[string]any{
			"category": "ropa",
			"from":     "2024-01-01",
			"until":    "2024-03-31",
		},
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp interpretResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ropa", resp.Report.Interpretation.Filters.Category)
	require.NotNil(t, resp.Report.Interpretation.DateRange)
	assert.Equal(t, "2024-01-01", resp.Report.Interpretation.DateRange.From)
	assert.Equal(t, "2024-03-31", resp.Report.Interpretation.DateRange.Until)
}

func TestHandleInterpretBadRequests(t *testing.T) {
	api := newTestAPI(&mockStore{})

	rec := postJSON(t, api.Handler(), "/api/v1/interpret", map[string]any{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interpret", bytes.NewReader([]byte("{not json")))
	raw := httptest.NewRecorder()
	api.Handler().ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestHandleInterpretUnknownRole(t *testing.T) {
	api := newTestAPI(&mockStore{})

	rec := postJSON(t, api.Handler(), "/api/v1/interpret", map[string]any{
		"text": "ventas",
		"role": "guest",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleInterpretSaveFailure(t *testing.T) {
	api := newTestAPI(&mockStore{saveErr: assert.AnError})

	rec := postJSON(t, api.Handler(), "/api/v1/interpret", map[string]any{
		"text": "ventas",
		"role": "admin",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleListReports(t *testing.T) {
	store := &mockStore{records: []model.ReportRecord{
		{ID: "a", Prompt: "ventas"},
		{ID: "b", Prompt: "compras"},
	}}
	api := newTestAPI(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?limit=2", nil)
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Reports []model.ReportRecord `json:"reports"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Reports, 2)
}

func TestHandleListReportsBadLimit(t *testing.T) {
	api := newTestAPI(&mockStore{})

	for _, limit := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?limit="+limit, nil)
		rec := httptest.NewRecorder()
		api.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestHandleGetReport(t *testing.T) {
	store := &mockStore{report: &model.ReportRecord{ID: "abc", Prompt: "ventas"}}
	api := newTestAPI(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/abc", nil)
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Report model.ReportRecord `json:"report"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "abc", resp.Report.ID)
}

func TestHandleGetReportNotFound(t *testing.T) {
	api := newTestAPI(&mockStore{getErr: common.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/missing", nil)
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteReport(t *testing.T) {
	api := newTestAPI(&mockStore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reports/abc", nil)
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	api = newTestAPI(&mockStore{deleteErr: common.ErrNotFound})
	rec = httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSuggestions(t *testing.T) {
	api := newTestAPI(&mockStore{})

	rec := postJSON(t, api.Handler(), "/api/v1/filters/suggestions", map[string]any{
		"report_type": "sales",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success     bool                 `json:"success"`
		Suggestions []suggest.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "period", resp.Suggestions[0].Kind)
}
